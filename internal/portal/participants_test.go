package portal_test

import (
	"testing"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
	"flounder-swim/internal/portal"
)

func rowIDs(rows []portal.Row[models.Participant]) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record.ID)
	}
	return out
}

func TestParticipantsFilterAndSearch(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Participants(func(p *portal.Participants) {
		p.SetFilter("discipline", "Баттерфляй")
		if got := rowIDs(p.View().Rows); !equal(got, []string{"4", "5"}) {
			t.Fatalf("discipline filter = %v", got)
		}

		p.SetFilter("discipline", collection.AllValue)
		p.SetFilter("search", "АКУЛ")
		if got := rowIDs(p.View().Rows); !equal(got, []string{"4", "6"}) {
			t.Fatalf("search by team = %v", got)
		}

		p.SetFilter("team", "Волны")
		if got := p.View().Rows; len(got) != 0 {
			t.Fatalf("team and search combined = %v", rowIDs(got))
		}

		v := p.View()
		if !equal(v.Disciplines, []string{"Вольный стиль", "Баттерфляй", "Брасс"}) {
			t.Fatalf("discipline options = %v", v.Disciplines)
		}
		if v.Team != "Волны" || v.Search != "АКУЛ" {
			t.Fatalf("view lost filter values: %q %q", v.Team, v.Search)
		}
	})
}

func TestParticipantsSortToggle(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Participants(func(p *portal.Participants) {
		p.Sort("age")
		if got := rowIDs(p.View().Rows); !equal(got, []string{"2", "4", "1", "5", "3", "6"}) {
			t.Fatalf("age asc = %v", got)
		}
		p.Sort("age")
		if got := rowIDs(p.View().Rows); !equal(got, []string{"6", "3", "5", "1", "4", "2"}) {
			t.Fatalf("age desc = %v", got)
		}
		p.Sort("lane")
		v := p.View()
		if v.SortField != "lane" || v.SortDir != collection.Asc {
			t.Fatalf("new field should sort ascending: %s %s", v.SortField, v.SortDir)
		}
		if got := rowIDs(v.Rows); !equal(got, []string{"6", "4", "3", "1", "2", "5"}) {
			t.Fatalf("lane asc = %v", got)
		}
	})
}

func TestParticipantsEditSaveAndCancel(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Participants(func(p *portal.Participants) {
		p.Edit("3")
		p.SetField("lane", "7")
		p.SetField("age", "не число")
		v := p.View()
		if !v.Editing || !v.Rows[2].Editing || v.Rows[2].Record.Lane != 7 {
			t.Fatalf("working copy not shown: %+v", v.Rows[2])
		}
		p.Cancel()
		if r := p.View().Rows[2].Record; r.Lane != 3 || r.Age != 26 {
			t.Fatalf("cancel kept edits: %+v", r)
		}

		p.Edit("3")
		p.SetField("age", "30")
		p.SetField("unknown", "x")
		p.Save()
		if r := p.View().Rows[2]; r.Editing || r.Record.Age != 30 {
			t.Fatalf("save lost edit: %+v", r)
		}
	})
}

func TestParticipantsCreateModes(t *testing.T) {
	t.Run("append keeps the stub on cancel", func(t *testing.T) {
		app, _ := newApp(t, collection.CreateAppend)
		app.Participants(func(p *portal.Participants) {
			p.Add()
			rows := p.View().Rows
			last := rows[len(rows)-1]
			if len(rows) != 7 || !last.Editing || last.Record.ID != "1768035600000" {
				t.Fatalf("new row = %+v (%d rows)", last, len(rows))
			}
			if last.Record.Discipline != "Вольный стиль" || last.Record.Lane != 1 {
				t.Fatalf("defaults not applied: %+v", last.Record)
			}
			p.Cancel()
			if n := len(p.View().Rows); n != 7 {
				t.Fatalf("rows after cancel = %d, want 7", n)
			}
		})
	})

	t.Run("staged drops on cancel", func(t *testing.T) {
		app, _ := newApp(t, collection.CreateStaged)
		app.Participants(func(p *portal.Participants) {
			p.Add()
			if n := len(p.View().Rows); n != 7 {
				t.Fatalf("staged row not shown: %d rows", n)
			}
			p.Cancel()
			if n := len(p.View().Rows); n != 6 {
				t.Fatalf("rows after cancel = %d, want 6", n)
			}
			p.Add()
			p.SetField("fullName", "Орлова Виктория")
			p.Save()
			rows := p.View().Rows
			if len(rows) != 7 || rows[6].Record.FullName != "Орлова Виктория" || rows[6].Editing {
				t.Fatalf("staged save = %+v", rows[len(rows)-1])
			}
		})
	})
}

func TestParticipantsSubmit(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Participants(func(p *portal.Participants) {
		p.Edit("1")
		p.Submit("2", map[string]string{"time": "00:26.0", "lane": "3,9"})
		rows := p.View().Rows
		if rows[1].Record.Time != "00:26.0" || rows[1].Record.Lane != 3 || rows[1].Editing {
			t.Fatalf("submitted row = %+v", rows[1])
		}
		if rows[0].Editing {
			t.Fatalf("previous session survived submit")
		}
		p.Submit("missing", map[string]string{"time": "x"})
		if n := len(p.View().Rows); n != 6 {
			t.Fatalf("rows = %d", n)
		}
	})
}
