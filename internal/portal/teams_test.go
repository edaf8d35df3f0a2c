package portal_test

import (
	"testing"
	"time"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/portal"
)

func TestTeamsRankingAndTopMarks(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Teams(func(tm *portal.Teams) {
		tm.Edit("2")
		tm.SetField("totalPoints", "300")

		cards := tm.View().Cards
		if cards[2].Team.Name != "Волны" || !cards[2].Editing || cards[2].Top {
			t.Fatalf("unsaved edit should not move the card: %+v", cards[2])
		}

		tm.Save()
		cards = tm.View().Cards
		var got []string
		for _, c := range cards {
			got = append(got, c.Team.Name)
			if !c.Top {
				t.Fatalf("card %s not marked top", c.Team.Name)
			}
		}
		if !equal(got, []string{"Волны", "Дельфины", "Акулы"}) {
			t.Fatalf("ranking after save = %v", got)
		}
		if cards[0].Rank != 1 || cards[2].Rank != 3 {
			t.Fatalf("ranks = %d..%d", cards[0].Rank, cards[2].Rank)
		}
	})
}

func TestTeamsMembersLiveInWorkingCopy(t *testing.T) {
	app, c := newApp(t, collection.CreateAppend)
	app.Teams(func(tm *portal.Teams) {
		tm.Edit("1")
		tm.AddMember()
		tm.SetMemberField("name", "Орлов Павел")
		tm.SetMemberField("initials", "ОП")
		tm.SetMemberField("age", "19")
		tm.SaveMember()

		c.Advance(time.Millisecond)
		tm.EditMember("m2")
		tm.SetMemberField("age", "27")
		tm.SaveMember()
		tm.DeleteMember("m3")

		card := tm.View().Cards[0]
		if len(card.Members) != 3 || card.Members[2].Record.Name != "Орлов Павел" {
			t.Fatalf("working copy members = %+v", card.Members)
		}
		tm.Cancel()
		if n := len(tm.Ranked()[0].Members); n != 3 {
			t.Fatalf("cancel leaked member edits: %d members", n)
		}

		tm.Edit("1")
		tm.DeleteMember("m1")
		tm.Save()
		if m := tm.Ranked()[0].Members; len(m) != 2 || m[0].ID != "m2" {
			t.Fatalf("members after save = %+v", m)
		}
	})
}

func TestTeamsMemberStagedCancel(t *testing.T) {
	app, _ := newApp(t, collection.CreateStaged)
	app.Teams(func(tm *portal.Teams) {
		tm.Edit("3")
		tm.AddMember()
		card := tm.View().Cards[1]
		if card.Team.ID != "3" || len(card.Members) != 4 || !card.Members[3].Editing {
			t.Fatalf("staged member not shown: %+v", card)
		}
		tm.Save()
		if n := len(tm.Ranked()[1].Members); n != 3 {
			t.Fatalf("staged member saved with the team: %d members", n)
		}
	})
}

func TestTeamsAddDefaults(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Teams(func(tm *portal.Teams) {
		tm.Add()
		cards := tm.View().Cards
		last := cards[len(cards)-1]
		if last.Team.Name != "Новая команда" || last.Team.TotalPoints != 0 || !last.Editing {
			t.Fatalf("new team = %+v", last)
		}
	})
}

func TestTeamsMemberFormKeepsTeamFields(t *testing.T) {
	app, _ := newApp(t, collection.CreateAppend)
	app.Teams(func(tm *portal.Teams) {
		tm.Edit("1")
		tm.Apply(map[string]string{"coach": "Смирнов А.В.", "member.name": "не участник"})
		tm.AddMember()
		tm.SubmitMember(map[string]string{
			"name":            "Дельфины Про",
			"member.name":     "Орлов Павел",
			"member.initials": "ОП",
			"member.age":      "19",
		})

		card := tm.View().Cards[0]
		if card.Team.Coach != "Смирнов А.В." || card.Team.Name != "Дельфины" {
			t.Fatalf("working copy team = %+v", card.Team)
		}
		last := card.Members[len(card.Members)-1].Record
		if last.Name != "Орлов Павел" || last.Initials != "ОП" || last.Age != 19 {
			t.Fatalf("submitted member = %+v", last)
		}
	})
}
