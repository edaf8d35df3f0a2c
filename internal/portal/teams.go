package portal

import (
	"slices"
	"strings"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
	"flounder-swim/internal/util"
)

var teamFields = setter[models.Team]{
	"name":        func(t *models.Team, v string) { t.Name = v },
	"description": func(t *models.Team, v string) { t.Description = v },
	"coach":       func(t *models.Team, v string) { t.Coach = v },
	"totalPoints": func(t *models.Team, v string) { t.TotalPoints = util.Number(v) },
}

var memberFields = setter[models.Member]{
	"name":     func(m *models.Member, v string) { m.Name = v },
	"initials": func(m *models.Member, v string) { m.Initials = v },
	"age":      func(m *models.Member, v string) { m.Age = util.Number(v) },
}

// memberPrefix namespaces member inputs posted with the team form.
const memberPrefix = "member."

// Teams is the team cards page. Members are edited inside the working copy
// of the team being edited and reach the store when the team is saved.
type Teams struct {
	*editable[models.Team]
	clock   clock.Clock
	ranking *collection.Sorter[models.Team]
	member  collection.EditSession[models.Member]
}

func newTeams(opts Options) *Teams {
	ranking := collection.NewSorter(opts.Locale,
		collection.NumberField("totalPoints", func(t models.Team) int { return t.TotalPoints }),
	)
	ranking.SortBy("totalPoints", collection.Desc)
	return &Teams{
		editable: newEditable(string(TeamsPage), opts.Seed.Clone().Teams, teamFields, opts),
		clock:    opts.Clock,
		ranking:  ranking,
	}
}

// Ranked returns the stored teams ordered by points, highest first.
func (t *Teams) Ranked() []models.Team {
	return t.ranking.Apply(t.store.All())
}

func (t *Teams) Add() {
	t.add(models.Team{
		ID:      clock.NewID(t.clock),
		Name:    "Новая команда",
		Members: []models.Member{},
	})
}

func (t *Teams) Edit(id string) { t.begin(id) }

func (t *Teams) SetField(name, value string) { t.set(name, value) }

// Apply writes posted team fields into the working copy without saving.
// Member fields are left alone.
func (t *Teams) Apply(fields map[string]string) {
	for name, value := range fields {
		t.set(name, value)
	}
}

func (t *Teams) Save() {
	t.save()
	t.member.Cancel()
}

func (t *Teams) Submit(id string, fields map[string]string) {
	t.submit(id, fields)
	t.member.Cancel()
}

func (t *Teams) Cancel() {
	t.cancel()
	t.member.Cancel()
}

func (t *Teams) Delete(id string) { t.remove(id) }

// AddMember appends an empty member to the team being edited and starts
// editing it.
func (t *Teams) AddMember() {
	t.edit.Mutate(func(team *models.Team) {
		t.member.Create(&memberList{team: team}, models.Member{ID: clock.NewID(t.clock)}, t.mode)
	})
}

func (t *Teams) EditMember(id string) {
	w, ok := t.edit.Working()
	if !ok {
		return
	}
	for _, m := range w.Members {
		if m.ID == id {
			t.member.Begin(m)
			return
		}
	}
}

func (t *Teams) SetMemberField(name, value string) {
	fn, ok := memberFields[name]
	if !ok {
		return
	}
	t.member.Mutate(func(m *models.Member) { fn(m, value) })
}

// SaveMember writes the member into the team's working copy.
func (t *Teams) SaveMember() {
	if !t.edit.Editing() {
		return
	}
	t.edit.Mutate(func(team *models.Team) {
		t.member.Commit(&memberList{team: team})
	})
}

// SubmitMember writes the posted "member."-prefixed fields into the
// member and the member into the team's working copy.
func (t *Teams) SubmitMember(fields map[string]string) {
	for name, value := range fields {
		if field, ok := strings.CutPrefix(name, memberPrefix); ok {
			t.SetMemberField(field, value)
		}
	}
	t.SaveMember()
}

func (t *Teams) DeleteMember(id string) {
	t.edit.Mutate(func(team *models.Team) {
		team.Members = slices.DeleteFunc(team.Members, func(m models.Member) bool { return m.ID == id })
	})
}

type memberList struct {
	team *models.Team
}

func (l *memberList) Update(id string, m models.Member) {
	for i := range l.team.Members {
		if l.team.Members[i].ID == id {
			l.team.Members[i] = m
		}
	}
}

func (l *memberList) Add(m models.Member) {
	l.team.Members = append(l.team.Members, m)
}

type TeamCard struct {
	Team    models.Team
	Editing bool
	// Rank is 1-based; Top marks the first three cards outside editing.
	Rank    int
	Top     bool
	Members []Row[models.Member]
}

type TeamsView struct {
	Cards []TeamCard
}

func (t *Teams) View() TeamsView {
	rows := t.rows(t.Ranked())
	memberWorking, memberEditing := t.member.Working()
	cards := make([]TeamCard, 0, len(rows))
	for i, row := range rows {
		card := TeamCard{
			Team:    row.Record,
			Editing: row.Editing,
			Rank:    i + 1,
			Top:     !row.Editing && i < 3,
		}
		for _, m := range row.Record.Members {
			if row.Editing && memberEditing && t.member.Is(m.ID) {
				card.Members = append(card.Members, Row[models.Member]{Record: memberWorking, Editing: true})
				continue
			}
			card.Members = append(card.Members, Row[models.Member]{Record: m})
		}
		if row.Editing && t.member.Staged() {
			card.Members = append(card.Members, Row[models.Member]{Record: memberWorking, Editing: true})
		}
		cards = append(cards, card)
	}
	return TeamsView{Cards: cards}
}
