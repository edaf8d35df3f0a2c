package portal

import (
	"golang.org/x/text/language"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
	"flounder-swim/internal/util"
)

// Disciplines offered when editing a participant.
var Disciplines = []string{
	"Вольный стиль",
	"Баттерфляй",
	"Брасс",
	"Кроль на спине",
	"Комплексное плавание",
}

// ParticipantColumns lists the sortable columns with their headers.
var ParticipantColumns = []Column{
	{Field: "discipline", Label: "Дисциплина"},
	{Field: "fullName", Label: "ФИО"},
	{Field: "team", Label: "Команда"},
	{Field: "age", Label: "Возраст"},
	{Field: "time", Label: "Время"},
	{Field: "distance", Label: "Дистанция"},
	{Field: "heat", Label: "Заплыв"},
	{Field: "lane", Label: "№ дорожки"},
}

type Column struct {
	Field string
	Label string
}

var participantFields = setter[models.Participant]{
	"discipline": func(p *models.Participant, v string) { p.Discipline = v },
	"fullName":   func(p *models.Participant, v string) { p.FullName = v },
	"team":       func(p *models.Participant, v string) { p.Team = v },
	"age":        func(p *models.Participant, v string) { p.Age = util.Number(v) },
	"time":       func(p *models.Participant, v string) { p.Time = v },
	"distance":   func(p *models.Participant, v string) { p.Distance = v },
	"heat":       func(p *models.Participant, v string) { p.Heat = v },
	"lane":       func(p *models.Participant, v string) { p.Lane = util.Number(v) },
}

// Participants is the participants table.
type Participants struct {
	*editable[models.Participant]
	clock  clock.Clock
	filter *collection.Filter[models.Participant]
	sorter *collection.Sorter[models.Participant]
}

func newParticipants(opts Options) *Participants {
	return &Participants{
		editable: newEditable(string(ParticipantsPage), opts.Seed.Clone().Participants, participantFields, opts),
		clock:    opts.Clock,
		filter: collection.NewFilter[models.Participant]().
			Equal("discipline", func(p models.Participant) string { return p.Discipline }).
			Equal("team", func(p models.Participant) string { return p.Team }).
			Search(
				func(p models.Participant) string { return p.FullName },
				func(p models.Participant) string { return p.Team },
			),
		sorter: participantSorter(opts.Locale),
	}
}

func participantSorter(locale language.Tag) *collection.Sorter[models.Participant] {
	return collection.NewSorter(locale,
		collection.StringField("discipline", func(p models.Participant) string { return p.Discipline }),
		collection.StringField("fullName", func(p models.Participant) string { return p.FullName }),
		collection.StringField("team", func(p models.Participant) string { return p.Team }),
		collection.NumberField("age", func(p models.Participant) int { return p.Age }),
		collection.StringField("time", func(p models.Participant) string { return p.Time }),
		collection.StringField("distance", func(p models.Participant) string { return p.Distance }),
		collection.StringField("heat", func(p models.Participant) string { return p.Heat }),
		collection.NumberField("lane", func(p models.Participant) int { return p.Lane }),
	)
}

// Add creates a participant with default values and starts editing it.
func (p *Participants) Add() {
	p.add(models.Participant{
		ID:         clock.NewID(p.clock),
		Discipline: "Вольный стиль",
		Time:       "00:00.0",
		Distance:   "50м",
		Heat:       "Финал А",
		Lane:       1,
	})
}

func (p *Participants) Edit(id string) { p.begin(id) }

func (p *Participants) SetField(name, value string) { p.set(name, value) }

func (p *Participants) Save() { p.save() }

// Submit writes a posted edit form and saves the participant.
func (p *Participants) Submit(id string, fields map[string]string) { p.submit(id, fields) }

func (p *Participants) Cancel() { p.cancel() }

func (p *Participants) Delete(id string) { p.remove(id) }

// SetFilter changes one filter: "discipline", "team" or "search".
func (p *Participants) SetFilter(name, value string) {
	if name == "search" {
		p.filter.SetSearch(value)
		return
	}
	p.filter.Set(name, value)
}

// Sort toggles the sort on a column.
func (p *Participants) Sort(field string) { p.sorter.Toggle(field) }

type ParticipantsView struct {
	Rows        []Row[models.Participant]
	Disciplines []string
	Teams       []string
	Discipline  string
	Team        string
	Search      string
	SortField   string
	SortDir     collection.Direction
	Columns     []Column
	Choices     []string
	Editing     bool
}

func (p *Participants) View() ParticipantsView {
	all := p.store.All()
	visible := p.sorter.Apply(p.filter.Apply(all))
	field, dir := p.sorter.Active()
	return ParticipantsView{
		Rows:        p.rows(visible),
		Disciplines: p.filter.Options(all, "discipline"),
		Teams:       p.filter.Options(all, "team"),
		Discipline:  p.filter.Value("discipline"),
		Team:        p.filter.Value("team"),
		Search:      p.filter.Query(),
		SortField:   field,
		SortDir:     dir,
		Columns:     ParticipantColumns,
		Choices:     Disciplines,
		Editing:     p.edit.Editing(),
	}
}
