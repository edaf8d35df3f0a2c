package models

// Participant is one row of the participants table.
type Participant struct {
	ID         string `yaml:"id"`
	Discipline string `yaml:"discipline"`
	FullName   string `yaml:"full_name"`
	Team       string `yaml:"team"`
	Age        int    `yaml:"age"`
	Time       string `yaml:"time"` // free text, e.g. "00:24.5"
	Distance   string `yaml:"distance"`
	Heat       string `yaml:"heat"`
	Lane       int    `yaml:"lane"`
}

func (p Participant) RecordID() string { return p.ID }

func (p Participant) Clone() Participant { return p }

type Member struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Initials string `yaml:"initials"`
	Age      int    `yaml:"age"`
}

func (m Member) RecordID() string { return m.ID }

func (m Member) Clone() Member { return m }

type Team struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"` // markdown
	Coach       string   `yaml:"coach"`
	TotalPoints int      `yaml:"total_points"`
	Members     []Member `yaml:"members"`
}

func (t Team) RecordID() string { return t.ID }

// Clone copies the member slice so edits of the copy never leak into t.
func (t Team) Clone() Team {
	t.Members = append([]Member(nil), t.Members...)
	return t
}

type CompetitionType string

const (
	Cup          CompetitionType = "cup"
	Championship CompetitionType = "championship"
)

func (c CompetitionType) Label() string {
	switch c {
	case Cup:
		return "Кубок"
	case Championship:
		return "Первенство"
	default:
		return string(c)
	}
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func (g Gender) Label() string {
	switch g {
	case Male:
		return "Мужчины"
	case Female:
		return "Женщины"
	default:
		return string(g)
	}
}

// LaneEntry is one competitor's slot and result within a heat.
type LaneEntry struct {
	ID           string `yaml:"id"`
	LaneNumber   int    `yaml:"lane_number"`
	FullName     string `yaml:"full_name"`
	Organization string `yaml:"organization"` // free text, not checked against teams
	AgeCategory  string `yaml:"age_category"`
	Time         string `yaml:"time"`
}

func (l LaneEntry) RecordID() string { return l.ID }

func (l LaneEntry) Clone() LaneEntry { return l }

type Heat struct {
	ID    string      `yaml:"id"`
	Name  string      `yaml:"name"`
	Lanes []LaneEntry `yaml:"lanes"`
}

type Distance struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Gender Gender `yaml:"gender"`
	Heats  []Heat `yaml:"heats"`
}

// Protocol is the assembled view of a competition protocol. Storage keeps
// the hierarchy in flat tables, see package protocols.
type Protocol struct {
	ID              string          `yaml:"id"`
	Title           string          `yaml:"title"`
	CompetitionName string          `yaml:"competition_name"`
	CompetitionType CompetitionType `yaml:"competition_type"`
	Date            string          `yaml:"date"` // YYYY-MM-DD
	Distances       []Distance      `yaml:"distances"`
}

func (p Protocol) RecordID() string { return p.ID }

func (p Protocol) Clone() Protocol {
	ds := make([]Distance, len(p.Distances))
	for i, d := range p.Distances {
		hs := make([]Heat, len(d.Heats))
		for j, h := range d.Heats {
			h.Lanes = append([]LaneEntry(nil), h.Lanes...)
			hs[j] = h
		}
		d.Heats = hs
		ds[i] = d
	}
	p.Distances = ds
	return p
}

// HeatName is a regulation entry; Order drives display sequence.
type HeatName struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Stage string `yaml:"stage"`
	Order int    `yaml:"order"`
}

func (h HeatName) RecordID() string { return h.ID }

func (h HeatName) Clone() HeatName { return h }

type AgeCategory struct {
	ID        string `yaml:"id"`
	GroupName string `yaml:"group_name"`
	MinAge    int    `yaml:"min_age"`
	MaxAge    int    `yaml:"max_age"`
}

func (a AgeCategory) RecordID() string { return a.ID }

func (a AgeCategory) Clone() AgeCategory { return a }

// Winner is read-only award data.
type Winner struct {
	Place       int    `yaml:"place"` // 1, 2 or 3
	Name        string `yaml:"name"`
	Initials    string `yaml:"initials"`
	Team        string `yaml:"team"`
	Time        string `yaml:"time"`
	AgeCategory string `yaml:"age_category"`
}

type DistanceResults struct {
	Distance   string   `yaml:"distance"`
	Discipline string   `yaml:"discipline"`
	Winners    []Winner `yaml:"winners"`
}
