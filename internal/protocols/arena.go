// Package protocols stores competition protocols as flat tables: protocol
// rows, distance rows keyed to their protocol, heat rows keyed to their
// distance and lane rows keyed to their heat. Editing a lane touches one
// lane row; the nested models.Protocol is only assembled for display.
package protocols

import (
	"fmt"
	"slices"
	"strconv"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/models"
)

// LanesPerHeat is how many lanes a heat gets when it is created here.
const LanesPerHeat = 8

type ProtocolRow struct {
	ID              string
	Title           string
	CompetitionName string
	CompetitionType models.CompetitionType
	Date            string
}

type DistanceRow struct {
	ID         string
	ProtocolID string
	Name       string
	Gender     models.Gender
}

type HeatRow struct {
	ID         string
	DistanceID string
	Name       string
}

type LaneRow struct {
	HeatID string
	models.LaneEntry
}

type Arena struct {
	clock     clock.Clock
	parent    *Arena
	protocols []ProtocolRow
	distances []DistanceRow
	heats     []HeatRow
	lanes     []LaneRow
}

func New(c clock.Clock) *Arena {
	return &Arena{clock: c}
}

// Draft returns an empty arena whose new rows get ids that are free both
// in the draft and in a. Rows of a draft are copied back with Replace.
func (a *Arena) Draft() *Arena {
	return &Arena{clock: a.clock, parent: a}
}

// NewProtocol builds the default protocol a user starts from. It is not
// stored anywhere, but its id is free in a.
func (a *Arena) NewProtocol() models.Protocol {
	now := a.clock.Now()
	return models.Protocol{
		ID:              uniqueID(clock.NewID(a.clock), a.protocolTaken),
		Title:           "Новый протокол - " + now.Format("02.01.2006"),
		CompetitionType: models.Cup,
		Date:            now.UTC().Format("2006-01-02"),
	}
}

// Load appends every protocol of the tree form.
func (a *Arena) Load(ps []models.Protocol) {
	for _, p := range ps {
		a.AddProtocol(p)
	}
}

// AddProtocol flattens p into the tables, after every stored protocol.
func (a *Arena) AddProtocol(p models.Protocol) {
	a.protocols = append(a.protocols, ProtocolRow{
		ID:              p.ID,
		Title:           p.Title,
		CompetitionName: p.CompetitionName,
		CompetitionType: p.CompetitionType,
		Date:            p.Date,
	})
	for _, d := range p.Distances {
		a.distances = append(a.distances, DistanceRow{ID: d.ID, ProtocolID: p.ID, Name: d.Name, Gender: d.Gender})
		for _, h := range d.Heats {
			a.heats = append(a.heats, HeatRow{ID: h.ID, DistanceID: d.ID, Name: h.Name})
			for _, l := range h.Lanes {
				a.lanes = append(a.lanes, LaneRow{HeatID: h.ID, LaneEntry: l})
			}
		}
	}
}

func (a *Arena) Len() int { return len(a.protocols) }

func (a *Arena) HasProtocol(id string) bool {
	return slices.ContainsFunc(a.protocols, func(p ProtocolRow) bool { return p.ID == id })
}

// AddDistance appends a default distance with one empty heat to the
// protocol and returns the distance id.
func (a *Arena) AddDistance(protocolID string) (string, bool) {
	if !a.HasProtocol(protocolID) {
		return "", false
	}
	id := uniqueID(clock.NewID(a.clock), a.distanceTaken)
	a.distances = append(a.distances, DistanceRow{
		ID:         id,
		ProtocolID: protocolID,
		Name:       "50м Вольный стиль",
		Gender:     models.Male,
	})
	a.addHeat(id, "Заплыв 1")
	return id, true
}

// AddHeat appends an empty heat named after the distance's heat count.
func (a *Arena) AddHeat(distanceID string) (string, bool) {
	if !a.hasDistance(distanceID) {
		return "", false
	}
	n := 0
	for _, h := range a.heats {
		if h.DistanceID == distanceID {
			n++
		}
	}
	return a.addHeat(distanceID, fmt.Sprintf("Заплыв %d", n+1)), true
}

func (a *Arena) addHeat(distanceID, name string) string {
	id := uniqueID(clock.NewID(a.clock), a.heatTaken)
	a.heats = append(a.heats, HeatRow{ID: id, DistanceID: distanceID, Name: name})
	ms := strconv.FormatInt(a.clock.Now().UnixMilli(), 10)
	for i := 0; i < LanesPerHeat; i++ {
		laneID := uniqueID(fmt.Sprintf("l%s_%d", ms, i), a.laneTaken)
		a.lanes = append(a.lanes, LaneRow{
			HeatID: id,
			LaneEntry: models.LaneEntry{
				ID:         laneID,
				LaneNumber: i + 1,
				Time:       "00:00.0",
			},
		})
	}
	return id
}

// UpdateProtocol applies fn to the protocol row with the given id.
func (a *Arena) UpdateProtocol(id string, fn func(*ProtocolRow)) {
	for i := range a.protocols {
		if a.protocols[i].ID == id {
			fn(&a.protocols[i])
		}
	}
}

func (a *Arena) UpdateDistance(id string, fn func(*DistanceRow)) {
	for i := range a.distances {
		if a.distances[i].ID == id {
			fn(&a.distances[i])
		}
	}
}

func (a *Arena) Lane(id string) (models.LaneEntry, bool) {
	for _, l := range a.lanes {
		if l.ID == id {
			return l.LaneEntry, true
		}
	}
	return models.LaneEntry{}, false
}

// Lanes exposes the lane table as an edit target.
func (a *Arena) Lanes() LaneTable { return LaneTable{a: a} }

type LaneTable struct {
	a *Arena
}

// Update overwrites the lane with the given id; its heat does not change.
func (t LaneTable) Update(id string, l models.LaneEntry) {
	for i := range t.a.lanes {
		if t.a.lanes[i].ID == id {
			t.a.lanes[i].LaneEntry = l
		}
	}
}

// DeleteProtocol removes a protocol together with its distances, heats
// and lanes.
func (a *Arena) DeleteProtocol(id string) {
	distances := map[string]bool{}
	for _, d := range a.distances {
		if d.ProtocolID == id {
			distances[d.ID] = true
		}
	}
	heats := map[string]bool{}
	for _, h := range a.heats {
		if distances[h.DistanceID] {
			heats[h.ID] = true
		}
	}
	a.protocols = slices.DeleteFunc(a.protocols, func(p ProtocolRow) bool { return p.ID == id })
	a.distances = slices.DeleteFunc(a.distances, func(d DistanceRow) bool { return d.ProtocolID == id })
	a.heats = slices.DeleteFunc(a.heats, func(h HeatRow) bool { return distances[h.DistanceID] })
	a.lanes = slices.DeleteFunc(a.lanes, func(l LaneRow) bool { return heats[l.HeatID] })
}

// Extract copies one protocol's rows into a separate arena.
func (a *Arena) Extract(id string) (*Arena, bool) {
	p, ok := a.Tree(id)
	if !ok {
		return nil, false
	}
	draft := a.Draft()
	draft.AddProtocol(p)
	return draft, true
}

// Replace swaps the rows of protocol id for the rows of the same protocol
// in draft, keeping the protocol's position. A protocol that is not
// stored yet is appended.
func (a *Arena) Replace(id string, draft *Arena) {
	p, ok := draft.Tree(id)
	if !ok {
		return
	}
	pos := slices.IndexFunc(a.protocols, func(r ProtocolRow) bool { return r.ID == id })
	a.DeleteProtocol(id)
	a.AddProtocol(p)
	if pos < 0 {
		return
	}
	last := len(a.protocols) - 1
	row := a.protocols[last]
	a.protocols = slices.Insert(a.protocols[:last], pos, row)
}

// Trees assembles every protocol in store order.
func (a *Arena) Trees() []models.Protocol {
	out := make([]models.Protocol, 0, len(a.protocols))
	for _, p := range a.protocols {
		out = append(out, a.assemble(p))
	}
	return out
}

func (a *Arena) Tree(id string) (models.Protocol, bool) {
	for _, p := range a.protocols {
		if p.ID == id {
			return a.assemble(p), true
		}
	}
	return models.Protocol{}, false
}

func (a *Arena) assemble(p ProtocolRow) models.Protocol {
	out := models.Protocol{
		ID:              p.ID,
		Title:           p.Title,
		CompetitionName: p.CompetitionName,
		CompetitionType: p.CompetitionType,
		Date:            p.Date,
		Distances:       []models.Distance{},
	}
	for _, d := range a.distances {
		if d.ProtocolID != p.ID {
			continue
		}
		dist := models.Distance{ID: d.ID, Name: d.Name, Gender: d.Gender, Heats: []models.Heat{}}
		for _, h := range a.heats {
			if h.DistanceID != d.ID {
				continue
			}
			heat := models.Heat{ID: h.ID, Name: h.Name, Lanes: []models.LaneEntry{}}
			for _, l := range a.lanes {
				if l.HeatID == h.ID {
					heat.Lanes = append(heat.Lanes, l.LaneEntry)
				}
			}
			dist.Heats = append(dist.Heats, heat)
		}
		out.Distances = append(out.Distances, dist)
	}
	return out
}

func (a *Arena) hasDistance(id string) bool {
	return slices.ContainsFunc(a.distances, func(d DistanceRow) bool { return d.ID == id })
}

func (a *Arena) hasHeat(id string) bool {
	return slices.ContainsFunc(a.heats, func(h HeatRow) bool { return h.ID == id })
}

func (a *Arena) hasLane(id string) bool {
	return slices.ContainsFunc(a.lanes, func(l LaneRow) bool { return l.ID == id })
}

// The *Taken lookups also consult the arena a draft was made from, so a
// row added to the draft keeps its id once Replace copies it back.
func (a *Arena) protocolTaken(id string) bool {
	return a.HasProtocol(id) || a.parent != nil && a.parent.protocolTaken(id)
}

func (a *Arena) distanceTaken(id string) bool {
	return a.hasDistance(id) || a.parent != nil && a.parent.distanceTaken(id)
}

func (a *Arena) heatTaken(id string) bool {
	return a.hasHeat(id) || a.parent != nil && a.parent.heatTaken(id)
}

func (a *Arena) laneTaken(id string) bool {
	return a.hasLane(id) || a.parent != nil && a.parent.laneTaken(id)
}

// uniqueID suffixes id until taken reports it free. Rows created within
// the same millisecond would otherwise share a key.
func uniqueID(id string, taken func(string) bool) string {
	candidate := id
	for n := 1; taken(candidate); n++ {
		candidate = id + "-" + strconv.Itoa(n)
	}
	return candidate
}
