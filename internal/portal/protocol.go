package portal

import (
	"errors"
	"strings"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/metrics"
	"flounder-swim/internal/models"
	"flounder-swim/internal/protocols"
	"flounder-swim/internal/util"
)

// ErrDownloadNotImplemented is what downloading a protocol returns.
var ErrDownloadNotImplemented = errors.New("protocol download is not implemented")

// DownloadNotice is the message shown to the admin instead of a file.
const DownloadNotice = "Функция скачивания протокола будет реализована"

var laneFields = setter[models.LaneEntry]{
	"laneNumber":   func(l *models.LaneEntry, v string) { l.LaneNumber = util.Number(v) },
	"fullName":     func(l *models.LaneEntry, v string) { l.FullName = v },
	"organization": func(l *models.LaneEntry, v string) { l.Organization = v },
	"ageCategory":  func(l *models.LaneEntry, v string) { l.AgeCategory = v },
	"time":         func(l *models.LaneEntry, v string) { l.Time = v },
}

var protocolFields = map[string]func(p *protocols.ProtocolRow, v string){
	"title":           func(p *protocols.ProtocolRow, v string) { p.Title = v },
	"competitionName": func(p *protocols.ProtocolRow, v string) { p.CompetitionName = v },
	"competitionType": func(p *protocols.ProtocolRow, v string) { p.CompetitionType = models.CompetitionType(v) },
	"date":            func(p *protocols.ProtocolRow, v string) { p.Date = v },
}

var distanceFields = map[string]func(d *protocols.DistanceRow, v string){
	"name":   func(d *protocols.DistanceRow, v string) { d.Name = v },
	"gender": func(d *protocols.DistanceRow, v string) { d.Gender = models.Gender(v) },
}

// Protocols is the protocol list with its edit dialog. While the dialog is
// open every change goes to a draft copy of the protocol; Save swaps the
// draft in, Close throws it away.
type Protocols struct {
	mode    collection.CreateMode
	metrics *metrics.Metrics

	arena    *protocols.Arena
	draft    *protocols.Arena
	draftID  string
	draftNew bool
	lane     collection.EditSession[models.LaneEntry]
}

func newProtocols(opts Options) *Protocols {
	return &Protocols{
		mode:    opts.Mode,
		metrics: opts.Metrics,
		arena:   newArena(opts),
	}
}

// Create adds a default protocol and opens the dialog on it.
func (p *Protocols) Create() {
	fresh := p.arena.NewProtocol()
	p.metrics.Op(string(ProtocolPage), "add")
	if p.mode == collection.CreateStaged {
		p.lane.Cancel()
		p.draft = p.arena.Draft()
		p.draft.AddProtocol(fresh)
		p.draftID = fresh.ID
		p.draftNew = true
		return
	}
	p.arena.AddProtocol(fresh)
	p.Open(fresh.ID)
}

// Open starts editing a stored protocol in the dialog.
func (p *Protocols) Open(id string) {
	draft, ok := p.arena.Extract(id)
	if !ok {
		return
	}
	p.lane.Cancel()
	p.draft = draft
	p.draftID = id
	p.draftNew = false
}

func (p *Protocols) DialogOpen() bool { return p.draft != nil }

func (p *Protocols) SetProtocolField(name, value string) {
	fn, ok := protocolFields[name]
	if !ok || p.draft == nil {
		return
	}
	p.draft.UpdateProtocol(p.draftID, func(row *protocols.ProtocolRow) { fn(row, value) })
}

func (p *Protocols) SetDistanceField(distanceID, name, value string) {
	fn, ok := distanceFields[name]
	if !ok || p.draft == nil {
		return
	}
	p.draft.UpdateDistance(distanceID, func(row *protocols.DistanceRow) { fn(row, value) })
}

func (p *Protocols) AddDistance() {
	if p.draft == nil {
		return
	}
	p.draft.AddDistance(p.draftID)
}

func (p *Protocols) AddHeat(distanceID string) {
	if p.draft == nil {
		return
	}
	p.draft.AddHeat(distanceID)
}

func (p *Protocols) EditLane(id string) {
	if p.draft == nil {
		return
	}
	if lane, ok := p.draft.Lane(id); ok {
		p.lane.Begin(lane)
	}
}

func (p *Protocols) SetLaneField(name, value string) {
	fn, ok := laneFields[name]
	if !ok {
		return
	}
	p.lane.Mutate(func(l *models.LaneEntry) { fn(l, value) })
}

// SaveLane writes the lane into the draft.
func (p *Protocols) SaveLane() {
	if p.draft == nil {
		return
	}
	p.lane.Commit(p.draft.Lanes())
}

func (p *Protocols) SubmitLane(fields map[string]string) {
	for name, value := range fields {
		p.SetLaneField(name, value)
	}
	p.SaveLane()
}

func (p *Protocols) CancelLane() { p.lane.Cancel() }

// Save replaces the stored protocol with the draft and closes the dialog.
// A protocol deleted while its dialog was open stays deleted.
func (p *Protocols) Save() {
	if p.draft == nil {
		return
	}
	if p.draftNew || p.arena.HasProtocol(p.draftID) {
		p.arena.Replace(p.draftID, p.draft)
		p.metrics.Op(string(ProtocolPage), "save")
	}
	p.Close()
}

// distancePrefix namespaces distance inputs posted with the protocol form:
// "distance.<id>.<field>".
const distancePrefix = "distance."

// Apply writes posted protocol and distance fields into the draft.
func (p *Protocols) Apply(fields map[string]string) {
	for name, value := range fields {
		rest, ok := strings.CutPrefix(name, distancePrefix)
		if !ok {
			p.SetProtocolField(name, value)
			continue
		}
		i := strings.LastIndex(rest, ".")
		if i <= 0 {
			continue
		}
		p.SetDistanceField(rest[:i], rest[i+1:], value)
	}
}

// Submit writes the posted fields into the draft and saves it.
func (p *Protocols) Submit(fields map[string]string) {
	p.Apply(fields)
	p.Save()
}

func (p *Protocols) Close() {
	p.draft = nil
	p.draftID = ""
	p.draftNew = false
	p.lane.Cancel()
}

func (p *Protocols) Delete(id string) {
	p.arena.DeleteProtocol(id)
	p.metrics.Op(string(ProtocolPage), "delete")
}

// Download is not available yet.
func (p *Protocols) Download() error {
	p.metrics.Op(string(ProtocolPage), "download")
	return ErrDownloadNotImplemented
}

type ProtocolCard struct {
	ID              string
	Title           string
	CompetitionName string
	Date            string
	Type            models.CompetitionType
	Distances       int
}

type ProtocolDialog struct {
	Protocol   models.Protocol
	LaneID     string
	EditedLane models.LaneEntry
}

// IsEditingLane is used by the dialog template.
func (d ProtocolDialog) IsEditingLane(id string) bool {
	return d.LaneID != "" && d.LaneID == id
}

type ProtocolsView struct {
	Cards  []ProtocolCard
	Dialog *ProtocolDialog
}

func (p *Protocols) View() ProtocolsView {
	var v ProtocolsView
	for _, pr := range p.arena.Trees() {
		v.Cards = append(v.Cards, ProtocolCard{
			ID:              pr.ID,
			Title:           pr.Title,
			CompetitionName: pr.CompetitionName,
			Date:            pr.Date,
			Type:            pr.CompetitionType,
			Distances:       len(pr.Distances),
		})
	}
	if p.draft != nil {
		tree, _ := p.draft.Tree(p.draftID)
		d := &ProtocolDialog{Protocol: tree}
		if lane, ok := p.lane.Working(); ok {
			d.LaneID = p.lane.EditingID()
			d.EditedLane = lane
		}
		v.Dialog = d
	}
	return v
}
