// Package portal holds the state of the page an admin is working on.
//
// Only one page is active at a time. Switching to another page throws the
// previous page's state away and builds the new one from the seed, so
// unsaved and saved edits alike live only as long as the page stays open.
package portal

import (
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/collection"
	"flounder-swim/internal/fixtures"
	"flounder-swim/internal/metrics"
	"flounder-swim/internal/models"
	"flounder-swim/internal/protocols"
)

type Page string

const (
	HomePage         Page = "home"
	ProtocolPage     Page = "protocol"
	ParticipantsPage Page = "participants"
	TeamsPage        Page = "teams"
	AwardsPage       Page = "awards"
	RegulationsPage  Page = "regulations"
)

type Options struct {
	Seed    fixtures.Seed
	Clock   clock.Clock
	Mode    collection.CreateMode
	Locale  language.Tag
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// App is the application-state container. Its methods serialise access,
// HTTP handlers may call them concurrently.
type App struct {
	mu     sync.Mutex
	opts   Options
	active Page

	participants *Participants
	teams        *Teams
	protocol     *Protocols
	awards       *Awards
	regulations  *Regulations
}

func New(opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Mode == "" {
		opts.Mode = collection.CreateAppend
	}
	if opts.Locale == language.Und {
		opts.Locale = language.Russian
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &App{opts: opts}
}

// Active reports which page currently owns state.
func (a *App) Active() Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Home activates the landing page, dropping any other page state.
func (a *App) Home() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(HomePage)
}

func (a *App) Participants(fn func(p *Participants)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(ParticipantsPage)
	fn(a.participants)
}

func (a *App) Teams(fn func(t *Teams)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(TeamsPage)
	fn(a.teams)
}

func (a *App) Protocols(fn func(p *Protocols)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(ProtocolPage)
	fn(a.protocol)
}

func (a *App) Awards(fn func(aw *Awards)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(AwardsPage)
	fn(a.awards)
}

func (a *App) Regulations(fn func(r *Regulations)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activate(RegulationsPage)
	fn(a.regulations)
}

// Snapshot is a read-only copy of what the portal shows. Collections of the
// active page reflect its current state, everything else comes from the
// seed.
type Snapshot struct {
	Teams     []models.Team
	Protocols []models.Protocol
	Awards    []models.DistanceResults
}

// Snapshot does not change the active page.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	seed := a.opts.Seed.Clone()
	s := Snapshot{Awards: seed.Awards}

	if a.active == TeamsPage {
		s.Teams = a.teams.Ranked()
	} else {
		s.Teams = newTeams(a.opts).Ranked()
	}
	if a.active == ProtocolPage {
		s.Protocols = a.protocol.arena.Trees()
	} else {
		s.Protocols = seed.Protocols
	}
	return s
}

func (a *App) activate(p Page) {
	if a.active == p {
		return
	}
	a.participants, a.teams, a.protocol, a.awards, a.regulations = nil, nil, nil, nil, nil
	switch p {
	case ParticipantsPage:
		a.participants = newParticipants(a.opts)
	case TeamsPage:
		a.teams = newTeams(a.opts)
	case ProtocolPage:
		a.protocol = newProtocols(a.opts)
	case AwardsPage:
		a.awards = newAwards(a.opts)
	case RegulationsPage:
		a.regulations = newRegulations(a.opts)
	}
	if a.active != "" {
		a.opts.Logger.Debug("page state discarded", "page", a.active)
	}
	a.active = p
	a.opts.Metrics.Activated(string(p))
}

func newArena(opts Options) *protocols.Arena {
	arena := protocols.New(opts.Clock)
	arena.Load(opts.Seed.Clone().Protocols)
	return arena
}
