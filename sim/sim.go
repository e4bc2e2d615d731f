// Package sim runs skirmishes between autonomous units on a headless world:
// it owns the game loop, resolves combat and beacon capture, and reports how
// each run ended.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/RianAsmara/lost-beacons/agent"
	"github.com/RianAsmara/lost-beacons/behavior"
	"github.com/RianAsmara/lost-beacons/config"
	"github.com/RianAsmara/lost-beacons/model"
	"github.com/RianAsmara/lost-beacons/rules"
	"github.com/RianAsmara/lost-beacons/util"
)

// OutcomeTimeout is reported when no end condition held before the
// scenario's duration ran out.
const OutcomeTimeout = "timeout"

type Option func(*Sim)

// WithObserver receives every controller event of the run.
func WithObserver(fn func(agent.Event)) Option {
	return func(s *Sim) { s.observer = fn }
}

// WithOverlay draws every controller onto r after each step.
func WithOverlay(r behavior.Renderer) Option {
	return func(s *Sim) { s.overlay = r }
}

// WithStats records into a shared Stats instead of a private one.
func WithStats(st *Stats) Option {
	return func(s *Sim) { s.stats = st }
}

// Result summarises a finished run.
type Result struct {
	Scenario  string         `json:"scenario"`
	Seed      int64          `json:"seed"`
	Outcome   string         `json:"outcome"`
	Elapsed   float64        `json:"elapsed"`
	Survivors map[string]int `json:"survivors"`
	Beacons   map[string]int `json:"beacons"`
	Decisions map[string]int `json:"decisions"`
}

// Sim is a single skirmish. It is not safe for concurrent use; run
// independent Sims in parallel instead.
type Sim struct {
	scenario *Scenario
	tuning   config.Tuning
	seed     int64
	state    *model.GameState
	teams    map[string]*model.Team
	engine   *rules.Engine

	controllers map[*model.Unit]behavior.Behavior
	decisions   map[string]int

	stats    *Stats
	observer func(agent.Event)
	overlay  behavior.Renderer
}

// New builds the world described by sc and attaches a controller to every
// autonomous unit. Each controller draws from its own random stream derived
// from seed, so a run is reproducible.
func New(sc *Scenario, t config.Tuning, seed int64, opts ...Option) (*Sim, error) {
	engine, err := rules.NewEngine(sc.conditions())
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	s := &Sim{
		scenario:    sc,
		tuning:      t,
		seed:        seed,
		state:       model.NewGameState(sc.Terrain),
		engine:      engine,
		controllers: make(map[*model.Unit]behavior.Behavior),
		decisions:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if t.Debug && s.overlay == nil {
		s.overlay = logOverlay{}
	}
	if s.stats == nil {
		s.stats = NewStats()
	}

	a, b := &model.Team{Name: sc.Teams[0]}, &model.Team{Name: sc.Teams[1]}
	model.LinkTeams(a, b)
	s.teams = map[string]*model.Team{a.Name: a, b.Name: b}

	for _, spec := range sc.Beacons {
		s.state.AddBeacon(&model.Beacon{
			ID:   uuid.NewString(),
			Pos:  model.Vec2{X: spec.X, Y: spec.Y},
			Team: s.teams[spec.Team],
		})
	}

	rng := util.New(seed)
	var autonomous []*model.Unit
	for _, spec := range sc.Units {
		u := &model.Unit{
			ID:        uuid.NewString(),
			Pos:       model.Vec2{X: spec.X, Y: spec.Y},
			Team:      s.teams[spec.Team],
			Health:    spec.Health,
			MaxHealth: spec.Health,
			Speed:     spec.Speed,
		}
		s.state.AddUnit(u)
		if spec.Autonomous {
			s.controllers[u] = agent.New(t, util.New(rng.Int63()),
				agent.WithDebug(t.Debug),
				agent.WithObserver(s.record),
			)
			autonomous = append(autonomous, u)
		}
	}
	// Attach only once the whole world exists so first decisions see every unit.
	for _, u := range autonomous {
		s.controllers[u].Attach(s.state, u)
	}

	slog.Debug("scenario loaded",
		"scenario", sc.Name,
		"seed", seed,
		"units", len(sc.Units),
		"autonomous", len(autonomous),
		"beacons", len(sc.Beacons),
		"obstacles", sc.Terrain.HasObstacles(),
		"conditions", engine.Names(),
	)
	return s, nil
}

func (s *Sim) record(ev agent.Event) {
	switch ev.Kind {
	case agent.EventDecisionCommitted, agent.EventDecisionReplaced:
		s.decisions[ev.Decision]++
	}
	s.stats.RecordEvent(ev)
	if s.observer != nil {
		s.observer(ev)
	}
}

func (s *Sim) State() *model.GameState { return s.state }

// Controller returns the behavior driving u, or nil for a passive unit.
func (s *Sim) Controller(u *model.Unit) behavior.Behavior { return s.controllers[u] }

// Step advances the world by dt: behaviors first, then combat, then beacon
// capture, then removal of the dead.
func (s *Sim) Step(dt float64) {
	s.state.Elapsed += dt

	for _, u := range slices.Clone(s.state.Units()) {
		if u.Dead() {
			continue
		}
		if b := s.controllers[u]; b != nil {
			b.Cycle(s.state, dt)
		}
	}

	s.resolveCombat(dt)
	s.resolveCapture(dt)

	for _, u := range s.state.PruneDead() {
		delete(s.controllers, u)
		s.stats.RecordKill()
		slog.Debug("unit destroyed", "unit", u.ID, "team", u.Team, "elapsed", s.state.Elapsed)
	}

	if s.overlay != nil {
		for _, u := range s.state.Units() {
			if b := s.controllers[u]; b != nil {
				b.Render(s.overlay)
			}
		}
	}
}

// resolveCombat applies damage simultaneously: every living unit hits its
// nearest living enemy strictly within one attack radius.
func (s *Sim) resolveCombat(dt float64) {
	r := s.tuning.Radius(1)
	damage := make(map[*model.Unit]float64)
	units := s.state.Cyclables()
	for _, u := range units {
		var target *model.Unit
		best := math.Inf(1)
		for _, v := range units {
			if v.Team != u.Team.Enemy {
				continue
			}
			if d := model.Dist(u, v); d < r && d < best {
				target, best = v, d
			}
		}
		if target != nil {
			damage[target] += s.tuning.UnitDPS * dt
		}
	}
	for u, d := range damage {
		u.Health -= d
	}
}

// resolveCapture moves each beacon toward the sole team standing within one
// attack radius of it. Contested or empty beacons lose progress.
func (s *Sim) resolveCapture(dt float64) {
	r := s.tuning.Radius(1)
	for _, b := range s.state.Beacons() {
		var present *model.Team
		contested := false
		for _, u := range s.state.Cyclables() {
			if model.Dist(u, b) >= r {
				continue
			}
			if present == nil {
				present = u.Team
			} else if u.Team != present {
				contested = true
			}
		}

		switch {
		case contested || present == nil:
			b.Progress = math.Max(0, b.Progress-dt)
			if b.Progress == 0 {
				b.Capturing = nil
			}
		case present == b.Team:
			b.Capturing, b.Progress = nil, 0
		default:
			if b.Capturing != present {
				b.Capturing, b.Progress = present, 0
			}
			b.Progress += dt
			if b.Progress >= s.tuning.CaptureTime {
				slog.Debug("beacon captured", "beacon", b.ID, "from", b.Team, "to", present, "elapsed", s.state.Elapsed)
				b.Team, b.Capturing, b.Progress = present, nil, 0
				s.stats.RecordCapture()
			}
		}
	}
}

// Run steps until an end condition holds, the duration runs out, or ctx is
// done.
func (s *Sim) Run(ctx context.Context) (Result, error) {
	steps := int(math.Ceil(s.scenario.Duration / s.scenario.Step))
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if name, ok := s.engine.Evaluate(rules.Env{State: s.state}); ok {
			return s.result(name), nil
		}
		if i >= steps {
			return s.result(OutcomeTimeout), nil
		}
		s.Step(s.scenario.Step)
	}
}

func (s *Sim) result(outcome string) Result {
	res := Result{
		Scenario:  s.scenario.Name,
		Seed:      s.seed,
		Outcome:   outcome,
		Elapsed:   s.state.Elapsed,
		Survivors: make(map[string]int),
		Beacons:   make(map[string]int),
		Decisions: make(map[string]int, len(s.decisions)),
	}
	for _, name := range s.scenario.Teams {
		res.Survivors[name] = 0
		res.Beacons[name] = 0
	}
	for _, u := range s.state.Cyclables() {
		res.Survivors[u.Team.Name]++
	}
	for _, b := range s.state.Beacons() {
		if b.Team != nil {
			res.Beacons[b.Team.Name]++
		}
	}
	for k, v := range s.decisions {
		res.Decisions[k] = v
	}
	slog.Info("run finished",
		"scenario", res.Scenario,
		"seed", res.Seed,
		"outcome", res.Outcome,
		"elapsed", fmt.Sprintf("%.1f", res.Elapsed),
		"survivors", res.Survivors,
		"beacons", res.Beacons,
	)
	return res
}
