// Package agent implements the autonomous decision controller: a behavior
// that periodically samples tactical options for its unit, commits to one
// at random, and delegates movement to a sub-behavior until the decision is
// achieved or no longer worth pursuing.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/looplab/fsm"

	"github.com/RianAsmara/lost-beacons/behavior"
	"github.com/RianAsmara/lost-beacons/config"
	"github.com/RianAsmara/lost-beacons/model"
	"github.com/RianAsmara/lost-beacons/util"
)

const (
	StateIdle      = "idle"
	StateCommitted = "committed"

	eventCommit = "commit"
)

// Factory builds the sub-behaviors a Decision delegates to.
type Factory interface {
	Reach(target model.Positioned) behavior.Behavior
	Chase(target *model.Unit) behavior.Behavior
}

type defaultFactory struct {
	arrive float64
}

func (f defaultFactory) Reach(target model.Positioned) behavior.Behavior {
	return behavior.NewReach(target, f.arrive)
}

func (f defaultFactory) Chase(target *model.Unit) behavior.Behavior {
	return behavior.NewChase(target, f.arrive)
}

type Option func(*Autonomous)

// WithDebug enables the decision label overlay in Render.
func WithDebug(debug bool) Option {
	return func(a *Autonomous) { a.debug = debug }
}

func WithBehaviors(f Factory) Option {
	return func(a *Autonomous) { a.factory = f }
}

// WithObserver registers a callback for controller events.
func WithObserver(fn func(Event)) Option {
	return func(a *Autonomous) { a.observer = fn }
}

// Autonomous is a behavior.Behavior that owns exactly one unit and at most
// one sub-behavior.
type Autonomous struct {
	tuning   config.Tuning
	rng      *rand.Rand
	debug    bool
	factory  Factory
	observer func(Event)

	unit      *model.Unit
	nextCheck float64
	clock     float64
	current   *Decision
	sub       behavior.Behavior
	state     *fsm.FSM
}

var _ behavior.Behavior = (*Autonomous)(nil)

// New builds an unattached controller. A nil rng is replaced by a fixed
// seed stream.
func New(t config.Tuning, rng *rand.Rand, opts ...Option) *Autonomous {
	if rng == nil {
		rng = util.New(1)
	}
	a := &Autonomous{
		tuning:  t,
		rng:     rng,
		factory: defaultFactory{arrive: t.ArriveDistance},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.state = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: eventCommit, Src: []string{StateIdle}, Dst: StateCommitted},
		},
		fsm.Callbacks{
			"enter_" + StateCommitted: func(_ context.Context, e *fsm.Event) {
				slog.Debug("controller left idle", "from", e.Src, "to", e.Dst)
			},
		},
	)
	return a
}

// Attach binds the controller to its unit and runs a first evaluation.
func (a *Autonomous) Attach(w model.World, u *model.Unit) {
	a.unit = u
	a.reevaluate(w)
}

func (a *Autonomous) Cycle(w model.World, e float64) {
	if a.unit == nil {
		return
	}
	a.clock += e
	a.nextCheck -= e
	if a.nextCheck <= 0 {
		a.nextCheck = a.tuning.ReevaluateInterval
		a.reevaluate(w)
	}
	if a.sub != nil {
		a.sub.Cycle(w, e)
	}
}

// reevaluate keeps a decision that is neither done nor bad. Otherwise it
// samples one candidate per action type, drops those already done or bad,
// and commits to a uniformly picked survivor. With no survivor the
// controller keeps whatever it had, stale or not.
func (a *Autonomous) reevaluate(w model.World) {
	var reason string
	if a.current != nil {
		switch {
		case a.current.Done(w, a.unit, a.tuning):
			reason = "done"
		case a.current.Bad(w, a.unit, a.tuning):
			reason = "bad"
		default:
			return
		}
	}

	var viable []*Decision
	for _, d := range a.candidates(w) {
		if d.Done(w, a.unit, a.tuning) || d.Bad(w, a.unit, a.tuning) {
			continue
		}
		viable = append(viable, d)
	}
	if len(viable) == 0 {
		if a.current != nil {
			a.emit(Event{Kind: EventDecisionRetained, Decision: a.current.Label(), Reason: reason})
		}
		return
	}

	next, _ := util.Pick(a.rng, viable)
	a.commit(w, next, reason)
}

func (a *Autonomous) commit(w model.World, d *Decision, reason string) {
	prev := a.current
	a.current = d
	a.sub = d.Behavior
	a.sub.Attach(w, a.unit)

	if a.state.Is(StateIdle) {
		err := a.state.Event(context.Background(), eventCommit)
		var noTransition fsm.NoTransitionError
		if err != nil && !errors.As(err, &noTransition) {
			slog.Warn("controller state transition failed", "unit", a.unit.ID, "error", err)
		}
	}

	if prev == nil {
		a.emit(Event{Kind: EventDecisionCommitted, Decision: d.Label()})
		return
	}
	a.emit(Event{Kind: EventDecisionReplaced, Decision: d.Label(), Previous: prev.Label(), Reason: reason})
}

// Render draws the decision label when debugging, then the sub-behavior.
func (a *Autonomous) Render(r behavior.Renderer) {
	if a.debug && a.current != nil && a.unit != nil {
		r.Text(a.current.Label(), model.Vec2{X: a.unit.Pos.X, Y: a.unit.Pos.Y + 35})
	}
	if a.sub != nil {
		a.sub.Render(r)
	}
}

func (a *Autonomous) ReservedPosition() model.Vec2 {
	if a.sub != nil {
		return a.sub.ReservedPosition()
	}
	if a.unit == nil {
		return model.Vec2{}
	}
	return a.unit.Pos
}

// Reconsider refuses external swaps; the controller's own timer decides.
func (a *Autonomous) Reconsider() behavior.Behavior { return a }

func (a *Autonomous) Current() *Decision { return a.current }

func (a *Autonomous) Unit() *model.Unit { return a.unit }

// State returns StateIdle until the first commit and StateCommitted after.
func (a *Autonomous) State() string { return a.state.Current() }
