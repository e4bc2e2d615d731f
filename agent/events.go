package agent

import "log/slog"

// EventKind identifies what happened during a re-evaluation pass.
type EventKind string

const (
	EventDecisionCommitted EventKind = "decision_committed"
	EventDecisionReplaced  EventKind = "decision_replaced"
	// EventDecisionRetained fires when the current decision is done or bad
	// but no candidate survived to replace it.
	EventDecisionRetained EventKind = "decision_retained"
)

// Event reports a controller transition. Events are delivered to the
// observer synchronously, inside the Cycle that produced them.
type Event struct {
	Kind     EventKind `json:"kind"`
	UnitID   string    `json:"unit_id"`
	Decision string    `json:"decision"`
	Previous string    `json:"previous,omitempty"`
	Reason   string    `json:"reason,omitempty"` // "done" or "bad"
	Elapsed  float64   `json:"elapsed"`
}

func (a *Autonomous) emit(ev Event) {
	ev.Elapsed = a.clock
	if a.unit != nil {
		ev.UnitID = a.unit.ID
	}
	slog.Debug("controller event",
		"kind", ev.Kind,
		"unit", ev.UnitID,
		"decision", ev.Decision,
		"previous", ev.Previous,
		"reason", ev.Reason,
		"elapsed", ev.Elapsed,
	)
	if a.observer != nil {
		a.observer(ev)
	}
}
