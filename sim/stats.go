package sim

import (
	"sync"

	"github.com/RianAsmara/lost-beacons/agent"
)

type Snapshot struct {
	Committed  uint64            `json:"committed"`
	Replaced   uint64            `json:"replaced"`
	Retained   uint64            `json:"retained"`
	ByDecision map[string]uint64 `json:"by_decision"`
	Kills      uint64            `json:"kills"`
	Captures   uint64            `json:"captures"`
}

// Stats counts controller events and world effects. A single Stats may be
// shared by concurrent runs.
type Stats struct {
	mu         sync.Mutex
	committed  uint64
	replaced   uint64
	retained   uint64
	byDecision map[string]uint64
	kills      uint64
	captures   uint64
}

func NewStats() *Stats {
	return &Stats{
		byDecision: map[string]uint64{},
	}
}

func (s *Stats) RecordEvent(ev agent.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ev.Kind {
	case agent.EventDecisionCommitted:
		s.committed++
		s.byDecision[ev.Decision]++
	case agent.EventDecisionReplaced:
		s.replaced++
		s.byDecision[ev.Decision]++
	case agent.EventDecisionRetained:
		s.retained++
	}
}

func (s *Stats) RecordKill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kills++
}

func (s *Stats) RecordCapture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captures++
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Snapshot{
		Committed:  s.committed,
		Replaced:   s.replaced,
		Retained:   s.retained,
		Kills:      s.kills,
		Captures:   s.captures,
		ByDecision: make(map[string]uint64, len(s.byDecision)),
	}
	for k, v := range s.byDecision {
		out.ByDecision[k] = v
	}
	return out
}
