package trace

import (
	"io"
	"sync"

	"github.com/RianAsmara/lost-beacons/agent"
)

// Writer appends envelopes to an underlying stream. It is safe for use from
// several runs at once.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return WriteEnvelope(w.w, env)
}

func (w *Writer) Decision(ev agent.Event) error { return w.Send(TypeDecision, ev) }

func (w *Writer) Outcome(result any) error { return w.Send(TypeOutcome, result) }
