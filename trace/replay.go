package trace

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Handler processes one replayed envelope.
type Handler func(env Envelope) error

// Replay reads envelopes until the stream ends and dispatches each to the
// handler registered for its type. Types without a handler are logged and
// skipped. It stops at the first read or handler error.
func Replay(r io.Reader, handlers map[string]Handler) (int, error) {
	n := 0
	for {
		env, err := ReadEnvelope(r)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("record %d: %w", n, err)
		}
		n++

		handler, ok := handlers[env.Type]
		if !ok {
			slog.Warn("no handler for record type", "type", env.Type)
			continue
		}
		if err := handler(env); err != nil {
			return n, fmt.Errorf("handle %s record %d: %w", env.Type, n, err)
		}
	}
}
