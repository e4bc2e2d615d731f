package sim

import (
	"log/slog"

	"github.com/RianAsmara/lost-beacons/model"
)

// logOverlay is the headless stand-in for a screen: debug drawing calls
// become debug log lines.
type logOverlay struct{}

func (logOverlay) Text(s string, at model.Vec2) {
	slog.Debug("overlay text", "text", s, "x", at.X, "y", at.Y)
}

func (logOverlay) Line(from, to model.Vec2) {
	slog.Debug("overlay line", "fromX", from.X, "fromY", from.Y, "toX", to.X, "toY", to.Y)
}
