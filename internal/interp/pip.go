package interp

import (
	"time"

	"github.com/1broseidon/winroles/internal/platform"
)

// pipHysteresis smooths transient disappearance of the
// picture-in-picture window. The platform reports the window as gone
// during its own window-manager churn, then brings it back; a
// loss/regain pair inside the threshold must not read as two changes.
type pipHysteresis struct {
	threshold time.Duration

	lastShownID   platform.WindowID
	disappearedAt time.Time
	visible       bool
}

// suppress reports whether a computed picture-in-picture change should
// be hidden from listeners: the window reappearing under its previous
// id within the threshold of its disappearance.
func (h *pipHysteresis) suppress(next platform.WindowID, now time.Time) bool {
	return next != platform.WindowNone &&
		next == h.lastShownID &&
		!h.disappearedAt.IsZero() &&
		now.Sub(h.disappearedAt) < h.threshold
}

// observe records the picture-in-picture presence for this frame.
// Every frame updates lastShownID when the window is present, and
// stamps disappearedAt on the present-to-absent transition.
func (h *pipHysteresis) observe(next platform.WindowID, now time.Time) {
	if next != platform.WindowNone {
		h.lastShownID = next
		h.visible = true
		return
	}
	if h.visible {
		h.disappearedAt = now
		h.visible = false
	}
}

// reset clears all hysteresis state, keeping the threshold.
func (h *pipHysteresis) reset() {
	*h = pipHysteresis{threshold: h.threshold}
}
