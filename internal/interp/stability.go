package interp

import (
	"time"

	"github.com/1broseidon/winroles/internal/config"
)

// stabilityDelay decides whether a freshly computed frame can be
// trusted immediately (zero) or must settle first. Only frames with a
// main-window change are ever delayed; the caller enforces that.
//
// Alert dialogs and title-less windows are treated as final the moment
// they appear: they do not take part in the multi-notification settling
// storms that full window transitions produce, so waiting on them would
// only add latency.
func stabilityDelay(next WindowRoles, cache *MetadataCache, timing config.Timing, splitScreenCapable bool) time.Duration {
	switch {
	case next.Overlay.Present():
		// Let a just-appeared overlay finish announcing itself before
		// trusting its title.
		return timing.OverlayDelay()

	case !next.Secondary.Present() &&
		next.Primary.Present() &&
		next.Primary.Title != "" &&
		splitScreenCapable &&
		!cache.IsAlertDialog(next.Primary.ID):
		return timing.StandardDelay()

	case next.Secondary.Present() &&
		splitScreenCapable &&
		!cache.IsAlertDialog(next.Primary.ID) &&
		!cache.IsAlertDialog(next.Secondary.ID):
		return timing.StandardDelay()

	default:
		return 0
	}
}
