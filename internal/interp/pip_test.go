package interp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/1broseidon/winroles/internal/platform"
)

func TestPiPHysteresisSuppressesQuickReappearance(t *testing.T) {
	h := pipHysteresis{threshold: 750 * time.Millisecond}

	h.observe(7, at(0))
	h.observe(platform.WindowNone, at(100))

	assert.True(t, h.suppress(7, at(500)), "same id inside the threshold")
	assert.False(t, h.suppress(8, at(500)), "different id is a real change")
}

func TestPiPHysteresisExpires(t *testing.T) {
	h := pipHysteresis{threshold: 750 * time.Millisecond}

	h.observe(7, at(0))
	h.observe(platform.WindowNone, at(100))

	assert.False(t, h.suppress(7, at(900)), "threshold elapsed since disappearance")
}

func TestPiPHysteresisNoSuppressionBeforeAnyDisappearance(t *testing.T) {
	h := pipHysteresis{threshold: 750 * time.Millisecond}
	h.observe(7, at(0))

	assert.False(t, h.suppress(7, at(100)))
}

func TestPiPHysteresisDisappearanceStampedOnceOnTransition(t *testing.T) {
	h := pipHysteresis{threshold: 750 * time.Millisecond}

	h.observe(7, at(0))
	h.observe(platform.WindowNone, at(100))
	// Further absent frames must not refresh the timestamp, or the
	// window could stay suppressible forever.
	h.observe(platform.WindowNone, at(700))

	assert.False(t, h.suppress(7, at(1000)))
}

func TestPiPHysteresisReset(t *testing.T) {
	h := pipHysteresis{threshold: 750 * time.Millisecond}
	h.observe(7, at(0))
	h.observe(platform.WindowNone, at(100))
	h.reset()

	assert.False(t, h.suppress(7, at(200)))
	assert.Equal(t, 750*time.Millisecond, h.threshold)
}
