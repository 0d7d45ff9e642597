package interp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/1broseidon/winroles/internal/config"
)

func testTiming() config.Timing {
	return config.Default().Timing
}

func TestStabilityDelayOverlayPresent(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	roles := WindowRoles{Overlay: RoleWindow{ID: 9}}

	d := stabilityDelay(roles, cache, testTiming(), true)
	assert.Equal(t, testTiming().OverlayDelay(), d)
}

func TestStabilityDelayTitledPrimary(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	roles := WindowRoles{Primary: RoleWindow{ID: 1, Title: "Settings"}}

	d := stabilityDelay(roles, cache, testTiming(), true)
	assert.Equal(t, testTiming().StandardDelay(), d)
}

func TestStabilityDelayTitlelessPrimaryImmediate(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	roles := WindowRoles{Primary: RoleWindow{ID: 1}}

	assert.Equal(t, time.Duration(0), stabilityDelay(roles, cache, testTiming(), true))
}

func TestStabilityDelayAlertDialogImmediate(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	cache.UpdateFromWindowEvent(1, "Confirm delete", "AlertDialog", "", false)
	roles := WindowRoles{Primary: RoleWindow{ID: 1, Title: "Confirm delete"}}

	assert.Equal(t, time.Duration(0), stabilityDelay(roles, cache, testTiming(), true))
}

func TestStabilityDelaySplitScreenPair(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	roles := WindowRoles{
		Primary:   RoleWindow{ID: 1, Title: "Top"},
		Secondary: RoleWindow{ID: 2, Title: "Bottom"},
	}

	assert.Equal(t, testTiming().StandardDelay(), stabilityDelay(roles, cache, testTiming(), true))
}

func TestStabilityDelaySplitScreenPairWithAlertImmediate(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	cache.UpdateFromWindowEvent(2, "Confirm", "AlertDialog", "", false)
	roles := WindowRoles{
		Primary:   RoleWindow{ID: 1, Title: "Top"},
		Secondary: RoleWindow{ID: 2, Title: "Confirm"},
	}

	assert.Equal(t, time.Duration(0), stabilityDelay(roles, cache, testTiming(), true))
}

func TestStabilityDelayNotSplitScreenCapable(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", false)
	roles := WindowRoles{Primary: RoleWindow{ID: 1, Title: "Settings"}}

	assert.Equal(t, time.Duration(0), stabilityDelay(roles, cache, testTiming(), false))
}

func TestStabilityDelayOverlayWinsOverSplitPair(t *testing.T) {
	cache := NewMetadataCache("AlertDialog", true)
	roles := WindowRoles{
		Primary:   RoleWindow{ID: 1, Title: "Top"},
		Secondary: RoleWindow{ID: 2, Title: "Bottom"},
		Overlay:   RoleWindow{ID: 9},
	}

	assert.Equal(t, testTiming().OverlayDelay(), stabilityDelay(roles, cache, testTiming(), true))
}
