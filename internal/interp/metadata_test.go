package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1broseidon/winroles/internal/platform"
)

func TestMetadataCacheEvictsDepartedWindows(t *testing.T) {
	c := NewMetadataCache("AlertDialog", true)
	c.UpdateFromSnapshot([]platform.Window{appWindow(42, "Settings"), appWindow(43, "Mail")})
	assert.Equal(t, "Settings", c.TitleFor(42))

	c.UpdateFromSnapshot([]platform.Window{appWindow(43, "Mail")})
	assert.Equal(t, "", c.TitleFor(42))
	assert.Equal(t, "Mail", c.TitleFor(43))
}

func TestMetadataCacheKeepsTitleWhenSnapshotOmitsIt(t *testing.T) {
	c := NewMetadataCache("AlertDialog", true)
	c.UpdateFromSnapshot([]platform.Window{appWindow(1, "Settings")})

	// A later snapshot without a title must not erase the known one.
	c.UpdateFromSnapshot([]platform.Window{appWindow(1, "")})
	assert.Equal(t, "Settings", c.TitleFor(1))
}

func TestMetadataCacheSingleWindowDeviceClearsOnWindowEvent(t *testing.T) {
	c := NewMetadataCache("AlertDialog", false)
	c.UpdateFromSnapshot([]platform.Window{appWindow(1, "Previous App")})

	c.UpdateFromWindowEvent(2, "Next App", "MainActivity", "com.example.next", false)

	assert.Equal(t, "", c.TitleFor(1), "stale entry from the previous app must not survive")
	assert.Equal(t, "Next App", c.TitleFor(2))
}

func TestMetadataCacheSplitCapableDeviceAccumulates(t *testing.T) {
	c := NewMetadataCache("AlertDialog", true)
	c.UpdateFromWindowEvent(1, "First", "", "", false)
	c.UpdateFromWindowEvent(2, "Second", "", "", false)

	assert.Equal(t, "First", c.TitleFor(1))
	assert.Equal(t, "Second", c.TitleFor(2))
}

func TestMetadataCacheSystemWindowTitleWithheld(t *testing.T) {
	c := NewMetadataCache("AlertDialog", true)
	sys := systemWindow(9, platform.Rect{Width: 800, Height: 40})
	sys.Title = "StatusBar/internal"
	c.UpdateFromSnapshot([]platform.Window{sys})

	assert.Equal(t, "", c.TitleFor(9))
}

func TestMetadataCacheAlertDialogExactMatch(t *testing.T) {
	c := NewMetadataCache("AlertDialog", true)
	c.UpdateFromWindowEvent(1, "Confirm", "AlertDialog", "", false)
	c.UpdateFromWindowEvent(2, "Confirm", "AlertDialogLike", "", false)
	c.UpdateFromWindowEvent(3, "Confirm", "", "", false)

	assert.True(t, c.IsAlertDialog(1))
	assert.False(t, c.IsAlertDialog(2))
	assert.False(t, c.IsAlertDialog(3))
	assert.False(t, c.IsAlertDialog(99))
}
