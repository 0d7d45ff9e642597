package interp

import "github.com/1broseidon/winroles/internal/platform"

// WindowInterpretation is the per-role diff between the last committed
// frame and the freshly computed one.
type WindowInterpretation struct {
	OldID    platform.WindowID
	OldTitle string
	NewID    platform.WindowID
	NewTitle string

	// AnnouncedTitle is the text a consumer should speak for this role,
	// when it changed. May differ from NewTitle once consumers add
	// decoration; for now it is the cached title.
	AnnouncedTitle string

	// AlertDialog marks the new window as an alert dialog by exact
	// class-name match.
	AlertDialog bool
}

// IDOrTitleChanged reports whether the role moved to a different window
// or the same window changed title. This is the primitive every "did it
// change" decision is built on.
func (w WindowInterpretation) IDOrTitleChanged() bool {
	return w.OldID != w.NewID || w.OldTitle != w.NewTitle
}

// EventInterpretation is the value emitted to listeners for one raw
// notification (and, when deferred, once more for its re-evaluation).
// Listeners receive it by value and must treat it as read-only.
type EventInterpretation struct {
	Primary          WindowInterpretation
	Secondary        WindowInterpretation
	Overlay          WindowInterpretation
	PictureInPicture WindowInterpretation

	// Announcement carries window-local text that is not a role change,
	// e.g. an input-method visibility string.
	Announcement string

	// MainWindowsChanged is true when primary, secondary or overlay
	// moved or changed title.
	MainWindowsChanged bool

	// PictureInPicChanged is true when the picture-in-picture role
	// changed, after hysteresis suppression.
	PictureInPicChanged bool

	// WindowsStable is true when this frame was committed immediately.
	// A false value means a deferred re-evaluation will follow unless a
	// newer notification supersedes it.
	WindowsStable bool

	// OriginalEvent distinguishes the immediate emission (true) from
	// the deferred re-evaluation (false).
	OriginalEvent bool

	// EventKind is the raw notification class that triggered this frame.
	EventKind EventKind
}
