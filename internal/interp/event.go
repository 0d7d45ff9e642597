package interp

import (
	"time"

	"github.com/1broseidon/winroles/internal/platform"
)

// EventKind is the class of raw notification handed to the interpreter.
type EventKind int

const (
	// EventWindowsChanged is the bulk notification: the set of visible
	// windows changed in some way. Per-window details come from the
	// snapshot, not from the notification itself.
	EventWindowsChanged EventKind = iota
	// EventWindowStateChanged targets a single window and carries its
	// title, class and package, which the bulk notification may lack.
	EventWindowStateChanged
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWindowsChanged:
		return "windows-changed"
	case EventWindowStateChanged:
		return "window-state-changed"
	default:
		return "unknown"
	}
}

// Event is one raw notification from the platform.
type Event struct {
	Kind EventKind

	// Timestamp is the monotonic time the notification was received.
	Timestamp time.Time

	// The fields below are only populated for EventWindowStateChanged.
	WindowID    platform.WindowID
	Title       string
	ClassName   string
	PackageName string
	System      bool
}
