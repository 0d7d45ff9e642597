//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winroles/internal/x11"
)

// X11Backend reads window snapshots from an X11 connection.
type X11Backend struct {
	conn        *x11.Connection
	rightToLeft bool
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend wraps an existing X11 connection.
func NewX11Backend(conn *x11.Connection, rightToLeft bool) *X11Backend {
	return &X11Backend{conn: conn, rightToLeft: rightToLeft}
}

// NewX11BackendFromDisplay opens a fresh X11 connection.
func NewX11BackendFromDisplay(rightToLeft bool) (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewX11Backend(conn, rightToLeft), nil
}

// Disconnect closes the underlying X11 connection.
func (b *X11Backend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Watch invokes onChange whenever the visible window set may have
// changed. Callbacks are delivered from EventLoop.
func (b *X11Backend) Watch(onChange func()) error {
	return b.conn.WatchRootProperties(onChange)
}

// EventLoop runs the X11 event loop (blocking).
func (b *X11Backend) EventLoop() {
	b.conn.EventLoop()
}

// SplitScreenCapable reports true: an X11 desktop can always show two
// application windows side by side.
func (b *X11Backend) SplitScreenCapable() bool { return true }

// LayoutRightToLeft reports the configured layout direction.
func (b *X11Backend) LayoutRightToLeft() bool { return b.rightToLeft }

// Windows returns the current snapshot in bottom-to-top stacking order.
func (b *X11Backend) Windows() ([]Window, error) {
	clients, err := b.conn.ClientListStacking()
	if err != nil {
		return nil, fmt.Errorf("failed to list client windows: %w", err)
	}

	active, err := b.conn.ActiveWindow()
	if err != nil {
		active = 0
	}
	focus, err := b.conn.InputFocus()
	if err != nil {
		focus = 0
	}

	windows := make([]Window, 0, len(clients))
	for _, id := range clients {
		if b.conn.HasState(id, "_NET_WM_STATE_HIDDEN") {
			continue
		}

		x, y, w, h, ok := b.conn.WindowGeometry(id)
		if !ok {
			// The window went away between the list query and now.
			continue
		}

		instance, class := b.conn.WindowClass(id)
		kind := b.windowKind(id)

		windows = append(windows, Window{
			ID:               WindowID(id),
			Kind:             kind,
			Title:            b.conn.WindowTitle(id),
			ClassName:        class,
			PackageName:      instance,
			Parent:           WindowID(b.conn.TransientFor(id)),
			Active:           id == active,
			InputFocused:     id == focus,
			PictureInPicture: kind == KindApplication && b.isPictureInPicture(id),
			Bounds:           Rect{X: x, Y: y, Width: w, Height: h},
		})
	}

	return windows, nil
}

// windowKind maps _NET_WM_WINDOW_TYPE onto the neutral window kinds.
// A window with no type set is treated as a normal application window,
// matching how window managers handle it.
func (b *X11Backend) windowKind(id xproto.Window) WindowKind {
	types := b.conn.WindowTypes(id)
	if len(types) == 0 {
		return KindApplication
	}

	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DIALOG":
			return KindApplication
		case "_NET_WM_WINDOW_TYPE_DOCK", "_NET_WM_WINDOW_TYPE_DESKTOP":
			return KindSystem
		case "_NET_WM_WINDOW_TYPE_NOTIFICATION", "_NET_WM_WINDOW_TYPE_TOOLTIP",
			"_NET_WM_WINDOW_TYPE_SPLASH":
			return KindOverlay
		case "_NET_WM_WINDOW_TYPE_INPUT_METHOD":
			return KindInputMethod
		}
	}

	return KindUnknown
}

// isPictureInPicture detects the state combination floating video
// players set on their always-on-top miniature windows. X11 has no
// first-class picture-in-picture concept.
func (b *X11Backend) isPictureInPicture(id xproto.Window) bool {
	return b.conn.HasState(id, "_NET_WM_STATE_ABOVE") &&
		b.conn.HasState(id, "_NET_WM_STATE_STICKY")
}
