package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// ClientListStacking returns all managed client windows in
// bottom-to-top stacking order.
func (c *Connection) ClientListStacking() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListStackingGet(c.XUtil)
	if err != nil {
		// Older window managers only maintain _NET_CLIENT_LIST.
		return ewmh.ClientListGet(c.XUtil)
	}
	return clients, nil
}

// ActiveWindow returns the currently active window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// InputFocus returns the window holding keyboard focus.
func (c *Connection) InputFocus() (xproto.Window, error) {
	reply, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Focus, nil
}

// WindowTitle returns the window's title, preferring the EWMH name over
// the ICCCM one. Returns "" when neither is set.
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}

// WindowClass returns the WM_CLASS instance and class strings.
func (c *Connection) WindowClass(windowID xproto.Window) (instance, class string) {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(wmClass.Instance), strings.TrimSpace(wmClass.Class)
}

// WindowTypes returns the window's _NET_WM_WINDOW_TYPE atoms, empty
// when unset.
func (c *Connection) WindowTypes(windowID xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return types
}

// WindowStates returns the window's _NET_WM_STATE atoms.
func (c *Connection) WindowStates(windowID xproto.Window) []string {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return states
}

// HasState reports whether the window carries the given _NET_WM_STATE atom.
func (c *Connection) HasState(windowID xproto.Window, state string) bool {
	for _, s := range c.WindowStates(windowID) {
		if s == state {
			return true
		}
	}
	return false
}

// TransientFor returns the window this one is transient for, or 0.
func (c *Connection) TransientFor(windowID xproto.Window) xproto.Window {
	parent, err := icccm.WmTransientForGet(c.XUtil, windowID)
	if err != nil {
		return 0
	}
	return parent
}

// WindowGeometry returns the window's geometry in root coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (x, y, width, height int, ok bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, false
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, 0, 0, false
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), true
}
