package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Root window properties the window manager rewrites when the set of
// visible windows or the active window changes.
var watchedRootProperties = map[string]struct{}{
	"_NET_CLIENT_LIST":          {},
	"_NET_CLIENT_LIST_STACKING": {},
	"_NET_ACTIVE_WINDOW":        {},
	"_NET_CURRENT_DESKTOP":      {},
}

// WatchRootProperties invokes onChange for every root property change
// that affects the visible window set. Events are delivered on the
// connection's event loop; start it with EventLoop.
func (c *Connection) WatchRootProperties(onChange func()) error {
	if err := xwindow.New(c.XUtil, c.Root).Listen(xproto.EventMaskPropertyChange); err != nil {
		return fmt.Errorf("failed to listen for root property changes: %w", err)
	}

	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		name, err := xprop.AtomName(xu, ev.Atom)
		if err != nil {
			return
		}
		if _, ok := watchedRootProperties[name]; ok {
			onChange()
		}
	}).Connect(c.XUtil, c.Root)

	return nil
}
