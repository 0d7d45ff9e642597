package interp

import (
	"github.com/1broseidon/winroles/internal/platform"
	"github.com/1broseidon/winroles/internal/tree"
)

// assignParams fixes the device-level inputs of role assignment.
type assignParams struct {
	splitScreenCapable bool
	rightToLeft        bool
}

// windowNode adapts a snapshot window to the tree traversal capability,
// resolving parent links against the same snapshot.
type windowNode struct {
	win  platform.Window
	byID map[platform.WindowID]platform.Window
}

// Parent resolves the parent link within the snapshot. A dangling
// parent id counts as no parent.
func (n windowNode) Parent() (windowNode, bool) {
	if n.win.Parent == platform.WindowNone {
		return windowNode{}, false
	}
	parent, ok := n.byID[n.win.Parent]
	if !ok {
		return windowNode{}, false
	}
	return windowNode{win: parent, byID: n.byID}, true
}

// assignRoles maps a window snapshot onto a new role frame, evaluated
// against the previous frame. It is a pure function: re-running it with
// the same inputs yields the same frame, which is what makes deferred
// re-interpretation safe.
func assignRoles(prev WindowRoles, windows []platform.Window, p assignParams) WindowRoles {
	// A transiently empty list clears everything, picture-in-picture
	// included. The debounce layer decides whether to trust it.
	if len(windows) == 0 {
		return WindowRoles{}
	}

	byID := make(map[platform.WindowID]platform.Window, len(windows))
	for _, w := range windows {
		byID[w.ID] = w
	}

	var apps, systems, overlays, pips []platform.Window
	for _, w := range windows {
		switch {
		case w.PictureInPicture || w.Kind == platform.KindPictureInPicture:
			pips = append(pips, w)
		case w.Kind == platform.KindApplication:
			node := windowNode{win: w, byID: byID}
			if !tree.HasAncestor(node, func(windowNode) bool { return true }) {
				apps = append(apps, w)
			}
		case w.Kind == platform.KindSystem:
			systems = append(systems, w)
		case w.Kind == platform.KindOverlay:
			overlays = append(overlays, w)
		}
	}

	// When every visible window landed in the overlay partition, assign
	// the overlay role and keep all other roles from the previous frame.
	// A full-screen accessibility overlay must not make the engine
	// forget the window beneath it. Derived from the partition, not the
	// kind alone: an overlay-kinded window carrying the
	// picture-in-picture flag belongs to the pip partition instead.
	if len(overlays) == len(windows) {
		next := prev
		next.Overlay = RoleWindow{ID: overlays[0].ID}
		return next
	}

	next := prev

	// At most one picture-in-picture window exists at a time.
	next.PictureInPicture = RoleWindow{}
	if len(pips) > 0 {
		next.PictureInPicture = RoleWindow{ID: pips[0].ID}
	}

	// Overlay is recomputed every frame; outside the all-overlay case
	// it is always vacant.
	next.Overlay = RoleWindow{}

	switch {
	case len(apps) == 0:
		next.Primary = RoleWindow{}
		next.Secondary = RoleWindow{}
		if len(systems) > 0 {
			next.Primary = RoleWindow{ID: topmostWindow(systems, p.rightToLeft).ID}
		}

	case len(apps) == 1:
		next.Primary = RoleWindow{ID: apps[0].ID}
		next.Secondary = RoleWindow{}

	case len(apps) == 2 && p.splitScreenCapable && !apps[0].Bounds.Overlaps(apps[1].Bounds):
		// Split-screen: two disjoint application windows, ordered by
		// screen position.
		first, second := apps[0], apps[1]
		if screenBefore(second, first, p.rightToLeft) {
			first, second = second, first
		}
		next.Primary = RoleWindow{ID: first.ID}
		next.Secondary = RoleWindow{ID: second.ID}

	default:
		// Overlapping or more than two windows: trust the activity
		// flag. When no window claims to be active, keep the previous
		// assignment so momentarily disagreeing flags cannot oscillate
		// the roles.
		if active, ok := activeWindow(apps); ok {
			next.Primary = RoleWindow{ID: active.ID}
			next.Secondary = RoleWindow{}
		}
	}

	return next
}

// activeWindow returns the first window reporting itself active.
func activeWindow(windows []platform.Window) (platform.Window, bool) {
	for _, w := range windows {
		if w.Active {
			return w, true
		}
	}
	return platform.Window{}, false
}

// topmostWindow returns the first window in screen-position order.
func topmostWindow(windows []platform.Window, rtl bool) platform.Window {
	top := windows[0]
	for _, w := range windows[1:] {
		if screenBefore(w, top, rtl) {
			top = w
		}
	}
	return top
}

// screenBefore orders windows top-to-bottom, then by leading horizontal
// edge. The horizontal comparison inverts under right-to-left layout.
func screenBefore(a, b platform.Window, rtl bool) bool {
	if a.Bounds.Y != b.Bounds.Y {
		return a.Bounds.Y < b.Bounds.Y
	}
	if rtl {
		return a.Bounds.X > b.Bounds.X
	}
	return a.Bounds.X < b.Bounds.X
}
