package interp

import "github.com/1broseidon/winroles/internal/platform"

// RoleWindow is one role slot: the occupying window id and its cached
// title at assignment time.
type RoleWindow struct {
	ID    platform.WindowID
	Title string
}

// Present reports whether the role is assigned to a window.
func (r RoleWindow) Present() bool {
	return r.ID != platform.WindowNone
}

// WindowRoles is one semantic frame: which window currently plays which
// role. It is a plain value; a frame is replaced wholesale, never
// mutated while anything else holds the same value.
type WindowRoles struct {
	// Primary is the main application window (window A).
	Primary RoleWindow
	// Secondary is the second application window in split-screen
	// (window B). Only assigned when Primary is.
	Secondary RoleWindow
	// Overlay is a transient full-screen surface shielding the windows
	// beneath it.
	Overlay RoleWindow
	// PictureInPicture is tracked independently of the other roles.
	PictureInPicture RoleWindow
}

// SplitScreen reports whether two application windows are showing.
func (r WindowRoles) SplitScreen() bool {
	return r.Secondary.Present()
}

// Valid reports whether the frame satisfies the role invariant:
// a secondary window requires a distinct primary window.
func (r WindowRoles) Valid() bool {
	if !r.Secondary.Present() {
		return true
	}
	return r.Primary.Present() && r.Primary.ID != r.Secondary.ID
}
