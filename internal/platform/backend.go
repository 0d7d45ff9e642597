package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// WindowNone is the sentinel for "no window". X11 reuses 0 for None,
// so the zero value doubles as the absent marker.
const WindowNone WindowID = 0

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Overlaps reports whether the two rectangles share any area.
// Zero-width or zero-height rectangles never overlap anything.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// WindowKind classifies a window by its function on screen.
type WindowKind int

const (
	KindUnknown WindowKind = iota
	KindApplication
	KindSystem
	KindOverlay
	KindInputMethod
	KindSplitScreenDivider
	KindPictureInPicture
)

// String returns the string representation of the kind.
func (k WindowKind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindSystem:
		return "system"
	case KindOverlay:
		return "overlay"
	case KindInputMethod:
		return "input-method"
	case KindSplitScreenDivider:
		return "split-screen-divider"
	case KindPictureInPicture:
		return "picture-in-picture"
	default:
		return "unknown"
	}
}

// Window contains metadata and geometry for one on-screen window as
// reported in a single snapshot. Values are constructed fresh per
// snapshot and never mutated in place.
type Window struct {
	ID          WindowID
	Kind        WindowKind
	Title       string // empty when the platform did not supply one
	ClassName   string
	PackageName string
	Parent      WindowID // WindowNone for top-level windows

	Active               bool
	AccessibilityFocused bool
	InputFocused         bool
	PictureInPicture     bool

	Bounds Rect
}

// Backend abstracts the window-system queries the interpreter consumes.
type Backend interface {
	// Windows returns the current list of visible windows in
	// bottom-to-top stacking order.
	Windows() ([]Window, error)
	// SplitScreenCapable reports the fixed device capability of showing
	// two application windows side by side.
	SplitScreenCapable() bool
	// LayoutRightToLeft reports whether the screen layout direction is
	// right-to-left, which inverts horizontal tie-breaks.
	LayoutRightToLeft() bool
}
