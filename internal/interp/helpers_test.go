package interp

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/1broseidon/winroles/internal/config"
	"github.com/1broseidon/winroles/internal/platform"
)

// fakeBackend implements platform.Backend with a settable snapshot.
type fakeBackend struct {
	windows      []platform.Window
	err          error
	splitCapable bool
	rtl          bool
}

func (b *fakeBackend) Windows() ([]platform.Window, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.windows, nil
}

func (b *fakeBackend) SplitScreenCapable() bool { return b.splitCapable }
func (b *fakeBackend) LayoutRightToLeft() bool  { return b.rtl }

// manualScheduler arms callbacks without real timers so tests can fire
// deferred work deterministically.
type manualScheduler struct {
	armed     int
	cancelled int
	pending   func()
	pendingID int
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	s.armed++
	id := s.armed
	s.pending = fn
	s.pendingID = id
	return func() {
		if s.pendingID == id && s.pending != nil {
			s.cancelled++
			s.pending = nil
		}
	}
}

// fire runs the armed callback, if any.
func (s *manualScheduler) fire() {
	if s.pending == nil {
		return
	}
	fn := s.pending
	s.pending = nil
	fn()
}

func newTestInterpreter(backend *fakeBackend, sched *manualScheduler) *Interpreter {
	return New(backend, config.Default(), zerolog.Nop(), WithScheduler(sched))
}

func appWindow(id platform.WindowID, title string) platform.Window {
	return platform.Window{
		ID:     id,
		Kind:   platform.KindApplication,
		Title:  title,
		Bounds: platform.Rect{X: 0, Y: 0, Width: 800, Height: 600},
	}
}

func pipWindow(id platform.WindowID, title string) platform.Window {
	w := appWindow(id, title)
	w.PictureInPicture = true
	w.Bounds = platform.Rect{X: 600, Y: 400, Width: 200, Height: 150}
	return w
}

func systemWindow(id platform.WindowID, bounds platform.Rect) platform.Window {
	return platform.Window{ID: id, Kind: platform.KindSystem, Bounds: bounds}
}

func overlayWindow(id platform.WindowID) platform.Window {
	return platform.Window{
		ID:     id,
		Kind:   platform.KindOverlay,
		Bounds: platform.Rect{X: 0, Y: 0, Width: 800, Height: 600},
	}
}

func at(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}
