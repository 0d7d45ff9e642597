// Package interp converts the raw "windows changed" notification stream
// into stable, de-duplicated window role interpretations.
package interp

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/1broseidon/winroles/internal/config"
	"github.com/1broseidon/winroles/internal/platform"
)

// Listener receives every emitted interpretation, immediate and
// deferred, in emission order.
type Listener func(EventInterpretation)

// Interpreter owns the committed role frame and coordinates metadata
// accumulation, role assignment, stability classification and deferred
// re-interpretation behind a single Interpret entry point.
//
// All public entry points are expected on one logical event-processing
// goroutine. The internal mutex only serializes the deferred timer
// callback against foreground calls.
type Interpreter struct {
	backend   platform.Backend
	timing    config.Timing
	scheduler Scheduler
	log       zerolog.Logger

	splitScreenCapable bool
	rightToLeft        bool

	mu         sync.Mutex
	cache      *MetadataCache
	hysteresis pipHysteresis
	committed  WindowRoles
	pending    *WindowRoles
	generation uint64
	cancel     CancelFunc
	listeners  []Listener
}

// Option overrides an interpreter dependency, primarily for tests.
type Option func(*Interpreter)

// WithScheduler replaces the production timer scheduler.
func WithScheduler(s Scheduler) Option {
	return func(i *Interpreter) { i.scheduler = s }
}

// New creates an interpreter reading snapshots from backend. The
// split-screen capability and layout direction are fixed at
// construction, per the backend.
func New(backend platform.Backend, cfg *config.Config, logger zerolog.Logger, opts ...Option) *Interpreter {
	if cfg == nil {
		cfg = config.Default()
	}

	i := &Interpreter{
		backend:            backend,
		timing:             cfg.Timing,
		scheduler:          NewTimerScheduler(),
		log:                logger,
		splitScreenCapable: backend.SplitScreenCapable(),
		rightToLeft:        backend.LayoutRightToLeft() || cfg.RightToLeft,
		cache:              NewMetadataCache(cfg.AlertDialogClass, backend.SplitScreenCapable()),
		hysteresis:         pipHysteresis{threshold: cfg.Timing.PiPHysteresis()},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// AddListener registers a handler for emitted interpretations.
func (i *Interpreter) AddListener(l Listener) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listeners = append(i.listeners, l)
}

// Interpret processes one raw notification and returns the immediately
// emitted interpretation. When the frame is classified unstable, one
// deferred re-evaluation is scheduled and delivered through the same
// listeners unless a newer notification arrives first. Interpret never
// fails: a snapshot query error degrades to an empty window list for
// this call only.
func (i *Interpreter) Interpret(ev Event) EventInterpretation {
	i.mu.Lock()

	// Most recent notification always wins: any armed deferred work is
	// invalidated before it can fire.
	i.invalidateDeferred()

	if ev.Kind == EventWindowStateChanged {
		i.cache.UpdateFromWindowEvent(ev.WindowID, ev.Title, ev.ClassName, ev.PackageName, ev.System)
	}

	snapshot := i.snapshot()
	if ev.Kind == EventWindowsChanged {
		i.cache.UpdateFromSnapshot(snapshot)
	}

	// A notification arriving inside an open debounce window continues
	// from the tentative frame, not the stale committed one.
	base := i.committed
	if i.pending != nil {
		base = *i.pending
	}

	next := assignRoles(base, snapshot, i.params())
	next = refreshTitles(next, snapshot, i.cache)
	if !next.Valid() {
		i.log.Error().
			Uint32("primary", uint32(next.Primary.ID)).
			Uint32("secondary", uint32(next.Secondary.ID)).
			Msg("role invariant violated: secondary without distinct primary")
	}

	itp := i.buildInterpretation(ev.Kind, next, ev.Timestamp)
	itp.OriginalEvent = true

	if ev.Kind == EventWindowStateChanged && !itp.MainWindowsChanged &&
		ev.Title != "" && isInputMethod(snapshot, ev.WindowID) {
		itp.Announcement = ev.Title
	}

	var delay time.Duration
	if itp.MainWindowsChanged {
		delay = stabilityDelay(next, i.cache, i.timing, i.splitScreenCapable)
	}

	if delay > 0 {
		itp.WindowsStable = false
		tentative := next
		i.pending = &tentative
		gen := i.generation
		kind := ev.Kind
		// Stamp the deferred frame in the caller's clock domain so
		// hysteresis gaps stay comparable to event timestamps.
		fireAt := ev.Timestamp.Add(delay)
		i.cancel = i.scheduler.Schedule(delay, func() { i.reinterpret(gen, kind, fireAt) })
		i.log.Debug().Dur("delay", delay).Msg("frame deferred for settling")
	} else {
		itp.WindowsStable = true
		i.commit(next)
	}

	listeners := i.snapshotListeners()
	i.mu.Unlock()

	for _, l := range listeners {
		l(itp)
	}
	return itp
}

// reinterpret is the deferred re-evaluation. It re-queries the current
// snapshot rather than trusting the frame captured at schedule time,
// always commits, and always emits a stable interpretation.
func (i *Interpreter) reinterpret(gen uint64, kind EventKind, at time.Time) {
	i.mu.Lock()
	if gen != i.generation {
		// Superseded by a newer notification after the timer fired but
		// before it acquired the lock.
		i.mu.Unlock()
		return
	}
	i.cancel = nil

	snapshot := i.snapshot()
	i.cache.UpdateFromSnapshot(snapshot)

	base := i.committed
	if i.pending != nil {
		base = *i.pending
	}

	next := assignRoles(base, snapshot, i.params())
	next = refreshTitles(next, snapshot, i.cache)

	itp := i.buildInterpretation(kind, next, at)
	itp.WindowsStable = true
	itp.OriginalEvent = false

	i.commit(next)
	listeners := i.snapshotListeners()
	i.mu.Unlock()

	for _, l := range listeners {
		l(itp)
	}
}

// ClearScreenState resets roles, pending work and hysteresis to
// initial, for when the screen is known to have gone blank.
func (i *Interpreter) ClearScreenState() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.invalidateDeferred()
	i.pending = nil
	i.committed = WindowRoles{}
	i.hysteresis.reset()
}

// WindowTitle returns the cached title for a window id, or "" when
// unknown or when the window is a system window.
func (i *Interpreter) WindowTitle(id platform.WindowID) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cache.TitleFor(id)
}

// Roles returns the last committed role frame.
func (i *Interpreter) Roles() WindowRoles {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.committed
}

// SplitScreenMode reports whether the committed frame shows two
// application windows.
func (i *Interpreter) SplitScreenMode() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.committed.SplitScreen()
}

// SplitScreenModeAvailable reports the fixed device capability.
func (i *Interpreter) SplitScreenModeAvailable() bool {
	return i.splitScreenCapable
}

// invalidateDeferred cancels any armed deferred re-interpretation and
// bumps the generation so a concurrently firing callback becomes a
// no-op. Callers must hold the mutex.
func (i *Interpreter) invalidateDeferred() {
	i.generation++
	if i.cancel != nil {
		i.cancel()
		i.cancel = nil
	}
}

// commit replaces the committed frame and discards tentative state.
// Callers must hold the mutex.
func (i *Interpreter) commit(next WindowRoles) {
	if next != i.committed {
		i.log.Debug().
			Uint32("primary", uint32(next.Primary.ID)).
			Uint32("secondary", uint32(next.Secondary.ID)).
			Uint32("overlay", uint32(next.Overlay.ID)).
			Uint32("pip", uint32(next.PictureInPicture.ID)).
			Msg("committed role frame")
	}
	i.committed = next
	i.pending = nil
}

// snapshot queries the backend, degrading failures to an empty window
// list for this call; the next notification naturally retries.
func (i *Interpreter) snapshot() []platform.Window {
	windows, err := i.backend.Windows()
	if err != nil {
		i.log.Warn().Err(err).Msg("window snapshot failed; treating as empty")
		return nil
	}
	return windows
}

func (i *Interpreter) params() assignParams {
	return assignParams{
		splitScreenCapable: i.splitScreenCapable,
		rightToLeft:        i.rightToLeft,
	}
}

// buildInterpretation diffs a fresh frame against the committed one and
// applies picture-in-picture hysteresis. Callers must hold the mutex.
func (i *Interpreter) buildInterpretation(kind EventKind, next WindowRoles, now time.Time) EventInterpretation {
	itp := EventInterpretation{
		Primary:          i.diffRole(i.committed.Primary, next.Primary),
		Secondary:        i.diffRole(i.committed.Secondary, next.Secondary),
		Overlay:          i.diffRole(i.committed.Overlay, next.Overlay),
		PictureInPicture: i.diffRole(i.committed.PictureInPicture, next.PictureInPicture),
		EventKind:        kind,
	}

	if itp.PictureInPicture.IDOrTitleChanged() && i.hysteresis.suppress(next.PictureInPicture.ID, now) {
		// The window blinked back under its old id: report it unchanged.
		itp.PictureInPicture = WindowInterpretation{
			OldID:    next.PictureInPicture.ID,
			OldTitle: next.PictureInPicture.Title,
			NewID:    next.PictureInPicture.ID,
			NewTitle: next.PictureInPicture.Title,
		}
	}
	i.hysteresis.observe(next.PictureInPicture.ID, now)

	itp.MainWindowsChanged = itp.Primary.IDOrTitleChanged() ||
		itp.Secondary.IDOrTitleChanged() ||
		itp.Overlay.IDOrTitleChanged()
	itp.PictureInPicChanged = itp.PictureInPicture.IDOrTitleChanged()
	return itp
}

func (i *Interpreter) diffRole(old, next RoleWindow) WindowInterpretation {
	return WindowInterpretation{
		OldID:          old.ID,
		OldTitle:       old.Title,
		NewID:          next.ID,
		NewTitle:       next.Title,
		AnnouncedTitle: next.Title,
		AlertDialog:    next.Present() && i.cache.IsAlertDialog(next.ID),
	}
}

func (i *Interpreter) snapshotListeners() []Listener {
	out := make([]Listener, len(i.listeners))
	copy(out, i.listeners)
	return out
}

// refreshTitles fills role titles from the cache for windows present in
// the current snapshot. A role carried over from the previous frame
// whose window is not in this snapshot (the overlay-shield case) keeps
// its stored title.
func refreshTitles(r WindowRoles, windows []platform.Window, cache *MetadataCache) WindowRoles {
	present := make(map[platform.WindowID]struct{}, len(windows))
	for _, w := range windows {
		present[w.ID] = struct{}{}
	}

	refresh := func(rw RoleWindow) RoleWindow {
		if !rw.Present() {
			return RoleWindow{}
		}
		if _, ok := present[rw.ID]; ok {
			rw.Title = cache.TitleFor(rw.ID)
		}
		return rw
	}

	r.Primary = refresh(r.Primary)
	r.Secondary = refresh(r.Secondary)
	r.Overlay = refresh(r.Overlay)
	r.PictureInPicture = refresh(r.PictureInPicture)
	return r
}

func isInputMethod(windows []platform.Window, id platform.WindowID) bool {
	for _, w := range windows {
		if w.ID == id {
			return w.Kind == platform.KindInputMethod
		}
	}
	return false
}
