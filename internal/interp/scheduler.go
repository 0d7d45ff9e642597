package interp

import "time"

// CancelFunc cancels a scheduled callback. Calling it after the
// callback has started is a no-op; the interpreter's generation counter
// makes a late-firing callback harmless regardless.
type CancelFunc func()

// Scheduler arms a single one-shot callback. It exists so tests can
// fire deferred re-interpretations deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

type timerScheduler struct{}

// NewTimerScheduler returns the production scheduler backed by
// time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
