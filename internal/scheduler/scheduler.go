// Package scheduler provides the time source that drives animation ticks.
//
// Every callback registered through a Scheduler runs on a single host loop,
// never concurrently with another callback from the same Scheduler. Waiting
// between ticks is expressed by registering a future callback, never by
// blocking.
//
// Three implementations are provided:
//
//   - [Manual]: a virtual clock advanced explicitly, for tests and headless
//     stepping.
//   - [Loop]: a real-time event loop executed by [Loop.Run].
//   - [Posted]: real-time timers whose callbacks are handed to a host loop
//     owned elsewhere (for example a bubbletea program).
package scheduler

import (
	"sync/atomic"
	"time"
)

// Handle is the cancelable token for one pending callback.
//
// Cancel is idempotent: canceling a fired, canceled, or nil-backed handle is a
// no-op. A canceled callback never runs, even if its timer already fired and
// the callback is queued on the host loop.
type Handle interface {
	Cancel()
	Active() bool
}

// Scheduler registers callbacks to run after a delay on the host loop.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
	Now() time.Time
}

// Cancel cancels h when it is non-nil and returns nil so callers can clear
// their reference in one statement: c.pending = scheduler.Cancel(c.pending).
func Cancel(h Handle) Handle {
	if h != nil {
		h.Cancel()
	}
	return nil
}

type timer struct {
	canceled atomic.Bool
	fired    atomic.Bool
	stop     func() bool
}

func (t *timer) Cancel() {
	if !t.canceled.CompareAndSwap(false, true) {
		return
	}
	if t.stop != nil {
		t.stop()
	}
}

func (t *timer) Active() bool {
	return !t.canceled.Load() && !t.fired.Load()
}

// run executes fn unless the timer was canceled first.
func (t *timer) run(fn func()) {
	if t.canceled.Load() {
		return
	}
	if !t.fired.CompareAndSwap(false, true) {
		return
	}
	fn()
}
