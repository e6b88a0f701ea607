package scheduler

import (
	"sort"
	"time"
)

// Stats counts scheduler activity; tests use it to prove that no timer leaks.
type Stats struct {
	Created  int
	Canceled int
	Fired    int
}

// Manual is a virtual-time scheduler. Time only moves when Advance is called,
// and due callbacks run synchronously on the caller's goroutine in deadline
// order (ties in registration order). Manual is not safe for concurrent use.
type Manual struct {
	now     time.Time
	seq     uint64
	entries []*manualEntry
	stats   Stats
}

type manualEntry struct {
	when     time.Time
	seq      uint64
	fn       func()
	owner    *Manual
	canceled bool
	fired    bool
}

func (e *manualEntry) Cancel() {
	if e.canceled || e.fired {
		return
	}
	e.canceled = true
	e.owner.stats.Canceled++
}

func (e *manualEntry) Active() bool {
	return !e.canceled && !e.fired
}

// NewManual creates a virtual clock starting at the Unix epoch.
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0)}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// After registers fn to run once virtual time reaches Now()+d.
func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	entry := &manualEntry{when: m.now.Add(d), seq: m.seq, fn: fn, owner: m}
	m.entries = append(m.entries, entry)
	m.stats.Created++
	return entry
}

// Advance moves virtual time forward by d, running every callback that falls
// due. Callbacks registered while advancing run too if they fall inside the
// window.
func (m *Manual) Advance(d time.Duration) {
	deadline := m.now.Add(d)
	for {
		next := m.nextDue(deadline)
		if next == nil {
			break
		}
		m.now = next.when
		next.fired = true
		m.stats.Fired++
		next.fn()
	}
	m.now = deadline
	m.compact()
}

// Step jumps to the next pending callback and runs it along with any others
// due at the same instant. It reports false when nothing is pending.
func (m *Manual) Step() bool {
	m.compact()
	if len(m.entries) == 0 {
		return false
	}
	m.sortEntries()
	m.Advance(m.entries[0].when.Sub(m.now))
	return true
}

// Pending returns the number of callbacks that are neither canceled nor fired.
func (m *Manual) Pending() int {
	count := 0
	for _, e := range m.entries {
		if e.Active() {
			count++
		}
	}
	return count
}

// Stats returns counters for created, canceled and fired callbacks.
func (m *Manual) Stats() Stats {
	return m.stats
}

func (m *Manual) nextDue(deadline time.Time) *manualEntry {
	m.sortEntries()
	for _, e := range m.entries {
		if !e.Active() {
			continue
		}
		if e.when.After(deadline) {
			return nil
		}
		return e
	}
	return nil
}

func (m *Manual) sortEntries() {
	sort.SliceStable(m.entries, func(i, j int) bool {
		if m.entries[i].when.Equal(m.entries[j].when) {
			return m.entries[i].seq < m.entries[j].seq
		}
		return m.entries[i].when.Before(m.entries[j].when)
	})
}

func (m *Manual) compact() {
	live := m.entries[:0]
	for _, e := range m.entries {
		if e.Active() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.entries); i++ {
		m.entries[i] = nil
	}
	m.entries = live
}

var _ Scheduler = (*Manual)(nil)
