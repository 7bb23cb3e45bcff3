package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a virtual-time Scheduler. Time only moves when Advance or Set is
// called, and due callbacks run synchronously on the calling goroutine in
// deadline order. Timers with equal deadlines run in the order they were
// armed. All methods are safe for concurrent use.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualToken
}

// NewManual returns a Manual scheduler starting at a fixed epoch.
func NewManual() *Manual {
	return &Manual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc arms fn to run once virtual time reaches now+d. A non-positive d
// runs on the next Advance, including Advance(0).
func (m *Manual) AfterFunc(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualToken{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every timer that comes due
// along the way. Timers armed by callbacks fire too if they fall within the
// window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	m.runUntil(target)
}

// Set moves virtual time to t, firing due timers. Moving backwards only
// resets the clock.
func (m *Manual) Set(t time.Time) {
	m.runUntil(t)
}

// Pending returns the number of armed, unstopped timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if t.pending() {
			n++
		}
	}
	return n
}

// NextDeadline returns the deadline of the earliest pending timer.
func (m *Manual) NextDeadline() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.nextLocked()
	if next == nil {
		return time.Time{}, false
	}
	return next.at, true
}

func (m *Manual) runUntil(target time.Time) {
	for {
		m.mu.Lock()
		next := m.nextLocked()
		if next == nil || next.at.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		if next.at.After(m.now) {
			m.now = next.at
		}
		m.removeLocked(next)
		m.mu.Unlock()

		if next.fire() && next.fn != nil {
			next.fn()
		}
	}
}

// nextLocked drops stopped timers and returns the earliest pending one.
func (m *Manual) nextLocked() *manualToken {
	live := m.timers[:0]
	for _, t := range m.timers {
		if t.pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.seq < b.seq
	})
	return m.timers[0]
}

func (m *Manual) removeLocked(t *manualToken) {
	for i, cur := range m.timers {
		if cur == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

type manualToken struct {
	claim
	at  time.Time
	seq uint64
	fn  func()
}

func (t *manualToken) Stop() bool {
	return t.stop()
}
