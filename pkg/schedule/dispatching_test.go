package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

// queue is a hand-drained dispatch target standing in for a UI thread.
type queue chan func()

func (q queue) dispatch(cb func()) bool {
	q <- cb
	return true
}

func (q queue) drainOne(t *testing.T) {
	t.Helper()
	select {
	case cb := <-q:
		cb()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched callback")
	}
}

func TestDispatching_FiresOnDispatchTarget(t *testing.T) {
	q := make(queue, 4)
	s := NewDispatching(q.dispatch)

	var ran atomic.Bool
	s.AfterFunc(time.Millisecond, func() { ran.Store(true) })
	if ran.Load() {
		t.Fatal("callback ran before being drained")
	}
	q.drainOne(t)
	if !ran.Load() {
		t.Error("callback did not run when drained")
	}
}

func TestDispatching_StopBeforeExpiry(t *testing.T) {
	q := make(queue, 4)
	s := NewDispatching(q.dispatch)

	var ran atomic.Bool
	tok := s.AfterFunc(time.Hour, func() { ran.Store(true) })
	if !tok.Stop() {
		t.Error("Stop before expiry should win")
	}
	if tok.Stop() {
		t.Error("Stop is idempotent and reports false the second time")
	}
	if ran.Load() {
		t.Error("stopped callback ran")
	}
}

func TestDispatching_StopAfterPostWins(t *testing.T) {
	q := make(queue, 4)
	s := NewDispatching(q.dispatch)

	var ran atomic.Bool
	tok := s.AfterFunc(time.Millisecond, func() { ran.Store(true) })

	// Wait for the expiry to be posted, then stop before draining it.
	var cb func()
	select {
	case cb = <-q:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for expiry")
	}
	if !tok.Stop() {
		t.Error("Stop should win while the callback is still queued")
	}
	cb()
	if ran.Load() {
		t.Error("stale callback ran after Stop")
	}
}

func TestDispatching_StopAfterFire(t *testing.T) {
	q := make(queue, 4)
	s := NewDispatching(q.dispatch)
	tok := s.AfterFunc(time.Millisecond, func() {})
	q.drainOne(t)
	if tok.Stop() {
		t.Error("Stop after the callback ran should report false")
	}
}

func TestDispatching_NilDispatchRunsDirectly(t *testing.T) {
	s := NewDispatching(nil)
	done := make(chan struct{})
	s.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for direct callback")
	}
}
