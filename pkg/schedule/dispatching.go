package schedule

import (
	"fmt"
	"time"

	"github.com/go-drift/hovertip/pkg/errors"
)

// DispatchFunc posts a callback onto the UI thread. It reports false if the
// callback could not be scheduled.
type DispatchFunc func(callback func()) bool

// Dispatching is a wall-clock Scheduler. Timers run on runtime timer
// goroutines; each expiry is posted through the dispatch function so the
// callback runs on the UI thread. The token claim is taken on the UI
// thread, immediately before the callback, so a Stop issued there before
// the posted callback is drained still wins.
type Dispatching struct {
	dispatch DispatchFunc
	clock    Clock
}

// NewDispatching returns a Dispatching scheduler posting through dispatch.
// A nil dispatch runs expiries directly on the timer goroutine, which is only
// safe when the caller serializes access itself.
func NewDispatching(dispatch DispatchFunc) *Dispatching {
	return &Dispatching{dispatch: dispatch, clock: systemClock{}}
}

// Now returns the wall-clock time.
func (s *Dispatching) Now() time.Time { return s.clock.Now() }

// AfterFunc schedules fn after d.
func (s *Dispatching) AfterFunc(d time.Duration, fn func()) Token {
	t := &dispatchToken{}
	run := func() {
		if fn != nil && t.fire() {
			fn()
		}
	}
	t.timer = time.AfterFunc(d, func() {
		if !t.pending() {
			return
		}
		if s.dispatch == nil {
			run()
			return
		}
		if !s.dispatch(run) {
			errors.Report(&errors.Error{
				Op:   "schedule.Dispatching.AfterFunc",
				Kind: errors.KindSchedule,
				Err:  fmt.Errorf("dispatch rejected timer callback after %s", d),
			})
		}
	})
	return t
}

type dispatchToken struct {
	claim
	timer *time.Timer
}

func (t *dispatchToken) Stop() bool {
	if !t.stop() {
		return false
	}
	t.timer.Stop()
	return true
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
