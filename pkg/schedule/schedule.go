// Package schedule provides the delayed-action capability used by the
// tooltip state machine.
//
// A [Scheduler] arms one-shot callbacks and hands back a [Token]. Stopping a
// token and firing it race on a single atomic claim: exactly one of them
// wins, and a stopped token's callback never runs. Callbacks are delivered
// on the scheduler's UI-affine context, never concurrently with each other.
package schedule

import (
	"sync/atomic"
	"time"
)

// Clock provides the current time. Timer implementations share it with the
// state machine so "fast re-show" windows are measured on the same timeline
// the timers run on.
type Clock interface {
	Now() time.Time
}

// Scheduler arms delayed callbacks.
type Scheduler interface {
	Clock
	// AfterFunc arranges for fn to run once d has elapsed. The returned token
	// cancels the call.
	AfterFunc(d time.Duration, fn func()) Token
}

// Token is a handle to one scheduled callback.
type Token interface {
	// Stop cancels the callback. It reports whether this call prevented the
	// callback from running; it returns false if the callback already ran or
	// the token was already stopped. Stop is idempotent and never blocks on
	// the callback.
	Stop() bool
}

const (
	tokenPending int32 = iota
	tokenFired
	tokenStopped
)

// claim is the fire/stop arbitration shared by the scheduler implementations.
type claim struct {
	state atomic.Int32
}

// fire claims the token for execution.
func (c *claim) fire() bool {
	return c.state.CompareAndSwap(tokenPending, tokenFired)
}

// stop claims the token for cancellation.
func (c *claim) stop() bool {
	return c.state.CompareAndSwap(tokenPending, tokenStopped)
}

func (c *claim) pending() bool {
	return c.state.Load() == tokenPending
}
