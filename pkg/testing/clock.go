package testing

import (
	"time"

	"github.com/go-drift/hovertip/pkg/schedule"
)

// NewManualScheduler returns a virtual-time scheduler starting at a fixed
// epoch. Timers only fire when the test advances it.
func NewManualScheduler() *schedule.Manual {
	return schedule.NewManual()
}

// Stopwatch reports virtual time elapsed since it was created.
type Stopwatch struct {
	clock schedule.Clock
	start time.Time
}

// NewStopwatch starts a stopwatch on clock.
func NewStopwatch(clock schedule.Clock) *Stopwatch {
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}
