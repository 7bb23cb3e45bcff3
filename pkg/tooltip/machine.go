package tooltip

import (
	"time"

	"github.com/go-drift/hovertip/pkg/config"
	"github.com/go-drift/hovertip/pkg/platform"
	"github.com/go-drift/hovertip/pkg/schedule"
)

// State is the visibility state of a Machine.
type State int

const (
	// Hidden: no tooltip shown and no show pending.
	Hidden State = iota
	// PendingShow: waiting out the initial delay.
	PendingShow
	// Visible: the view is showing the tooltip text.
	Visible
	// PendingHide: the view was just hidden and the fast re-show window is
	// open.
	PendingHide
)

func (s State) String() string {
	switch s {
	case PendingShow:
		return "pending-show"
	case Visible:
		return "visible"
	case PendingHide:
		return "pending-hide"
	default:
		return "hidden"
	}
}

// View is the tooltip widget driven by a Machine.
type View interface {
	SetText(text string)
	SetVisible(visible bool)
}

// DelaySource is implemented by views that know the platform's tooltip
// timing.
type DelaySource interface {
	ConfiguredDelays() config.Delays
}

// Machine sequences tooltip visibility on a timer.
//
// A Machine is confined to the UI thread: Schedule, Cancel and the timer
// callbacks must all run there. At most one timer is outstanding. Every arm
// and cancel bumps an epoch, and a callback whose captured epoch is no longer
// current returns without touching anything, so a superseded timer can
// never mutate the view even if its token lost the stop race.
type Machine struct {
	view   View
	sched  schedule.Scheduler
	delays config.Delays

	state State
	text  string
	shown bool

	epoch uint64
	token schedule.Token

	// warmUntil closes the fast re-show window opened when a visible
	// tooltip is hidden.
	warmUntil time.Time
}

// NewMachine returns a hidden Machine. A nil view makes the machine track
// state without mutating anything. A nil sched uses wall-clock timers posted
// through platform.Dispatch.
func NewMachine(view View, sched schedule.Scheduler, delays config.Delays) *Machine {
	if sched == nil {
		sched = schedule.NewDispatching(platform.Dispatch)
	}
	return &Machine{view: view, sched: sched, delays: delays}
}

// State returns the current visibility state.
func (m *Machine) State() State { return m.state }

// Text returns the text that is shown or pending.
func (m *Machine) Text() string { return m.text }

// Pending reports whether a timer is outstanding.
func (m *Machine) Pending() bool { return m.token != nil }

// Delays returns the active timing configuration.
func (m *Machine) Delays() config.Delays { return m.delays }

// SetDelays overrides the timing configuration. Timers already armed keep
// their deadline.
func (m *Machine) SetDelays(d config.Delays) { m.delays = d }

// SetView replaces the view. The old view is hidden first if it was showing.
func (m *Machine) SetView(v View) {
	m.Cancel()
	m.view = v
}

// Schedule requests that text be shown. When the machine is warm (a tooltip
// is visible, or one was hidden less than Between ago) the text is shown at
// once; otherwise it is shown after the initial delay. Scheduling the text
// that is already visible or pending keeps the running countdown. An empty
// text cancels.
func (m *Machine) Schedule(text string) {
	if text == "" {
		m.Cancel()
		return
	}
	if text == m.text && (m.state == Visible || m.state == PendingShow) {
		return
	}

	warm := m.warm()
	m.disarm()
	if warm || m.delays.Initial <= 0 {
		m.show(text)
		return
	}
	m.state = PendingShow
	m.text = text
	m.arm(m.delays.Initial, func() { m.show(text) })
}

// Cancel stops any outstanding timer and hides the view. Hiding a visible
// tooltip opens the fast re-show window. Cancel is idempotent.
func (m *Machine) Cancel() {
	m.disarm()
	if m.state == Visible {
		m.warmUntil = m.sched.Now().Add(m.delays.Between)
	}
	m.hide()
	m.state = Hidden
	m.text = ""
}

func (m *Machine) warm() bool {
	switch m.state {
	case Visible, PendingHide:
		return true
	}
	return !m.warmUntil.IsZero() && m.sched.Now().Before(m.warmUntil)
}

func (m *Machine) show(text string) {
	if m.view != nil {
		m.view.SetText(text)
		m.view.SetVisible(true)
	}
	m.shown = true
	m.state = Visible
	m.text = text
	m.warmUntil = time.Time{}
	if m.delays.Show > 0 {
		m.arm(m.delays.Show, m.expire)
	}
}

// expire ends the show duration and opens the fast re-show window.
func (m *Machine) expire() {
	m.hide()
	m.warmUntil = m.sched.Now().Add(m.delays.Between)
	if m.delays.Between <= 0 {
		m.state = Hidden
		m.text = ""
		return
	}
	m.state = PendingHide
	m.arm(m.delays.Between, m.settle)
}

// settle closes the fast re-show window.
func (m *Machine) settle() {
	m.state = Hidden
	m.text = ""
}

func (m *Machine) hide() {
	if !m.shown {
		return
	}
	m.shown = false
	if m.view != nil {
		m.view.SetVisible(false)
	}
}

func (m *Machine) arm(d time.Duration, next func()) {
	m.epoch++
	epoch := m.epoch
	m.token = m.sched.AfterFunc(d, func() {
		if epoch != m.epoch {
			return
		}
		m.token = nil
		next()
	})
}

func (m *Machine) disarm() {
	m.epoch++
	if m.token != nil {
		m.token.Stop()
		m.token = nil
	}
}
