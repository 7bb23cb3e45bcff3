package tooltip

import (
	"log/slog"

	"github.com/go-drift/hovertip/pkg/config"
	"github.com/go-drift/hovertip/pkg/graphics"
	"github.com/go-drift/hovertip/pkg/hittest"
	"github.com/go-drift/hovertip/pkg/schedule"
)

// Options configures a Controller.
type Options struct {
	// Delays overrides the timing. Zero fields fall back to the view's
	// ConfiguredDelays, then to config.DefaultDelays; config.Disabled turns
	// a delay off.
	Delays config.Delays
	// Tolerance is the hit-test tolerance. Zero means config.DefaultTolerance.
	Tolerance float64
	// Logger receives hover transitions at debug level. Nil disables logging.
	Logger *slog.Logger
}

// Controller turns a single pointer's lifecycle into tooltip show and hide
// requests. Like the Machine it drives, it is confined to the UI thread.
type Controller struct {
	hits      *hittest.Dispatcher
	machine   *Machine
	tolerance float64
	logger    *slog.Logger

	current  Identity
	previous Identity
}

// NewController returns a controller over scene and view. Either may be nil
// until the surface is initialized; see Attach.
func NewController(scene hittest.Scene, view View, sched schedule.Scheduler, opts Options) *Controller {
	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = config.DefaultTolerance
	}
	return &Controller{
		hits:      hittest.NewDispatcher(scene),
		machine:   NewMachine(view, sched, resolveDelays(view, opts.Delays)),
		tolerance: tolerance,
		logger:    opts.Logger,
	}
}

func resolveDelays(view View, override config.Delays) config.Delays {
	d := config.DefaultDelays()
	if src, ok := view.(DelaySource); ok {
		d = d.Override(src.ConfiguredDelays())
	}
	return d.Override(override)
}

// Attach replaces the scene and view, for surfaces that finish initializing
// after the controller is built. Any tooltip in flight is cancelled and the
// hover target resets to None.
func (c *Controller) Attach(scene hittest.Scene, view View) {
	c.machine.SetView(view)
	c.hits = hittest.NewDispatcher(scene)
	c.transitionHover(None)
}

// Close cancels any tooltip in flight and detaches the view.
func (c *Controller) Close() {
	c.Attach(nil, nil)
}

// OnPointerEnter handles the pointer entering the surface at point.
func (c *Controller) OnPointerEnter(point graphics.Offset) {
	c.update(c.resolve(point))
}

// OnPointerMove handles the pointer moving to point.
func (c *Controller) OnPointerMove(point graphics.Offset) {
	c.update(c.resolve(point))
}

// OnPointerLeave handles the pointer leaving the surface. Afterwards the
// machine is Hidden with no outstanding timer.
func (c *Controller) OnPointerLeave() {
	c.update(None)
	if c.machine.Pending() || c.machine.State() != Hidden {
		c.machine.Cancel()
	}
}

// Current returns the identity under the pointer.
func (c *Controller) Current() Identity { return c.current }

// Previous returns the identity that was under the pointer before the last
// change.
func (c *Controller) Previous() Identity { return c.previous }

// State returns the visibility state of the tooltip.
func (c *Controller) State() State { return c.machine.State() }

// Machine returns the visibility machine.
func (c *Controller) Machine() *Machine { return c.machine }

// SetDelays overrides the timing configuration.
func (c *Controller) SetDelays(d config.Delays) { c.machine.SetDelays(d) }

// resolve finds what is under point. A title area with tooltip text takes
// precedence over every element beneath it.
func (c *Controller) resolve(point graphics.Offset) Identity {
	if text, ok := c.hits.Title(point); ok {
		return TitleIdentity(text)
	}
	if el, ok := c.hits.First(point, c.tolerance); ok {
		return ElementIdentity(el)
	}
	return None
}

// transitionHover makes next the current identity in one step and reports
// the identity it replaced and whether the hover target changed.
func (c *Controller) transitionHover(next Identity) (prev Identity, changed bool) {
	if c.current.Equivalent(next) {
		return c.current, false
	}
	prev = c.current
	c.previous, c.current = prev, next
	return prev, true
}

func (c *Controller) update(next Identity) {
	prev, changed := c.transitionHover(next)
	if !changed {
		return
	}
	if c.logger != nil {
		c.logger.Debug("tooltip hover changed", "from", prev.String(), "to", next.String(), "state", c.machine.State().String())
	}
	if text := next.Text(); text != "" {
		c.machine.Schedule(text)
		return
	}
	c.machine.Cancel()
}
