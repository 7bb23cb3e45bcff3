// Package tooltip decides when a plot's tooltip is shown.
//
// A [Controller] receives one pointer's enter, move and leave events, asks a
// [hittest.Dispatcher] what lies under the pointer, and reduces the answer to
// an [Identity]: nothing, the title area, or one element by reference. Only a
// change of identity reaches the [Machine], which sequences the view through
// Hidden, PendingShow, Visible and PendingHide on a [schedule.Scheduler].
//
// # Timing
//
// The first tooltip appears after Delays.Initial and stays for Delays.Show.
// Once a tooltip has been visible, a new target within Delays.Between of it
// hiding shows its tooltip immediately, so sweeping across several series
// does not pay the initial delay at every boundary.
//
// # Threading
//
// Controller and Machine are not safe for concurrent use. Pointer events and
// timer callbacks must arrive on the same UI thread; [schedule.Dispatching]
// with [platform.Dispatch] provides that for wall-clock timers.
//
// # Usage
//
//	ctl := tooltip.NewController(scene, view, schedule.NewDispatching(platform.Dispatch), tooltip.Options{
//	    Delays: config.Delays{Initial: 800 * time.Millisecond},
//	})
//	ptr := &platform.GioPointer{Target: ctl, Scale: gtx.Metric.PxPerDp}
package tooltip
