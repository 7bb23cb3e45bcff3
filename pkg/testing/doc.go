// Package testing provides test doubles for code built on hovertip.
//
// # Quick Start
//
// Script a scene, record the view, and drive virtual time:
//
//	func TestSeriesTooltip(t *testing.T) {
//	    sched := tiptest.NewManualScheduler()
//	    view := tiptest.NewRecordingView(sched)
//	    scene := tiptest.NewScene()
//	    scene.Add("latency", graphics.RectFromLTWH(0, 0, 50, 50), 0)
//
//	    ctl := tooltip.NewController(scene, view, sched, tooltip.Options{})
//	    ctl.OnPointerEnter(graphics.Offset{X: 10, Y: 10})
//	    sched.Advance(time.Second)
//
//	    if !view.Visible() || view.Text() != "latency" {
//	        t.Errorf("unexpected view %v", view.Events())
//	    }
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tiptest "github.com/go-drift/hovertip/pkg/testing"
package testing
