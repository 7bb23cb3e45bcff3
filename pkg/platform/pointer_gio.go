package platform

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"

	"github.com/go-drift/hovertip/pkg/graphics"
)

// PointerTarget receives the single-pointer lifecycle of a plot surface.
type PointerTarget interface {
	OnPointerEnter(point graphics.Offset)
	OnPointerMove(point graphics.Offset)
	OnPointerLeave()
}

// GioKinds are the pointer kinds GioPointer consumes.
const GioKinds = pointer.Enter | pointer.Leave | pointer.Move | pointer.Drag | pointer.Cancel

// GioPointer translates Gio pointer events into PointerTarget calls. Only
// the first pointer seen while outside is tracked; events from other
// pointers are ignored until it leaves.
type GioPointer struct {
	Target PointerTarget
	// Scale converts Gio pixel positions to logical coordinates
	// (logical = px / Scale). Zero or negative means 1.
	Scale float32

	inside bool
	id     pointer.ID
}

// Filter returns the Gio event filter for tag.
func (g *GioPointer) Filter(tag event.Tag) pointer.Filter {
	return pointer.Filter{Target: tag, Kinds: GioKinds}
}

// Inside reports whether a pointer is over the surface.
func (g *GioPointer) Inside() bool { return g.inside }

// Handle forwards ev and reports whether it was consumed. A Move or Drag
// that arrives without a prior Enter is treated as an Enter. Cancel ends the
// tracked pointer whatever its ID, since the router sends it unaddressed.
func (g *GioPointer) Handle(ev pointer.Event) bool {
	if g.Target == nil {
		return false
	}
	if ev.Kind == pointer.Cancel {
		return g.leave()
	}
	if g.inside && ev.PointerID != g.id {
		return false
	}
	switch ev.Kind {
	case pointer.Enter:
		g.enter(ev)
		g.Target.OnPointerEnter(g.logical(ev.Position))
	case pointer.Move, pointer.Drag:
		if !g.inside {
			g.enter(ev)
			g.Target.OnPointerEnter(g.logical(ev.Position))
			return true
		}
		g.Target.OnPointerMove(g.logical(ev.Position))
	case pointer.Leave:
		return g.leave()
	default:
		return false
	}
	return true
}

func (g *GioPointer) enter(ev pointer.Event) {
	g.inside = true
	g.id = ev.PointerID
}

func (g *GioPointer) leave() bool {
	if !g.inside {
		return false
	}
	g.inside = false
	g.Target.OnPointerLeave()
	return true
}

func (g *GioPointer) logical(p f32.Point) graphics.Offset {
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}
	return graphics.Offset{X: float64(p.X / scale), Y: float64(p.Y / scale)}
}
