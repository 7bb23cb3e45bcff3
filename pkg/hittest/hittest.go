// Package hittest normalizes an external hit-testing capability into the
// front-to-back candidate order the tooltip controller relies on.
//
// The capability ([Scene]) may report candidates in any stacking order. The
// [Dispatcher] sorts them by [Candidate.Z], greatest first; candidates with
// equal Z keep the order the scene reported them in, which is read as
// front-first. The same convention applies to every query.
package hittest

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-drift/hovertip/pkg/errors"
	"github.com/go-drift/hovertip/pkg/graphics"
)

// Element is a hit candidate that can carry a tooltip. Candidates whose
// element does not implement Element are decorative and are skipped.
//
// Elements are compared by identity, so implementations should be pointer
// types.
type Element interface {
	ToolTip() string
}

// Candidate is one result of a hit-test query. It is not retained beyond
// the query that produced it.
type Candidate struct {
	// Element is the hit visual element. It is opaque to the dispatcher.
	Element any
	// Area is the element's screen area.
	Area graphics.Rect
	// Z is the stacking order. Greater values are closer to the viewer.
	Z int
}

// Scene is the external hit-testing capability of a plot surface.
type Scene interface {
	// HitTest returns the candidates within tolerance of point, in any order.
	HitTest(point graphics.Offset, tolerance float64) []Candidate
	// TitleArea returns the title area, or false if the scene has no title.
	TitleArea() (graphics.Rect, bool)
	// TitleToolTip returns the title tooltip text, or "" if none is set.
	TitleToolTip() string
}

// Readiness is implemented by scenes that can be queried before their model
// is built.
type Readiness interface {
	Ready() bool
}

// Dispatcher wraps a Scene. The zero value has no scene and answers every
// query with nothing.
type Dispatcher struct {
	scene Scene
}

// NewDispatcher returns a dispatcher over scene. scene may be nil.
func NewDispatcher(scene Scene) *Dispatcher {
	return &Dispatcher{scene: scene}
}

// Scene returns the wrapped scene.
func (d *Dispatcher) Scene() Scene {
	if d == nil {
		return nil
	}
	return d.scene
}

// ready reports whether the scene can be queried at all.
func (d *Dispatcher) ready() bool {
	if d == nil || d.scene == nil {
		return false
	}
	if r, ok := d.scene.(Readiness); ok {
		return r.Ready()
	}
	return true
}

// Query returns the candidates at point front-to-back. It returns nil when
// the scene is missing or not ready, when point is not finite, or when
// tolerance is negative or not finite. A panicking scene is reported and
// treated as a miss.
func (d *Dispatcher) Query(point graphics.Offset, tolerance float64) (result []Candidate) {
	if !d.ready() || !point.IsFinite() || !validTolerance(tolerance) {
		return nil
	}

	defer errors.RecoverWithCallback("hittest.Scene.HitTest", func(any) {
		result = nil
	})
	raw := d.scene.HitTest(point, tolerance)
	if len(raw) == 0 {
		return nil
	}

	result = make([]Candidate, len(raw))
	copy(result, raw)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Z > result[j].Z
	})
	return result
}

// First returns the frontmost candidate element that implements Element.
func (d *Dispatcher) First(point graphics.Offset, tolerance float64) (Element, bool) {
	for _, c := range d.Query(point, tolerance) {
		if el, ok := c.Element.(Element); ok {
			return el, true
		}
	}
	return nil, false
}

// Title reports whether point lies in the title area and the title has
// tooltip text. A title without text is a miss so element hit-testing can
// take over.
func (d *Dispatcher) Title(point graphics.Offset) (text string, ok bool) {
	if !d.ready() || !point.IsFinite() {
		return "", false
	}

	defer errors.RecoverWithCallback("hittest.Scene.TitleArea", func(any) {
		text, ok = "", false
	})
	area, has := d.scene.TitleArea()
	if !has || !area.Contains(point) {
		return "", false
	}
	text = d.scene.TitleToolTip()
	if text == "" {
		return "", false
	}
	return text, true
}

func validTolerance(tolerance float64) bool {
	return tolerance >= 0 && !math.IsInf(tolerance, 0) && !math.IsNaN(tolerance)
}

// String describes a candidate for logs.
func (c Candidate) String() string {
	return fmt.Sprintf("%T@%v z=%d", c.Element, c.Area, c.Z)
}
