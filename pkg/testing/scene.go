package testing

import (
	"sync"

	"github.com/go-drift/hovertip/pkg/graphics"
	"github.com/go-drift/hovertip/pkg/hittest"
)

// Element is a scripted plot element with a rectangular hit region.
type Element struct {
	Name string
	Area graphics.Rect
	Z    int
	// Text is the tooltip. Empty means the element carries no tooltip text.
	Text string
}

// ToolTip returns the element's tooltip text.
func (e *Element) ToolTip() string { return e.Text }

// Decoration is a hit-testable shape without a tooltip, such as a grid line.
type Decoration struct {
	Area graphics.Rect
	Z    int
}

// Scene is a scripted hit-test capability. Candidates are reported in
// insertion order regardless of Z, so it also exercises the dispatcher's
// normalization. A new Scene is ready. All methods are safe for concurrent
// use.
type Scene struct {
	mu            sync.Mutex
	items         []any
	title         graphics.Rect
	hasTitle      bool
	titleText     string
	notReady      bool
	hitQueries    int
	lastTolerance float64
}

// NewScene returns an empty, ready scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends an element whose tooltip is its name and returns it.
func (s *Scene) Add(name string, area graphics.Rect, z int) *Element {
	return s.AddElement(&Element{Name: name, Area: area, Z: z, Text: name})
}

// AddElement appends el and returns it.
func (s *Scene) AddElement(el *Element) *Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, el)
	return el
}

// AddDecoration appends a decorative shape.
func (s *Scene) AddDecoration(area graphics.Rect, z int) *Decoration {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := &Decoration{Area: area, Z: z}
	s.items = append(s.items, d)
	return d
}

// SetTitle configures the title area and its tooltip text.
func (s *Scene) SetTitle(area graphics.Rect, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title, s.hasTitle, s.titleText = area, true, text
}

// SetReady marks the scene's model as built or not.
func (s *Scene) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notReady = !ready
}

// Ready reports whether the scene can be hit-tested.
func (s *Scene) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.notReady
}

// HitTest returns every item whose area, grown by tolerance, contains point.
func (s *Scene) HitTest(point graphics.Offset, tolerance float64) []hittest.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hitQueries++
	s.lastTolerance = tolerance

	var out []hittest.Candidate
	for _, item := range s.items {
		switch it := item.(type) {
		case *Element:
			if it.Area.Inflate(tolerance).Contains(point) {
				out = append(out, hittest.Candidate{Element: it, Area: it.Area, Z: it.Z})
			}
		case *Decoration:
			if it.Area.Inflate(tolerance).Contains(point) {
				out = append(out, hittest.Candidate{Element: it, Area: it.Area, Z: it.Z})
			}
		}
	}
	return out
}

// TitleArea returns the configured title area.
func (s *Scene) TitleArea() (graphics.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.hasTitle
}

// TitleToolTip returns the configured title tooltip text.
func (s *Scene) TitleToolTip() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.titleText
}

// HitQueries returns how many element hit tests ran.
func (s *Scene) HitQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hitQueries
}

// LastTolerance returns the tolerance passed to the last hit test.
func (s *Scene) LastTolerance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTolerance
}
