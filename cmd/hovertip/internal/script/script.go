// Package script parses pointer-trace scripts for the replay command.
package script

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/hovertip/pkg/config"
	"github.com/go-drift/hovertip/pkg/graphics"
	tiptest "github.com/go-drift/hovertip/pkg/testing"
)

// Event kinds.
const (
	KindEnter = "enter"
	KindMove  = "move"
	KindLeave = "leave"
)

// Script is a scripted plot surface plus a pointer trace.
type Script struct {
	Title    *Title        `yaml:"title,omitempty"`
	Elements []Element     `yaml:"elements"`
	Events   []Event       `yaml:"events"`
	Delays   config.Delays `yaml:"delays,omitempty"`
	// Tail is how long to keep the clock running after the last event.
	// Zero runs until no timer is left.
	Tail time.Duration `yaml:"tail,omitempty"`
}

// Title is the plot title area.
type Title struct {
	Rect    Rect   `yaml:"rect"`
	Tooltip string `yaml:"tooltip"`
}

// Element is one plot element.
type Element struct {
	Name    string `yaml:"name"`
	Rect    Rect   `yaml:"rect"`
	Z       int    `yaml:"z,omitempty"`
	Tooltip string `yaml:"tooltip,omitempty"`
}

// Rect is [left, top, width, height].
type Rect [4]float64

// Graphics converts r.
func (r Rect) Graphics() graphics.Rect {
	return graphics.RectFromLTWH(r[0], r[1], r[2], r[3])
}

// Event is one pointer event at a time offset from the start of the trace.
type Event struct {
	At   time.Duration `yaml:"at"`
	Kind string        `yaml:"kind"`
	X    float64       `yaml:"x,omitempty"`
	Y    float64       `yaml:"y,omitempty"`
}

// Point returns the event position.
func (e Event) Point() graphics.Offset {
	return graphics.Offset{X: e.X, Y: e.Y}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates script data. Events are sorted by time,
// keeping file order for equal times.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Delays.Validate(); err != nil {
		return nil, err
	}
	if s.Tail < 0 {
		return nil, fmt.Errorf("tail must not be negative (got %s)", s.Tail)
	}
	for i := range s.Events {
		e := &s.Events[i]
		e.Kind = strings.ToLower(strings.TrimSpace(e.Kind))
		switch e.Kind {
		case KindEnter, KindMove, KindLeave:
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q (use enter, move or leave)", i, e.Kind)
		}
		if e.At < 0 {
			return nil, fmt.Errorf("event %d: negative time %s", i, e.At)
		}
	}
	for i, el := range s.Elements {
		if el.Rect.Graphics().IsEmpty() {
			return nil, fmt.Errorf("element %d (%s): empty rect", i, el.Name)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].At < s.Events[j].At })
	return &s, nil
}

// Scene builds the hit-test scene described by the script. An element
// without an explicit tooltip uses its name.
func (s *Script) Scene() *tiptest.Scene {
	scene := tiptest.NewScene()
	for _, el := range s.Elements {
		text := el.Tooltip
		if text == "" {
			text = el.Name
		}
		scene.AddElement(&tiptest.Element{Name: el.Name, Area: el.Rect.Graphics(), Z: el.Z, Text: text})
	}
	if s.Title != nil {
		scene.SetTitle(s.Title.Rect.Graphics(), s.Title.Tooltip)
	}
	return scene
}

// Duration returns the time of the last event plus the tail.
func (s *Script) Duration() time.Duration {
	var last time.Duration
	if n := len(s.Events); n > 0 {
		last = s.Events[n-1].At
	}
	return last + s.Tail
}
