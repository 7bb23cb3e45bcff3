package script

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/hovertip/pkg/graphics"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
title:
  rect: [0, 0, 100, 10]
  tooltip: Title
elements:
  - name: A
    rect: [0, 10, 50, 50]
    z: 2
  - name: B
    rect: [50, 10, 50, 50]
    tooltip: Series B
events:
  - {at: 2s, kind: Leave}
  - {at: 0s, kind: enter, x: 1, y: 20}
  - {at: 2s, kind: move, x: 3, y: 20}
tail: 500ms
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	kinds := []string{s.Events[0].Kind, s.Events[1].Kind, s.Events[2].Kind}
	if kinds[0] != KindEnter || kinds[1] != KindLeave || kinds[2] != KindMove {
		t.Errorf("event order = %v, want enter leave move", kinds)
	}
	if s.Duration() != 2500*time.Millisecond {
		t.Errorf("Duration = %v, want 2.5s", s.Duration())
	}

	scene := s.Scene()
	hits := scene.HitTest(graphics.Offset{X: 10, Y: 20}, 0)
	if len(hits) != 1 {
		t.Fatalf("hits = %v, want one", hits)
	}
	if el, ok := hits[0].Element.(interface{ ToolTip() string }); !ok || el.ToolTip() != "A" {
		t.Errorf("element without tooltip should use its name, got %v", hits[0].Element)
	}
	if hits[0].Z != 2 {
		t.Errorf("Z = %d, want 2", hits[0].Z)
	}
	if scene.TitleToolTip() != "Title" {
		t.Errorf("TitleToolTip = %q", scene.TitleToolTip())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad kind", "events:\n  - {at: 0s, kind: click}\n", "unknown kind"},
		{"negative time", "events:\n  - {at: -1s, kind: move}\n", "negative time"},
		{"empty rect", "elements:\n  - {name: A, rect: [0, 0, 0, 5]}\n", "empty rect"},
		{"short rect", "elements:\n  - {name: A, rect: [0, 0]}\n", "failed to parse"},
		{"negative delay", "delays:\n  initial: -5ms\n", "delays.initial"},
		{"negative tail", "tail: -1s\n", "tail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
