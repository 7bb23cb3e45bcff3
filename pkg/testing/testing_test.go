package testing

import (
	"testing"
	"time"

	"github.com/go-drift/hovertip/pkg/graphics"
	"github.com/go-drift/hovertip/pkg/hittest"
)

func TestScene_HitTestInsertionOrder(t *testing.T) {
	s := NewScene()
	low := s.Add("low", graphics.RectFromLTWH(0, 0, 10, 10), 0)
	high := s.Add("high", graphics.RectFromLTWH(0, 0, 10, 10), 3)
	s.AddDecoration(graphics.RectFromLTWH(50, 50, 1, 1), 9)

	got := s.HitTest(graphics.Offset{X: 5, Y: 5}, 0)
	if len(got) != 2 || got[0].Element != low || got[1].Element != high {
		t.Fatalf("HitTest = %v, want [low high]", got)
	}
	if s.HitQueries() != 1 {
		t.Errorf("HitQueries = %d, want 1", s.HitQueries())
	}

	el, ok := hittest.NewDispatcher(s).First(graphics.Offset{X: 5, Y: 5}, 0)
	if !ok || el != high {
		t.Errorf("dispatcher First = %v, want high", el)
	}
}

func TestScene_Tolerance(t *testing.T) {
	s := NewScene()
	s.Add("a", graphics.RectFromLTWH(0, 0, 10, 10), 0)
	if len(s.HitTest(graphics.Offset{X: 11, Y: 5}, 0)) != 0 {
		t.Error("hit outside rect with zero tolerance")
	}
	if len(s.HitTest(graphics.Offset{X: 11, Y: 5}, 2)) != 1 {
		t.Error("missed within tolerance")
	}
	if s.LastTolerance() != 2 {
		t.Errorf("LastTolerance = %v, want 2", s.LastTolerance())
	}
}

func TestScene_Title(t *testing.T) {
	s := NewScene()
	if _, ok := s.TitleArea(); ok {
		t.Error("new scene should have no title")
	}
	s.SetTitle(graphics.RectFromLTWH(0, 0, 5, 5), "title")
	if area, ok := s.TitleArea(); !ok || area.Width() != 5 {
		t.Errorf("TitleArea = %v, %v", area, ok)
	}
	if s.TitleToolTip() != "title" {
		t.Errorf("TitleToolTip = %q", s.TitleToolTip())
	}
}

func TestRecordingView(t *testing.T) {
	sched := NewManualScheduler()
	v := NewRecordingView(sched)

	sched.Advance(100 * time.Millisecond)
	v.SetText("a")
	v.SetVisible(true)
	sched.Advance(50 * time.Millisecond)
	v.SetVisible(false)
	v.SetText("b")
	v.SetVisible(true)

	events := v.Events()
	if len(events) != 5 {
		t.Fatalf("recorded %d events, want 5", len(events))
	}
	if events[0].At != 100*time.Millisecond || events[2].At != 150*time.Millisecond {
		t.Errorf("timestamps = %v", events)
	}

	shown := v.Shown()
	if len(shown) != 2 || shown[0].Text != "a" || shown[1].Text != "b" {
		t.Errorf("Shown = %v, want a then b", shown)
	}

	v.Reset()
	if len(v.Events()) != 0 {
		t.Error("Reset kept events")
	}
	if !v.Visible() || v.Text() != "b" {
		t.Error("Reset should keep the current view state")
	}
}
