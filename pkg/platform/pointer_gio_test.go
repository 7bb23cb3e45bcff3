package platform

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"

	"github.com/go-drift/hovertip/pkg/graphics"
)

type recordedCall struct {
	kind  string
	point graphics.Offset
}

type recordingTarget struct {
	calls []recordedCall
}

func (r *recordingTarget) OnPointerEnter(p graphics.Offset) {
	r.calls = append(r.calls, recordedCall{"enter", p})
}
func (r *recordingTarget) OnPointerMove(p graphics.Offset) {
	r.calls = append(r.calls, recordedCall{"move", p})
}
func (r *recordingTarget) OnPointerLeave() {
	r.calls = append(r.calls, recordedCall{kind: "leave"})
}

func TestGioPointer_Lifecycle(t *testing.T) {
	target := &recordingTarget{}
	g := &GioPointer{Target: target, Scale: 2}

	events := []pointer.Event{
		{Kind: pointer.Enter, Position: f32.Point{X: 20, Y: 40}},
		{Kind: pointer.Move, Position: f32.Point{X: 22, Y: 40}},
		{Kind: pointer.Drag, Position: f32.Point{X: 24, Y: 40}},
		{Kind: pointer.Press, Position: f32.Point{X: 24, Y: 40}},
		{Kind: pointer.Leave},
	}
	for _, ev := range events {
		g.Handle(ev)
	}

	want := []recordedCall{
		{"enter", graphics.Offset{X: 10, Y: 20}},
		{"move", graphics.Offset{X: 11, Y: 20}},
		{"move", graphics.Offset{X: 12, Y: 20}},
		{kind: "leave"},
	}
	if len(target.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", target.calls, want)
	}
	for i := range want {
		if target.calls[i] != want[i] {
			t.Errorf("call[%d] = %v, want %v", i, target.calls[i], want[i])
		}
	}
	if g.Inside() {
		t.Error("expected pointer outside after Leave")
	}
}

func TestGioPointer_MoveWithoutEnter(t *testing.T) {
	target := &recordingTarget{}
	g := &GioPointer{Target: target}

	if !g.Handle(pointer.Event{Kind: pointer.Move, Position: f32.Point{X: 3, Y: 4}}) {
		t.Fatal("move should be consumed")
	}
	if len(target.calls) != 1 || target.calls[0].kind != "enter" {
		t.Fatalf("calls = %v, want a single enter", target.calls)
	}
	if target.calls[0].point != (graphics.Offset{X: 3, Y: 4}) {
		t.Errorf("point = %v, want unscaled {3 4}", target.calls[0].point)
	}
}

func TestGioPointer_IgnoresOtherPointers(t *testing.T) {
	target := &recordingTarget{}
	g := &GioPointer{Target: target}

	g.Handle(pointer.Event{Kind: pointer.Enter, PointerID: 1})
	if g.Handle(pointer.Event{Kind: pointer.Move, PointerID: 2}) {
		t.Error("second pointer should be ignored")
	}
	if g.Handle(pointer.Event{Kind: pointer.Leave, PointerID: 2}) {
		t.Error("second pointer leave should be ignored")
	}
	g.Handle(pointer.Event{Kind: pointer.Cancel, PointerID: 1})
	if len(target.calls) != 2 || target.calls[1].kind != "leave" {
		t.Errorf("calls = %v, want enter then leave", target.calls)
	}
}

func TestGioPointer_LeaveWhileOutside(t *testing.T) {
	target := &recordingTarget{}
	g := &GioPointer{Target: target}
	if g.Handle(pointer.Event{Kind: pointer.Leave}) {
		t.Error("leave without enter should not be consumed")
	}
	if len(target.calls) != 0 {
		t.Errorf("calls = %v, want none", target.calls)
	}
}

func TestGioPointer_Filter(t *testing.T) {
	g := &GioPointer{}
	tag := new(int)
	f := g.Filter(tag)
	if f.Target != tag {
		t.Error("filter target mismatch")
	}
	if f.Kinds&pointer.Enter == 0 || f.Kinds&pointer.Leave == 0 || f.Kinds&pointer.Move == 0 {
		t.Errorf("filter kinds %v missing enter/leave/move", f.Kinds)
	}
}

func TestGioPointer_CancelEndsTrackedPointer(t *testing.T) {
	target := &recordingTarget{}
	g := &GioPointer{Target: target}

	g.Handle(pointer.Event{Kind: pointer.Enter, PointerID: 3})
	// The router delivers Cancel with a zero PointerID.
	if !g.Handle(pointer.Event{Kind: pointer.Cancel}) {
		t.Error("cancel should be consumed while a pointer is inside")
	}
	if g.Inside() {
		t.Error("expected pointer outside after Cancel")
	}
	if len(target.calls) != 2 || target.calls[1].kind != "leave" {
		t.Errorf("calls = %v, want enter then leave", target.calls)
	}
	if g.Handle(pointer.Event{Kind: pointer.Cancel}) {
		t.Error("second cancel should not be consumed")
	}
}
