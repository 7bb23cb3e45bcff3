package graphics

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 10)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"inside", Offset{X: 15, Y: 15}, true},
		{"top left corner", Offset{X: 10, Y: 10}, true},
		{"right edge exclusive", Offset{X: 30, Y: 15}, false},
		{"bottom edge exclusive", Offset{X: 15, Y: 20}, false},
		{"outside", Offset{X: 0, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := RectFromLTWH(10, 10, 10, 10).Inflate(2)
	want := Rect{Left: 8, Top: 8, Right: 22, Bottom: 22}
	if r != want {
		t.Errorf("Inflate(2) = %v, want %v", r, want)
	}
	if !RectFromLTWH(0, 0, 2, 2).Inflate(-1).IsEmpty() {
		t.Error("expected shrinking a 2x2 rect by 1 to be empty")
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if !a.Intersect(RectFromLTWH(20, 20, 1, 1)).IsEmpty() {
		t.Error("expected disjoint rects to intersect empty")
	}
}

func TestOffsetIsFinite(t *testing.T) {
	if !(Offset{X: 1, Y: 2}).IsFinite() {
		t.Error("expected finite offset")
	}
	if (Offset{X: math.NaN()}).IsFinite() {
		t.Error("NaN offset reported finite")
	}
	if (Offset{Y: math.Inf(-1)}).IsFinite() {
		t.Error("Inf offset reported finite")
	}
}
