package geometry

import (
	"math"
	"testing"
)

func TestVector2Sub(t *testing.T) {
	result := NewVector2(5, 7).Sub(NewVector2(1, 2))

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Distance(t *testing.T) {
	distance := NewVector2(0, 0).Distance(NewVector2(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2DistanceSymmetric(t *testing.T) {
	a := NewVector2(-12.5, 7)
	b := NewVector2(3, -1.25)
	if a.Distance(b) != b.Distance(a) {
		t.Errorf("Distance not symmetric: %v vs %v", a.Distance(b), b.Distance(a))
	}
}

func TestVector2Square(t *testing.T) {
	sq := NewVector2(10, 10).Square(5)

	if sq[0] != sq[4] {
		t.Errorf("Square not closed: first %v, last %v", sq[0], sq[4])
	}
	for i, c := range sq {
		if math.Abs(c.X-10) != 5 || math.Abs(c.Y-10) != 5 {
			t.Errorf("corner %d at %v is not 5 units from centre on both axes", i, c)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	tests := []struct {
		p    Vector2
		want bool
	}{
		{NewVector2(10, 10), true},
		{NewVector2(30, 20), true},
		{NewVector2(20, 15), true},
		{NewVector2(9.9, 15), false},
		{NewVector2(20, 20.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 5}

	expected := Rect{X: 0, Y: -5, W: 15, H: 15}
	if got := a.Union(b); got != expected {
		t.Errorf("Union failed: expected %v, got %v", expected, got)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("Union with empty failed: expected %v, got %v", a, got)
	}
}
