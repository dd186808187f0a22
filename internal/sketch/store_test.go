package sketch

import (
	"errors"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

func expectIndexPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic, got none", name)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPointIndex) {
			t.Errorf("%s: expected ErrPointIndex panic, got %v", name, r)
		}
	}()
	fn()
}

func TestStoreAddPointIndices(t *testing.T) {
	s := NewStore()
	for want := 0; want < 5; want++ {
		got := s.AddPoint(geometry.NewVector2(float64(want), 0))
		if got != want {
			t.Errorf("AddPoint failed: expected index %d, got %d", want, got)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len failed: expected 5, got %d", s.Len())
	}
}

func TestStoreSetPoint(t *testing.T) {
	s := NewStore()
	s.AddPoint(geometry.NewVector2(0, 0))
	s.AddPoint(geometry.NewVector2(1, 1))

	s.SetPoint(1, geometry.NewVector2(7, 8))

	if got := s.Point(1); got != geometry.NewVector2(7, 8) {
		t.Errorf("SetPoint failed: expected (7, 8), got %v", got)
	}
	if got := s.Point(0); got != geometry.NewVector2(0, 0) {
		t.Errorf("SetPoint touched another point: got %v", got)
	}
}

func TestStoreOutOfRangePanics(t *testing.T) {
	s := NewStore()
	s.AddPoint(geometry.NewVector2(0, 0))

	expectIndexPanic(t, "SetPoint(1)", func() { s.SetPoint(1, geometry.Vector2{}) })
	expectIndexPanic(t, "SetPoint(-1)", func() { s.SetPoint(-1, geometry.Vector2{}) })
	expectIndexPanic(t, "AddSegment(0, 3)", func() { s.AddSegment(0, 3) })
	expectIndexPanic(t, "Point(2)", func() { s.Point(2) })

	if s.SegmentCount() != 0 {
		t.Errorf("failed AddSegment must not store a segment, have %d", s.SegmentCount())
	}
}

func TestStoreSegmentsFollowPoints(t *testing.T) {
	s := NewStore()
	a := s.AddPoint(geometry.NewVector2(0, 0))
	b := s.AddPoint(geometry.NewVector2(10, 0))
	s.AddSegment(a, b)

	s.SetPoint(b, geometry.NewVector2(10, 10))

	from, to := s.Endpoints(s.Segments()[0])
	if from != geometry.NewVector2(0, 0) || to != geometry.NewVector2(10, 10) {
		t.Errorf("Endpoints failed: expected (0,0)-(10,10), got %v-%v", from, to)
	}
}

func TestStoreAccessorsReturnCopies(t *testing.T) {
	s := NewStore()
	s.AddPoint(geometry.NewVector2(1, 2))
	s.AddSegment(0, 0)

	pts := s.Points()
	pts[0] = geometry.NewVector2(99, 99)
	segs := s.Segments()
	segs[0] = Segment{A: 5, B: 5}

	if s.Point(0) != geometry.NewVector2(1, 2) {
		t.Errorf("Points() leaked internal storage")
	}
	if s.Segments()[0] != (Segment{A: 0, B: 0}) {
		t.Errorf("Segments() leaked internal storage")
	}
}
