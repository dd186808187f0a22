package sketch

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

func pts(coords ...float64) []geometry.Vector2 {
	out := make([]geometry.Vector2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geometry.NewVector2(coords[i], coords[i+1]))
	}
	return out
}

func TestFindNearest(t *testing.T) {
	points := pts(0, 0, 100, 0)

	tests := []struct {
		name    string
		points  []geometry.Vector2
		query   geometry.Vector2
		maxDist float64
		want    int
		wantOK  bool
	}{
		{"near first", points, geometry.NewVector2(5, 0), 20, 0, true},
		{"near second", points, geometry.NewVector2(98, 3), 20, 1, true},
		{"between, out of range", points, geometry.NewVector2(50, 0), 20, NoPoint, false},
		{"empty store", nil, geometry.NewVector2(0, 0), 20, NoPoint, false},
		{"exact hit", points, geometry.NewVector2(100, 0), 0, 1, true},
		{"closest of several in range", pts(0, 0, 8, 0, 3, 0), geometry.NewVector2(4, 0), 20, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindNearest(tt.points, tt.query, tt.maxDist)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestFindNearestTieBreakLowerIndex(t *testing.T) {
	// (-10,0) and (10,0) are both 10 from the origin
	points := pts(30, 30, -10, 0, 10, 0, 0, 10)

	for i := 0; i < 3; i++ {
		got, ok := FindNearest(points, geometry.NewVector2(0, 0), 20)
		if !ok || got != 1 {
			t.Errorf("tie-break failed: expected index 1, got (%d, %v)", got, ok)
		}
	}
}

func TestFindNearestRadiusBoundary(t *testing.T) {
	points := pts(20, 0)
	origin := geometry.NewVector2(0, 0)

	if got, ok := FindNearest(points, origin, 20); !ok || got != 0 {
		t.Errorf("point at exactly max distance must be included, got (%d, %v)", got, ok)
	}

	below := math.Nextafter(20, 0)
	if got, ok := FindNearest(points, origin, below); ok {
		t.Errorf("point beyond max distance must be excluded, got %d", got)
	}
}

func TestFindNearestIdempotent(t *testing.T) {
	points := pts(1, 1, 4, 4, 9, 9)
	q := geometry.NewVector2(3, 3)

	first, firstOK := FindNearest(points, q, 20)
	second, secondOK := FindNearest(points, q, 20)
	if first != second || firstOK != secondOK {
		t.Errorf("repeated query differs: (%d, %v) then (%d, %v)", first, firstOK, second, secondOK)
	}
}

type countingFinder struct {
	calls int
}

func (f *countingFinder) FindNearest(points []geometry.Vector2, pos geometry.Vector2, maxDist float64) (int, bool) {
	f.calls++
	return FindNearest(points, pos, maxDist)
}

func TestSnapperUsesFinderAndRadius(t *testing.T) {
	finder := &countingFinder{}
	snap := NewSnapper(finder, 5)
	store := NewStore()
	store.AddPoint(geometry.NewVector2(0, 0))

	if _, ok := snap.Nearest(store, geometry.NewVector2(8, 0)); ok {
		t.Errorf("expected no point within radius 5")
	}
	snap.SetRadius(10)
	if i, ok := snap.Nearest(store, geometry.NewVector2(8, 0)); !ok || i != 0 {
		t.Errorf("expected point 0 within radius 10, got (%d, %v)", i, ok)
	}
	snap.SetRadius(-3)
	if snap.Radius() != 10 {
		t.Errorf("non-positive radius must be ignored, got %v", snap.Radius())
	}
	if finder.calls != 2 {
		t.Errorf("expected 2 finder calls, got %d", finder.calls)
	}
}
