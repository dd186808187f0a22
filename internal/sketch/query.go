package sketch

import "github.com/philipparndt/gosketch/pkg/geometry"

// DefaultSnapRadius is the selection distance used when none is configured
const DefaultSnapRadius = 20.0

// Finder locates the stored point nearest to a position
type Finder interface {
	FindNearest(points []geometry.Vector2, pos geometry.Vector2, maxDist float64) (int, bool)
}

// LinearFinder scans every point. Fine for hand-placed drawings.
type LinearFinder struct{}

// FindNearest implements Finder
func (LinearFinder) FindNearest(points []geometry.Vector2, pos geometry.Vector2, maxDist float64) (int, bool) {
	return FindNearest(points, pos, maxDist)
}

// FindNearest returns the index of the point closest to pos whose distance
// is at most maxDist. Equal distances resolve to the lower index.
func FindNearest(points []geometry.Vector2, pos geometry.Vector2, maxDist float64) (int, bool) {
	nearest := NoPoint
	minDist := 0.0

	for i, p := range points {
		dist := pos.Distance(p)
		if dist > maxDist {
			continue
		}
		if nearest == NoPoint || dist < minDist {
			nearest = i
			minDist = dist
		}
	}

	return nearest, nearest != NoPoint
}

// Snapper pairs a Finder with the snap radius. The machine and the scene
// builder share one Snapper so a highlight always predicts the next pick.
type Snapper struct {
	finder Finder
	radius float64
}

// NewSnapper creates a Snapper. A nil finder falls back to LinearFinder.
func NewSnapper(finder Finder, radius float64) *Snapper {
	if finder == nil {
		finder = LinearFinder{}
	}
	return &Snapper{finder: finder, radius: radius}
}

// Radius returns the current snap radius
func (s *Snapper) Radius() float64 {
	return s.radius
}

// SetRadius changes the snap radius. Non-positive values are ignored.
func (s *Snapper) SetRadius(r float64) {
	if r > 0 {
		s.radius = r
	}
}

// Nearest finds the stored point within the snap radius of pos
func (s *Snapper) Nearest(store *Store, pos geometry.Vector2) (int, bool) {
	return s.finder.FindNearest(store.points, pos, s.radius)
}
