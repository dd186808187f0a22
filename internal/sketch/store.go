// Package sketch holds the editing core: the point/segment store, the
// nearest-point query, the mode state machine and the per-frame scene builder.
package sketch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// NoPoint marks the absence of a point index
const NoPoint = -1

// ErrPointIndex is the panic value (wrapped) for a point index the store
// never handed out. It signals a logic defect, not bad user input.
var ErrPointIndex = errors.New("sketch: point index out of range")

// Segment connects two stored points by index
type Segment struct {
	A, B int
}

// Store owns the points and segments of a drawing.
// Points are only ever appended, so an index stays valid forever.
type Store struct {
	points   []geometry.Vector2
	segments []Segment
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		points:   make([]geometry.Vector2, 0),
		segments: make([]Segment, 0),
	}
}

// AddPoint appends a point and returns its index
func (s *Store) AddPoint(pos geometry.Vector2) int {
	s.points = append(s.points, pos)
	return len(s.points) - 1
}

// SetPoint overwrites the coordinates of point i
func (s *Store) SetPoint(i int, pos geometry.Vector2) {
	s.mustHave(i)
	s.points[i] = pos
}

// AddSegment appends a segment between points a and b
func (s *Store) AddSegment(a, b int) {
	s.mustHave(a)
	s.mustHave(b)
	s.segments = append(s.segments, Segment{A: a, B: b})
}

// Point returns the coordinates of point i
func (s *Store) Point(i int) geometry.Vector2 {
	s.mustHave(i)
	return s.points[i]
}

// Endpoints resolves a segment against the current point positions
func (s *Store) Endpoints(seg Segment) (geometry.Vector2, geometry.Vector2) {
	return s.Point(seg.A), s.Point(seg.B)
}

// Points returns a copy of all points in index order
func (s *Store) Points() []geometry.Vector2 {
	return slices.Clone(s.points)
}

// Segments returns a copy of all segments in creation order
func (s *Store) Segments() []Segment {
	return slices.Clone(s.segments)
}

// Len returns the number of points
func (s *Store) Len() int {
	return len(s.points)
}

// SegmentCount returns the number of segments
func (s *Store) SegmentCount() int {
	return len(s.segments)
}

func (s *Store) mustHave(i int) {
	if i < 0 || i >= len(s.points) {
		panic(fmt.Errorf("%w: %d (have %d points)", ErrPointIndex, i, len(s.points)))
	}
}
