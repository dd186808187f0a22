package geometry

import "math"

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Square returns the closed outline of an axis-aligned square of half-size
// h centred on v. The first corner is repeated at the end.
func (v Vector2) Square(h float64) [5]Vector2 {
	return [5]Vector2{
		{X: v.X - h, Y: v.Y - h},
		{X: v.X - h, Y: v.Y + h},
		{X: v.X + h, Y: v.Y + h},
		{X: v.X + h, Y: v.Y - h},
		{X: v.X - h, Y: v.Y - h},
	}
}
