package sketch

import "fmt"

// Mode is the interaction state. Each mode carries only its own sub-state;
// the set of modes is closed to this package.
type Mode interface {
	fmt.Stringer
	isMode()
}

// Menu accepts no drawing input; the overlay is interactive
type Menu struct{}

// PlacingPoints appends a point on every primary press
type PlacingPoints struct{}

// MovingPoint drags Selected, or waits for a pick when Selected is NoPoint
type MovingPoint struct {
	Selected int
}

// ConnectingPoints holds the first endpoint of a pending segment in Anchor,
// or NoPoint while waiting for one
type ConnectingPoints struct {
	Anchor int
}

func (Menu) isMode()             {}
func (PlacingPoints) isMode()    {}
func (MovingPoint) isMode()      {}
func (ConnectingPoints) isMode() {}

func (Menu) String() string          { return "Menu" }
func (PlacingPoints) String() string { return "Place Points" }

func (m MovingPoint) String() string {
	if m.Dragging() {
		return fmt.Sprintf("Move Points (dragging %d)", m.Selected)
	}
	return "Move Points"
}

func (c ConnectingPoints) String() string {
	if c.Anchored() {
		return fmt.Sprintf("Connect Points (from %d)", c.Anchor)
	}
	return "Connect Points"
}

// Dragging reports whether a point is currently picked up
func (m MovingPoint) Dragging() bool {
	return m.Selected != NoPoint
}

// Anchored reports whether the first endpoint has been chosen
func (c ConnectingPoints) Anchored() bool {
	return c.Anchor != NoPoint
}
