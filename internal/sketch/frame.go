package sketch

import (
	"time"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Stats summarizes the editor for the overlay's debug section
type Stats struct {
	Points   int
	Segments int
	Radius   float64
	Elapsed  time.Duration
}

// Overlay is the immediate-mode control panel drawn over the scene
type Overlay interface {
	// SetElapsed advances the overlay's clock
	SetElapsed(d time.Duration)
	// HandleRaw receives input while the machine is in Menu mode
	HandleRaw(ev Event)
	// Build lays out this frame's controls for mode and returns the command
	// the user invoked, if any
	Build(mode Mode, stats Stats) (Command, bool)
}

// NopOverlay is an overlay with no controls
type NopOverlay struct{}

func (NopOverlay) SetElapsed(time.Duration)          {}
func (NopOverlay) HandleRaw(Event)                   {}
func (NopOverlay) Build(Mode, Stats) (Command, bool) { return CommandNone, false }

// Line is a resolved segment
type Line struct {
	From, To geometry.Vector2
}

// Scene describes everything to draw for one frame
type Scene struct {
	Mode   Mode
	Points []geometry.Vector2
	Lines  []Line

	Cursor    *geometry.Vector2 // marker under the pointer while placing
	Highlight *geometry.Vector2 // snappable point near the pointer
	Preview   *Line             // pending segment from the anchor
}

// Controller runs one frame at a time: it routes input, advances the
// overlay and assembles the scene.
type Controller struct {
	machine *Machine
	snap    *Snapper
	overlay Overlay
	elapsed time.Duration
}

// NewController wires a machine, its snapper and an overlay
func NewController(machine *Machine, snap *Snapper, overlay Overlay) *Controller {
	if overlay == nil {
		overlay = NopOverlay{}
	}
	return &Controller{
		machine: machine,
		snap:    snap,
		overlay: overlay,
	}
}

// Machine returns the controlled state machine
func (c *Controller) Machine() *Machine {
	return c.machine
}

// Snapper returns the shared nearest-point query
func (c *Controller) Snapper() *Snapper {
	return c.snap
}

// Elapsed returns the time accumulated by Update
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Dispatch routes a raw input event. The overlay only sees it in Menu mode;
// the machine always does.
func (c *Controller) Dispatch(ev Event) Effect {
	if _, isCommand := ev.(Command); !isCommand && c.machine.AcceptsOverlayInput() {
		c.overlay.HandleRaw(ev)
	}
	return c.machine.Handle(ev)
}

// Update advances the frame clock by dt, builds the overlay and applies at
// most one command from it
func (c *Controller) Update(dt time.Duration) Effect {
	c.elapsed += dt
	c.overlay.SetElapsed(c.elapsed)

	cmd, ok := c.overlay.Build(c.machine.Mode(), c.Stats())
	if !ok || cmd == CommandNone {
		return EffectNone
	}
	return c.machine.Handle(cmd)
}

// Stats returns the current summary
func (c *Controller) Stats() Stats {
	store := c.machine.Store()
	return Stats{
		Points:   store.Len(),
		Segments: store.SegmentCount(),
		Radius:   c.snap.Radius(),
		Elapsed:  c.elapsed,
	}
}

// Scene assembles the render description for a pointer at cursor
func (c *Controller) Scene(cursor geometry.Vector2) Scene {
	store := c.machine.Store()
	mode := c.machine.Mode()

	scene := Scene{
		Mode:   mode,
		Points: store.Points(),
		Lines:  make([]Line, 0, store.SegmentCount()),
	}
	for _, seg := range store.segments {
		from, to := store.Endpoints(seg)
		scene.Lines = append(scene.Lines, Line{From: from, To: to})
	}

	switch mode := mode.(type) {
	case PlacingPoints:
		pos := cursor
		scene.Cursor = &pos

	case MovingPoint:
		if !mode.Dragging() {
			scene.Highlight = c.highlight(cursor)
		}

	case ConnectingPoints:
		scene.Highlight = c.highlight(cursor)
		if mode.Anchored() {
			end := cursor
			if scene.Highlight != nil {
				end = *scene.Highlight
			}
			scene.Preview = &Line{From: store.Point(mode.Anchor), To: end}
		}
	}

	return scene
}

func (c *Controller) highlight(cursor geometry.Vector2) *geometry.Vector2 {
	i, ok := c.snap.Nearest(c.machine.Store(), cursor)
	if !ok {
		return nil
	}
	p := c.machine.Store().Point(i)
	return &p
}
