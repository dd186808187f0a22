package sketch

import (
	"testing"
	"time"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"go.uber.org/zap"
)

type recordingOverlay struct {
	raw     []Event
	elapsed time.Duration
	modes   []Mode
	next    Command
}

func (o *recordingOverlay) SetElapsed(d time.Duration) { o.elapsed = d }
func (o *recordingOverlay) HandleRaw(ev Event)         { o.raw = append(o.raw, ev) }
func (o *recordingOverlay) Build(mode Mode, _ Stats) (Command, bool) {
	o.modes = append(o.modes, mode)
	cmd := o.next
	o.next = CommandNone
	return cmd, cmd != CommandNone
}

func newTestController(overlay Overlay, points ...geometry.Vector2) *Controller {
	m := newTestMachine(points...)
	return NewController(m, m.snap, overlay)
}

func TestControllerRoutesRawInputOnlyInMenu(t *testing.T) {
	overlay := &recordingOverlay{}
	c := newTestController(overlay)

	c.Dispatch(press(1, 1))
	c.Dispatch(KeyPress{Key: KeyOther, Rune: 'p'})
	if len(overlay.raw) != 2 {
		t.Fatalf("expected overlay to see 2 events in Menu, got %d", len(overlay.raw))
	}

	c.Dispatch(CommandPlace)
	if len(overlay.raw) != 2 {
		t.Errorf("commands must not be echoed to the overlay")
	}

	c.Dispatch(press(5, 5))
	c.Dispatch(Move{Pos: v(6, 6)})
	if len(overlay.raw) != 2 {
		t.Errorf("overlay must not see input outside Menu, got %d events", len(overlay.raw))
	}
	if c.Machine().Store().Len() != 1 {
		t.Errorf("machine must still receive input, have %d points", c.Machine().Store().Len())
	}
}

func TestControllerUpdateAppliesOverlayCommand(t *testing.T) {
	overlay := &recordingOverlay{next: CommandConnect}
	c := newTestController(overlay)

	c.Update(16 * time.Millisecond)
	if c.Machine().Mode() != (ConnectingPoints{Anchor: NoPoint}) {
		t.Errorf("expected overlay command to apply, got %v", c.Machine().Mode())
	}
	if _, ok := overlay.modes[0].(Menu); !ok {
		t.Errorf("overlay must be built with the mode before the command, got %v", overlay.modes[0])
	}

	c.Update(16 * time.Millisecond)
	if overlay.elapsed != 32*time.Millisecond || c.Elapsed() != 32*time.Millisecond {
		t.Errorf("elapsed failed: expected 32ms, got %v / %v", overlay.elapsed, c.Elapsed())
	}
}

func TestControllerUpdateReturnsEffects(t *testing.T) {
	overlay := &recordingOverlay{next: CommandQuit}
	c := newTestController(overlay)

	if got := c.Update(time.Millisecond); got != EffectQuit {
		t.Errorf("expected EffectQuit, got %v", got)
	}
	if got := c.Update(time.Millisecond); got != EffectNone {
		t.Errorf("expected EffectNone, got %v", got)
	}
}

func TestSceneAlwaysHasGeometry(t *testing.T) {
	c := newTestController(nil, v(0, 0), v(100, 0), v(50, 50))
	c.Machine().Store().AddSegment(0, 2)

	scene := c.Scene(v(0, 0))
	if len(scene.Points) != 3 || len(scene.Lines) != 1 {
		t.Fatalf("expected 3 points and 1 line, got %d and %d", len(scene.Points), len(scene.Lines))
	}
	if scene.Lines[0] != (Line{From: v(0, 0), To: v(50, 50)}) {
		t.Errorf("unexpected line %v", scene.Lines[0])
	}
	if scene.Cursor != nil || scene.Highlight != nil || scene.Preview != nil {
		t.Errorf("Menu must suppress previews, got %+v", scene)
	}
}

func TestScenePlacingShowsCursor(t *testing.T) {
	c := newTestController(nil, v(0, 0))
	c.Dispatch(CommandPlace)

	scene := c.Scene(v(1, 1))
	if scene.Cursor == nil || *scene.Cursor != v(1, 1) {
		t.Errorf("expected cursor marker at (1,1), got %v", scene.Cursor)
	}
	if scene.Highlight != nil {
		t.Errorf("placing must not highlight, got %v", scene.Highlight)
	}
}

func TestSceneMovingHighlight(t *testing.T) {
	c := newTestController(nil, v(0, 0), v(100, 0))
	c.Dispatch(CommandMove)

	if scene := c.Scene(v(3, 4)); scene.Highlight == nil || *scene.Highlight != v(0, 0) {
		t.Errorf("expected highlight at (0,0), got %v", scene.Highlight)
	}
	if scene := c.Scene(v(50, 0)); scene.Highlight != nil {
		t.Errorf("expected no highlight, got %v", scene.Highlight)
	}

	c.Dispatch(press(0, 0))
	if scene := c.Scene(v(100, 0)); scene.Highlight != nil {
		t.Errorf("dragging must not highlight, got %v", scene.Highlight)
	}
}

func TestSceneConnectingPreview(t *testing.T) {
	c := newTestController(nil, v(0, 0), v(100, 0))
	c.Dispatch(CommandConnect)

	if scene := c.Scene(v(40, 40)); scene.Preview != nil {
		t.Errorf("no anchor, expected no preview, got %v", scene.Preview)
	}

	c.Dispatch(press(1, 1))

	free := c.Scene(v(50, 30))
	if free.Preview == nil || *free.Preview != (Line{From: v(0, 0), To: v(50, 30)}) {
		t.Errorf("expected preview to cursor, got %v", free.Preview)
	}
	if free.Highlight != nil {
		t.Errorf("expected no highlight away from points, got %v", free.Highlight)
	}

	snapped := c.Scene(v(90, 5))
	if snapped.Preview == nil || *snapped.Preview != (Line{From: v(0, 0), To: v(100, 0)}) {
		t.Errorf("expected preview snapped to (100,0), got %v", snapped.Preview)
	}
	if snapped.Highlight == nil || *snapped.Highlight != v(100, 0) {
		t.Errorf("expected highlight at (100,0), got %v", snapped.Highlight)
	}
}

func TestScenePreviewFollowsMovedAnchor(t *testing.T) {
	c := newTestController(nil, v(0, 0))
	c.Dispatch(CommandConnect)
	c.Dispatch(press(0, 0))
	c.Machine().Store().SetPoint(0, v(10, 10))

	scene := c.Scene(v(200, 200))
	if scene.Preview == nil || scene.Preview.From != v(10, 10) {
		t.Errorf("preview must start at the anchor's current position, got %v", scene.Preview)
	}
}

// What is highlighted is exactly what the next press selects.
func TestSceneHighlightPredictsSelection(t *testing.T) {
	points := []geometry.Vector2{v(0, 0), v(30, 0), v(15, 25), v(15, -25), v(60, 60)}

	for x := -30.0; x <= 90; x += 7.5 {
		for y := -45.0; y <= 90; y += 7.5 {
			c := newTestController(nil, points...)
			c.Dispatch(CommandMove)
			cursor := v(x, y)

			scene := c.Scene(cursor)
			c.Dispatch(Press{Button: ButtonPrimary, Pos: cursor})
			mode := c.Machine().Mode().(MovingPoint)

			if scene.Highlight == nil {
				if mode.Dragging() {
					t.Errorf("cursor %v: nothing highlighted but press picked %d", cursor, mode.Selected)
				}
				continue
			}
			if !mode.Dragging() || points[mode.Selected] != *scene.Highlight {
				t.Errorf("cursor %v: highlighted %v but press gave %v", cursor, *scene.Highlight, mode)
			}
		}
	}
}

func TestSceneUsesSharedRadius(t *testing.T) {
	m := NewMachine(NewStore(), NewSnapper(nil, 5), zap.NewNop())
	m.Store().AddPoint(v(0, 0))
	c := NewController(m, m.snap, nil)
	c.Dispatch(CommandMove)

	if scene := c.Scene(v(8, 0)); scene.Highlight != nil {
		t.Errorf("radius 5: expected no highlight at distance 8")
	}
	c.Snapper().SetRadius(10)
	if scene := c.Scene(v(8, 0)); scene.Highlight == nil {
		t.Errorf("radius 10: expected highlight at distance 8")
	}
	c.Dispatch(press(8, 0))
	if !c.Machine().Mode().(MovingPoint).Dragging() {
		t.Errorf("radius 10: press must pick the highlighted point")
	}
}

func TestControllerStats(t *testing.T) {
	c := newTestController(nil, v(0, 0), v(1, 1))
	c.Machine().Store().AddSegment(0, 1)
	c.Update(time.Second)

	stats := c.Stats()
	if stats.Points != 2 || stats.Segments != 1 || stats.Radius != DefaultSnapRadius || stats.Elapsed != time.Second {
		t.Errorf("unexpected stats %+v", stats)
	}
}
