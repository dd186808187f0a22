// Package term runs the editor in a terminal using tcell.
package term

import (
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// One terminal cell spans CellWidth x CellHeight scene units, roughly the
// aspect of a character, so the snap radius keeps its meaning.
const (
	CellWidth  = 10
	CellHeight = 20

	PanelColumns = 28
)

const (
	glyphPoint     = '•'
	glyphLine      = '·'
	glyphPreview   = '∙'
	glyphCursor    = '+'
	glyphHighlight = '□'
)

// Terminal owns the screen and feeds its events to the controller
type Terminal struct {
	screen  tcell.Screen
	ctrl    *sketch.Controller
	panel   *overlay.Panel
	palette *config.Palette
	logger  *zap.Logger

	cursor  geometry.Vector2
	buttons tcell.ButtonMask
	last    time.Time
	quit    bool
}

// New wires a terminal frontend. The screen must already be initialized.
func New(screen tcell.Screen, ctrl *sketch.Controller, panel *overlay.Panel, palette *config.Palette, logger *zap.Logger) *Terminal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Terminal{
		screen:  screen,
		ctrl:    ctrl,
		panel:   panel,
		palette: palette,
		logger:  logger,
		last:    time.Now(),
	}
}

// Run processes events until quit is requested or the screen is closed
func (t *Terminal) Run() {
	t.screen.EnableMouse()
	t.Frame()
	for !t.quit {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.HandleEvent(ev)
		t.Frame()
	}
}

// Quit reports whether the user asked to leave
func (t *Terminal) Quit() bool {
	return t.quit
}

// CellCentre converts a cell to the scene position at its centre
func CellCentre(x, y int) geometry.Vector2 {
	return geometry.NewVector2(
		float64(x)*CellWidth+CellWidth/2,
		float64(y)*CellHeight+CellHeight/2,
	)
}

// CellOf converts a scene position to the cell containing it
func CellOf(p geometry.Vector2) (int, int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// HandleEvent translates one tcell event into core events
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		pos := CellCentre(ev.Position())
		if pos != t.cursor {
			t.cursor = pos
			t.dispatch(sketch.Move{Pos: pos})
		}

		// tcell reports button state, not transitions
		held := ev.Buttons() & tcell.Button1
		switch {
		case held != 0 && t.buttons == 0:
			t.dispatch(sketch.Press{Button: sketch.ButtonPrimary, Pos: pos})
		case held == 0 && t.buttons != 0:
			t.dispatch(sketch.Release{Button: sketch.ButtonPrimary, Pos: pos})
		}
		t.buttons = held

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			t.dispatch(sketch.KeyPress{Key: sketch.KeyConfirm})
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.dispatch(sketch.KeyPress{Key: sketch.KeyQuit})
		case tcell.KeyF11:
			t.dispatch(sketch.KeyPress{Key: sketch.KeyFullscreen})
		case tcell.KeyRune:
			t.dispatch(sketch.KeyPress{Key: sketch.KeyOther, Rune: ev.Rune()})
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// Frame advances the controller clock and redraws
func (t *Terminal) Frame() {
	now := time.Now()
	t.apply(t.ctrl.Update(now.Sub(t.last)))
	t.last = now
	t.draw()
}

func (t *Terminal) dispatch(ev sketch.Event) {
	t.apply(t.ctrl.Dispatch(ev))
}

func (t *Terminal) apply(effect sketch.Effect) {
	switch effect {
	case sketch.EffectQuit:
		t.quit = true
	case sketch.EffectToggleFullscreen:
		t.logger.Debug("fullscreen is not available in a terminal")
	}
}

func tcellColour(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) draw() {
	pal := *t.palette
	base := tcell.StyleDefault.Background(tcellColour(pal.Background))
	t.screen.Fill(' ', base)

	scene := t.ctrl.Scene(t.cursor)

	lineStyle := base.Foreground(tcellColour(pal.Line))
	for _, l := range scene.Lines {
		t.plotLine(l, glyphLine, lineStyle)
	}
	if scene.Preview != nil {
		t.plotLine(*scene.Preview, glyphPreview, base.Foreground(tcellColour(config.Scale(pal.Line, 0.33))))
	}

	pointStyle := base.Foreground(tcellColour(pal.Point))
	for _, p := range scene.Points {
		x, y := CellOf(p)
		t.screen.SetContent(x, y, glyphPoint, nil, pointStyle)
	}

	if scene.Highlight != nil {
		x, y := CellOf(*scene.Highlight)
		t.screen.SetContent(x, y, glyphHighlight, nil, base.Foreground(tcellColour(pal.Highlight)))
	}
	if scene.Cursor != nil {
		x, y := CellOf(*scene.Cursor)
		t.screen.SetContent(x, y, glyphCursor, nil, base.Foreground(tcellColour(pal.Preview)))
	}

	t.drawPanel()
	t.screen.Show()
}

// plotLine rasterizes a segment onto cells with Bresenham's algorithm
func (t *Terminal) plotLine(l sketch.Line, glyph rune, style tcell.Style) {
	x0, y0 := CellOf(l.From)
	x1, y1 := CellOf(l.To)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		t.screen.SetContent(x0, y0, glyph, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (t *Terminal) drawPanel() {
	if t.panel == nil {
		return
	}
	panelStyle := tcell.StyleDefault.
		Background(tcell.NewRGBColor(20, 20, 20)).
		Foreground(tcell.ColorWhite)

	for _, w := range t.panel.Widgets() {
		x, y := CellOf(geometry.NewVector2(w.Rect.X, w.Rect.Y))
		cols := int(w.Rect.W / CellWidth)

		style := panelStyle
		switch w.Kind {
		case overlay.KindTitle:
			style = style.Bold(true)
		case overlay.KindButton:
			style = style.Background(tcell.NewRGBColor(60, 60, 60))
			if w.Hot || w.Active {
				style = style.Reverse(true)
			}
		}

		filled := -1
		if w.Kind == overlay.KindSlider {
			filled = int(math.Round(w.Value * float64(cols)))
		}

		text := []rune(w.Text)
		for i := 0; i < cols; i++ {
			r := ' '
			if i < len(text) {
				r = text[i]
			}
			s := style
			if i < filled {
				s = s.Background(tcell.NewRGBColor(70, 90, 140))
			}
			t.screen.SetContent(x+i, y, r, nil, s)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
