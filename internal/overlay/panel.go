// Package overlay implements the immediate-mode control panel shown over
// the drawing: mode buttons, colour and radius settings, debug lines.
package overlay

import (
	"fmt"
	"image/color"
	"time"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// WidgetKind tells renderers how to draw a widget
type WidgetKind int

const (
	KindTitle WidgetKind = iota
	KindLabel
	KindButton
	KindSlider
)

// Widget is one laid-out control
type Widget struct {
	ID     string
	Kind   WidgetKind
	Text   string
	Rect   geometry.Rect
	Value  float64 // slider fill, 0..1
	Hot    bool    // pointer is over it
	Active bool    // held down or just clicked
}

const flashDuration = 150 * time.Millisecond

// Panel is the overlay. It implements sketch.Overlay.
type Panel struct {
	style   Style
	palette *config.Palette
	snap    *sketch.Snapper

	elapsed time.Duration

	// input gathered by HandleRaw between frames
	pointer   geometry.Vector2
	down      bool
	pressedOn string
	clicked   string

	flashID    string
	flashUntil time.Duration

	// layout of the frame being built
	widgets []Widget
	cursorY float64
}

// NewPanel creates a panel editing palette and the snapper's radius.
// Either may be nil, which hides the matching settings.
func NewPanel(style Style, palette *config.Palette, snap *sketch.Snapper) *Panel {
	return &Panel{
		style:   style,
		palette: palette,
		snap:    snap,
	}
}

var shortcuts = map[rune]string{
	'p': "place",
	'm': "move",
	'c': "connect",
}

// SetElapsed implements sketch.Overlay
func (p *Panel) SetElapsed(d time.Duration) {
	p.elapsed = d
}

// HandleRaw implements sketch.Overlay
func (p *Panel) HandleRaw(ev sketch.Event) {
	switch ev := ev.(type) {
	case sketch.Press:
		p.pointer = ev.Pos
		if ev.Button != sketch.ButtonPrimary {
			return
		}
		p.down = true
		p.pressedOn = p.widgetAt(ev.Pos)
	case sketch.Move:
		p.pointer = ev.Pos
	case sketch.Release:
		p.pointer = ev.Pos
		if ev.Button != sketch.ButtonPrimary {
			return
		}
		if p.pressedOn != "" && p.widgetAt(ev.Pos) == p.pressedOn {
			p.clicked = p.pressedOn
		}
		p.down = false
		p.pressedOn = ""
	case sketch.KeyPress:
		if id, ok := shortcuts[ev.Rune]; ok {
			p.clicked = id
		}
	}
}

// Build implements sketch.Overlay
func (p *Panel) Build(mode sketch.Mode, stats sketch.Stats) (sketch.Command, bool) {
	p.begin()

	_, inMenu := mode.(sketch.Menu)
	if !inMenu {
		// the release of a held button never reaches us outside Menu
		p.down = false
		p.pressedOn = ""
	}

	cmd := sketch.CommandNone
	pick := func(id, label string, c sketch.Command) {
		if p.button(id, label) && cmd == sketch.CommandNone {
			cmd = c
		}
	}

	p.title("Menu")
	if inMenu {
		pick("place", "Place Points", sketch.CommandPlace)
		pick("move", "Move Points", sketch.CommandMove)
		pick("connect", "Connect Points", sketch.CommandConnect)
		pick("fullscreen", "Fullscreen (F11)", sketch.CommandFullscreen)
		pick("quit", "Quit (Esc)", sketch.CommandQuit)

		if p.palette != nil {
			p.label("background color " + config.Hex(p.palette.Background))
			p.channelSliders("bg", &p.palette.Background)
			p.label("line color " + config.Hex(p.palette.Line))
			p.channelSliders("line", &p.palette.Line)
		}
		if p.snap != nil {
			r := p.snap.Radius()
			if p.slider("radius", fmt.Sprintf("snap radius %.0f", r), &r, 5, 60) {
				p.snap.SetRadius(r)
			}
		}
	} else {
		p.label("Press ENTER to finish")
	}

	p.label(fmt.Sprintf("mode: %s", mode))
	p.label(fmt.Sprintf("points: %d  segments: %d", stats.Points, stats.Segments))
	p.label(fmt.Sprintf("time: %.1fs", stats.Elapsed.Seconds()))

	p.clicked = ""
	return cmd, cmd != sketch.CommandNone
}

// Widgets returns the layout produced by the last Build
func (p *Panel) Widgets() []Widget {
	return p.widgets
}

// Bounds returns the panel's background rectangle
func (p *Panel) Bounds() geometry.Rect {
	var r geometry.Rect
	for _, w := range p.widgets {
		r = r.Union(w.Rect)
	}
	if r == (geometry.Rect{}) {
		return r
	}
	pad := p.style.Padding
	return geometry.Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Style returns the layout style
func (p *Panel) Style() Style {
	return p.style
}

func (p *Panel) begin() {
	p.widgets = p.widgets[:0]
	p.cursorY = p.style.Origin.Y + p.style.Padding
}

func (p *Panel) next(id string, kind WidgetKind, text string) *Widget {
	rect := geometry.Rect{
		X: p.style.Origin.X + p.style.Padding,
		Y: p.cursorY,
		W: p.style.Width - 2*p.style.Padding,
		H: p.style.RowHeight(),
	}
	p.cursorY += rect.H + p.style.Spacing
	p.widgets = append(p.widgets, Widget{
		ID:   id,
		Kind: kind,
		Text: p.style.Fit(text, rect.W),
		Rect: rect,
		Hot:  id != "" && rect.Contains(p.pointer),
	})
	return &p.widgets[len(p.widgets)-1]
}

func (p *Panel) title(text string) {
	p.next("", KindTitle, text)
}

func (p *Panel) label(text string) {
	p.next("", KindLabel, text)
}

func (p *Panel) button(id, text string) bool {
	w := p.next(id, KindButton, text)
	clicked := p.clicked == id
	if clicked {
		p.flashID = id
		p.flashUntil = p.elapsed + flashDuration
	}
	w.Active = (p.down && p.pressedOn == id) || (p.flashID == id && p.elapsed < p.flashUntil)
	return clicked
}

// slider edits value in [lo, hi] while the pointer holds it.
// It reports whether the value changed.
func (p *Panel) slider(id, text string, value *float64, lo, hi float64) bool {
	w := p.next(id, KindSlider, text)
	changed := false
	if p.down && p.pressedOn == id && w.Rect.W > 0 {
		t := (p.pointer.X - w.Rect.X) / w.Rect.W
		t = min(max(t, 0), 1)
		nv := lo + t*(hi-lo)
		if nv != *value {
			*value = nv
			changed = true
		}
		w.Active = true
	}
	w.Value = (*value - lo) / (hi - lo)
	return changed
}

func (p *Panel) channelSliders(prefix string, c *color.RGBA) {
	channels := []struct {
		name string
		v    *uint8
	}{{"r", &c.R}, {"g", &c.G}, {"b", &c.B}}

	for _, ch := range channels {
		f := float64(*ch.v) / 255
		text := fmt.Sprintf("%s %.2f", ch.name, f)
		if p.slider(prefix+"."+ch.name, text, &f, 0, 1) {
			*ch.v = uint8(f*255 + 0.5)
		}
	}
}

func (p *Panel) widgetAt(pos geometry.Vector2) string {
	for _, w := range p.widgets {
		if w.ID != "" && w.Rect.Contains(pos) {
			return w.ID
		}
	}
	return ""
}
