package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/overlay"
)

const uiFontSize = 13

var (
	panelBackground  = rl.NewColor(27, 27, 27, 230)
	buttonBackground = rl.NewColor(60, 60, 60, 255)
	buttonHot        = rl.NewColor(80, 80, 80, 255)
	buttonActive     = rl.NewColor(100, 130, 180, 255)
	sliderFill       = rl.NewColor(70, 90, 140, 255)
	textColour       = rl.NewColor(220, 220, 220, 255)
)

// drawUI draws the overlay panel laid out by the last Build
func (app *App) drawUI() {
	panel := app.Editor.panel
	bounds := panel.Bounds()
	rl.DrawRectangleRec(rl.NewRectangle(float32(bounds.X), float32(bounds.Y), float32(bounds.W), float32(bounds.H)), panelBackground)

	pad := float32(panel.Style().Padding) / 2
	for _, w := range panel.Widgets() {
		rect := rl.NewRectangle(float32(w.Rect.X), float32(w.Rect.Y), float32(w.Rect.W), float32(w.Rect.H))

		switch w.Kind {
		case overlay.KindButton:
			bg := buttonBackground
			if w.Active {
				bg = buttonActive
			} else if w.Hot {
				bg = buttonHot
			}
			rl.DrawRectangleRec(rect, bg)
		case overlay.KindSlider:
			rl.DrawRectangleRec(rect, buttonBackground)
			fill := rect
			fill.Width *= float32(w.Value)
			rl.DrawRectangleRec(fill, sliderFill)
		}

		size := int32(uiFontSize)
		if w.Kind == overlay.KindTitle {
			size += 3
		}
		rl.DrawText(w.Text, int32(rect.X+pad), int32(rect.Y+pad), size, textColour)
	}
}
