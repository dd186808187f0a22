package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/config"
)

const (
	pointRadius     = 2
	lineThickness   = 1
	highlightHalf   = 5
	cursorRadius    = 3
	previewStrength = 0.33
)

func rlColour(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawScene draws the sketch for the current cursor
func (app *App) drawScene() {
	pal := app.View.palette
	scene := app.Editor.ctrl.Scene(app.cursor())

	line := rlColour(pal.Line)
	for _, l := range scene.Lines {
		rl.DrawLineEx(toRL(l.From), toRL(l.To), lineThickness, line)
	}

	if scene.Preview != nil {
		rl.DrawLineEx(toRL(scene.Preview.From), toRL(scene.Preview.To), lineThickness,
			rlColour(config.Scale(pal.Line, previewStrength)))
	}

	point := rlColour(pal.Point)
	for _, p := range scene.Points {
		rl.DrawCircleV(toRL(p), pointRadius, point)
	}

	if scene.Highlight != nil {
		outline := scene.Highlight.Square(highlightHalf)
		highlight := rlColour(pal.Highlight)
		for i := 0; i+1 < len(outline); i++ {
			rl.DrawLineV(toRL(outline[i]), toRL(outline[i+1]), highlight)
		}
	}

	if scene.Cursor != nil {
		rl.DrawCircleLines(int32(scene.Cursor.X), int32(scene.Cursor.Y), cursorRadius, rlColour(pal.Preview))
	}
}
