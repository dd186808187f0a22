package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

var mouseButtons = []struct {
	code   rl.MouseButton
	button sketch.Button
}{
	{rl.MouseLeftButton, sketch.ButtonPrimary},
	{rl.MouseRightButton, sketch.ButtonSecondary},
	{rl.MouseMiddleButton, sketch.ButtonMiddle},
}

var keyBindings = []struct {
	code int32
	key sketch.Key
}{
	{rl.KeyEnter, sketch.KeyConfirm},
	{rl.KeyKpEnter, sketch.KeyConfirm},
	{rl.KeyF11, sketch.KeyFullscreen},
	{rl.KeyEscape, sketch.KeyQuit},
}

// handleInput polls raylib and forwards what changed to the controller
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	pos := toVector(mouse)
	if !app.Interaction.cursorPolled || mouse != app.Interaction.cursor {
		app.Interaction.cursor = mouse
		app.Interaction.cursorPolled = true
		app.dispatch(sketch.Move{Pos: pos})
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.code) {
			app.dispatch(sketch.Press{Button: b.button, Pos: pos})
		}
		if rl.IsMouseButtonReleased(b.code) {
			app.dispatch(sketch.Release{Button: b.button, Pos: pos})
		}
	}

	for _, k := range keyBindings {
		if rl.IsKeyPressed(k.code) {
			app.dispatch(sketch.KeyPress{Key: k.key})
		}
	}

	// Typed characters drive the panel shortcuts
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		app.dispatch(sketch.KeyPress{Key: sketch.KeyOther, Rune: rune(ch)})
	}
}

func (app *App) dispatch(ev sketch.Event) {
	app.apply(app.Editor.ctrl.Dispatch(ev))
}

func (app *App) cursor() geometry.Vector2 {
	return toVector(app.Interaction.cursor)
}

func frameDuration() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}

func toVector(v rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(v.X), float64(v.Y))
}

func toRL(v geometry.Vector2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
