package replay

import (
	"time"

	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"go.uber.org/zap"
)

// FrameTime is the clock advance applied after every event step
const FrameTime = time.Second / 60

// Result is the state after a replay
type Result struct {
	Scene  sketch.Scene
	Cursor geometry.Vector2
	Steps  int
	// Quit is set when the script requested the quit effect; later steps
	// are not run
	Quit bool
	// Fullscreen counts fullscreen toggles requested by the script
	Fullscreen int
}

// Run dispatches steps through ctrl, one frame per event, and returns the
// scene under the final cursor position
func Run(ctrl *sketch.Controller, steps []Step, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	for _, step := range steps {
		res.Steps++

		if step.Cursor != nil {
			res.Cursor = *step.Cursor
			continue
		}

		var effect sketch.Effect
		if step.Event == nil {
			effect = ctrl.Update(step.Wait)
		} else {
			switch ev := step.Event.(type) {
			case sketch.Press:
				res.Cursor = ev.Pos
			case sketch.Release:
				res.Cursor = ev.Pos
			case sketch.Move:
				res.Cursor = ev.Pos
			}

			effect = ctrl.Dispatch(step.Event)
			if e := ctrl.Update(FrameTime); e != sketch.EffectNone {
				effect = e
			}
		}

		switch effect {
		case sketch.EffectToggleFullscreen:
			res.Fullscreen++
		case sketch.EffectQuit:
			logger.Info("script requested quit", zap.Int("line", step.Line))
			res.Quit = true
			res.Scene = ctrl.Scene(res.Cursor)
			return res
		}
	}

	res.Scene = ctrl.Scene(res.Cursor)
	return res
}
