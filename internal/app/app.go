// Package app runs the editor in a raylib window.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/version"
)

type App struct {
	Editor      EditorState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState

	logger *zap.Logger
	quit   bool
}

// Options configures a window session
type Options struct {
	Settings config.Settings
	// SettingsPath is watched and reapplied on change when set
	SettingsPath string
	Logger       *zap.Logger
}

// New builds the editor core for a window session without opening it
func New(opts Options) (*App, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := &App{
		View: ViewSettings{
			palette: opts.Settings.Theme.Palette(),
			fps:     int32(opts.Settings.Window.FPS),
		},
		FileWatch: FileWatchState{
			settingsPath: opts.SettingsPath,
		},
		logger: logger,
	}

	snap := sketch.NewSnapper(sketch.LinearFinder{}, opts.Settings.SnapRadius)
	machine := sketch.NewMachine(sketch.NewStore(), snap, logger.Named("sketch"))
	panel := overlay.NewPanel(overlay.DesktopStyle(), &app.View.palette, snap)
	app.Editor = EditorState{
		ctrl:  sketch.NewController(machine, snap, panel),
		snap:  snap,
		panel: panel,
	}
	return app, nil
}

// Run opens the window and blocks until the user quits
func Run(opts Options) error {
	app, err := New(opts)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Settings.Window.Width), int32(opts.Settings.Window.Height), opts.Settings.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(app.View.fps)
	// Esc is a quit key the core decides on, not raylib
	rl.SetExitKey(rl.KeyNull)

	app.logger.Info("window opened",
		zap.String("version", version.GetFullVersion()),
		zap.Int("width", opts.Settings.Window.Width),
		zap.Int("height", opts.Settings.Window.Height))

	if app.FileWatch.settingsPath != "" {
		if err := app.setupFileWatcher(); err != nil {
			app.logger.Warn("auto-reload will not be available", zap.Error(err))
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	// Main loop
	for !app.quit && !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Settings changed on disk (must be applied on main thread)
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadSettings()
		}

		// Update
		app.handleInput()
		app.apply(app.Editor.ctrl.Update(frameDuration()))

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rlColour(app.View.palette.Background))
		app.drawScene()
		app.drawUI()
		rl.EndDrawing()
	}

	stats := app.Editor.ctrl.Stats()
	app.logger.Info("window closed",
		zap.Int("points", stats.Points),
		zap.Int("segments", stats.Segments))
	return nil
}

// apply carries out effects the core hands back to the window
func (app *App) apply(effect sketch.Effect) {
	switch effect {
	case sketch.EffectToggleFullscreen:
		rl.ToggleFullscreen()
		app.logger.Debug("fullscreen toggled", zap.Bool("fullscreen", rl.IsWindowFullscreen()))
	case sketch.EffectQuit:
		app.quit = true
	}
}
