package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

// setupFileWatcher watches the settings file for changes
func (app *App) setupFileWatcher() error {
	// Create file watcher with 500ms debounce
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, app.logger.Named("watcher"))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.logger.Info("settings changed", zap.String("file", changedFile))
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.FileWatch.settingsPath}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.logger.Info("watching settings for changes", zap.String("file", app.FileWatch.settingsPath))
	return nil
}

// reloadSettings rereads the settings file and applies it (must be called on main thread)
func (app *App) reloadSettings() {
	cfg, err := config.Load(app.FileWatch.settingsPath)
	if err != nil {
		app.logger.Warn("keeping previous settings", zap.Error(err))
		return
	}
	app.applySettings(cfg)
	rl.SetTargetFPS(app.View.fps)
}

// applySettings updates the live session from cfg. Window size and title
// only take effect on the next start.
func (app *App) applySettings(cfg config.Settings) {
	app.Editor.snap.SetRadius(cfg.SnapRadius)
	// the panel holds a pointer to the palette, so overwrite in place
	app.View.palette = cfg.Theme.Palette()
	app.View.fps = int32(cfg.Window.FPS)

	app.logger.Info("settings applied",
		zap.Float64("snap_radius", app.Editor.snap.Radius()),
		zap.Int32("fps", app.View.fps))
}
