package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

// EditorState holds the interaction core shared by input and drawing
type EditorState struct {
	ctrl  *sketch.Controller
	snap  *sketch.Snapper
	panel *overlay.Panel
}

// ViewSettings holds display settings
type ViewSettings struct {
	palette config.Palette // shared with the panel's colour sliders
	fps     int32
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	cursor       rl.Vector2 // last reported pointer position
	cursorPolled bool       // cursor holds a real reading
}

// FileWatchState holds settings file watching and reload state
type FileWatchState struct {
	settingsPath string               // watched settings file, empty when not watching
	fileWatcher  *watcher.FileWatcher // file watcher for auto-reload
	needsReload  atomic.Bool          // set by the watcher goroutine, consumed by the main loop
}
