// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// FileName is the settings file looked up in the home directory
const FileName = ".gosketch.toml"

// Settings holds all user-tunable editor settings
type Settings struct {
	SnapRadius float64 `toml:"snap_radius"`
	Window     Window  `toml:"window"`
	Theme      Theme   `toml:"theme"`
	Log        Log     `toml:"log"`
}

// Window holds the desktop window parameters
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	FPS    int    `toml:"fps"`
}

// Theme holds hex colours (#rrggbb) for each drawn element
type Theme struct {
	Background string `toml:"background"`
	Point      string `toml:"point"`
	Line       string `toml:"line"`
	Preview    string `toml:"preview"`
	Highlight  string `toml:"highlight"`
}

// Log configures the logger. An empty File logs to stderr only.
type Log struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		SnapRadius: 20,
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "gosketch",
			FPS:    60,
		},
		Theme: Theme{
			Background: "#800080",
			Point:      "#ffffff",
			Line:       "#ffffff",
			Preview:    "#808080",
			Highlight:  "#808080",
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultPath returns the settings path in the user's home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads settings from path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Settings, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes settings to path, creating parent directories
func Save(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write encodes settings as TOML
func Write(w io.Writer, cfg Settings) error {
	if _, err := fmt.Fprintln(w, "# gosketch configuration"); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}

// Validate checks value ranges and colours
func (s Settings) Validate() error {
	var errs []error
	if s.SnapRadius <= 0 {
		errs = append(errs, fmt.Errorf("snap_radius must be positive, got %v", s.SnapRadius))
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", s.Window.FPS))
	}
	for name, hex := range s.Theme.colours() {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %q is not a #rrggbb colour", name, hex))
		}
	}
	return errors.Join(errs...)
}

func (t Theme) colours() map[string]string {
	return map[string]string{
		"background": t.Background,
		"point":      t.Point,
		"line":       t.Line,
		"preview":    t.Preview,
		"highlight":  t.Highlight,
	}
}

// Palette is a Theme resolved to RGBA colours
type Palette struct {
	Background color.RGBA
	Point      color.RGBA
	Line       color.RGBA
	Preview    color.RGBA
	Highlight  color.RGBA
}

// Palette resolves the theme. Unparsable entries fall back to the default.
func (t Theme) Palette() Palette {
	def := Default().Theme
	return Palette{
		Background: parseColour(t.Background, def.Background),
		Point:      parseColour(t.Point, def.Point),
		Line:       parseColour(t.Line, def.Line),
		Preview:    parseColour(t.Preview, def.Preview),
		Highlight:  parseColour(t.Highlight, def.Highlight),
	}
}

func parseColour(hex, fallback string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}
	return RGBA(c)
}

// RGBA converts a colorful colour to an opaque RGBA
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats an RGBA colour as #rrggbb
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Scale multiplies the RGB channels of c by f, keeping alpha
func Scale(c color.RGBA, f float64) color.RGBA {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	out := RGBA(colorful.Color{R: cc.R * f, G: cc.G * f, B: cc.B * f})
	out.A = c.A
	return out
}
