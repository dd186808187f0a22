package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/raster"
	"github.com/philipparndt/gosketch/internal/replay"
	"github.com/philipparndt/gosketch/internal/sketch"
)

var (
	replayOutput string
	replayPanel  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run an input script headless and render the result to PNG",
	Long: `Replay feeds a script of input events through the editor without opening
a window and writes the final canvas as a PNG image.

Script lines:
  press X Y [button]    release X Y [button]    move X Y
  cursor X Y            key confirm|fullscreen|quit|<char>
  command place|move|connect|fullscreen|quit
  wait DURATION         # comment`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "sketch.png", "PNG file to write")
	replayCmd.Flags().BoolVar(&replayPanel, "panel", false, "route input through the menu panel and draw it")
	replayCmd.Flags().IntVar(&windowWidth, "width", 0, "image width")
	replayCmd.Flags().IntVar(&windowHeight, "height", 0, "image height")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.FromSettings(cfg.Log))
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	steps, err := replay.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	palette := cfg.Theme.Palette()
	snap := sketch.NewSnapper(sketch.LinearFinder{}, cfg.SnapRadius)
	machine := sketch.NewMachine(sketch.NewStore(), snap, logger.Named("sketch"))

	var ov sketch.Overlay = sketch.NopOverlay{}
	var panel *overlay.Panel
	if replayPanel {
		panel = overlay.NewPanel(overlay.DesktopStyle(), &palette, snap)
		ov = panel
	}

	res := replay.Run(sketch.NewController(machine, snap, ov), steps, logger)

	renderer := &raster.Renderer{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Palette: palette,
		Panel:   panel,
	}
	if err := renderer.SavePNG(replayOutput, res.Scene); err != nil {
		return err
	}

	logger.Info("replay finished",
		zap.Stringer("mode", res.Scene.Mode),
		zap.Int("points", len(res.Scene.Points)),
		zap.Int("segments", len(res.Scene.Lines)),
		zap.Int("steps", res.Steps),
		zap.Bool("quit", res.Quit),
		zap.String("output", replayOutput))
	return nil
}
