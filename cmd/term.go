package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/internal/overlay"
	"github.com/philipparndt/gosketch/internal/sketch"
	"github.com/philipparndt/gosketch/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the editor in the terminal",
	Long: `Run the editor inside a terminal with mouse support.

Each character cell covers 10x20 canvas units. Press p, m or c in the menu
to pick a mode, Enter to return to the menu and Esc or Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// stderr output would corrupt the screen
	opts := logging.FromSettings(cfg.Log)
	opts.Console = nil
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	palette := cfg.Theme.Palette()
	snap := sketch.NewSnapper(sketch.LinearFinder{}, cfg.SnapRadius)
	machine := sketch.NewMachine(sketch.NewStore(), snap, logger.Named("sketch"))
	panel := overlay.NewPanel(overlay.CellStyle(term.CellWidth, term.CellHeight, term.PanelColumns), &palette, snap)

	term.New(screen, sketch.NewController(machine, snap, panel), panel, &palette, logger).Run()
	return nil
}
