package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gosketch/internal/app"
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/version"
)

var (
	configPath string
	snapRadius float64
	logLevel   string
	logFile    string

	windowWidth  int
	windowHeight int
)

var rootCmd = &cobra.Command{
	Use:   "gosketch",
	Short: "Interactive 2D point and segment sketcher",
	Long: `gosketch is a small editor for placing points on a canvas, dragging them
around and connecting pairs of them with line segments.

Run without a subcommand to open the editor window.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "settings file (default ~/"+config.FileName+")")
	flags.Float64Var(&snapRadius, "radius", 0, "snap radius for picking points")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "also write JSON logs to this file")

	rootCmd.Flags().IntVar(&windowWidth, "width", 0, "window width")
	rootCmd.Flags().IntVar(&windowHeight, "height", 0, "window height")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		cfg.SnapRadius = snapRadius
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	// width and height only exist on commands that open a canvas
	if flags.Changed("width") {
		cfg.Window.Width = windowWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = windowHeight
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.FromSettings(cfg.Log))
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Debug("settings loaded", zap.String("file", resolveConfigPath()))
	return app.Run(app.Options{
		Settings:     cfg,
		SettingsPath: resolveConfigPath(),
		Logger:       logger,
	})
}
