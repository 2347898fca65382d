package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"StarBattle/internal/config"
	"StarBattle/internal/export"
	"StarBattle/internal/logging"
	"StarBattle/internal/state"
	"StarBattle/internal/ui"
)

var (
	configPath string
	puzzlePath string
	exportPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "starbattle",
	Short: "Star Battle puzzle board",
	Long: `starbattle shows a Star Battle puzzle: region colors, star and blocked
marks, rule violations, custom borders, free ink and the solution overlay.
With --export-pdf it writes a printable page instead of opening a window.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/starbattle/config.toml)")
	rootCmd.Flags().StringVarP(&puzzlePath, "puzzle", "p", "", "puzzle TOML file (default is a built-in 5x5 sample)")
	rootCmd.Flags().StringVar(&exportPath, "export-pdf", "", "write the board to this PDF file and exit")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger := logging.New(level, os.Stderr)
	gg.SetLogger(logger)

	for _, w := range cfg.Validate() {
		logger.Warn("config", "warning", w)
	}

	pz, err := loadPuzzle()
	if err != nil {
		return err
	}
	logger.Debug("puzzle loaded", "dim", pz.Dim, "stars", pz.StarsPerRegion)

	if exportPath != "" {
		return exportBoard(cfg, pz, logger)
	}
	ui.RunApp(cfg, pz, logger)
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

func loadPuzzle() (*state.Puzzle, error) {
	if puzzlePath == "" {
		return state.SamplePuzzle(), nil
	}
	return state.LoadPuzzle(puzzlePath)
}

func exportBoard(cfg *config.Config, pz *state.Puzzle, logger *slog.Logger) error {
	v := export.PrintView{
		Regions: pz.Regions,
		Marks:   pz.Marks,
		Quota:   pz.StarsPerRegion,
		Display: cfg.DisplayFlags(),
		Style:   cfg.GlyphStyle(),
	}
	if err := export.ExportPDF(exportPath, v); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	logger.Info("board exported", "path", exportPath)
	return nil
}
