package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"blockfall/internal/ai"
	"blockfall/internal/config"
	"blockfall/internal/core"
	"blockfall/internal/game"
	"blockfall/internal/platform/tui"
	"blockfall/internal/registry"
	"blockfall/internal/storage"
)

var (
	flagConfig    string
	flagLevel     int
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blockfall",
	Long: `Start a game in the current terminal.

Controls (defaults, configurable via YAML):
  Left/A/H      - Move left
  Right/D/L     - Move right
  Down/S/J      - Soft drop
  Space         - Hard drop
  Z             - Rotate counter-clockwise
  Up/W/X/K      - Rotate clockwise
  Tab           - Toggle autopilot
  P/Esc         - Pause
  R             - Restart (after game over)
  Q/Ctrl+C      - Quit

Examples:
  blockfall play
  blockfall play --level 5
  blockfall play --autopilot
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = config default)")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Start with the autopilot engaged")
}

// loadGameConfig loads the engine configuration, logging any
// adjustments the normalizer made.
func loadGameConfig(logger *log.Logger, path string) (config.Config, error) {
	cfg, adjusted, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	for _, msg := range adjusted {
		logger.Warn("config adjusted", "detail", msg)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})

	cfg, err := loadGameConfig(logger, flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	game.SetConfig(cfg)
	game.SetStartLevel(flagLevel)

	g, err := registry.Create("blockfall")
	if err != nil {
		logger.Error("cannot create game", "error", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Keys:      cfg.Keys,
		Pilot:     ai.NewPilot(ai.WeightsFromConfig(cfg.AI.Weights)),
		Autopilot: flagAutopilot || cfg.AI.Autopilot,
	}

	runErr := tui.Run(g, store, rc, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
