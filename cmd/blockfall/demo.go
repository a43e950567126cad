package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"blockfall/internal/ai"
	"blockfall/internal/core"
	"blockfall/internal/game"
	"blockfall/internal/platform/tui"
	"blockfall/internal/registry"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play",
	Long: `Run blockfall as a self-playing demo.

The autopilot plays unattended; game keys are ignored and a finished
game restarts automatically. Useful as an attract screen or to watch
the placement heuristic work. Press Q or Ctrl+C to leave.

Examples:
  blockfall demo
  blockfall demo --config ./my-blockfall.yaml
  blockfall demo --seed 42`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runDemo(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})

	cfg, err := loadGameConfig(logger, flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	game.SetConfig(cfg)
	game.SetStartLevel(0)

	g, err := registry.Create("blockfall")
	if err != nil {
		logger.Error("cannot create game", "error", err)
		os.Exit(1)
	}

	width, height := 80, 24
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

	opts := tui.Options{
		Keys:    cfg.Keys,
		Pilot:   ai.NewPilot(ai.WeightsFromConfig(cfg.AI.Weights)),
		Attract: true,
	}

	// Demo games never touch the score database.
	if err := tui.Run(g, nil, rc, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
