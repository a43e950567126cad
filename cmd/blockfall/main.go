// blockfall is a falling-block puzzle game for the terminal, with an
// optional self-playing autopilot.
//
// Usage:
//
//	blockfall play           - Play in the current terminal
//	blockfall demo           - Watch the autopilot play (attract mode)
//	blockfall scores         - Show high scores
//	blockfall serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "blockfall/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game. Clear lines,
climb levels, and race the accelerating gravity. An autopilot can play
alongside you or take over entirely.

Available commands:
  play     - Play in the current terminal
  demo     - Watch the autopilot play (attract mode)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  blockfall play
  blockfall play --level 5
  blockfall play --autopilot
  blockfall demo
  blockfall serve --ssh :2222
  blockfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
