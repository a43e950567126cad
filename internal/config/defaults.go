package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/blockfall.yaml and serves as the fallback of last resort.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Rules: RulesConfig{
			StartLevel:    1,
			LinesPerLevel: 10,
			PointsBase:    5,
			PreviewCount:  1,
		},
		Gravity: GravityConfig{
			BaseTicks: 48,
			StepTicks: 4,
			MinTicks:  2,
		},
		AI: AIConfig{
			Autopilot: false,
			Weights: WeightsConfig{
				AggregateHeight: -0.510066,
				CompleteLines:   0.760666,
				Holes:           -0.35663,
				Bumpiness:       -0.184483,
			},
		},
		Keys: KeysConfig{
			MoveLeft:    []string{"left", "a", "h"},
			MoveRight:   []string{"right", "d", "l"},
			SoftDrop:    []string{"down", "s", "j"},
			HardDrop:    []string{" "},
			RotateLeft:  []string{"z"},
			RotateRight: []string{"up", "w", "x", "k"},
			Pause:       []string{"p", "esc"},
			Restart:     []string{"r"},
			Quit:        []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
