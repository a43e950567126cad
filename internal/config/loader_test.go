package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	content := `
board:
  width: 12
  height: 22
rules:
  start_level: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 22 {
		t.Errorf("board = %dx%d, want 12x22", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Rules.StartLevel != 3 {
		t.Errorf("start_level = %d, want 3", cfg.Rules.StartLevel)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path did not error")
	}
}

func TestLoadMalformedExplicitPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("malformed explicit config did not error")
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	cfg := Config{
		Board:   BoardConfig{Width: 200, Height: 2},
		Rules:   RulesConfig{StartLevel: 0, LinesPerLevel: -5, PointsBase: 5, PreviewCount: 99},
		Gravity: GravityConfig{BaseTicks: 48, StepTicks: 4, MinTicks: 100},
	}

	adjusted := cfg.Normalize()

	if cfg.Board.Width != 40 {
		t.Errorf("width = %d, want clamped to 40", cfg.Board.Width)
	}
	if cfg.Board.Height != 4 {
		t.Errorf("height = %d, want clamped to 4", cfg.Board.Height)
	}
	if cfg.Rules.StartLevel != 1 {
		t.Errorf("start_level = %d, want clamped to 1", cfg.Rules.StartLevel)
	}
	if cfg.Rules.LinesPerLevel != 1 {
		t.Errorf("lines_per_level = %d, want clamped to 1", cfg.Rules.LinesPerLevel)
	}
	if cfg.Rules.PreviewCount != 6 {
		t.Errorf("preview_count = %d, want clamped to 6", cfg.Rules.PreviewCount)
	}
	if cfg.Gravity.MinTicks != cfg.Gravity.BaseTicks {
		t.Errorf("min_ticks = %d, want clamped to base_ticks %d", cfg.Gravity.MinTicks, cfg.Gravity.BaseTicks)
	}
	if len(adjusted) == 0 {
		t.Error("no adjustments reported for out-of-range config")
	}
}

func TestNormalizeFillsEmptyWeightsAndKeys(t *testing.T) {
	cfg := Config{
		Board:   BoardConfig{Width: 10, Height: 20},
		Rules:   RulesConfig{StartLevel: 1, LinesPerLevel: 10, PointsBase: 5, PreviewCount: 1},
		Gravity: GravityConfig{BaseTicks: 48, StepTicks: 4, MinTicks: 2},
	}

	adjusted := cfg.Normalize()

	def := Default()
	if cfg.AI.Weights != def.AI.Weights {
		t.Errorf("weights = %+v, want defaults", cfg.AI.Weights)
	}
	if len(cfg.Keys.MoveLeft) == 0 || len(cfg.Keys.Quit) == 0 {
		t.Error("empty key bindings not filled from defaults")
	}

	found := false
	for _, msg := range adjusted {
		if strings.Contains(msg, "ai.weights") {
			found = true
		}
	}
	if !found {
		t.Error("weights fill not reported")
	}
}

func TestNormalizeAcceptsDefaults(t *testing.T) {
	cfg := Default()
	if adjusted := cfg.Normalize(); len(adjusted) != 0 {
		t.Errorf("default config reported adjustments: %v", adjusted)
	}
}

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	// The hardcoded fallback and the embedded file must agree on the
	// values that change gameplay.
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	cfg.Normalize()

	def := Default()
	if cfg.Board != def.Board {
		t.Errorf("board: embedded %+v vs default %+v", cfg.Board, def.Board)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("rules: embedded %+v vs default %+v", cfg.Rules, def.Rules)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("gravity: embedded %+v vs default %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.AI.Weights != def.AI.Weights {
		t.Errorf("weights: embedded %+v vs default %+v", cfg.AI.Weights, def.AI.Weights)
	}
}
