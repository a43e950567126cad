package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the blockfall configuration.
// Search order: customPath -> ~/.blockfall/config.yaml ->
// ./configs/blockfall.yaml -> embedded default.
// The result is already normalized.
func Load(customPath string) (Config, []string, error) {
	var cfg Config

	// An explicit path must exist and parse; anything else is an error
	// the caller should see.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		adjusted := cfg.Normalize()
		return cfg, adjusted, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				adjusted := cfg.Normalize()
				return cfg, adjusted, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "blockfall.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			adjusted := cfg.Normalize()
			return cfg, adjusted, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil, nil // Fallback to hardcoded if embed fails
	}
	adjusted := cfg.Normalize()
	return cfg, adjusted, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", filename)
}

// Normalize clamps out-of-range tunables into their documented ranges
// and fills empty key bindings from the defaults. It returns one
// human-readable description per adjustment so the caller can log
// them; bad configuration never panics.
func (c *Config) Normalize() []string {
	var adjusted []string
	def := Default()

	clamp := func(name string, v *int, min, max int) {
		if *v < min || *v > max {
			old := *v
			if *v < min {
				*v = min
			} else {
				*v = max
			}
			adjusted = append(adjusted, fmt.Sprintf("%s %d out of range [%d, %d], clamped to %d", name, old, min, max, *v))
		}
	}

	clamp("board.width", &c.Board.Width, 4, 40)
	clamp("board.height", &c.Board.Height, 4, 60)
	clamp("rules.start_level", &c.Rules.StartLevel, 1, 30)
	clamp("rules.lines_per_level", &c.Rules.LinesPerLevel, 1, 100)
	clamp("rules.points_base", &c.Rules.PointsBase, 1, 1000)
	clamp("rules.preview_count", &c.Rules.PreviewCount, 0, 6)
	clamp("gravity.base_ticks", &c.Gravity.BaseTicks, 1, 600)
	clamp("gravity.step_ticks", &c.Gravity.StepTicks, 0, 60)
	clamp("gravity.min_ticks", &c.Gravity.MinTicks, 1, c.Gravity.BaseTicks)

	if c.AI.Weights == (WeightsConfig{}) {
		c.AI.Weights = def.AI.Weights
		adjusted = append(adjusted, "ai.weights empty, using defaults")
	}

	fillKeys := func(name string, keys *[]string, fallback []string) {
		if len(*keys) == 0 {
			*keys = fallback
			adjusted = append(adjusted, fmt.Sprintf("keys.%s empty, using defaults", name))
		}
	}

	fillKeys("move_left", &c.Keys.MoveLeft, def.Keys.MoveLeft)
	fillKeys("move_right", &c.Keys.MoveRight, def.Keys.MoveRight)
	fillKeys("soft_drop", &c.Keys.SoftDrop, def.Keys.SoftDrop)
	fillKeys("hard_drop", &c.Keys.HardDrop, def.Keys.HardDrop)
	fillKeys("rotate_left", &c.Keys.RotateLeft, def.Keys.RotateLeft)
	fillKeys("rotate_right", &c.Keys.RotateRight, def.Keys.RotateRight)
	fillKeys("pause", &c.Keys.Pause, def.Keys.Pause)
	fillKeys("restart", &c.Keys.Restart, def.Keys.Restart)
	fillKeys("quit", &c.Keys.Quit, def.Keys.Quit)

	return adjusted
}
