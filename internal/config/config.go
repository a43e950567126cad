// Package config provides YAML-based configuration loading for the
// blockfall engine: board geometry, rules, gravity curve, autopilot
// weights, and key bindings, each with a documented default.
package config

// Config contains every tunable the engine and platform consume.
// The engine functions correctly with Default() alone.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Gravity GravityConfig `yaml:"gravity"`
	AI      AIConfig      `yaml:"ai"`
	Keys    KeysConfig    `yaml:"keys"`
}

// BoardConfig defines the well geometry.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines scoring and progression parameters.
type RulesConfig struct {
	StartLevel    int `yaml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level"` // cleared lines per level-up
	PointsBase    int `yaml:"points_base"`     // points = base * lines^2 * level
	PreviewCount  int `yaml:"preview_count"`   // upcoming pieces shown
}

// GravityConfig defines the tick-count gravity curve. The interval
// between gravity steps is base_ticks - (level-1)*step_ticks, floored
// at min_ticks.
type GravityConfig struct {
	BaseTicks int `yaml:"base_ticks"`
	StepTicks int `yaml:"step_ticks"`
	MinTicks  int `yaml:"min_ticks"`
}

// AIConfig defines autopilot behavior.
type AIConfig struct {
	Autopilot bool          `yaml:"autopilot"` // start with the autopilot engaged
	Weights   WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the heuristic evaluator weights. Height, holes,
// and bumpiness weights are negative (penalties); complete lines is
// positive (reward).
type WeightsConfig struct {
	AggregateHeight float64 `yaml:"aggregate_height"`
	CompleteLines   float64 `yaml:"complete_lines"`
	Holes           float64 `yaml:"holes"`
	Bumpiness       float64 `yaml:"bumpiness"`
}

// KeysConfig maps key names (Bubble Tea key strings) to game commands.
type KeysConfig struct {
	MoveLeft    []string `yaml:"move_left"`
	MoveRight   []string `yaml:"move_right"`
	SoftDrop    []string `yaml:"soft_drop"`
	HardDrop    []string `yaml:"hard_drop"`
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	Pause       []string `yaml:"pause"`
	Restart     []string `yaml:"restart"`
	Quit        []string `yaml:"quit"`
}
