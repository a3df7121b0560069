// Package config provides YAML-based game configuration loading, validation
// and difficulty management for the recycling game.
package config

import "time"

// RecyclingConfig contains all configuration for the recycling game.
// Lengths are field units, the field origin is the top-left corner and
// y grows downward. Box positions are centers.
type RecyclingConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Trash      SizeConfig       `yaml:"trash"`
	Can        BoxConfig        `yaml:"can"`
	Floor      BoxConfig        `yaml:"floor"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Facts      FactsConfig      `yaml:"facts"`
}

// FieldConfig is the play field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines simulation parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Units per second squared
	TickRate      int     `yaml:"tick_rate"`      // Fixed steps per simulated second
	DragStiffness float64 `yaml:"drag_stiffness"` // Fraction of the gap closed per step, (0, 1]
}

// Dt returns the fixed step length in seconds.
func (p PhysicsConfig) Dt() float64 {
	if p.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(p.TickRate)
}

// SpawnConfig bounds where new trash appears. X is drawn uniformly from
// [MinX, MaxX]; set them equal for a fixed column.
type SpawnConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	Y    float64 `yaml:"y"`
}

// SizeConfig is a width and height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoxConfig is a static box given by center and size.
type BoxConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	ScorePerLevel int   `yaml:"score_per_level"` // Cans needed to clear a level
	Lives         int   `yaml:"lives"`
	StartLevel    int   `yaml:"start_level"`
	Seed          int64 `yaml:"seed"` // 0 lets the platform pick one
}

// FactsConfig configures the sustainability facts shown between levels.
type FactsConfig struct {
	URL            string `yaml:"url"` // Empty disables remote fetching
	Count          int    `yaml:"count"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the fetch timeout.
func (f FactsConfig) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // Added to gravity factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
