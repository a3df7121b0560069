package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/recycling.yaml
var defaultRecyclingYAML []byte

// DefaultRecyclingConfig returns the built-in configuration: a 400x800 field
// with the can in the middle third and the floor along the bottom.
func DefaultRecyclingConfig() RecyclingConfig {
	return RecyclingConfig{
		Field: FieldConfig{Width: 400, Height: 800},
		Physics: PhysicsConfig{
			Gravity:       500,
			TickRate:      60,
			DragStiffness: 0.1,
		},
		Spawn: SpawnConfig{MinX: 10, MaxX: 390, Y: 0},
		Trash: SizeConfig{Width: 28, Height: 28},
		Can:   BoxConfig{X: 200, Y: 600, Width: 50, Height: 25},
		Floor: BoxConfig{X: 200, Y: 780, Width: 400, Height: 15},
		Gameplay: GameplayConfig{
			ScorePerLevel: 5,
			Lives:         3,
			StartLevel:    1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{GravityMultiplier: 1.0},
		},
		Facts: FactsConfig{
			URL:            "https://sus-game.herokuapp.com?type=1",
			Count:          5,
			TimeoutSeconds: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRecyclingYAML
}

// Normalized fills derived values left at zero: the trash size defaults to
// 3.5% of the larger field dimension, truncated.
func (c RecyclingConfig) Normalized() RecyclingConfig {
	side := math.Trunc(math.Max(c.Field.Width, c.Field.Height) * 0.035)
	if c.Trash.Width == 0 {
		c.Trash.Width = side
	}
	if c.Trash.Height == 0 {
		c.Trash.Height = side
	}
	if c.Gameplay.StartLevel == 0 {
		c.Gameplay.StartLevel = 1
	}
	if c.Physics.DragStiffness == 0 {
		c.Physics.DragStiffness = 0.1
	}
	if c.Physics.TickRate == 0 {
		c.Physics.TickRate = 60
	}
	return c
}
