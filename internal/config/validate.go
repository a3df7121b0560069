package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate checks a configuration before any body is created.
// It reports the first problem found.
func (c RecyclingConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Physics.Gravity < 0 {
		return invalid("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.TickRate <= 0 {
		return invalid("physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	}
	if c.Physics.DragStiffness <= 0 || c.Physics.DragStiffness > 1 {
		return invalid("physics.drag_stiffness must be in (0, 1], got %v", c.Physics.DragStiffness)
	}
	if c.Trash.Width <= 0 || c.Trash.Height <= 0 {
		return invalid("trash size must be positive, got %vx%v", c.Trash.Width, c.Trash.Height)
	}
	if c.Trash.Width > c.Field.Width {
		return invalid("trash width %v exceeds field width %v", c.Trash.Width, c.Field.Width)
	}
	if c.Spawn.MinX > c.Spawn.MaxX {
		return invalid("spawn.min_x %v is greater than spawn.max_x %v", c.Spawn.MinX, c.Spawn.MaxX)
	}
	if c.Spawn.MinX < 0 || c.Spawn.MaxX > c.Field.Width {
		return invalid("spawn range [%v, %v] leaves the field [0, %v]", c.Spawn.MinX, c.Spawn.MaxX, c.Field.Width)
	}
	if err := c.Can.validate("can"); err != nil {
		return err
	}
	if err := c.Floor.validate("floor"); err != nil {
		return err
	}
	if c.Gameplay.ScorePerLevel <= 0 {
		return invalid("gameplay.score_per_level must be positive, got %d", c.Gameplay.ScorePerLevel)
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.StartLevel < 1 {
		return invalid("gameplay.start_level must be at least 1, got %d", c.Gameplay.StartLevel)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "level", "score", "time":
	default:
		return invalid("difficulty.progression.type %q is not one of level, score, time, none", c.Difficulty.Progression.Type)
	}
	return nil
}

// validateFinite rejects NaN and infinite numbers, which slip through
// the ordered comparisons below.
func (c RecyclingConfig) validateFinite() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.drag_stiffness", c.Physics.DragStiffness},
		{"spawn.min_x", c.Spawn.MinX},
		{"spawn.max_x", c.Spawn.MaxX},
		{"spawn.y", c.Spawn.Y},
		{"trash.width", c.Trash.Width},
		{"trash.height", c.Trash.Height},
		{"can.x", c.Can.X},
		{"can.y", c.Can.Y},
		{"can.width", c.Can.Width},
		{"can.height", c.Can.Height},
		{"floor.x", c.Floor.X},
		{"floor.y", c.Floor.Y},
		{"floor.width", c.Floor.Width},
		{"floor.height", c.Floor.Height},
		{"difficulty.initial_level", c.Difficulty.InitialLevel},
		{"difficulty.scaling.gravity_multiplier", c.Difficulty.Scaling.GravityMultiplier},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be a finite number, got %v", f.name, f.v)
		}
	}
	return nil
}

func (b BoxConfig) validate(name string) error {
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("%s size must be positive, got %vx%v", name, b.Width, b.Height)
	}
	return nil
}
