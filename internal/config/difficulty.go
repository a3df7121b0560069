package config

import "math"

// DifficultyManager calculates dynamic game parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Progress describes how far a run has gone.
type Progress struct {
	Level int // 1-based game level
	Score int
	Ticks int
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(p.Level-1) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Gravity scales base gravity from base to base * (1 + gravity_multiplier).
func (d *DifficultyManager) Gravity(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.GravityMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
