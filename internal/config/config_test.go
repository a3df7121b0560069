package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRecyclingConfig() {
		t.Errorf("embedded YAML and DefaultRecyclingConfig() differ:\n%+v\n%+v", cfg, DefaultRecyclingConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRecyclingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recycling.yaml")
	data := []byte("physics:\n  gravity: 250\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRecycling(path)
	if err != nil {
		t.Fatalf("LoadRecycling() failed: %v", err)
	}
	if cfg.Physics.Gravity != 250 {
		t.Errorf("gravity = %v, expected 250", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	// Untouched keys keep their defaults.
	if cfg.Field.Width != 400 || cfg.Gameplay.ScorePerLevel != 5 {
		t.Errorf("defaults were not kept: %+v", cfg)
	}
}

func TestLoadRecyclingErrors(t *testing.T) {
	if _, err := LoadRecycling(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecycling(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestNormalizedTrashSize(t *testing.T) {
	cfg := DefaultRecyclingConfig()
	cfg.Trash = SizeConfig{}
	cfg.Field = FieldConfig{Width: 1000, Height: 500}

	got := cfg.Normalized().Trash
	if got.Width != 35 || got.Height != 35 {
		t.Errorf("derived trash size = %+v, expected 35x35", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecyclingConfig)
	}{
		{"negative field width", func(c *RecyclingConfig) { c.Field.Width = -1 }},
		{"zero field height", func(c *RecyclingConfig) { c.Field.Height = 0 }},
		{"negative gravity", func(c *RecyclingConfig) { c.Physics.Gravity = -10 }},
		{"zero tick rate", func(c *RecyclingConfig) { c.Physics.TickRate = 0 }},
		{"stiffness above one", func(c *RecyclingConfig) { c.Physics.DragStiffness = 1.5 }},
		{"negative trash", func(c *RecyclingConfig) { c.Trash.Width = -28 }},
		{"trash wider than field", func(c *RecyclingConfig) { c.Trash.Width = 500 }},
		{"inverted spawn range", func(c *RecyclingConfig) { c.Spawn.MinX, c.Spawn.MaxX = 300, 100 }},
		{"spawn outside field", func(c *RecyclingConfig) { c.Spawn.MaxX = 401 }},
		{"negative can", func(c *RecyclingConfig) { c.Can.Height = -25 }},
		{"zero floor", func(c *RecyclingConfig) { c.Floor.Width = 0 }},
		{"zero threshold", func(c *RecyclingConfig) { c.Gameplay.ScorePerLevel = 0 }},
		{"zero lives", func(c *RecyclingConfig) { c.Gameplay.Lives = 0 }},
		{"zero start level", func(c *RecyclingConfig) { c.Gameplay.StartLevel = 0 }},
		{"unknown progression", func(c *RecyclingConfig) { c.Difficulty.Progression.Type = "vibes" }},
		{"NaN gravity", func(c *RecyclingConfig) { c.Physics.Gravity = math.NaN() }},
		{"infinite field width", func(c *RecyclingConfig) { c.Field.Width = math.Inf(1) }},
		{"NaN field height", func(c *RecyclingConfig) { c.Field.Height = math.NaN() }},
		{"NaN stiffness", func(c *RecyclingConfig) { c.Physics.DragStiffness = math.NaN() }},
		{"infinite spawn y", func(c *RecyclingConfig) { c.Spawn.Y = math.Inf(-1) }},
		{"NaN can x", func(c *RecyclingConfig) { c.Can.X = math.NaN() }},
		{"infinite gravity multiplier", func(c *RecyclingConfig) { c.Difficulty.Scaling.GravityMultiplier = math.Inf(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRecyclingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
		})
	}
}

func TestApplyRecyclingPreset(t *testing.T) {
	cfg := DefaultRecyclingConfig()
	ApplyRecyclingPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRecyclingConfig()
	ApplyRecyclingPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Can.Width != 75 {
		t.Errorf("easy preset not applied: lives=%d can=%v", cfg.Gameplay.Lives, cfg.Can.Width)
	}

	cfg = DefaultRecyclingConfig()
	ApplyRecyclingPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 || cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyGravity(t *testing.T) {
	d := NewDifficultyManager(DefaultRecyclingConfig().Difficulty)

	if g := d.Gravity(500, Progress{Level: 1}); g != 500 {
		t.Errorf("level 1 gravity = %v, expected 500", g)
	}
	if g := d.Gravity(500, Progress{Level: 6}); g != 750 {
		t.Errorf("level 6 gravity = %v, expected 750", g)
	}
	if g := d.Gravity(500, Progress{Level: 50}); g != 1000 {
		t.Errorf("gravity should cap at 1000, got %v", g)
	}

	disabled := DefaultRecyclingConfig().Difficulty
	disabled.Enabled = false
	if g := NewDifficultyManager(disabled).Gravity(500, Progress{Level: 9}); g != 500 {
		t.Errorf("disabled progression should keep base gravity, got %v", g)
	}
}

func TestConfigYAMLRoundTripKeys(t *testing.T) {
	out, err := yaml.Marshal(DefaultRecyclingConfig())
	if err != nil {
		t.Fatal(err)
	}

	var generic map[string]any
	if err := yaml.Unmarshal(out, &generic); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"field", "physics", "spawn", "trash", "can", "floor", "gameplay", "difficulty", "facts"} {
		if _, ok := generic[key]; !ok {
			t.Errorf("marshalled config is missing key %q", key)
		}
	}
}
