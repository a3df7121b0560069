package recycling

import (
	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/facts"
	"github.com/dadispowerful/recycle/internal/registry"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 20
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the run loop to the arcade platform: it maps key actions and
// pointer cells to loop inputs and draws the field into a screen buffer.
type Game struct {
	loop    *Loop
	cfg     config.RecyclingConfig
	runtime core.RuntimeConfig
	layout  layout

	facts []string

	pointerDown bool // A pointer press is being held
	nudging     bool // A keyboard nudge drag must be released next step

	notices []string // Carried into the next StepResult
}

// New creates a new recycling game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "recycling" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Recycling" }

// Reset loads the configuration and starts a new run.
// A config that cannot be loaded or fails validation falls back to defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.notices = g.notices[:0]

	cfg, err := config.LoadRecycling(configPath)
	if err != nil {
		g.notices = append(g.notices, err.Error())
		cfg = config.DefaultRecyclingConfig()
	}
	config.ApplyRecyclingPreset(&cfg, difficultyPreset)
	if cfg.Gameplay.Seed == 0 {
		cfg.Gameplay.Seed = runtime.Seed
	}

	if err := g.start(cfg); err != nil {
		g.notices = append(g.notices, err.Error())
		fallback := config.DefaultRecyclingConfig()
		fallback.Gameplay.Seed = cfg.Gameplay.Seed
		_ = g.start(fallback) //nolint:errcheck // defaults always validate
	}

	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, g.cfg.Field.Width, g.cfg.Field.Height)
}

func (g *Game) start(cfg config.RecyclingConfig) error {
	if g.loop == nil {
		loop, err := NewLoop(cfg)
		if err != nil {
			return err
		}
		g.loop = loop
	} else if err := g.loop.Reset(cfg); err != nil {
		return err
	}
	g.cfg = g.loop.Config()
	g.pointerDown = false
	g.nudging = false
	return nil
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.layout = newLayout(w, h, g.cfg.Field.Width, g.cfg.Field.Height)
	g.pointerDown = false
}

// Loop exposes the underlying run loop.
func (g *Game) Loop() *Loop { return g.loop }

// Snapshot returns the loop snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot { return g.loop.Snapshot() }

// FactsConfig returns where facts should be fetched from.
func (g *Game) FactsConfig() config.FactsConfig { return g.cfg.Facts }

// SetFacts installs the facts shown after each level-up.
func (g *Game) SetFacts(list []string) {
	g.facts = append(g.facts[:0], list...)
}

// Fact returns the fact for the level just reached, or "".
func (g *Game) Fact() string {
	return facts.ForLevel(g.facts, g.loop.Snapshot().Level)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.layout.tooSmall {
		return g.result(nil)
	}

	status := g.loop.Status()
	switch {
	case status == StatusEnded:
		if in.Has(core.ActionRestart) {
			_ = g.start(g.cfg) //nolint:errcheck // config validated on first start
		}
		return g.result(nil)
	case status == StatusPausedForLevelUp:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
			g.loop.SetRunning(true)
		}
	case in.Has(core.ActionPause):
		g.loop.SetRunning(g.loop.Paused())
	}

	events := g.loop.Step(g.inputs(in))
	return g.result(events)
}

// inputs converts pointer cells and nudge keys into loop inputs.
func (g *Game) inputs(in core.InputFrame) []Input {
	var out []Input

	if g.nudging {
		out = append(out, End())
		g.nudging = false
	}

	for _, p := range in.Pointer {
		x, y, _ := g.layout.view.ToWorld(p.X, p.Y)
		switch p.Kind {
		case core.PointerPress:
			g.pointerDown = true
			out = append(out, Begin(x, y))
		case core.PointerMove:
			if g.pointerDown {
				out = append(out, Move(x, y))
			}
		case core.PointerRelease:
			g.pointerDown = false
			out = append(out, End())
		}
	}

	if g.pointerDown {
		return out
	}

	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir == 0 {
		return out
	}
	if trash, ok := g.loop.Trash(); ok {
		// A one-step drag sideways; the item keeps the sideways momentum.
		out = append(out,
			Begin(trash.Pos.X, trash.Pos.Y),
			Move(trash.Pos.X+dir*trash.Half.X, trash.Pos.Y))
		g.nudging = true
	}
	return out
}

func (g *Game) result(events []Event) core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.notices) > 0 {
		res.Notices = append(res.Notices, g.notices...)
		g.notices = g.notices[:0]
	}
	for _, ev := range events {
		res.Notices = append(res.Notices, ev.String())
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.loop.Snapshot()
	levelUp := snap.Status == StatusPausedForLevelUp
	return core.GameState{
		Score:    snap.Score,
		Lives:    snap.Lives,
		Level:    snap.Level,
		GameOver: snap.Status == StatusEnded,
		Paused:   snap.Paused || levelUp,
		LevelUp:  levelUp,
	}
}

// Register the game with the registry
func init() {
	registry.Register("recycling", func() registry.Game {
		return New()
	})
}
