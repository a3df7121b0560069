package recycling

import (
	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/physics"
)

// RunStatus is the rule engine's view of the run.
type RunStatus int

const (
	StatusRunning          RunStatus = iota // Simulation advancing
	StatusPausedForLevelUp                  // Waiting for the player after a level-up
	StatusEnded                             // No lives left
)

// String returns a human-readable status name.
func (s RunStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPausedForLevelUp:
		return "level_up"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Rules turns begin contacts into score, lives and level changes, and
// keeps exactly one trash item alive while the run lasts.
type Rules struct {
	cfg        config.RecyclingConfig
	rng        *core.SimpleRNG
	difficulty *config.DifficultyManager

	score      int
	lives      int
	level      int
	levelScore int // Cans scored since the last level-up
	status     RunStatus
	spawned    int            // Trash items created this run
	trash      physics.BodyID // Most recently spawned item
}

// NewRules creates the rule state for a validated config.
func NewRules(cfg config.RecyclingConfig) *Rules {
	return &Rules{
		cfg:        cfg,
		rng:        core.NewSimpleRNG(cfg.Gameplay.Seed),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		lives:      cfg.Gameplay.Lives,
		level:      cfg.Gameplay.StartLevel,
		status:     StatusRunning,
	}
}

// Status returns the run status.
func (r *Rules) Status() RunStatus { return r.status }

// Gravity returns the downward acceleration for the current progress.
func (r *Rules) Gravity(ticks uint64) float64 {
	return r.difficulty.Gravity(r.cfg.Physics.Gravity, config.Progress{
		Level: r.level,
		Score: r.score,
		Ticks: int(ticks), //#nosec G115 -- tick counts stay far below MaxInt
	})
}

// Resume leaves the level-up pause. It never revives an ended run.
func (r *Rules) Resume() {
	if r.status == StatusPausedForLevelUp {
		r.status = StatusRunning
	}
}

// Spawn creates a trash item at a random x inside the spawn band, at rest.
func (r *Rules) Spawn(s *physics.Store) physics.BodyID {
	x := r.rng.Range(r.cfg.Spawn.MinX, r.cfg.Spawn.MaxX)
	id := s.Create(physics.KindTrash,
		physics.Vec2{X: x, Y: r.cfg.Spawn.Y},
		physics.Vec2{X: r.cfg.Trash.Width, Y: r.cfg.Trash.Height},
		false)
	r.spawned++
	r.trash = id
	s.SetPayload(id, r.spawned)
	return id
}

// Apply processes one frame of contacts. Only begin contacts between trash
// and a static body count. A trash item removed earlier in the frame is
// skipped, so a can overlap beats a floor overlap reported after it.
func (r *Rules) Apply(contacts []physics.Contact, s *physics.Store, drag *physics.DragController) []Event {
	var events []Event
	for _, c := range contacts {
		if r.status == StatusEnded {
			break
		}
		if !c.Begin || c.KindA != physics.KindTrash || !s.Has(c.A) {
			continue
		}
		switch c.KindB {
		case physics.KindCan:
			events = r.scored(c.A, s, drag, events)
		case physics.KindFloor:
			events = r.missed(c.A, s, drag, events)
		}
	}
	return events
}

// CheckOutOfField treats trash whose top edge has passed the bottom of the
// field as missed. It catches items that tunnel past a thin floor.
func (r *Rules) CheckOutOfField(s *physics.Store, drag *physics.DragController) []Event {
	var lost []physics.BodyID
	s.ForEachDynamic(func(b physics.Body) {
		if b.Kind == physics.KindTrash && b.Min().Y > r.cfg.Field.Height {
			lost = append(lost, b.ID)
		}
	})

	var events []Event
	for _, id := range lost {
		if r.status == StatusEnded {
			break
		}
		events = r.missed(id, s, drag, events)
	}
	return events
}

func (r *Rules) despawn(id physics.BodyID, s *physics.Store, drag *physics.DragController) {
	drag.Release(id)
	s.Remove(id)
}

// refill spawns a replacement unless a trash item is still alive.
func (r *Rules) refill(s *physics.Store) {
	if s.Count(physics.KindTrash) == 0 {
		r.Spawn(s)
	}
}

func (r *Rules) scored(id physics.BodyID, s *physics.Store, drag *physics.DragController, events []Event) []Event {
	r.despawn(id, s, drag)
	r.score++
	r.levelScore++
	events = append(events, ScoreChanged{Score: r.score})

	if r.levelScore >= r.cfg.Gameplay.ScorePerLevel {
		r.levelScore = 0
		r.level++
		r.status = StatusPausedForLevelUp
		events = append(events, LevelAdvanced{Level: r.level})
	}

	r.refill(s)
	return events
}

func (r *Rules) missed(id physics.BodyID, s *physics.Store, drag *physics.DragController, events []Event) []Event {
	r.despawn(id, s, drag)
	r.lives--
	events = append(events, LifeLost{Lives: r.lives})

	if r.lives <= 0 {
		r.lives = 0
		r.status = StatusEnded
		return append(events, GameOver{FinalScore: r.score})
	}

	r.refill(s)
	return events
}
