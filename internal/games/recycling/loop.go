package recycling

import (
	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/physics"
)

// Loop is the fixed-step run loop. It owns the body store and every
// simulation component; nothing else mutates them.
//
// A Loop is not safe for concurrent use. The platform drives it from a
// single ticker.
type Loop struct {
	cfg config.RecyclingConfig

	store    *physics.Store
	detector *physics.Detector
	drag     *physics.DragController
	stepper  physics.Stepper
	rules    *Rules

	tick   uint64
	paused bool // External pause, independent of the level-up pause

	stepping     bool
	pendingReset *config.RecyclingConfig

	subscribers []func(Event)
}

// NewLoop creates a loop and starts the first run.
func NewLoop(cfg config.RecyclingConfig) (*Loop, error) {
	l := &Loop{}
	if err := l.Reset(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// Reset validates cfg and starts a fresh run. An invalid config is
// rejected and the current run is left untouched. Called while a step is
// in progress (from a subscriber), the reset is applied when the step ends.
// Subscribers are kept.
func (l *Loop) Reset(cfg config.RecyclingConfig) error {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if l.stepping {
		l.pendingReset = &cfg
		return nil
	}
	l.restart(cfg)
	return nil
}

func (l *Loop) restart(cfg config.RecyclingConfig) {
	l.cfg = cfg
	l.store = physics.NewStore()
	if l.detector == nil {
		l.detector = physics.NewDetector()
	} else {
		l.detector.Reset()
	}
	l.drag = physics.NewDragController(cfg.Field.Width, cfg.Field.Height, cfg.Physics.DragStiffness)
	l.stepper = physics.Stepper{
		Dt:     cfg.Physics.Dt(),
		FieldW: cfg.Field.Width,
	}
	l.rules = NewRules(cfg)
	l.tick = 0
	l.paused = false

	l.store.Create(physics.KindCan,
		physics.Vec2{X: cfg.Can.X, Y: cfg.Can.Y},
		physics.Vec2{X: cfg.Can.Width, Y: cfg.Can.Height},
		true)
	l.store.Create(physics.KindFloor,
		physics.Vec2{X: cfg.Floor.X, Y: cfg.Floor.Y},
		physics.Vec2{X: cfg.Floor.Width, Y: cfg.Floor.Height},
		true)
	l.rules.Spawn(l.store)
}

// Config returns the active configuration.
func (l *Loop) Config() config.RecyclingConfig { return l.cfg }

// Subscribe registers fn to receive every event, in order, during Step.
func (l *Loop) Subscribe(fn func(Event)) {
	l.subscribers = append(l.subscribers, fn)
}

// SetRunning pauses or resumes the loop. Resuming also leaves the
// level-up pause. An ended run stays ended until Reset.
func (l *Loop) SetRunning(running bool) {
	if !running {
		l.paused = true
		return
	}
	l.paused = false
	l.rules.Resume()
}

// Running reports whether Step advances the simulation.
func (l *Loop) Running() bool {
	return !l.paused && l.rules.Status() == StatusRunning
}

// Paused reports whether the external pause is set.
func (l *Loop) Paused() bool { return l.paused }

// Status returns the rule engine status.
func (l *Loop) Status() RunStatus { return l.rules.Status() }

// Tick returns the number of simulated steps in this run.
func (l *Loop) Tick() uint64 { return l.tick }

// Step applies drag inputs and, while running, advances one fixed step.
// Inputs are applied even while paused so a grab is not lost.
// It returns the events of this step, which are also sent to subscribers.
func (l *Loop) Step(inputs []Input) []Event {
	l.stepping = true

	for _, in := range inputs {
		l.applyInput(in)
	}

	var events []Event
	if l.Running() {
		l.stepper.Gravity = l.rules.Gravity(l.tick)
		l.stepper.Step(l.store, l.drag)

		contacts := l.detector.Detect(l.store)
		events = l.rules.Apply(contacts, l.store, l.drag)
		events = append(events, l.rules.CheckOutOfField(l.store, l.drag)...)
		l.tick++
	}

	for _, ev := range events {
		for _, fn := range l.subscribers {
			fn(ev)
		}
	}

	l.stepping = false
	if l.pendingReset != nil {
		cfg := *l.pendingReset
		l.pendingReset = nil
		l.restart(cfg)
	}

	return events
}

func (l *Loop) applyInput(in Input) {
	p := physics.Vec2{X: in.X, Y: in.Y}
	switch in.Kind {
	case DragBegin:
		l.drag.Begin(p, l.store)
	case DragMove:
		l.drag.Update(p)
	case DragEnd:
		l.drag.End()
	}
}

// Trash returns the live trash item, if any.
func (l *Loop) Trash() (physics.Body, bool) {
	return l.store.Get(l.rules.trash)
}
