package recycling

import "fmt"

// Event is something the run loop reports to its observers.
// The set of events is closed; switch on the concrete type.
type Event interface {
	recyclingEvent()
	String() string
}

// ScoreChanged is emitted each time trash lands in the can.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) recyclingEvent() {}

func (e ScoreChanged) String() string { return fmt.Sprintf("score %d", e.Score) }

// LifeLost is emitted when trash hits the floor or falls out of the field.
type LifeLost struct {
	Lives int // Lives remaining
}

func (LifeLost) recyclingEvent() {}

func (e LifeLost) String() string { return fmt.Sprintf("life lost, %d left", e.Lives) }

// LevelAdvanced is emitted when the level's score target is reached.
// The loop is paused until SetRunning(true).
type LevelAdvanced struct {
	Level int
}

func (LevelAdvanced) recyclingEvent() {}

func (e LevelAdvanced) String() string { return fmt.Sprintf("level %d", e.Level) }

// GameOver is emitted exactly once per run, when the last life is lost.
type GameOver struct {
	FinalScore int
}

func (GameOver) recyclingEvent() {}

func (e GameOver) String() string { return fmt.Sprintf("game over, final score %d", e.FinalScore) }
