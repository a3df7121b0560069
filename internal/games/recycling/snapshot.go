package recycling

import (
	"math"

	"github.com/dadispowerful/recycle/internal/physics"
)

// BodyView is a read-only copy of one body.
type BodyView struct {
	ID   physics.BodyID
	Kind physics.Kind
	X, Y float64 // Center
	W, H float64
}

// Snapshot captures the run for rendering and determinism checks.
// It shares no memory with the loop.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	Status RunStatus
	Paused bool

	Bodies []BodyView // Insertion order

	DragBody   physics.BodyID // 0 when nothing is dragged
	DragAnchor physics.Vec2

	RNGState uint64
}

// Snapshot returns the current state.
func (l *Loop) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     l.tick,
		Score:    l.rules.score,
		Lives:    l.rules.lives,
		Level:    l.rules.level,
		Status:   l.rules.status,
		Paused:   l.paused,
		Bodies:   make([]BodyView, 0, l.store.Len()),
		RNGState: l.rules.rng.State(),
	}

	l.store.ForEach(func(b physics.Body) {
		size := b.Size()
		snap.Bodies = append(snap.Bodies, BodyView{
			ID:   b.ID,
			Kind: b.Kind,
			X:    b.Pos.X,
			Y:    b.Pos.Y,
			W:    size.X,
			H:    size.Y,
		})
	})

	if dc, ok := l.drag.Active(); ok {
		snap.DragBody = dc.Body
		snap.DragAnchor = dc.Anchor
	}

	return snap
}

// Find returns the view of the body with the given ID.
func (snap *Snapshot) Find(id physics.BodyID) (BodyView, bool) {
	for _, b := range snap.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return BodyView{}, false
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Positions are hashed bit-for-bit.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, b := range snap.Bodies {
		h = h*31 + uint64(b.ID)
		h = h*31 + uint64(b.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.W)
		h = h*31 + math.Float64bits(b.H)
	}

	h = h*31 + uint64(snap.DragBody)
	h = h*31 + math.Float64bits(snap.DragAnchor.X)
	h = h*31 + math.Float64bits(snap.DragAnchor.Y)

	h = h*31 + snap.RNGState

	return h
}
