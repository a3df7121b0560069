package physics

import (
	"math"

	"github.com/dadispowerful/recycle/internal/core"
)

// Default drag tuning.
const (
	DefaultStiffness  = 0.1
	DefaultRestLength = 0.01
)

// DragConstraint pulls one dynamic body toward a pointer-controlled anchor.
type DragConstraint struct {
	Body       BodyID
	Anchor     Vec2
	Stiffness  float64
	RestLength float64
}

// DragController owns the single optional drag constraint.
type DragController struct {
	bounds     Vec2 // Field width and height; anchors are clamped into it
	stiffness  float64
	restLength float64

	active *DragConstraint
}

// NewDragController creates a controller for a field of the given size.
// A non-positive stiffness selects DefaultStiffness.
func NewDragController(fieldW, fieldH, stiffness float64) *DragController {
	if stiffness <= 0 {
		stiffness = DefaultStiffness
	}
	return &DragController{
		bounds:     Vec2{fieldW, fieldH},
		stiffness:  stiffness,
		restLength: DefaultRestLength,
	}
}

// clamp keeps a point inside the field.
func (c *DragController) clamp(p Vec2) Vec2 {
	return Vec2{
		X: core.ClampF(p.X, 0, c.bounds.X),
		Y: core.ClampF(p.Y, 0, c.bounds.Y),
	}
}

// finite reports whether both coordinates are real numbers. NaN cannot
// be clamped, so such points are dropped.
func finite(p Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Begin starts dragging the most recently created dynamic body under p.
// It returns false when a drag is already active, p is not finite or no
// body is hit.
func (c *DragController) Begin(p Vec2, s *Store) (BodyID, bool) {
	if c.active != nil || !finite(p) {
		return 0, false
	}
	p = c.clamp(p)

	var hit BodyID
	found := false
	s.ForEachDynamic(func(b Body) {
		// Later bodies win, so keep overwriting.
		if b.ContainsPoint(p) {
			hit = b.ID
			found = true
		}
	})
	if !found {
		return 0, false
	}

	c.active = &DragConstraint{
		Body:       hit,
		Anchor:     p,
		Stiffness:  c.stiffness,
		RestLength: c.restLength,
	}
	return hit, true
}

// Update moves the anchor of the active drag. No-op without a drag or
// for a non-finite point.
func (c *DragController) Update(p Vec2) {
	if c.active == nil || !finite(p) {
		return
	}
	c.active.Anchor = c.clamp(p)
}

// End drops the active drag. The body keeps its current velocity.
func (c *DragController) End() {
	c.active = nil
}

// Release drops the active drag if it references id.
func (c *DragController) Release(id BodyID) {
	if c.active != nil && c.active.Body == id {
		c.active = nil
	}
}

// Active returns a copy of the active constraint.
func (c *DragController) Active() (DragConstraint, bool) {
	if c.active == nil {
		return DragConstraint{}, false
	}
	return *c.active, true
}
