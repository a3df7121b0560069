package physics

// DefaultDt is the fixed simulation step in seconds.
const DefaultDt = 1.0 / 60.0

// Stepper advances dynamic bodies by one fixed time step.
type Stepper struct {
	Gravity float64 // Downward acceleration in units/s²
	Dt      float64 // Step length in seconds
	FieldW  float64 // Bodies are kept within [0, FieldW] horizontally
}

// Step integrates every dynamic body once:
//
//  1. gravity is added to vertical velocity,
//  2. a dragged body's velocity is replaced by the spring correction toward its anchor,
//  3. position += velocity * Dt,
//  4. the body is clamped horizontally and its horizontal velocity zeroed on contact.
//
// A drag referencing a body that no longer exists is dropped.
func (st Stepper) Step(s *Store, drag *DragController) {
	var (
		dc      DragConstraint
		dragged bool
	)
	if drag != nil {
		dc, dragged = drag.Active()
		if dragged && !s.Has(dc.Body) {
			drag.End()
			dragged = false
		}
	}

	dt := st.Dt
	if dt <= 0 {
		dt = DefaultDt
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Static {
			continue
		}

		b.Vel.Y += st.Gravity * dt

		if dragged && b.ID == dc.Body {
			b.Vel = springVelocity(b.Pos, dc, dt)
		}

		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if st.FieldW > 0 {
			lo, hi := b.Half.X, st.FieldW-b.Half.X
			if hi < lo {
				lo, hi = st.FieldW/2, st.FieldW/2
			}
			if b.Pos.X < lo {
				b.Pos.X = lo
				b.Vel.X = 0
			} else if b.Pos.X > hi {
				b.Pos.X = hi
				b.Vel.X = 0
			}
		}
	}
}

// springVelocity is the velocity that closes Stiffness of the gap to the
// anchor (minus the rest length) within one step.
func springVelocity(pos Vec2, dc DragConstraint, dt float64) Vec2 {
	delta := dc.Anchor.Sub(pos)
	dist := delta.Length()
	if dist <= dc.RestLength {
		return Vec2{}
	}
	stretch := (dist - dc.RestLength) / dist
	return delta.Scale(stretch * dc.Stiffness / dt)
}
