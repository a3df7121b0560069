package physics

import "math"

// BodyID identifies a body within a Store. IDs are never reused.
type BodyID uint32

// Kind is the gameplay role of a body.
type Kind int

const (
	KindTrash Kind = iota // Dynamic falling item
	KindCan               // Static target zone
	KindFloor             // Static bottom boundary
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindTrash:
		return "trash"
	case KindCan:
		return "can"
	case KindFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// priority orders contacts of one dynamic body. Lower wins.
// A can overlap is reported before a floor overlap in the same frame.
func (k Kind) priority() int {
	switch k {
	case KindCan:
		return 0
	case KindFloor:
		return 1
	default:
		return 2
	}
}

// Vec2 is a 2D vector in field units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Body is an axis-aligned rectangle positioned by its center.
type Body struct {
	ID     BodyID
	Kind   Kind
	Pos    Vec2 // Center
	Vel    Vec2
	Half   Vec2 // Half extents
	Static bool

	// Payload is opaque per-kind data owned by the gameplay layer.
	Payload any
}

// Size returns the full width and height.
func (b Body) Size() Vec2 {
	return b.Half.Scale(2)
}

// Min returns the top-left corner.
func (b Body) Min() Vec2 {
	return b.Pos.Sub(b.Half)
}

// Max returns the bottom-right corner.
func (b Body) Max() Vec2 {
	return b.Pos.Add(b.Half)
}

// Overlaps reports whether two bodies overlap with positive area.
// Touching edges do not count.
func (b Body) Overlaps(o Body) bool {
	dx := b.Pos.X - o.Pos.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Pos.Y - o.Pos.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < b.Half.X+o.Half.X && dy < b.Half.Y+o.Half.Y
}

// ContainsPoint reports whether p lies inside the body (edges inclusive).
func (b Body) ContainsPoint(p Vec2) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
