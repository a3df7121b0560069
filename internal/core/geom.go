// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a continuous world rectangle onto a block of screen cells.
// World y grows downward, matching the screen.
type Viewport struct {
	WorldW, WorldH float64 // World extent in world units
	Cells          Rect    // Destination cell area
}

// scale returns cells per world unit on each axis.
func (v Viewport) scale() (float64, float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.Cells.W) / v.WorldW, float64(v.Cells.H) / v.WorldH
}

// ToCells converts a world-space box given by its center and half extents
// into the cell rectangle it covers. Boxes smaller than a cell still cover one.
func (v Viewport) ToCells(cx, cy, hw, hh float64) Rect {
	sx, sy := v.scale()
	x0 := int(math.Floor((cx - hw) * sx))
	y0 := int(math.Floor((cy - hh) * sy))
	x1 := int(math.Ceil((cx + hw) * sx))
	y1 := int(math.Ceil((cy + hh) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(v.Cells.X+x0, v.Cells.Y+y0, x1-x0, y1-y0)
}

// ToWorld converts a cell coordinate to the world-space point at the cell center.
// The boolean is false when the cell lies outside the viewport.
func (v Viewport) ToWorld(x, y int) (float64, float64, bool) {
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return 0, 0, false
	}
	wx := (float64(x-v.Cells.X) + 0.5) / sx
	wy := (float64(y-v.Cells.Y) + 0.5) / sy
	return wx, wy, v.Cells.Contains(x, y)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
