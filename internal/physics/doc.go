// Package physics implements the rigid-body layer of the recycling game:
// an arena of axis-aligned boxes addressed by stable IDs, a fixed-step
// integrator, frame-over-frame overlap detection and a single pointer drag.
//
// Everything here is synchronous and deterministic. Given the same bodies
// in the same insertion order and the same drag inputs, every step yields
// bit-identical positions.
package physics
