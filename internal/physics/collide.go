package physics

import "sort"

// Contact is one overlapping pair found during a frame.
// A is always the dynamic body. B is static or a later dynamic body.
type Contact struct {
	A, B         BodyID
	KindA, KindB Kind

	// Begin is true on the first frame of an overlap and false while it persists.
	Begin bool
}

type pairKey struct {
	lo, hi BodyID
}

func keyOf(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Detector finds overlaps between bodies and remembers them across frames,
// so each overlap produces exactly one Begin contact until it separates.
type Detector struct {
	active map[pairKey]struct{}
	next   map[pairKey]struct{}
}

// NewDetector creates a detector with no remembered overlaps.
func NewDetector() *Detector {
	return &Detector{
		active: make(map[pairKey]struct{}),
		next:   make(map[pairKey]struct{}),
	}
}

// Reset forgets every remembered overlap.
func (d *Detector) Reset() {
	clear(d.active)
	clear(d.next)
}

// Detect tests every dynamic body against every static body and every other
// dynamic body. Pairs that stopped overlapping, or whose bodies were removed,
// are forgotten.
//
// Contacts are grouped by dynamic body in insertion order. Within a group a
// can comes before the floor, which comes before other trash.
func (d *Detector) Detect(s *Store) []Contact {
	var contacts []Contact

	bodies := s.bodies
	for i := range bodies {
		a := bodies[i]
		if a.Static {
			continue
		}

		start := len(contacts)
		for j := range bodies {
			if i == j {
				continue
			}
			b := bodies[j]
			// Dynamic pairs are visited once, from the earlier body.
			if !b.Static && j < i {
				continue
			}
			if !a.Overlaps(b) {
				continue
			}

			key := keyOf(a.ID, b.ID)
			_, seen := d.active[key]
			d.next[key] = struct{}{}
			contacts = append(contacts, Contact{
				A:     a.ID,
				B:     b.ID,
				KindA: a.Kind,
				KindB: b.Kind,
				Begin: !seen,
			})
		}

		group := contacts[start:]
		sort.SliceStable(group, func(x, y int) bool {
			px, py := group[x].KindB.priority(), group[y].KindB.priority()
			if px != py {
				return px < py
			}
			return group[x].B < group[y].B
		})
	}

	d.active, d.next = d.next, d.active
	clear(d.next)

	return contacts
}
