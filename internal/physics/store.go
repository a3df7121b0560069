package physics

// Store owns every simulated body. Iteration follows insertion order so
// that runs are reproducible. All mutation goes through its methods.
type Store struct {
	bodies []Body
	index  map[BodyID]int
	nextID BodyID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index:  make(map[BodyID]int),
		nextID: 1,
	}
}

// Create adds a body centered at pos with the given full size and returns its ID.
func (s *Store) Create(kind Kind, pos, size Vec2, static bool) BodyID {
	id := s.nextID
	s.nextID++

	s.index[id] = len(s.bodies)
	s.bodies = append(s.bodies, Body{
		ID:     id,
		Kind:   kind,
		Pos:    pos,
		Half:   size.Scale(0.5),
		Static: static,
	})
	return id
}

// Remove deletes a body. Removing an unknown ID is a no-op.
func (s *Store) Remove(id BodyID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
	for j := i; j < len(s.bodies); j++ {
		s.index[s.bodies[j].ID] = j
	}
}

// Get returns a copy of the body with the given ID.
func (s *Store) Get(id BodyID) (Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return Body{}, false
	}
	return s.bodies[i], true
}

// Has reports whether the body exists.
func (s *Store) Has(id BodyID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of live bodies.
func (s *Store) Len() int {
	return len(s.bodies)
}

// Count returns the number of live bodies of a kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, b := range s.bodies {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// ForEach calls fn with a copy of every body in insertion order.
func (s *Store) ForEach(fn func(Body)) {
	for _, b := range s.bodies {
		fn(b)
	}
}

// ForEachDynamic calls fn with a copy of every dynamic body in insertion order.
// fn must not create or remove bodies.
func (s *Store) ForEachDynamic(fn func(Body)) {
	for i := range s.bodies {
		if !s.bodies[i].Static {
			fn(s.bodies[i])
		}
	}
}

// SetPayload attaches gameplay data to a body.
func (s *Store) SetPayload(id BodyID, payload any) {
	if i, ok := s.index[id]; ok {
		s.bodies[i].Payload = payload
	}
}
