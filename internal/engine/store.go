package engine

// ID is a stable handle to a stored entity: slot index in the low 32 bits,
// slot generation in the high 32 bits. A stale ID (slot reused after
// despawn) never resolves to the new occupant.
type ID uint64

func makeID(index, gen uint32) ID {
	return ID(uint64(gen)<<32 | uint64(index))
}

func (id ID) index() uint32      { return uint32(id) }
func (id ID) generation() uint32 { return uint32(id >> 32) }

type slot struct {
	gen  uint32
	used bool
	ent  Entity
}

// Store owns every live non-player entity in a generational slot map.
// Despawn is two-phase: Kill marks the entity not-alive (it stops being
// visited immediately), and Compact at the tick boundary frees the slot and
// bumps its generation. Entity pointers handed out by Get/ForEach are valid
// only within the current tick and must not be retained.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Spawn inserts an entity and returns its ID. The entity is alive and
// visible to iteration from this point on.
func (s *Store) Spawn(e Entity) ID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = uint32(len(s.slots) - 1)
	}

	sl := &s.slots[idx]
	sl.used = true
	e.ID = makeID(idx, sl.gen)
	e.Alive = true
	sl.ent = e
	s.live++
	return e.ID
}

// Get resolves an ID to its entity, or nil if the ID is stale or the slot
// is free. A killed entity is still returned until Compact runs.
func (s *Store) Get(id ID) *Entity {
	idx := id.index()
	if int(idx) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[idx]
	if !sl.used || sl.gen != id.generation() {
		return nil
	}
	return &sl.ent
}

// Kill marks an entity not-alive. The slot is reclaimed by Compact.
func (s *Store) Kill(id ID) {
	if e := s.Get(id); e != nil {
		e.Alive = false
	}
}

// ForEach visits every live entity in slot order, which is deterministic
// for a deterministic spawn sequence. fn must not spawn or despawn.
func (s *Store) ForEach(fn func(e *Entity)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.used && sl.ent.Alive {
			fn(&sl.ent)
		}
	}
}

// Count returns the number of live entities in a category.
func (s *Store) Count(cat Category) int {
	n := 0
	s.ForEach(func(e *Entity) {
		if e.Category == cat {
			n++
		}
	})
	return n
}

// Len returns the number of occupied slots, including entities killed this
// tick but not yet compacted.
func (s *Store) Len() int {
	return s.live
}

// Compact frees the slots of entities killed during the tick. Generations
// are bumped so stale IDs cannot resolve to future occupants. Must run at
// the tick boundary, before the next tick evaluates any entity.
func (s *Store) Compact() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.used && !sl.ent.Alive {
			sl.used = false
			sl.gen++
			sl.ent = Entity{}
			s.free = append(s.free, uint32(i))
			s.live--
		}
	}
}

// Reset drops everything, returning the store to its fresh-session state.
func (s *Store) Reset() {
	s.slots = s.slots[:0]
	s.free = s.free[:0]
	s.live = 0
}
