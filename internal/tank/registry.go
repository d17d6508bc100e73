package tank

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// Registry owns the live entities in insertion order, indexed by kind
// and by solidity.
type Registry struct {
	nextID EntityID
	order  []*Entity
	byID   map[EntityID]*Entity
	byKind map[Kind][]*Entity
	solid  []*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		byID:   make(map[EntityID]*Entity),
		byKind: make(map[Kind][]*Entity),
	}
}

// Register assigns e an ID and appends it to the population.
// Panics if e is already registered.
func (r *Registry) Register(e *Entity) EntityID {
	if e.id != NoEntity {
		panic(fmt.Sprintf("tank: entity %d registered twice", e.id))
	}
	e.id = r.nextID
	r.nextID++

	r.order = append(r.order, e)
	r.byID[e.id] = e
	r.byKind[e.kind] = append(r.byKind[e.kind], e)
	if e.solid {
		r.solid = append(r.solid, e)
	}
	return e.id
}

// Unregister removes the entity with the given ID.
// Returns false if it was not registered.
func (r *Registry) Unregister(id EntityID) bool {
	e, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	r.order = without(r.order, e)
	r.byKind[e.kind] = without(r.byKind[e.kind], e)
	if e.solid {
		r.solid = without(r.solid, e)
	}
	return true
}

// UnregisterKind removes every entity of kind k in a single pass.
func (r *Registry) UnregisterKind(k Kind) {
	gone := r.byKind[k]
	if len(gone) == 0 {
		return
	}
	for _, e := range gone {
		delete(r.byID, e.id)
	}
	delete(r.byKind, k)

	isKind := func(e *Entity) bool { return e.kind == k }
	r.order = slices.DeleteFunc(r.order, isKind)
	r.solid = slices.DeleteFunc(r.solid, isKind)
}

func without(list []*Entity, e *Entity) []*Entity {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

// Get resolves an ID. A removed entity resolves to nothing.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// Snapshot returns the IDs of all entities in insertion order.
// The slice is a copy and is unaffected by later registrations or removals.
func (r *Registry) Snapshot() []EntityID {
	ids := make([]EntityID, len(r.order))
	for i, e := range r.order {
		ids[i] = e.id
	}
	return ids
}

// All returns all entities in insertion order.
func (r *Registry) All() []*Entity {
	return slices.Clone(r.order)
}

// Solid returns the solid entities in insertion order.
func (r *Registry) Solid() []*Entity {
	return slices.Clone(r.solid)
}

// OfKind returns the entities of kind k in insertion order.
func (r *Registry) OfKind(k Kind) []*Entity {
	return slices.Clone(r.byKind[k])
}

// EntityAt returns the first candidate whose span covers cell, or nil.
func EntityAt(cell core.Offset, candidates []*Entity) *Entity {
	for _, e := range candidates {
		if e.covers(cell) {
			return e
		}
	}
	return nil
}

// solidAt is EntityAt over the solid index, ignoring one entity.
func (r *Registry) solidAt(cell core.Offset, exclude EntityID) *Entity {
	for _, e := range r.solid {
		if e.id != exclude && e.covers(cell) {
			return e
		}
	}
	return nil
}

// kindAt is EntityAt over the entities of one kind.
func (r *Registry) kindAt(k Kind, cell core.Offset) *Entity {
	return EntityAt(cell, r.byKind[k])
}

// anyAt is EntityAt over the whole population.
func (r *Registry) anyAt(cell core.Offset) *Entity {
	return EntityAt(cell, r.order)
}
