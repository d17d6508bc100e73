package tank

import (
	"fmt"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// seaweed is one segment of a stalk. The base segment sinks; every segment
// above it sways within one cell of its neighbours.
type seaweed struct {
	below EntityID
	above EntityID
}

// Below returns the next segment down the stalk.
func (e *Entity) Below() (EntityID, bool) {
	s, ok := e.mind.(*seaweed)
	if !ok || s.below == NoEntity {
		return NoEntity, false
	}
	return s.below, true
}

// Above returns the next segment up the stalk.
func (e *Entity) Above() (EntityID, bool) {
	s, ok := e.mind.(*seaweed)
	if !ok || s.above == NoEntity {
		return NoEntity, false
	}
	return s.above, true
}

func (s *seaweed) move(t *Tank, e *Entity) {
	below := s.link(t, &s.below)
	above := s.link(t, &s.above)

	if below == nil {
		sink(t, e)
	} else {
		x := e.X + t.randomStep()
		if above != nil {
			x = core.Clamp(x, above.X-1, above.X+1)
		}
		// The segment below wins; it is the one anchored to the floor
		x = core.Clamp(x, below.X-1, below.X+1)
		e.X = core.Clamp(x, e.X-1, e.X+1)
		e.Y = core.Clamp(below.Y-1, e.Y-1, e.Y+1)
	}

	if above == nil && e.Y > 0 && t.chance(t.cfg.SeaweedGrowthChance) {
		t.growSeaweed(e, s)
	}
}

// link resolves a neighbour, forgetting it once it is gone.
func (s *seaweed) link(t *Tank, id *EntityID) *Entity {
	if *id == NoEntity {
		return nil
	}
	n, ok := t.reg.Get(*id)
	if !ok {
		*id = NoEntity
		return nil
	}
	return n
}

func (t *Tank) growSeaweed(base *Entity, s *seaweed) {
	top := t.add(newEntity(KindSeaweed, base.Pos().Add(core.Up), seaweedGlyph, core.White.Opaque(), false, &seaweed{below: base.id}))
	s.above = top.id
	t.checkStalk(top)
}

// checkStalk walks down from e and panics if the links loop.
func (t *Tank) checkStalk(e *Entity) {
	seen := map[EntityID]bool{}
	for cur := e; cur != nil; {
		if seen[cur.id] {
			panic(fmt.Sprintf("tank: seaweed %d links form a cycle", e.id))
		}
		seen[cur.id] = true
		id, ok := cur.Below()
		if !ok {
			return
		}
		cur, _ = t.reg.Get(id)
	}
}

func (t *Tank) newSeaweed(cell core.Offset) *Entity {
	return t.add(newEntity(KindSeaweed, cell, seaweedGlyph, core.White.Opaque(), false, &seaweed{}))
}
