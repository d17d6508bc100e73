package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// cephalopod is a bottom dweller that inks and flees from predators and
// stalks smaller prey along the floor.
type cephalopod struct {
	dweller
	ink     core.RGB
	fleeing bool
	hunting EntityID
}

// Fleeing reports whether a cephalopod inked at a predator on its last look around.
func (e *Entity) Fleeing() bool {
	c, ok := e.mind.(*cephalopod)
	return ok && c.fleeing
}

// Hunting returns the prey a cephalopod is pursuing.
func (e *Entity) Hunting() (EntityID, bool) {
	c, ok := e.mind.(*cephalopod)
	if !ok || c.hunting == NoEntity {
		return NoEntity, false
	}
	return c.hunting, true
}

func (c *cephalopod) move(t *Tank, e *Entity) {
	c.dweller.move(t, e)

	nearby := t.nearby(e, t.cfg.CephalopodSenseRadius)

	if t.chance(t.cfg.CephalopodInkChance) {
		c.fleeing = false
		for _, o := range nearby {
			if !c.isPredator(e, o) {
				continue
			}
			t.spawnInk(e.Pos(), c.ink, 1)
			c.fleeing = true
			c.hunting = NoEntity
			switch {
			case o.X < e.X:
				c.dir = 1
			case o.X > e.X:
				c.dir = -1
			}
			break
		}
	}

	if !c.fleeing && t.chance(t.cfg.CephalopodHuntChance) {
		for _, o := range nearby {
			if c.isPrey(e, o) {
				c.hunting = o.id
				break
			}
		}
	}

	c.pursue(t, e)
}

// pursue steps toward the hunted entity and eats it on contact.
// A vanished or unreachable target is forgotten.
func (c *cephalopod) pursue(t *Tank, e *Entity) {
	if c.hunting == NoEntity {
		return
	}
	prey, ok := t.reg.Get(c.hunting)
	if !ok {
		c.hunting = NoEntity
		return
	}

	switch {
	case prey.X < e.X:
		c.dir = -1
	case prey.X > e.X:
		c.dir = 1
	default:
		c.dir = t.randomSign()
	}
	ahead := e.Pos().Add(core.Pt(c.dir, 0))
	if t.blockedSideways(e, ahead) {
		c.hunting = NoEntity
		return
	}
	e.X = ahead.X

	if prey.Pos() == e.Pos() {
		t.Remove(prey.id)
		c.hunting = NoEntity
	}
}

func (c *cephalopod) isPredator(self, o *Entity) bool {
	if o == self {
		return false
	}
	return o.kind == KindCephalopod || predatorGlyphs[o.Glyph]
}

func (c *cephalopod) isPrey(self, o *Entity) bool {
	if o == self {
		return false
	}
	return preyGlyphs[o.Glyph]
}

func (t *Tank) newCephalopod(cell core.Offset) *Entity {
	glyph := t.pick(cephalopodGlyph)
	mind := &cephalopod{dweller: dweller{dir: t.randomSign()}, ink: squidInk}
	if glyph == "🐙" {
		mind.ink = octopusInk
	}
	return t.add(newEntity(KindCephalopod, cell, glyph, core.White.Opaque(), false, mind))
}
