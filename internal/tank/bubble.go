package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// bubble rises a cell per tick and pops at the surface.
type bubble struct{}

func (bubble) move(t *Tank, e *Entity) {
	e.Y--
	if t.chance(t.cfg.BubbleDriftChance) {
		e.X += t.randomSign()
	}
	if e.Y < 0 {
		t.Remove(e.id)
	}
}

func (t *Tank) spawnBubble(cell core.Offset) *Entity {
	return t.add(newEntity(KindBubble, cell, t.pick(bubbleGlyphs), bubbleColor.Opaque(), false, bubble{}))
}
