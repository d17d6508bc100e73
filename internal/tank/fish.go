package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// fish swims back and forth, wrapping at the side walls and releasing a
// bubble now and then.
type fish struct {
	dir         int
	bubbleTimer int
}

func (f *fish) move(t *Tank, e *Entity) {
	if t.collisionAt(e, e.Pos().Add(core.Pt(f.dir, 0))) {
		f.dir = -f.dir
	} else {
		e.X += f.dir
	}

	if t.chance(t.cfg.FishTurnChance) {
		f.dir = -f.dir
	}

	if f.bubbleTimer <= 0 && t.chance(t.cfg.FishBubbleChance) {
		t.spawnBubble(e.Pos().Add(core.Up))
		f.bubbleTimer = t.cfg.FishBubbleCooldown
	} else {
		f.bubbleTimer--
	}

	switch {
	case e.X < 0:
		e.X = t.width
	case e.X > t.width:
		e.X = 0
	}
}

func (t *Tank) newFish(cell core.Offset) *Entity {
	mind := &fish{dir: t.randomSign()}
	return t.add(newEntity(KindFish, cell, t.pick(fishGlyphs), core.White.Opaque(), false, mind))
}
