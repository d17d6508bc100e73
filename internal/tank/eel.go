package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// gardenEel burrows once it reaches the sea floor, showing only a wavering
// body. Anywhere else it wanders like a bottom dweller.
type gardenEel struct {
	dweller
}

func (g *gardenEel) move(t *Tank, e *Entity) {
	if t.groundAt(e.Pos().Add(core.Down)) {
		if t.chance(t.cfg.EelShiftChance) {
			e.SetGlyph(t.pick(eelBodyGlyphs))
		}
		return
	}
	e.SetGlyph(eelHeadGlyph)
	g.dweller.move(t, e)
}

func (t *Tank) newGardenEel(cell core.Offset) *Entity {
	mind := &gardenEel{dweller{dir: t.randomSign()}}
	return t.add(newEntity(KindGardenEel, cell, eelHeadGlyph, core.White.Opaque(), false, mind))
}
