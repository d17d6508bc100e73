package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// sinker falls until something solid is below it.
type sinker struct{}

func (sinker) move(t *Tank, e *Entity) { sink(t, e) }

func sink(t *Tank, e *Entity) {
	if !t.collisionAt(e, e.Pos().Add(core.Down)) {
		e.Y++
	}
	// The tank may have shrunk under us
	if e.Y > t.height-1 {
		e.Y = t.height - 1
	}
	if t.collisionAt(e, e.Pos()) {
		e.Y--
	}
}

func (t *Tank) newSeaUrchin(cell core.Offset) *Entity {
	return t.add(newEntity(KindSeaUrchin, cell, t.pick(urchinGlyphs), t.pickColor(urchinColors).Opaque(), true, sinker{}))
}

func (t *Tank) newCoral(cell core.Offset) *Entity {
	return t.add(newEntity(KindCoral, cell, t.pick(coralGlyphs), t.pickColor(coralColors).Opaque(), true, sinker{}))
}

func (t *Tank) newShell(cell core.Offset) *Entity {
	return t.add(newEntity(KindShell, cell, t.pick(shellGlyphs), core.White.Opaque(), true, sinker{}))
}

func (t *Tank) newRock(cell core.Offset) *Entity {
	return t.add(newEntity(KindRock, cell, t.pick(rockGlyphs), rockColor.Opaque(), true, sinker{}))
}

// dweller sinks, then wanders along whatever it rests on, climbing single
// steps and turning at walls it cannot climb.
type dweller struct {
	dir int
}

func (d *dweller) move(t *Tank, e *Entity) {
	sink(t, e)
	d.wander(t, e)
}

func (d *dweller) wander(t *Tank, e *Entity) {
	pos := e.Pos()
	if !t.collisionAt(e, pos.Add(core.Down)) || !t.chance(t.cfg.DwellerStepChance) {
		return
	}

	ahead := pos.Add(core.Pt(d.dir, 0))
	switch {
	case !t.blockedSideways(e, ahead):
		e.X = ahead.X
	case !t.blockedSideways(e, ahead.Add(core.Up)):
		e.X, e.Y = ahead.X, ahead.Y-1
	default:
		d.dir = -d.dir
	}

	if t.chance(t.cfg.DwellerTurnChance) {
		d.dir = -d.dir
	}
}

func (t *Tank) newBottomDweller(cell core.Offset) *Entity {
	mind := &dweller{dir: t.randomSign()}
	return t.add(newEntity(KindBottomDweller, cell, t.pick(dwellerGlyphs), core.White.Opaque(), false, mind))
}
