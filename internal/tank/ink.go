package tank

import "github.com/vovakirdan/tui-aquarium/internal/core"

// ink fades a little every tick and, while still dense, seeps into the
// empty water around it.
type ink struct {
	color   core.RGB
	opacity float64
}

// Opacity returns the current opacity of an ink cloud.
func (e *Entity) Opacity() (float64, bool) {
	if k, ok := e.mind.(*ink); ok {
		return k.opacity, true
	}
	return 0, false
}

func (k *ink) move(t *Tank, e *Entity) {
	k.opacity -= t.cfg.InkFade
	if k.opacity <= 0 {
		t.Remove(e.id)
		return
	}
	e.FG = k.color.WithAlpha(k.opacity)

	if k.opacity <= t.cfg.InkSpreadThreshold {
		return
	}
	dense := k.opacity - t.cfg.InkSpreadFalloff
	if dense <= 0 {
		return
	}
	for _, dir := range core.Orthogonal() {
		cell := e.Pos().Add(dir)
		if t.inBounds(cell) && t.reg.anyAt(cell) == nil && t.chance(t.cfg.InkSpreadChance) {
			t.spawnInk(cell, k.color, dense)
		}
	}
}

func (t *Tank) spawnInk(cell core.Offset, color core.RGB, opacity float64) *Entity {
	mind := &ink{color: color, opacity: opacity}
	return t.add(newEntity(KindInk, cell, inkGlyph, color.WithAlpha(opacity), false, mind))
}
