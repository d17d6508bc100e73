package tank

import (
	"math"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// TerrainHeight returns the floor height, in cells, of column x.
// It depends on x alone, so a given width always yields the same silhouette.
func TerrainHeight(x int) int {
	fx := float64(x)
	return 4 + int(2*math.Sin(fx/10)+math.Sin(fx/5)+math.Sin(fx/2))
}

// regenerateTerrain replaces every Ground entity with a fresh floor for the
// current dimensions.
func (t *Tank) regenerateTerrain() {
	t.reg.UnregisterKind(KindGround)

	for x := 0; x < t.width; x++ {
		for y := max(t.height-TerrainHeight(x), 0); y < t.height; y++ {
			t.newGround(core.Pt(x, y))
		}
	}
}

func (t *Tank) newGround(cell core.Offset) *Entity {
	e := newEntity(KindGround, cell, t.pick(groundGlyphs), t.pickColor(groundColors).Opaque(), true, ground{})
	bg := t.pickColor(groundBackgrounds)
	e.BG = &bg
	return t.add(e)
}

// ground settles into gaps left by a growing tank and never moves sideways.
type ground struct{}

func (ground) move(t *Tank, e *Entity) {
	if !t.collisionAt(e, e.Pos().Add(core.Down)) {
		e.Y++
	}
}
