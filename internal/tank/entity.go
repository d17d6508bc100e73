// Package tank implements the aquarium simulation: the entity registry,
// terrain, per-species behavior, the tick driver and the row compositor.
//
// The package is single-threaded. The host must not call RenderRow while
// AdvanceTick is running; the tick boundary is the only synchronization point.
package tank

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// EntityID identifies a registered entity. IDs are never reused,
// so a stale ID simply resolves to nothing.
type EntityID uint64

// NoEntity is the zero ID; no registered entity has it.
const NoEntity EntityID = 0

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindGround Kind = iota
	KindSeaUrchin
	KindCoral
	KindShell
	KindRock
	KindBottomDweller
	KindGardenEel
	KindCephalopod
	KindFish
	KindSeaweed
	KindBubble
	KindInk
	KindHuman
	KindHumanPart
)

var kindNames = [...]string{
	KindGround:        "ground",
	KindSeaUrchin:     "sea_urchin",
	KindCoral:         "coral",
	KindShell:         "shell",
	KindRock:          "rock",
	KindBottomDweller: "bottom_dweller",
	KindGardenEel:     "garden_eel",
	KindCephalopod:    "cephalopod",
	KindFish:          "fish",
	KindSeaweed:       "seaweed",
	KindBubble:        "bubble",
	KindInk:           "ink",
	KindHuman:         "human",
	KindHumanPart:     "human_part",
}

// String returns the species name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// behavior is the per-kind movement rule. move is invoked once per tick and
// may mutate e, and create or remove other entities through t.
type behavior interface {
	move(t *Tank, e *Entity)
}

// Entity is one glyph in the tank.
type Entity struct {
	id    EntityID
	kind  Kind
	solid bool
	mind  behavior

	X, Y  int
	Glyph string     // One grapheme cluster, or empty for an invisible anchor
	Width int        // Display width measured by the last render; 0 until rendered
	FG    core.RGBA  // Foreground; alpha is composited against the water
	BG    *core.RGB  // Optional cell background, applied verbatim
}

func newEntity(kind Kind, pos core.Offset, glyph string, fg core.RGBA, solid bool, mind behavior) *Entity {
	e := &Entity{
		kind:  kind,
		solid: solid,
		mind:  mind,
		X:     pos.X,
		Y:     pos.Y,
		FG:    fg,
	}
	e.SetGlyph(glyph)
	return e
}

// ID returns the registry identifier, or NoEntity before registration.
func (e *Entity) ID() EntityID { return e.id }

// Kind returns the entity variant.
func (e *Entity) Kind() Kind { return e.kind }

// Solid reports whether the entity takes part in collisions.
func (e *Entity) Solid() bool { return e.solid }

// Pos returns the entity position.
func (e *Entity) Pos() core.Offset { return core.Offset{X: e.X, Y: e.Y} }

// SetGlyph replaces the glyph. The cached width is kept until the next render.
// Panics if glyph is more than one grapheme cluster.
func (e *Entity) SetGlyph(glyph string) {
	if n := uniseg.GraphemeClusterCount(glyph); n > 1 {
		panic(fmt.Sprintf("tank: glyph %q has %d grapheme clusters", glyph, n))
	}
	e.Glyph = glyph
}

// span is the number of cells the entity covers for hit testing.
// Entities that were never rendered count as one cell wide.
func (e *Entity) span() int {
	if e.Width < 1 {
		return 1
	}
	return e.Width
}

// covers reports whether the entity occupies cell.
func (e *Entity) covers(cell core.Offset) bool {
	return e.Y == cell.Y && e.X <= cell.X && cell.X < e.X+e.span()
}

type inert struct{}

func (inert) move(*Tank, *Entity) {}
