package tank

import (
	"github.com/vovakirdan/tui-aquarium/internal/core"
)

type partRole uint8

const (
	roleHead partRole = iota
	roleTorso
	roleLeftArm
	roleRightArm
	roleLeftLeg
	roleRightLeg
)

func (r partRole) isArm() bool { return r == roleLeftArm || r == roleRightArm }
func (r partRole) isLeg() bool { return r == roleLeftLeg || r == roleRightLeg }

// diverTemplate places each body part relative to the diver's anchor:
//
//	  H
//	L T R
//	 l r
var diverTemplate = []struct {
	role   partRole
	offset core.Offset
	glyphs []string
}{
	{roleHead, core.Pt(0, 0), graphemes("🤿🥽➿ꝏ∞ಹ😎")},
	{roleLeftArm, core.Pt(-2, 1), graphemes("🫷💪🖖👋")},
	{roleTorso, core.Pt(0, 1), graphemes("🧥🩱👙🎽")},
	{roleRightArm, core.Pt(2, 1), graphemes("🫸🫳🖖👋")},
	{roleLeftLeg, core.Pt(-1, 2), []string{"🦵"}},
	{roleRightLeg, core.Pt(1, 2), []string{"🦶"}},
}

var pointingGlyphs = map[string]bool{"👈": true, "👉": true, "👇": true, "👆": true}

const restingHand = "🖐️"

// bodyPart is a piece of a diver. It never moves on its own; the diver
// repositions it every tick.
type bodyPart struct {
	human  EntityID
	role   partRole
	offset core.Offset
}

func (*bodyPart) move(*Tank, *Entity) {}

// human is a scuba diver assembled from several body-part entities around
// an invisible anchor.
type human struct {
	dir         int
	vdir        int
	vertTimer   int
	bubbleTimer int
	attention   EntityID
	seen        map[EntityID]bool
	parts       []EntityID
}

// Parts returns the body parts of a human anchor.
func (e *Entity) Parts() []EntityID {
	if h, ok := e.mind.(*human); ok {
		return append([]EntityID(nil), h.parts...)
	}
	return nil
}

// Attention returns what a human is currently looking at.
func (e *Entity) Attention() (EntityID, bool) {
	h, ok := e.mind.(*human)
	if !ok || h.attention == NoEntity {
		return NoEntity, false
	}
	return h.attention, true
}

func (h *human) move(t *Tank, e *Entity) {
	if t.collisionAt(e, e.Pos().Add(core.Pt(h.dir, 0))) {
		h.dir = -h.dir
	} else {
		e.X += h.dir
	}

	if h.vdir != 0 {
		h.vertTimer--
		if h.vertTimer <= 0 {
			h.vertTimer = t.cfg.HumanVerticalDelay
			next := e.Pos().Add(core.Pt(0, h.vdir))
			if next.Y < 0 || t.collisionAt(e, next) {
				h.vdir = 0
			} else {
				e.Y = next.Y
			}
		}
	}

	if t.chance(t.cfg.HumanTurnChance) {
		h.dir = t.randomStep()
	}
	if t.chance(t.cfg.HumanTurnChance) {
		h.vdir = t.randomStep()
	}

	// Bubbles come out in bursts at the end of every breathing period
	if h.bubbleTimer < t.cfg.HumanBubbleBurst {
		t.spawnBubble(e.Pos().Add(core.Up))
	}
	if h.bubbleTimer <= 0 {
		h.bubbleTimer = t.cfg.HumanBubblePeriod - 1
	} else {
		h.bubbleTimer--
	}

	switch {
	case e.X < 0:
		e.X = t.width - 1
	case e.X > t.width-1:
		e.X = 0
	}

	if t.chance(t.cfg.HumanLookChance) {
		h.lookAround(t, e)
	}

	h.positionParts(t, e)

	for _, p := range h.bodyParts(t) {
		if t.groundAt(p.Pos()) {
			e.Y--
			break
		}
	}
}

// lookAround fixes attention on the nearest interesting thing not seen
// before, and stops to look at it.
func (h *human) lookAround(t *Tank, e *Entity) {
	h.attention = NoEntity
	for _, o := range t.nearby(e, t.cfg.HumanSenseRadius) {
		if h.seen[o.id] || !interesting(o) {
			continue
		}
		h.seen[o.id] = true
		h.attention = o.id
		h.dir, h.vdir = 0, 0
		return
	}
}

func interesting(o *Entity) bool {
	switch o.kind {
	case KindHuman, KindHumanPart, KindBubble, KindInk, KindShell, KindRock, KindSeaweed, KindGround:
		return false
	}
	return true
}

func (h *human) bodyParts(t *Tank) []*Entity {
	parts := make([]*Entity, 0, len(h.parts))
	for _, id := range h.parts {
		if p, ok := t.reg.Get(id); ok {
			parts = append(parts, p)
		}
	}
	return parts
}

// positionParts moves every body part to its template offset and animates
// the limbs from the wall clock.
func (h *human) positionParts(t *Tank, e *Entity) {
	stroke := t.halfCycle(0) < 0.25

	phase := 0.4
	if h.vdir == 1 {
		phase = 0.1
	}
	swing := t.halfCycle(phase) < 0.25

	var target *Entity
	if h.attention != NoEntity {
		target, _ = t.reg.Get(h.attention)
	}

	for _, p := range h.bodyParts(t) {
		part := p.mind.(*bodyPart)
		p.X, p.Y = e.X+part.offset.X, e.Y+part.offset.Y

		if part.role.isLeg() && stroke {
			p.X += core.Sign(part.offset.X)
		}
		if !part.role.isArm() {
			continue
		}
		if stroke && h.vdir != 0 {
			p.Y--
		}

		switch {
		case part.role == roleLeftArm && (h.dir == 1 || h.vdir != 0):
			p.SetGlyph(pick2(swing, "🫷", "👋"))
		case part.role == roleRightArm && (h.dir == -1 || h.vdir != 0):
			p.SetGlyph(pick2(swing, "🫸", "🫳"))
		}

		switch {
		case target != nil && h.dir == 0 && h.vdir == 0:
			p.SetGlyph(pointAt(p, target))
		case pointingGlyphs[p.Glyph]:
			p.SetGlyph(restingHand)
		}
	}
}

func pointAt(hand, target *Entity) string {
	switch {
	case target.X < hand.X-1:
		return "👈"
	case target.X > hand.X+1:
		return "👉"
	case target.Y >= hand.Y:
		return "👇"
	default:
		return "👆"
	}
}

func pick2(first bool, a, b string) string {
	if first {
		return a
	}
	return b
}

func (t *Tank) newHuman(cell core.Offset) *Entity {
	mind := &human{
		dir:  t.randomStep(),
		vdir: t.randomStep(),
		seen: make(map[EntityID]bool),
	}
	e := t.add(newEntity(KindHuman, cell, "", humanColor.Opaque(), false, mind))

	for _, slot := range diverTemplate {
		part := &bodyPart{human: e.id, role: slot.role, offset: slot.offset}
		p := t.add(newEntity(KindHumanPart, cell.Add(slot.offset), t.pick(slot.glyphs), humanColor.Opaque(), false, part))
		mind.parts = append(mind.parts, p.id)
	}
	return e
}
