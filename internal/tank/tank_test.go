package tank

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-aquarium/internal/config"
	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// fixedRand returns the same values forever.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

// never makes every probability check fail and picks the first option.
var never = fixedRand{f: 0.99}

// still keeps humans from picking a swimming direction.
var still = fixedRand{f: 0.99, n: 1}

// offTick is a wall-clock time outside the limb stroke phase.
var offTick = time.Unix(0, int64(300*time.Millisecond))

func newTestTank(w, h int, rng Random, tune func(*config.BehaviorConfig)) *Tank {
	b := config.DefaultBehavior()
	if tune != nil {
		tune(&b)
	}
	return New(Options{Width: w, Height: h, Behavior: b, Rand: rng})
}

// anchor adds an immovable solid block at cell.
func anchor(t *Tank, cell core.Offset) *Entity {
	return t.add(newEntity(KindRock, cell, "⬤", rockColor.Opaque(), true, inert{}))
}

func renderAll(t *Tank) {
	for y := 0; y < t.Height(); y++ {
		t.RenderRow(y)
	}
}

func TestNewPanicsOnNegativeDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with negative width did not panic")
		}
	}()
	New(Options{Width: -1, Height: 10, Rand: never})
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7}

	tk, err := NewFromConfig(rt, cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() failed: %v", err)
	}

	census := tk.Census()
	for name, want := range cfg.Population {
		if name == "human" {
			continue
		}
		if census[name] != want {
			t.Errorf("Census()[%q] = %d, expected %d", name, census[name], want)
		}
	}
	if got, want := census["human_part"], 6*cfg.Population["human"]; got != want {
		t.Errorf("Census()[human_part] = %d, expected %d", got, want)
	}
}

func TestNewFromConfigRejectsBadGradient(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gradient.Dark = "navy"

	if _, err := NewFromConfig(core.DefaultConfig(), cfg); err == nil {
		t.Error("NewFromConfig() with bad gradient should fail")
	}
}

func TestFishSwimsAndWraps(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	f := tk.newFish(core.Pt(40, 10))
	f.mind.(*fish).dir = 1

	tk.AdvanceTick(offTick)
	if f.X != 41 {
		t.Errorf("fish.X = %d, expected 41", f.X)
	}

	f.X = 80
	tk.AdvanceTick(offTick)
	if f.X != 0 {
		t.Errorf("fish.X after passing the right edge = %d, expected 0", f.X)
	}
}

func TestFishTurnsAtObstacle(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	f := tk.newFish(core.Pt(40, 10))
	f.mind.(*fish).dir = 1
	anchor(tk, core.Pt(41, 10))

	tk.AdvanceTick(offTick)
	if f.X != 40 {
		t.Errorf("fish.X = %d, expected 40", f.X)
	}
	if dir := f.mind.(*fish).dir; dir != -1 {
		t.Errorf("fish dir = %d, expected -1", dir)
	}
}

func TestBubbleRisesAndPops(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	id := tk.SpawnBubble(core.Pt(10, 20))

	for want := 19; want >= 0; want-- {
		tk.AdvanceTick(offTick)
		b, ok := tk.Get(id)
		if !ok {
			t.Fatalf("bubble vanished at y=%d", want+1)
		}
		if b.Y != want {
			t.Fatalf("bubble.Y = %d, expected %d", b.Y, want)
		}
	}

	tk.AdvanceTick(offTick)
	if _, ok := tk.Get(id); ok {
		t.Error("bubble still present after leaving the surface")
	}
	for _, e := range tk.All() {
		if e.ID() == id {
			t.Error("All() still lists the popped bubble")
		}
	}
}

func TestAdvanceTickSkipsExcluded(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	f := tk.newFish(core.Pt(40, 10))
	f.mind.(*fish).dir = 1

	tk.AdvanceTick(offTick, f.ID())
	if f.X != 40 {
		t.Errorf("excluded fish moved to x=%d", f.X)
	}
	if tk.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", tk.Ticks())
	}
}

func TestAdvanceTickNewbornsWaitOneTick(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.5}, func(b *config.BehaviorConfig) {
		b.FishBubbleChance = 1
		b.FishTurnChance = 0
		b.BubbleDriftChance = 0
	})
	f := tk.newFish(core.Pt(40, 10))

	tk.AdvanceTick(offTick)

	bubbles := tk.OfKind(KindBubble)
	if len(bubbles) != 1 {
		t.Fatalf("len(bubbles) = %d, expected 1", len(bubbles))
	}
	if got, want := bubbles[0].Pos(), f.Pos().Add(core.Up); got != want {
		t.Errorf("bubble at %v, expected %v", got, want)
	}
}

func TestAdvanceTickSkipsRemoved(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.5}, func(b *config.BehaviorConfig) {
		b.DwellerStepChance = 0
		b.CephalopodInkChance = 0
		b.CephalopodHuntChance = 1
	})
	anchor(tk, core.Pt(5, 6))
	hunter := tk.newCephalopod(core.Pt(5, 5))
	prey := tk.newFish(core.Pt(6, 5))
	prey.SetGlyph("🐟")
	prey.mind.(*fish).dir = 1

	tk.AdvanceTick(offTick)

	if _, ok := tk.Get(prey.ID()); ok {
		t.Fatal("prey survived being caught")
	}
	if hunter.X != 6 {
		t.Errorf("hunter.X = %d, expected 6", hunter.X)
	}
	if _, ok := hunter.Hunting(); ok {
		t.Error("hunter still hunting after eating")
	}
}

func TestCephalopodInksAtPredator(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.5, n: 1}, func(b *config.BehaviorConfig) {
		b.DwellerStepChance = 0
		b.CephalopodInkChance = 1
		b.CephalopodHuntChance = 0
	})
	anchor(tk, core.Pt(5, 6))
	squid := tk.newCephalopod(core.Pt(5, 5))
	tk.newCephalopod(core.Pt(6, 5))

	tk.AdvanceTick(offTick)

	var inked bool
	for _, e := range tk.OfKind(KindInk) {
		if e.Pos() == core.Pt(5, 5) {
			inked = true
		}
	}
	if !inked {
		t.Error("no ink at (5,5)")
	}
	if !squid.Fleeing() {
		t.Error("Fleeing() = false, expected true")
	}
	if dir := squid.mind.(*cephalopod).dir; dir != -1 {
		t.Errorf("fleeing dir = %d, expected -1", dir)
	}
}

func TestCephalopodForgetsVanishedPrey(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.5}, func(b *config.BehaviorConfig) {
		b.DwellerStepChance = 0
		b.CephalopodInkChance = 0
		b.CephalopodHuntChance = 0
	})
	anchor(tk, core.Pt(5, 6))
	squid := tk.newCephalopod(core.Pt(5, 5))
	prey := tk.newShell(core.Pt(9, 5))
	squid.mind.(*cephalopod).hunting = prey.ID()
	tk.Remove(prey.ID())

	tk.AdvanceTick(offTick)

	if _, ok := squid.Hunting(); ok {
		t.Error("Hunting() still set after prey was removed")
	}
	if squid.X != 5 {
		t.Errorf("squid.X = %d, expected 5", squid.X)
	}
}

func TestInkFadesMonotonically(t *testing.T) {
	tk := newTestTank(80, 24, never, func(b *config.BehaviorConfig) {
		b.InkFade = 0.1
		b.InkSpreadThreshold = 1
	})
	e := tk.spawnInk(core.Pt(10, 2), core.Black, 0.5)

	want := 0.5
	last := want
	for range 10 {
		want -= 0.1
		tk.AdvanceTick(offTick)

		_, ok := tk.Get(e.ID())
		if want <= 0 {
			if ok {
				t.Fatalf("ink present at opacity %v", want)
			}
			return
		}
		if !ok {
			t.Fatalf("ink removed early at opacity %v", want)
		}
		got, _ := e.Opacity()
		if got != want || got >= last {
			t.Fatalf("Opacity() = %v, expected %v below %v", got, want, last)
		}
		if e.FG.A != got {
			t.Errorf("FG.A = %v, expected %v", e.FG.A, got)
		}
		last = got
	}
	t.Fatal("ink never faded out")
}

func TestInkSpreadsIntoEmptyWater(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	anchor(tk, core.Pt(11, 2))
	tk.spawnInk(core.Pt(10, 2), core.Black, 1)

	tk.AdvanceTick(offTick)

	inks := tk.OfKind(KindInk)
	if len(inks) != 4 {
		t.Fatalf("len(inks) = %d, expected 4", len(inks))
	}
	for _, e := range inks[1:] {
		if e.Pos() == core.Pt(11, 2) {
			t.Error("ink spread into an occupied cell")
		}
		if op, _ := e.Opacity(); op >= 1-0.3 {
			t.Errorf("spread opacity = %v, expected below 0.7", op)
		}
	}
}

func TestInkSpreadChance(t *testing.T) {
	tk := newTestTank(80, 24, never, func(b *config.BehaviorConfig) {
		b.InkSpreadChance = 0.5
	})
	tk.spawnInk(core.Pt(10, 2), core.Black, 1)

	tk.AdvanceTick(offTick)

	if n := len(tk.OfKind(KindInk)); n != 1 {
		t.Errorf("len(inks) = %d, expected 1 when every spread roll fails", n)
	}
}

func TestSeaweedStaysConnected(t *testing.T) {
	tk := newTestTank(40, 20, rand.New(rand.NewSource(3)), func(b *config.BehaviorConfig) {
		b.SeaweedGrowthChance = 0.5
	})
	for x := 5; x < 40; x += 7 {
		tk.newSeaweed(core.Pt(x, 2))
	}

	for tick := range 60 {
		tk.AdvanceTick(offTick)
		for _, e := range tk.OfKind(KindSeaweed) {
			if id, ok := e.Below(); ok {
				below, _ := tk.Get(id)
				if core.Abs(e.X-below.X) > 1 {
					t.Fatalf("tick %d: segment at x=%d, below at x=%d", tick, e.X, below.X)
				}
			}
			if id, ok := e.Above(); ok {
				above, _ := tk.Get(id)
				if core.Abs(e.X-above.X) > 1 {
					t.Fatalf("tick %d: segment at x=%d, above at x=%d", tick, e.X, above.X)
				}
			}
		}
	}

	if n := len(tk.OfKind(KindSeaweed)); n <= 5 {
		t.Errorf("len(seaweed) = %d, expected growth beyond 5", n)
	}
}

func TestSeaweedSegmentBecomesBase(t *testing.T) {
	tk := newTestTank(40, 20, never, func(b *config.BehaviorConfig) {
		b.SeaweedGrowthChance = 0
	})
	base := tk.newSeaweed(core.Pt(5, 2))
	top := tk.add(newEntity(KindSeaweed, core.Pt(5, 1), seaweedGlyph, core.White.Opaque(), false, &seaweed{below: base.ID()}))
	base.mind.(*seaweed).above = top.ID()

	tk.Remove(base.ID())
	tk.AdvanceTick(offTick)

	if _, ok := top.Below(); ok {
		t.Error("Below() still set after the base was removed")
	}
	if top.Y != 2 {
		t.Errorf("orphaned segment Y = %d, expected 2 after sinking", top.Y)
	}
}

func TestDwellerClimbsStep(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.1}, func(b *config.BehaviorConfig) {
		b.DwellerStepChance = 0.5
		b.DwellerTurnChance = 0
	})
	anchor(tk, core.Pt(10, 6))
	anchor(tk, core.Pt(11, 6))
	anchor(tk, core.Pt(11, 5))
	crab := tk.newBottomDweller(core.Pt(10, 5))
	crab.mind.(*dweller).dir = 1

	tk.AdvanceTick(offTick)

	if got, want := crab.Pos(), core.Pt(11, 4); got != want {
		t.Errorf("crab at %v, expected %v", got, want)
	}
}

func TestDwellerTurnsAtWall(t *testing.T) {
	tk := newTestTank(12, 24, fixedRand{f: 0.1}, func(b *config.BehaviorConfig) {
		b.DwellerStepChance = 0.5
		b.DwellerTurnChance = 0
	})
	anchor(tk, core.Pt(11, 6))
	crab := tk.newBottomDweller(core.Pt(11, 5))
	crab.mind.(*dweller).dir = 1

	tk.AdvanceTick(offTick)

	if crab.X != 11 {
		t.Errorf("crab.X = %d, expected 11", crab.X)
	}
	if dir := crab.mind.(*dweller).dir; dir != -1 {
		t.Errorf("crab dir = %d, expected -1", dir)
	}
}

func TestGardenEelBurrows(t *testing.T) {
	tk := newTestTank(80, 24, fixedRand{f: 0.5}, func(b *config.BehaviorConfig) {
		b.EelShiftChance = 1
	})
	x := 30
	top := tk.Height() - TerrainHeight(x)
	eel := tk.newGardenEel(core.Pt(x, top-1))

	tk.AdvanceTick(offTick)

	if eel.Y != top-1 {
		t.Errorf("burrowed eel moved to y=%d", eel.Y)
	}
	if eel.Glyph != eelBodyGlyphs[0] {
		t.Errorf("eel glyph = %q, expected %q", eel.Glyph, eelBodyGlyphs[0])
	}

	swimmer := tk.newGardenEel(core.Pt(50, 2))
	swimmer.SetGlyph("|")
	tk.AdvanceTick(offTick)
	if swimmer.Glyph != eelHeadGlyph || swimmer.Y != 3 {
		t.Errorf("swimming eel = %q at y=%d, expected %q at y=3", swimmer.Glyph, swimmer.Y, eelHeadGlyph)
	}
}

func TestSinkersNeverShareACell(t *testing.T) {
	tk := newTestTank(40, 24, rand.New(rand.NewSource(11)), nil)
	for x := 10; x < 15; x++ {
		for range 3 {
			tk.newRock(core.Pt(x, 4))
			tk.newCoral(core.Pt(x, 4))
			tk.newSeaUrchin(core.Pt(x, 4))
		}
	}

	for range 60 {
		renderAll(tk)
		tk.AdvanceTick(offTick)
	}
	renderAll(tk)

	if msg := solidOverlap(tk); msg != "" {
		t.Fatal(msg)
	}
}

func TestPopulatedTankKeepsSolidsApart(t *testing.T) {
	cfg := config.DefaultConfig()
	for seed := int64(1); seed <= 10; seed++ {
		rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed}
		tk, err := NewFromConfig(rt, cfg)
		if err != nil {
			t.Fatalf("seed %d: NewFromConfig failed: %v", seed, err)
		}

		for tick := range 40 {
			renderAll(tk)
			if msg := solidOverlap(tk); msg != "" {
				t.Fatalf("seed %d, tick %d: %s", seed, tick, msg)
			}
			tk.AdvanceTick(offTick)
		}
	}
}

func TestPopulatePackedTankSkipsSeeds(t *testing.T) {
	tk := newTestTank(3, 1, never, nil)
	tk.reg.UnregisterKind(KindGround)
	anchor(tk, core.Pt(1, 0))

	if err := tk.Populate(map[string]int{"rock": 2}); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	if n := len(tk.OfKind(KindRock)); n != 1 {
		t.Errorf("len(rocks) = %d, expected only the anchor", n)
	}
}

// solidOverlap describes the first pair of solids sharing a cell, or
// returns "" when every solid has its cells to itself.
func solidOverlap(tk *Tank) string {
	for _, a := range tk.reg.Solid() {
		for dx := range a.span() {
			cell := a.Pos().Add(core.Pt(dx, 0))
			if b := tk.reg.solidAt(cell, a.ID()); b != nil {
				return fmt.Sprintf("%s %q at %v overlaps %s %q at %v", a.Kind(), a.Glyph, a.Pos(), b.Kind(), b.Glyph, b.Pos())
			}
		}
	}
	return ""
}

func TestTerrainFillsColumns(t *testing.T) {
	tk := newTestTank(10, 24, never, nil)

	rows := map[int][]int{}
	for _, e := range tk.OfKind(KindGround) {
		if !e.Solid() {
			t.Errorf("ground at %v is not solid", e.Pos())
		}
		rows[e.X] = append(rows[e.X], e.Y)
	}
	if len(rows) != 10 {
		t.Fatalf("ground covers %d columns, expected 10", len(rows))
	}

	for x := range 10 {
		top := 24 - TerrainHeight(x)
		seen := map[int]bool{}
		for _, y := range rows[x] {
			seen[y] = true
		}
		if len(seen) != len(rows[x]) {
			t.Errorf("column %d has stacked ground cells", x)
		}
		for y := top; y < 24; y++ {
			if !seen[y] {
				t.Errorf("column %d: missing ground at y=%d (top %d)", x, y, top)
			}
		}
		if seen[top-1] {
			t.Errorf("column %d: ground above the terrain line", x)
		}
	}
}

func TestOnResizeIsIdempotent(t *testing.T) {
	tk, err := NewFromConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5}, config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewFromConfig() failed: %v", err)
	}
	fish := tk.OfKind(KindFish)[0]
	y := fish.Y

	tk.OnResize(60, 20)
	if fish.Y != y-4 {
		t.Errorf("fish.Y after shrinking = %d, expected %d", fish.Y, y-4)
	}

	type placed struct {
		pos   core.Offset
		glyph string
	}
	snapshot := func() []placed {
		var out []placed
		for _, e := range tk.All() {
			out = append(out, placed{e.Pos(), e.Glyph})
		}
		return out
	}

	before := snapshot()
	tk.OnResize(60, 20)
	after := snapshot()

	if len(before) != len(after) {
		t.Fatalf("population changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("entity %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestOnResizePanicsOnNegativeDimensions(t *testing.T) {
	tk := newTestTank(10, 10, never, nil)
	defer func() {
		if recover() == nil {
			t.Error("OnResize() with negative height did not panic")
		}
	}()
	tk.OnResize(10, -1)
}

func TestHumanAssemblesBody(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	h := tk.newHuman(core.Pt(40, 5))

	tk.AdvanceTick(offTick)

	parts := h.Parts()
	if len(parts) != len(diverTemplate) {
		t.Fatalf("len(Parts()) = %d, expected %d", len(parts), len(diverTemplate))
	}
	for i, id := range parts {
		p, ok := tk.Get(id)
		if !ok {
			t.Fatalf("part %d missing", i)
		}
		if got, want := p.Pos(), h.Pos().Add(diverTemplate[i].offset); got != want {
			t.Errorf("part %d at %v, expected %v", i, got, want)
		}
		if tk.DragRoot(id) != h.ID() {
			t.Errorf("DragRoot(part %d) = %d, expected %d", i, tk.DragRoot(id), h.ID())
		}
	}
}

func TestHumanSwimsOutOfGround(t *testing.T) {
	tk := newTestTank(80, 24, still, nil)
	x := 20
	y := tk.Height() - TerrainHeight(x-1) - 1
	h := tk.newHuman(core.Pt(x, y))

	tk.AdvanceTick(offTick)

	if h.Y != y-1 {
		t.Errorf("human.Y = %d, expected %d", h.Y, y-1)
	}
}

func TestHumanPointsAtAttention(t *testing.T) {
	tk := newTestTank(80, 24, still, func(b *config.BehaviorConfig) {
		b.HumanLookChance = 1
		b.HumanTurnChance = 0
	})
	crab := tk.newBottomDweller(core.Pt(44, 7))
	anchor(tk, core.Pt(44, 8))
	h := tk.newHuman(core.Pt(40, 5))

	tk.AdvanceTick(offTick)

	if id, ok := h.Attention(); !ok || id != crab.ID() {
		t.Fatalf("Attention() = %d, %v, expected %d", id, ok, crab.ID())
	}
	rightArm, _ := tk.Get(h.Parts()[3])
	if rightArm.Glyph != "👉" {
		t.Errorf("right arm glyph = %q, expected 👉", rightArm.Glyph)
	}
}

// onTick is a wall-clock time inside the limb stroke phase.
var onTick = time.Unix(0, int64(100*time.Millisecond))

func partByRole(t *testing.T, tk *Tank, h *Entity, role partRole) *Entity {
	t.Helper()
	for _, id := range h.Parts() {
		if p, ok := tk.Get(id); ok && p.mind.(*bodyPart).role == role {
			return p
		}
	}
	t.Fatalf("human %d has no part with role %d", h.ID(), role)
	return nil
}

func TestHumanVerticalMoves(t *testing.T) {
	tests := []struct {
		name     string
		y        int
		vdir     int
		timer    int
		wantYs   []int
		wantVdir int
	}{
		{"sinks every third tick", 2, 1, 3, []int{2, 2, 3, 3, 3, 4}, 1},
		{"rises every third tick", 8, -1, 3, []int{8, 8, 7, 7, 7, 6}, -1},
		{"stops at the surface", 0, -1, 1, []int{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTank(80, 24, still, func(b *config.BehaviorConfig) {
				b.HumanVerticalDelay = 3
				b.HumanTurnChance = 0
				b.HumanLookChance = 0
			})
			h := tk.newHuman(core.Pt(40, tt.y))
			hm := h.mind.(*human)
			hm.dir, hm.vdir, hm.vertTimer = 0, tt.vdir, tt.timer

			for i, want := range tt.wantYs {
				tk.AdvanceTick(offTick)
				if h.Y != want {
					t.Fatalf("tick %d: human.Y = %d, expected %d", i+1, h.Y, want)
				}
			}
			if hm.vdir != tt.wantVdir {
				t.Errorf("vdir = %d, expected %d", hm.vdir, tt.wantVdir)
			}
		})
	}
}

func TestHumanBubblesInBursts(t *testing.T) {
	tk := newTestTank(80, 24, still, func(b *config.BehaviorConfig) {
		b.HumanBubblePeriod = 5
		b.HumanBubbleBurst = 2
		b.BubbleDriftChance = 0
	})
	h := tk.newHuman(core.Pt(40, 10))
	hm := h.mind.(*human)
	hm.dir, hm.vdir, hm.bubbleTimer = 0, 0, 4

	want := []int{0, 0, 0, 1, 1, 0, 0, 0, 1, 1}
	for i, n := range want {
		before := len(tk.OfKind(KindBubble))
		tk.AdvanceTick(offTick)
		if got := len(tk.OfKind(KindBubble)) - before; got != n {
			t.Errorf("tick %d: %d new bubbles, expected %d", i+1, got, n)
		}
	}
}

func TestHumanWrapsHorizontally(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		dir   int
		wantX int
	}{
		{"off the right edge", 79, 1, 0},
		{"off the left edge", 0, -1, 79},
		{"inside", 40, 1, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTank(80, 24, still, func(b *config.BehaviorConfig) {
				b.HumanTurnChance = 0
				b.HumanLookChance = 0
			})
			h := tk.newHuman(core.Pt(tt.x, 5))
			hm := h.mind.(*human)
			hm.dir, hm.vdir = tt.dir, 0

			tk.AdvanceTick(offTick)

			if h.X != tt.wantX {
				t.Errorf("human.X = %d, expected %d", h.X, tt.wantX)
			}
		})
	}
}

func TestHumanLimbStroke(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		vdir      int
		legSplay  int
		armLift   int
		leftHand  string
		rightHand string
	}{
		{"rest phase", offTick, 0, 0, 0, "", ""},
		{"stroke while level", onTick, 0, 1, 0, "", ""},
		{"stroke while sinking", onTick, 1, 1, 1, "🫷", "🫸"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTank(80, 24, still, func(b *config.BehaviorConfig) {
				b.HumanTurnChance = 0
				b.HumanLookChance = 0
			})
			h := tk.newHuman(core.Pt(40, 5))
			hm := h.mind.(*human)
			hm.dir, hm.vdir, hm.vertTimer = 0, tt.vdir, 100

			tk.AdvanceTick(tt.now)

			for _, slot := range diverTemplate {
				p := partByRole(t, tk, h, slot.role)
				want := h.Pos().Add(slot.offset)
				switch {
				case slot.role.isLeg():
					want.X += tt.legSplay * core.Sign(slot.offset.X)
				case slot.role.isArm():
					want.Y -= tt.armLift
				}
				if p.Pos() != want {
					t.Errorf("part %d at %v, expected %v", slot.role, p.Pos(), want)
				}
			}

			if tt.leftHand != "" {
				if g := partByRole(t, tk, h, roleLeftArm).Glyph; g != tt.leftHand {
					t.Errorf("left arm glyph = %q, expected %q", g, tt.leftHand)
				}
				if g := partByRole(t, tk, h, roleRightArm).Glyph; g != tt.rightHand {
					t.Errorf("right arm glyph = %q, expected %q", g, tt.rightHand)
				}
			}
		})
	}
}

func TestFishBubbleCooldown(t *testing.T) {
	tk := newTestTank(80, 24, never, func(b *config.BehaviorConfig) {
		b.FishBubbleChance = 1
		b.FishBubbleCooldown = 3
		b.BubbleDriftChance = 0
	})
	f := tk.newFish(core.Pt(40, 10))
	f.mind.(*fish).dir = 1

	want := []int{1, 1, 1, 1, 2, 2, 2, 2, 3}
	for i, n := range want {
		tk.AdvanceTick(offTick)
		if got := len(tk.OfKind(KindBubble)); got != n {
			t.Errorf("tick %d: %d bubbles, expected %d", i+1, got, n)
		}
	}
}

func TestRemoveHumanCascades(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	h := tk.newHuman(core.Pt(40, 5))
	before := tk.Len()

	if !tk.Remove(h.Parts()[2]) {
		t.Fatal("Remove(part) = false")
	}
	if got := tk.Len(); got != before-7 {
		t.Errorf("Len() = %d, expected %d", got, before-7)
	}
	if len(tk.OfKind(KindHumanPart)) != 0 {
		t.Error("body parts survived their human")
	}
}

func TestSetPositionMovesWholeHuman(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	h := tk.newHuman(core.Pt(40, 5))
	torso := h.Parts()[2]

	tk.SetPosition(torso, core.Pt(20, 8))

	if got, want := h.Pos(), core.Pt(20, 7); got != want {
		t.Errorf("human at %v, expected %v", got, want)
	}
	if p, _ := tk.Get(torso); p.Pos() != core.Pt(20, 8) {
		t.Errorf("torso at %v, expected (20,8)", p.Pos())
	}
}

func TestEntityAtHitTest(t *testing.T) {
	tk := newTestTank(80, 24, never, nil)
	tk.reg.UnregisterKind(KindGround)
	e := tk.newCoral(core.Pt(10, 3))
	e.SetGlyph("🪸")
	tk.RenderRow(3)

	tests := []struct {
		cell   core.Offset
		wantOK bool
	}{
		{core.Pt(10, 3), true},
		{core.Pt(11, 3), true},
		{core.Pt(12, 3), false},
		{core.Pt(10, 4), false},
	}
	for _, tt := range tests {
		id, ok := tk.EntityAt(tt.cell)
		if ok != tt.wantOK {
			t.Errorf("EntityAt(%v) ok = %v, expected %v", tt.cell, ok, tt.wantOK)
		}
		if ok && id != e.ID() {
			t.Errorf("EntityAt(%v) = %d, expected %d", tt.cell, id, e.ID())
		}
	}
}

func TestCensusCountsKinds(t *testing.T) {
	tk := newTestTank(0, 0, never, nil)
	tk.newFish(core.Pt(1, 1))
	tk.newFish(core.Pt(2, 1))
	tk.newRock(core.Pt(3, 1))

	census := tk.Census()
	if census["fish"] != 2 || census["rock"] != 1 || len(census) != 2 {
		t.Errorf("Census() = %v, expected fish:2 rock:1", census)
	}
}
