package tank

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-aquarium/internal/config"
	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// Random is the single source of randomness for every behavior.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Default water gradient, light sky blue to midnight blue.
var (
	DefaultLight = core.RGB{R: 135, G: 206, B: 250}
	DefaultDark  = core.RGB{R: 25, G: 25, B: 112}
)

// Options configures a new tank.
type Options struct {
	Width, Height int
	Behavior      config.BehaviorConfig
	Light, Dark   core.RGB // Water gradient; both zero selects the defaults
	Rand          Random   // nil seeds a source from the clock
}

// Tank is the simulation context: the tank dimensions, the population and
// the tunables. The host owns it and drives it through AdvanceTick,
// OnResize and the interaction methods.
type Tank struct {
	reg    *Registry
	width  int
	height int
	cfg    config.BehaviorConfig
	light  core.RGB
	dark   core.RGB
	rng    Random
	now    time.Time
	ticks  uint64
}

// New creates a tank with freshly generated terrain and no other entities.
// Panics on negative dimensions.
func New(opts Options) *Tank {
	checkDimensions(opts.Width, opts.Height)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	light, dark := opts.Light, opts.Dark
	if light == (core.RGB{}) && dark == (core.RGB{}) {
		light, dark = DefaultLight, DefaultDark
	}

	t := &Tank{
		reg:    NewRegistry(),
		width:  opts.Width,
		height: opts.Height,
		cfg:    opts.Behavior,
		light:  light,
		dark:   dark,
		rng:    rng,
	}
	t.regenerateTerrain()
	return t
}

// NewFromConfig creates and populates a tank for a host.
func NewFromConfig(rt core.RuntimeConfig, cfg config.Config) (*Tank, error) {
	light, err := core.ParseHex(cfg.Gradient.Light)
	if err != nil {
		return nil, fmt.Errorf("tank: gradient: %w", err)
	}
	dark, err := core.ParseHex(cfg.Gradient.Dark)
	if err != nil {
		return nil, fmt.Errorf("tank: gradient: %w", err)
	}
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t := New(Options{
		Width:    max(rt.ScreenW, 0),
		Height:   max(rt.ScreenH, 0),
		Behavior: cfg.Behavior,
		Light:    light,
		Dark:     dark,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err := t.Populate(cfg.Population); err != nil {
		return nil, err
	}
	return t, nil
}

func checkDimensions(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("tank: negative dimensions %dx%d", width, height))
	}
}

// Width returns the tank width in cells.
func (t *Tank) Width() int { return t.width }

// Height returns the tank height in cells.
func (t *Tank) Height() int { return t.height }

// Ticks returns the number of completed ticks.
func (t *Tank) Ticks() uint64 { return t.ticks }

// Len returns the population size.
func (t *Tank) Len() int { return t.reg.Len() }

// Get resolves an entity ID.
func (t *Tank) Get(id EntityID) (*Entity, bool) { return t.reg.Get(id) }

// All returns the population in insertion order.
func (t *Tank) All() []*Entity { return t.reg.All() }

// OfKind returns the entities of one kind in insertion order.
func (t *Tank) OfKind(k Kind) []*Entity { return t.reg.OfKind(k) }

// AdvanceTick moves every entity once, in population order, except the
// excluded ones (an excluded body part excludes its whole human).
// Entities created during the tick first move on the next one; entities
// removed during the tick are skipped.
func (t *Tank) AdvanceTick(now time.Time, excluded ...EntityID) {
	t.now = now

	skip := make(map[EntityID]bool, len(excluded))
	for _, id := range excluded {
		skip[t.DragRoot(id)] = true
	}

	for _, id := range t.reg.Snapshot() {
		if skip[id] {
			continue
		}
		e, ok := t.reg.Get(id)
		if !ok {
			continue
		}
		e.mind.move(t, e)
	}
	t.ticks++
}

// OnResize rebases every entity vertically by the height change, keeping
// the population anchored to the floor, then regenerates the terrain.
// Resizing to the current dimensions does nothing.
func (t *Tank) OnResize(width, height int) {
	checkDimensions(width, height)
	if width == t.width && height == t.height {
		return
	}

	dy := height - t.height
	for _, e := range t.reg.order {
		e.Y += dy
	}
	t.width, t.height = width, height
	t.regenerateTerrain()
}

// EntityAt returns the first entity, in population order, covering cell.
func (t *Tank) EntityAt(cell core.Offset) (EntityID, bool) {
	if e := t.reg.anyAt(cell); e != nil {
		return e.id, true
	}
	return NoEntity, false
}

// SpawnBubble releases a bubble at cell.
func (t *Tank) SpawnBubble(cell core.Offset) EntityID {
	return t.spawnBubble(cell).id
}

// DragRoot returns the entity that moves when id is dragged:
// the owning human for a body part, id itself otherwise.
func (t *Tank) DragRoot(id EntityID) EntityID {
	if e, ok := t.reg.Get(id); ok {
		if p, ok := e.mind.(*bodyPart); ok {
			return p.human
		}
	}
	return id
}

// SetPosition places an entity at cell. Placing a body part moves its
// human so that the part lands on cell.
func (t *Tank) SetPosition(id EntityID, cell core.Offset) bool {
	e, ok := t.reg.Get(id)
	if !ok {
		return false
	}
	if p, ok := e.mind.(*bodyPart); ok {
		h, ok := t.reg.Get(p.human)
		if !ok {
			return false
		}
		h.X, h.Y = cell.X-p.offset.X, cell.Y-p.offset.Y
		h.mind.(*human).positionParts(t, h)
		return true
	}

	e.X, e.Y = cell.X, cell.Y
	if hm, ok := e.mind.(*human); ok {
		hm.positionParts(t, e)
	}
	return true
}

// Remove unregisters an entity. A human and its body parts are always
// removed together.
func (t *Tank) Remove(id EntityID) bool {
	e, ok := t.reg.Get(id)
	if !ok {
		return false
	}
	switch m := e.mind.(type) {
	case *bodyPart:
		if _, ok := t.reg.Get(m.human); ok {
			return t.Remove(m.human)
		}
	case *human:
		for _, p := range m.parts {
			t.reg.Unregister(p)
		}
	}
	return t.reg.Unregister(id)
}

// Census counts the live entities by kind name.
func (t *Tank) Census() map[string]int {
	counts := make(map[string]int)
	for _, e := range t.reg.order {
		counts[e.kind.String()]++
	}
	return counts
}

func (t *Tank) add(e *Entity) *Entity {
	t.reg.Register(e)
	return e
}

// collisionAt reports whether e would collide at cell: the floor, or any
// other solid covering cell (or the cell to its right for wide glyphs).
func (t *Tank) collisionAt(e *Entity, cell core.Offset) bool {
	if cell.Y >= t.height {
		return true
	}
	if t.reg.solidAt(cell, e.id) != nil {
		return true
	}
	// No glyph is wider than two cells
	return e.Width > 1 && t.reg.solidAt(cell.Add(core.Right), e.id) != nil
}

// blockedSideways is collisionAt with the side walls treated as solid.
func (t *Tank) blockedSideways(e *Entity, cell core.Offset) bool {
	return cell.X < 0 || cell.X >= t.width || t.collisionAt(e, cell)
}

func (t *Tank) inBounds(cell core.Offset) bool {
	return cell.X >= 0 && cell.X < t.width && cell.Y >= 0 && cell.Y < t.height
}

func (t *Tank) groundAt(cell core.Offset) bool {
	return t.reg.kindAt(KindGround, cell) != nil
}

// nearby returns the entities strictly within radius of e, nearest first.
func (t *Tank) nearby(e *Entity, radius float64) []*Entity {
	origin := e.Pos()
	limit := radius * radius

	var near []*Entity
	for _, o := range t.reg.order {
		if float64(o.Pos().DistSq(origin)) < limit {
			near = append(near, o)
		}
	}
	slices.SortStableFunc(near, func(a, b *Entity) int {
		return a.Pos().DistSq(origin) - b.Pos().DistSq(origin)
	})
	return near
}

func (t *Tank) chance(p float64) bool {
	return t.rng.Float64() < p
}

// randomSign returns -1 or 1.
func (t *Tank) randomSign() int {
	if t.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// randomStep returns -1, 0 or 1.
func (t *Tank) randomStep() int {
	return t.rng.Intn(3) - 1
}

func (t *Tank) pick(glyphs []string) string {
	return glyphs[t.rng.Intn(len(glyphs))]
}

func (t *Tank) pickColor(colors []core.RGB) core.RGB {
	return colors[t.rng.Intn(len(colors))]
}

// halfCycle returns the wall-clock position, in seconds, within the current
// half-second animation cycle, shifted by offset seconds.
func (t *Tank) halfCycle(offset float64) float64 {
	if t.now.IsZero() {
		return math.Mod(offset, 0.5)
	}
	secs := float64(t.now.UnixNano()%int64(time.Second))/1e9 + offset
	return math.Mod(secs, 0.5)
}
