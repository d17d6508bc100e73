package tank

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// Spawner creates one entity of a species at cell and registers it with t.
type Spawner func(t *Tank, cell core.Offset) *Entity

// SpeciesInfo describes a catalog entry.
type SpeciesInfo struct {
	Name  string
	Title string
	// Seedable species can be listed in a population; the others only
	// appear through behavior or terrain generation.
	Seedable bool
}

type species struct {
	info  SpeciesInfo
	spawn Spawner
}

var (
	catalog = make(map[string]species)
	mu      sync.RWMutex
)

// RegisterSpecies adds a species to the catalog.
// Panics if a species with the same name is already registered.
func RegisterSpecies(info SpeciesInfo, spawn Spawner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalog[info.Name]; exists {
		panic(fmt.Sprintf("tank: species %q already registered", info.Name))
	}
	catalog[info.Name] = species{info: info, spawn: spawn}
}

// Species returns every catalog entry, sorted by name.
func Species() []SpeciesInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SpeciesInfo, 0, len(catalog))
	for _, s := range catalog {
		result = append(result, s.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// SeedableSpecies returns the names of the species a population may list.
func SeedableSpecies() []string {
	var names []string
	for _, info := range Species() {
		if info.Seedable {
			names = append(names, info.Name)
		}
	}
	return names
}

func lookupSpecies(name string) (species, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := catalog[name]
	return s, ok
}

// Spawn creates one entity of the named species at cell.
func (t *Tank) Spawn(name string, cell core.Offset) (EntityID, error) {
	s, ok := lookupSpecies(name)
	if !ok {
		return NoEntity, fmt.Errorf("tank: unknown species %q", name)
	}
	return s.spawn(t, cell).id, nil
}

func init() {
	seed := []struct {
		name, title string
		spawn       Spawner
	}{
		{"fish", "Fish", (*Tank).newFish},
		{"sea_urchin", "Sea urchin", (*Tank).newSeaUrchin},
		{"bottom_dweller", "Bottom dweller", (*Tank).newBottomDweller},
		{"cephalopod", "Cephalopod", (*Tank).newCephalopod},
		{"coral", "Coral", (*Tank).newCoral},
		{"shell", "Shell", (*Tank).newShell},
		{"rock", "Rock", (*Tank).newRock},
		{"seaweed", "Seaweed", (*Tank).newSeaweed},
		{"human", "Scuba diver", (*Tank).newHuman},
		{"garden_eel", "Garden eel", (*Tank).newGardenEel},
	}
	for _, s := range seed {
		RegisterSpecies(SpeciesInfo{Name: s.name, Title: s.title, Seedable: true}, s.spawn)
	}

	RegisterSpecies(SpeciesInfo{Name: "bubble", Title: "Bubble"}, (*Tank).spawnBubble)
	RegisterSpecies(SpeciesInfo{Name: "ink", Title: "Ink cloud"}, func(t *Tank, cell core.Offset) *Entity {
		return t.spawnInk(cell, octopusInk, 1)
	})
	RegisterSpecies(SpeciesInfo{Name: "ground", Title: "Ground"}, (*Tank).newGround)
}

// Populate seeds the tank with count entities per species at random open
// cells. Garden eels settle as a single colony on top of the terrain.
// Entities that find no open cell in a packed tank are not created.
func (t *Tank) Populate(population map[string]int) error {
	names := make([]string, 0, len(population))
	for name, n := range population {
		s, ok := lookupSpecies(name)
		if !ok {
			return fmt.Errorf("tank: unknown species %q", name)
		}
		if !s.info.Seedable {
			return fmt.Errorf("tank: species %q cannot be seeded", name)
		}
		if n < 0 {
			return fmt.Errorf("tank: negative count %d for %q", n, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if t.width == 0 || t.height == 0 {
		return nil
	}

	for _, name := range names {
		if name == "garden_eel" {
			continue
		}
		s, _ := lookupSpecies(name)
		for range population[name] {
			if cell, ok := t.openCell(); ok {
				s.spawn(t, cell)
			}
		}
	}

	if n := population["garden_eel"]; n > 0 {
		t.settleEelColony(n)
	}
	return nil
}

// openCellTries is how many random cells are drawn before scanning.
const openCellTries = 32

// openCell returns a random cell with no solid on it or on either side.
// Glyph widths are unknown before the first render, so the neighbors are
// kept clear for two-cell glyphs. ok is false when no such cell exists.
func (t *Tank) openCell() (core.Offset, bool) {
	for range openCellTries {
		cell := core.Pt(t.rng.Intn(t.width), t.rng.Intn(t.height))
		if t.roomAt(cell) {
			return cell, true
		}
	}

	n := t.width * t.height
	start := t.rng.Intn(n)
	for i := range n {
		k := (start + i) % n
		if cell := core.Pt(k%t.width, k/t.width); t.roomAt(cell) {
			return cell, true
		}
	}
	return core.Offset{}, false
}

func (t *Tank) roomAt(cell core.Offset) bool {
	for _, dx := range []int{-1, 0, 1} {
		if t.reg.solidAt(cell.Add(core.Pt(dx, 0)), NoEntity) != nil {
			return false
		}
	}
	return true
}

func (t *Tank) settleEelColony(n int) {
	spread := max(t.cfg.EelColonySpread, 0)
	colony := t.rng.Intn(t.width)
	for range n {
		x := core.Clamp(colony+t.rng.Intn(2*spread+1)-spread, 0, t.width-1)
		t.newGardenEel(core.Pt(x, t.height-TerrainHeight(x)-1))
	}
}
