package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-aquarium/internal/config"
	"github.com/vovakirdan/tui-aquarium/internal/core"
	"github.com/vovakirdan/tui-aquarium/internal/storage"
	"github.com/vovakirdan/tui-aquarium/internal/tank"
)

// statusLines is the number of terminal lines below the tank.
const statusLines = 1

// burstSize is the number of bubbles released by the bubble key.
const burstSize = 5

// Options configures an aquarium view.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig // Terminal size, tick rate and seed
	Store    *storage.Store     // Census store; nil disables persistence
	Logger   *log.Logger        // nil discards
	Host     string             // Census tag: "local" or the SSH user
	Renderer *lipgloss.Renderer // nil uses the process default
}

// drag tracks an entity held by the mouse.
type drag struct {
	active bool
	id     tank.EntityID
	offset core.Offset // Pointer position relative to the entity
}

// Model is the Bubble Tea model for one aquarium.
type Model struct {
	tank     *tank.Tank
	config   config.Config
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	painter  *Painter
	keys     KeyMap
	help     help.Model
	rng      *rand.Rand
	host     string
	runID    string
	spawns   []string // What a click on open water creates
	spawnIdx int
	drag     drag
	paused   bool
	showHelp bool
	quitting bool
}

// NewModel creates an aquarium sized to the terminal, minus the status bar.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	host := opts.Host
	if host == "" {
		host = "local"
	}

	t, err := tank.NewFromConfig(tankRuntime(rt), opts.Config)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		tank:    t,
		config:  opts.Config,
		runtime: rt,
		store:   opts.Store,
		logger:  logger,
		painter: NewPainter(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    h,
		rng:     rand.New(rand.NewSource(rt.Seed)),
		host:    host,
		runID:   fmt.Sprintf("%s-%d", host, time.Now().UnixNano()),
		spawns:  append([]string{"bubble"}, tank.SeedableSpecies()...),
	}

	if m.store != nil {
		err := m.store.StartRun(storage.Run{
			ID:     m.runID,
			Host:   host,
			Width:  t.Width(),
			Height: t.Height(),
			Seed:   rt.Seed,
		})
		if err != nil {
			logger.Warn("census disabled", "error", err)
			m.store = nil
		}
	}

	logger.Debug("aquarium ready", "run", m.runID, "width", t.Width(), "height", t.Height(), "entities", t.Len())
	return m, nil
}

// tankRuntime reserves the status bar rows of the terminal.
func tankRuntime(rt core.RuntimeConfig) core.RuntimeConfig {
	rt.ScreenW = max(rt.ScreenW, 0)
	rt.ScreenH = max(rt.ScreenH-statusLines, 0)
	return rt
}

// Tank returns the simulated tank.
func (m Model) Tank() *tank.Tank { return m.tank }

// RunID returns the census run identifier.
func (m Model) RunID() string { return m.runID }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordCensus(time.Now())
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Repopulate):
		m.repopulate()

	case key.Matches(msg, m.keys.Bubbles):
		if w, h := m.tank.Width(), m.tank.Height(); w > 0 && h > 0 {
			x := m.rng.Intn(w)
			for i := range burstSize {
				m.tank.SpawnBubble(core.Pt(x, max(h-1-i, 0)))
			}
		}

	case key.Matches(msg, m.keys.NextSpawn):
		m.spawnIdx = (m.spawnIdx + 1) % len(m.spawns)

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// handleResize keeps the population anchored to the floor of the new tank.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	rt := tankRuntime(m.runtime)
	m.tank.OnResize(rt.ScreenW, rt.ScreenH)
	m.logger.Debug("resized", "width", rt.ScreenW, "height", rt.ScreenH)
	return m, nil
}

// handleMouse drags entities around and blows bubbles into open water.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cell := core.Pt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || cell.Y >= m.tank.Height() {
			return m, nil
		}
		if id, ok := m.tank.EntityAt(cell); ok {
			e, _ := m.tank.Get(id)
			m.drag = drag{active: true, id: id, offset: cell.Sub(e.Pos())}
			return m, nil
		}
		if _, err := m.tank.Spawn(m.spawns[m.spawnIdx], cell); err != nil {
			m.logger.Warn("spawn failed", "error", err)
		}

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.drag.active {
			if !m.tank.SetPosition(m.drag.id, cell.Sub(m.drag.offset)) {
				m.drag = drag{}
			}
			return m, nil
		}
		if m.rng.Float64() < 0.5 {
			m.tank.SpawnBubble(cell)
		}

	case tea.MouseActionRelease:
		m.drag = drag{}
	}

	return m, nil
}

// handleTick advances the simulation and records the census on schedule.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.drag.active {
		m.tank.AdvanceTick(now, m.drag.id)
	} else {
		m.tank.AdvanceTick(now)
	}

	if every := m.config.Census.Every; every > 0 && m.tank.Ticks()%uint64(every) == 0 {
		m.recordCensus(now)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// repopulate replaces the tank with a freshly stocked one of the same size.
func (m *Model) repopulate() {
	m.runtime.Seed = time.Now().UnixNano()
	t, err := tank.NewFromConfig(tankRuntime(m.runtime), m.config)
	if err != nil {
		m.logger.Error("restock failed", "error", err)
		return
	}
	m.tank = t
	m.drag = drag{}
	m.logger.Debug("restocked", "seed", m.runtime.Seed, "entities", t.Len())
}

// recordCensus stores the current population counts. Best-effort.
func (m *Model) recordCensus(now time.Time) {
	if m.store == nil {
		return
	}
	if err := m.store.SaveCensus(m.runID, m.tank.Ticks(), m.tank.Census(), now); err != nil {
		m.logger.Warn("census not saved", "error", err)
		return
	}
	m.logger.Debug("census saved", "run", m.runID, "tick", m.tank.Ticks())
}

// saveScreenshot saves the current tank as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".aquarium", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("aquarium_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(Screenshot(m.tank)), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// status describes the simulation for the bottom bar.
func (m Model) status() string {
	state := "swimming"
	if m.paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s · tick %d · %d entities · click: %s · ? help",
		state, m.tank.Ticks(), m.tank.Len(), m.spawns[m.spawnIdx])
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bar := m.painter.StatusLine(m.status(), m.runtime.ScreenW)
	if m.showHelp {
		bar = m.help.View(m.keys)
	}
	if m.tank.Height() == 0 {
		return bar
	}
	return m.painter.RenderTank(m.tank) + "\n" + bar
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
