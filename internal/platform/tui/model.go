package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/settings"
	"github.com/vovakirdan/tui-slingshot/internal/storage"
)

// Optional capabilities a game may expose to the host.
type (
	resizer interface {
		Resize(w, h int)
	}
	configurable interface {
		Settings() settings.Settings
		ApplySettings(settings.Settings)
	}
	levelReporter interface {
		LevelID() string
	}
)

// bellEvents ring the terminal bell when sound is enabled.
var bellEvents = []core.Event{
	core.EventEnemyKilled,
	core.EventLifeLost,
	core.EventLevelComplete,
	core.EventVictory,
	core.EventGameOver,
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	prefs      *settings.Manager
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // Whether the current finished run has been recorded
	bell       bool // Ring the terminal bell with the next frame
}

// NewModel creates a new Bubble Tea model for the given game.
// store and prefs may be nil.
func NewModel(game registry.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = normalizeTickRate(cfg.TickRate)
	if prefs == nil {
		prefs = settings.NewManager(nil)
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		prefs:      prefs,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if c, ok := m.game.(configurable); ok {
		c.ApplySettings(m.prefs.Get())
	}
	m.gameState = m.game.State()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, &m.inputFrame.Pointer)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can re-layout keep their state; others restart.
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.Delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.handleEvents(result.Events)
	m.syncSettings()

	if m.gameState.Finished() {
		if !m.runSaved {
			outcome := storage.OutcomeGameOver
			if m.gameState.Victory {
				outcome = storage.OutcomeVictory
			}
			m.saveRun(outcome)
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	if m.gameState.Quit {
		return m.quit()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		log.Debug("game event", "game", m.game.ID(), "event", ev, "score", m.gameState.Score)
	}
	if !m.soundEnabled() {
		return
	}
	for _, want := range bellEvents {
		for _, ev := range events {
			if ev == want {
				m.bell = true
				return
			}
		}
	}
}

func (m *Model) soundEnabled() bool {
	if c, ok := m.game.(configurable); ok {
		return c.Settings().SoundEnabled
	}
	return m.prefs.Get().SoundEnabled
}

// syncSettings persists preferences changed from the in-game settings menu.
func (m *Model) syncSettings() {
	c, ok := m.game.(configurable)
	if !ok {
		return
	}
	if err := m.prefs.Set(c.Settings()); err != nil {
		log.Warn("cannot save settings", "err", err)
	}
}

// quit records an unfinished run and stops the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if !m.gameState.Finished() {
		m.saveRun(storage.OutcomeQuit)
	}
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the current run. Empty runs are not recorded.
func (m *Model) saveRun(outcome storage.Outcome) {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: outcome,
	}
	if lr, ok := m.game.(levelReporter); ok {
		run.LevelID = lr.LevelID()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		log.Warn("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".slingshot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.bell {
		m.bell = false
		out = "\a" + out
	}
	return out
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, prefs, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release for aiming
	)

	_, err := p.Run()
	return err
}
