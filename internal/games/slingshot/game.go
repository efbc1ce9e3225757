// Package slingshot implements a slingshot physics game: drag the bird back
// from the anchor, release it along a predicted arc and knock down block
// towers to defeat every enemy of the level.
//
// The package is split into a deterministic World (entities, physics and
// collision resolution in world units) and a Game that wraps it with the
// level campaign, menus and terminal rendering.
package slingshot

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/settings"
)

// Minimum terminal size the game can be played on.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseMenu          Phase = iota // Main menu, simulation suspended
	PhasePlaying                    // Simulation running
	PhaseLevelComplete              // Level cleared, more levels remain
	PhaseVictory                    // Final level cleared
	PhaseGameOver                   // Out of birds
	PhaseSettings                   // Settings overlay, simulation suspended
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	case PhaseSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// customLevels replaces the built-in campaign when set via CLI
var customLevels []levels.Template

// startLevel is the 1-based level a new game starts at
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// SetLevels replaces the built-in campaign. A nil slice restores it.
func SetLevels(tpls []levels.Template) {
	customLevels = tpls
}

// SetStartLevel sets the 1-based level new games start at.
// Values out of range start at the first level.
func SetStartLevel(n int) {
	startLevel = n
}

func init() {
	registry.Register("slingshot", func() registry.Game {
		return New()
	})
}

// Game implements the slingshot game for the platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SlingshotConfig

	campaign   []levels.Template
	levelIndex int
	world      *World

	phase    Phase
	resume   Phase // Phase the menu's Continue returns to
	returnTo Phase // Phase the settings overlay returns to
	started  bool
	quit     bool

	menuCursor     int
	settingsCursor int
	prefs          settings.Settings
	score          scoreCounter

	view           Viewport
	screenTooSmall bool
}

// New creates a new slingshot game instance.
func New() *Game {
	return &Game{prefs: settings.Default()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slingshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slingshot"
}

// Reset loads configuration and levels and returns to the main menu with a
// fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSlingshot(configPath)
	if err != nil {
		log.Warn("slingshot: using default config", "err", err)
	}
	if difficultyPreset != "" {
		config.ApplySlingshotPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if len(customLevels) > 0 {
		g.campaign = make([]levels.Template, len(customLevels))
		for i, t := range customLevels {
			g.campaign[i] = t.Clone()
		}
	} else {
		g.campaign = levels.Builtin()
	}

	g.levelIndex = 0
	if startLevel >= 1 && startLevel <= len(g.campaign) {
		g.levelIndex = startLevel - 1
	}

	g.world = NewWorld(cfg, g.campaign[g.levelIndex], runtime.Seed)
	g.score.Snap(0)

	g.phase = PhaseMenu
	g.resume = PhasePlaying
	g.returnTo = PhaseMenu
	g.started = false
	g.quit = false
	g.menuCursor = 0
	g.settingsCursor = 0

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the viewport to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	g.view = NewViewport(w, h, g.cfg.World.Width, g.cfg.World.GroundY)
}

// World returns the simulation of the current level.
func (g *Game) World() *World {
	return g.world
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase {
	return g.phase
}

// LevelIndex returns the 0-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// Level returns the template of the current level.
func (g *Game) Level() levels.Template {
	return g.campaign[g.levelIndex]
}

// LevelID returns the template ID of the current level.
func (g *Game) LevelID() string {
	return g.campaign[g.levelIndex].ID
}

// Settings returns the player preferences in effect.
func (g *Game) Settings() settings.Settings {
	return g.prefs
}

// ApplySettings replaces the player preferences.
func (g *Game) ApplySettings(s settings.Settings) {
	g.prefs = s
}

// Step advances the game by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := g.frameTime(in)
	var events []core.Event

	if in.Has(core.ActionMute) {
		g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	}

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhaseSettings:
		g.stepSettings(in)
	case PhasePlaying:
		events = g.stepPlaying(in, dt)
	case PhaseLevelComplete:
		g.stepLevelComplete(in)
	case PhaseVictory:
		g.stepVictory(in)
	case PhaseGameOver:
		g.stepGameOver(in)
	}

	g.score.Update(dt, g.world.Score)

	return core.StepResult{State: g.State(), Events: events}
}

// frameTime converts the host frame delta to seconds, assuming one fixed
// tick when the host reports none and capping long stalls.
func (g *Game) frameTime(in core.InputFrame) float64 {
	dt := in.Delta.Seconds()
	if dt <= 0 {
		rate := g.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		dt = 1 / float64(rate)
	}
	if limit := g.cfg.Physics.MaxFrameTime; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

func (g *Game) stepPlaying(in core.InputFrame, dt float64) []core.Event {
	switch {
	case in.Has(core.ActionBack):
		g.openMenu()
		return nil
	case in.Has(core.ActionSettings):
		g.openSettings()
		return nil
	case in.Has(core.ActionRestart):
		g.restartLevel()
		return nil
	}

	outcome := g.world.Step(dt, g.aim(in))
	events := g.world.drainEvents()

	switch outcome {
	case OutcomeCleared:
		if g.levelIndex == len(g.campaign)-1 {
			g.phase = PhaseVictory
			events = append(events, core.EventVictory)
		} else {
			g.phase = PhaseLevelComplete
			events = append(events, core.EventLevelComplete)
		}
	case OutcomeOutOfBirds:
		g.phase = PhaseGameOver
		events = append(events, core.EventGameOver)
	}
	return events
}

// aim translates host input into world-space aiming.
func (g *Game) aim(in core.InputFrame) Aim {
	a := Aim{
		Fire:       in.Has(core.ActionFire),
		GrabRadius: g.view.CellSize(),
	}

	if in.Pointer.Valid {
		x, y := g.view.ToWorld(in.Pointer.X, in.Pointer.Y)
		a.Pointer = core.V(x, y)
		a.HasPointer = true
		a.Pressed = in.Pointer.Pressed
		a.Down = in.Pointer.Down
		a.Released = in.Pointer.Released
	}

	step := KeyboardAimStep
	if in.Has(core.ActionLeft) {
		a.Nudge[0] -= step
	}
	if in.Has(core.ActionRight) {
		a.Nudge[0] += step
	}
	if in.Has(core.ActionUp) {
		a.Nudge[1] -= step
	}
	if in.Has(core.ActionDown) {
		a.Nudge[1] += step
	}
	return a
}

func (g *Game) stepLevelComplete(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.openMenu()
	case in.Has(core.ActionRestart):
		g.restartLevel()
	case in.Has(core.ActionNextLevel), in.Has(core.ActionConfirm), in.Has(core.ActionFire), in.Pointer.Pressed:
		g.advanceLevel()
	}
}

func (g *Game) stepVictory(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.openMenu()
	case in.Has(core.ActionRestart), in.Has(core.ActionNextLevel), in.Has(core.ActionConfirm), in.Pointer.Pressed:
		g.newCampaign()
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.openMenu()
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm), in.Pointer.Pressed:
		g.restartLevel()
	}
}

// restartLevel re-spawns the current level from its template and clears the
// score.
func (g *Game) restartLevel() {
	g.world.Reset()
	g.score.Snap(0)
	g.phase = PhasePlaying
}

// advanceLevel moves to the next level, wrapping after the last one.
// The score carries over.
func (g *Game) advanceLevel() {
	g.levelIndex = (g.levelIndex + 1) % len(g.campaign)
	g.world.LoadLevel(g.campaign[g.levelIndex])
	g.phase = PhasePlaying
}

// newCampaign starts over from the first level with a cleared score.
func (g *Game) newCampaign() {
	g.levelIndex = 0
	g.world.LoadLevel(g.campaign[0])
	g.world.Score = 0
	g.score.Snap(0)
	g.phase = PhasePlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.world.Score,
		Lives:       g.world.Lives,
		Level:       g.levelIndex + 1,
		TotalLevels: len(g.campaign),
		GameOver:    g.phase == PhaseGameOver,
		Victory:     g.phase == PhaseVictory,
		Paused:      g.phase == PhaseMenu || g.phase == PhaseSettings,
		Quit:        g.quit,
	}
}
