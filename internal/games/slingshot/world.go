package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
)

// Outcome is the terminal condition reached by a world step, if any.
type Outcome int

const (
	OutcomeNone       Outcome = iota
	OutcomeCleared            // Every enemy is dead
	OutcomeOutOfBirds         // Last bird spent with enemies left
)

// World owns every entity of one level plus the session counters.
// All physics and collision code operates on a *World passed explicitly.
type World struct {
	cfg      config.SlingshotConfig
	template levels.Template
	seed     int64

	Anchor  core.Vec
	GroundY float64
	Width   float64
	Height  float64

	Bird    Bird
	Blocks  []Block
	Enemies []Enemy

	Score      int
	Lives      int
	OutOfBirds bool
	Tick       uint64

	rng    *SimpleRNG
	events []core.Event
}

// NewWorld creates a world populated from the template.
func NewWorld(cfg config.SlingshotConfig, tpl levels.Template, seed int64) *World {
	w := &World{
		cfg:     cfg,
		seed:    seed,
		Anchor:  core.V(cfg.World.AnchorX, cfg.World.AnchorY),
		GroundY: cfg.World.GroundY,
		Width:   cfg.World.Width,
		Height:  cfg.World.Height,
	}
	w.LoadLevel(tpl)
	w.Score = 0
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.SlingshotConfig {
	return w.cfg
}

// Template returns the template the current layout was spawned from.
func (w *World) Template() levels.Template {
	return w.template
}

// LoadLevel spawns a fresh layout from tpl and restores bird and lives.
// Score is left untouched so it carries across levels.
func (w *World) LoadLevel(tpl levels.Template) {
	w.template = tpl.Clone()
	w.rng = NewSimpleRNG(w.seed)
	w.Tick = 0
	w.Lives = w.cfg.Gameplay.Lives
	w.OutOfBirds = false
	w.events = w.events[:0]
	w.respawnBird()

	w.Blocks = make([]Block, len(tpl.Blocks))
	for i, spec := range tpl.Blocks {
		box := core.NewBox(spec.X, spec.Y, spec.W, spec.H)
		w.Blocks[i] = Block{
			Rect:       box,
			Start:      box,
			Mass:       spec.Mass,
			Friction:   spec.Friction,
			Bounciness: spec.Bounciness,
			Material:   spec.Material,
			State:      BlockResting,
		}
	}

	w.Enemies = make([]Enemy, len(tpl.Enemies))
	for i, spec := range tpl.Enemies {
		health := spec.Health
		if health == 0 {
			health = w.cfg.Gameplay.EnemyHealth
		}
		health += w.cfg.Gameplay.HealthBonus
		if health < 1 {
			health = 1
		}
		radius := spec.Radius
		if radius == 0 {
			radius = w.cfg.Gameplay.EnemyRadius
		}
		w.Enemies[i] = Enemy{
			Pos:       core.V(spec.X, spec.Y),
			Radius:    radius,
			Health:    health,
			MaxHealth: health,
			State:     EnemyAlive,
		}
	}
}

// Reset re-spawns the current level from its template and clears the score.
func (w *World) Reset() {
	w.LoadLevel(w.template)
	w.Score = 0
}

func (w *World) respawnBird() {
	w.Bird = Bird{
		Pos:    w.Anchor,
		Radius: w.cfg.Bird.Radius,
		State:  BirdResting,
	}
}

// AllEnemiesDead reports whether the level is cleared.
func (w *World) AllEnemiesDead() bool {
	for _, e := range w.Enemies {
		if e.Active() {
			return false
		}
	}
	return true
}

// EnemiesLeft counts enemies that are not dead.
func (w *World) EnemiesLeft() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

func (w *World) emit(e core.Event) {
	w.events = append(w.events, e)
}

// drainEvents returns events recorded since the last call.
func (w *World) drainEvents() []core.Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

// Step advances the simulation by dt seconds. Velocities are per 60 Hz frame,
// so every integration scales by s = dt*60.
//
// Order within a step:
//  1. enemy hit timers count down
//  2. aim input (grab, drag, launch)
//  3. bird integration and ground bounce
//  4. bird against enemies, then bird against blocks
//  5. falling block integration
//  6. block chain reaction (falling against resting)
//  7. falling blocks against enemies
//  8. knocked enemy integration
//  9. end of shot (rest or out of bounds)
//  10. terminal check
func (w *World) Step(dt float64, aim Aim) Outcome {
	if w.OutOfBirds || w.AllEnemiesDead() {
		return w.outcome()
	}

	s := dt * 60
	w.Tick++

	w.tickHitTimers(dt)
	w.handleAim(aim)

	if w.Bird.Launched() {
		w.integrateBird(s)
		w.collideBirdEnemies()
		w.collideBirdBlocks()
	}

	w.integrateBlocks(s)
	w.collideBlockChain()
	w.collideBlocksEnemies()
	w.integrateEnemies(s)

	if w.Bird.Launched() {
		w.checkShotOver()
	}

	return w.outcome()
}

func (w *World) outcome() Outcome {
	if w.AllEnemiesDead() {
		return OutcomeCleared
	}
	if w.OutOfBirds {
		return OutcomeOutOfBirds
	}
	return OutcomeNone
}
