package slingshot

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
)

const frame = 1.0 / 60

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func woodBlock(x, y, w, h float64) levels.BlockSpec {
	return levels.BlockSpec{X: x, Y: y, W: w, H: h, Material: levels.MaterialWood, Mass: 1.5, Friction: 0.6, Bounciness: 0.3}
}

// farEnemy keeps a level from clearing while a test runs.
var farEnemy = levels.EnemySpec{X: 1400, Y: 535}

func newTestWorld(blocks []levels.BlockSpec, enemies ...levels.EnemySpec) *World {
	tpl := levels.Template{ID: "test", Name: "Test", Blocks: blocks, Enemies: enemies}
	return NewWorld(config.DefaultSlingshotConfig(), tpl, 42)
}

// fly puts the bird in flight at pos with velocity vel.
func fly(w *World, pos, vel core.Vec) {
	w.Bird.Pos = pos
	w.Bird.Vel = vel
	w.Bird.State = BirdInFlight
}

func TestCalculateTrajectory(t *testing.T) {
	start := core.V(0, 0)
	vel := core.V(10, -5)

	points := CalculateTrajectory(start, vel, 3, 1, 0.5)
	if len(points) != 3 {
		t.Fatalf("len = %d, expected 3", len(points))
	}
	if points[0] != start {
		t.Errorf("first point = %v, expected start", points[0])
	}
	if !near(points[2].X(), 20) || !near(points[2].Y(), -9) {
		t.Errorf("points[2] = %v, expected (20, -9)", points[2])
	}

	again := CalculateTrajectory(start, vel, 3, 1, 0.5)
	for i := range points {
		if points[i] != again[i] {
			t.Errorf("point %d differs between calls", i)
		}
	}
}

func TestCalculateTrajectoryClampsCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"normal", 10, 10},
		{"too many", 500, MaxTrajectoryPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTrajectory(core.V(0, 0), core.V(1, 1), tt.n, 0.9, 0.5)
			if len(got) != tt.want {
				t.Errorf("len = %d, expected %d", len(got), tt.want)
			}
		})
	}
}

func TestNewWorldSpawnsTemplate(t *testing.T) {
	w := NewWorld(config.DefaultSlingshotConfig(), levels.Builtin()[0], 1)

	if w.Bird.State != BirdResting || w.Bird.Pos != w.Anchor {
		t.Errorf("bird should rest on the anchor, got %+v", w.Bird)
	}
	if len(w.Blocks) != 8 || len(w.Enemies) != 2 {
		t.Fatalf("got %d blocks and %d enemies, expected 8 and 2", len(w.Blocks), len(w.Enemies))
	}
	for i, e := range w.Enemies {
		if e.Health != 3 || e.MaxHealth != 3 || e.Radius != 15 || e.State != EnemyAlive {
			t.Errorf("enemy %d = %+v, expected default health and radius", i, e)
		}
	}
	if w.Lives != 3 || w.Score != 0 {
		t.Errorf("lives=%d score=%d, expected 3 and 0", w.Lives, w.Score)
	}
}

func TestPointerDragAndLaunch(t *testing.T) {
	w := newTestWorld(nil, farEnemy)

	w.Step(frame, Aim{Pointer: w.Anchor, HasPointer: true, Pressed: true, Down: true})
	if w.Bird.State != BirdDragging {
		t.Fatalf("press on the bird should start a drag, state = %v", w.Bird.State)
	}

	pull := core.V(50, 450)
	w.Step(frame, Aim{Pointer: pull, HasPointer: true, Down: true})
	if w.Bird.Pos != pull {
		t.Errorf("dragged bird at %v, expected %v", w.Bird.Pos, pull)
	}
	if pts := w.Preview(); len(pts) != 100 {
		t.Errorf("preview has %d points, expected 100", len(pts))
	}
	w.drainEvents()

	w.Step(frame, Aim{Pointer: pull, HasPointer: true, Released: true})
	if w.Bird.State != BirdInFlight {
		t.Fatalf("release should launch, state = %v", w.Bird.State)
	}
	// (anchor - pull) * 0.2 = (20, -10), then one frame of gravity.
	if !near(w.Bird.Vel.X(), 20) || !near(w.Bird.Vel.Y(), -10+0.41) {
		t.Errorf("velocity = %v, expected (20, -9.59)", w.Bird.Vel)
	}
	events := w.drainEvents()
	if len(events) != 1 || events[0] != core.EventLaunch {
		t.Errorf("events = %v, expected [launch]", events)
	}
	if w.Preview() != nil {
		t.Error("no preview once the bird is in flight")
	}
}

func TestPressAwayFromBirdIgnored(t *testing.T) {
	w := newTestWorld(nil, farEnemy)
	w.Step(frame, Aim{Pointer: core.V(700, 100), HasPointer: true, Pressed: true, Down: true, GrabRadius: 20})
	if w.Bird.State != BirdResting {
		t.Errorf("state = %v, expected resting", w.Bird.State)
	}
}

func TestZeroPullReturnsToRest(t *testing.T) {
	w := newTestWorld(nil, farEnemy)
	w.Step(frame, Aim{Pointer: w.Anchor, HasPointer: true, Pressed: true, Down: true})
	w.Step(frame, Aim{Pointer: w.Anchor, HasPointer: true, Released: true})

	if w.Bird.State != BirdResting || w.Bird.Vel != (core.Vec{}) {
		t.Errorf("bird = %+v, expected resting with no velocity", w.Bird)
	}
	for _, e := range w.drainEvents() {
		if e == core.EventLaunch {
			t.Error("zero pull must not launch")
		}
	}
}

func TestPullIsClamped(t *testing.T) {
	w := newTestWorld(nil, farEnemy)
	w.Step(frame, Aim{Pointer: w.Anchor, HasPointer: true, Pressed: true, Down: true})
	w.Step(frame, Aim{Pointer: core.V(-1000, 400), HasPointer: true, Down: true})

	d := w.Bird.Pos.Sub(w.Anchor).Len()
	if !near(d, w.Config().Physics.MaxPull) {
		t.Errorf("pull = %v, expected %v", d, w.Config().Physics.MaxPull)
	}
}

func TestKeyboardAim(t *testing.T) {
	w := newTestWorld(nil, farEnemy)

	w.Step(frame, Aim{Nudge: core.V(-KeyboardAimStep, 0)})
	if w.Bird.State != BirdDragging {
		t.Fatalf("arrow should start aiming, state = %v", w.Bird.State)
	}
	w.Step(frame, Aim{Nudge: core.V(-KeyboardAimStep, 0)})
	w.Step(frame, Aim{Fire: true})

	if w.Bird.State != BirdInFlight || w.Bird.Vel.X() <= 0 {
		t.Errorf("bird should fly right, got %+v", w.Bird)
	}
}

func TestGroundBounce(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec
		vel    core.Vec
		wantVY float64
	}{
		{"bounce", core.V(600, 530), core.V(5, 10), -(10 + 0.41) * 0.5},
		{"damped to zero", core.V(600, 534), core.V(5, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(nil, farEnemy)
			fly(w, tt.pos, tt.vel)
			w.Step(frame, Aim{})

			if !near(w.Bird.Pos.Y(), 535) {
				t.Errorf("y = %v, expected clamp to 535", w.Bird.Pos.Y())
			}
			if !near(w.Bird.Vel.Y(), tt.wantVY) {
				t.Errorf("vy = %v, expected %v", w.Bird.Vel.Y(), tt.wantVY)
			}
		})
	}
}

func TestDirectHitKillsEnemy(t *testing.T) {
	w := newTestWorld(nil, levels.EnemySpec{X: 400, Y: 300}, farEnemy)
	fly(w, core.V(380, 300), core.V(10, 0))

	if out := w.Step(frame, Aim{}); out != OutcomeNone {
		t.Errorf("outcome = %v, expected none while an enemy remains", out)
	}
	e := w.Enemies[0]
	if e.State != EnemyDead || e.Health != 0 {
		t.Errorf("enemy = %+v, expected dead with zero health", e)
	}
	if w.Score != 150 {
		t.Errorf("score = %d, expected 150", w.Score)
	}
	if w.EnemiesLeft() != 1 {
		t.Errorf("EnemiesLeft = %d, expected 1", w.EnemiesLeft())
	}
}

func TestBirdKnocksBlock(t *testing.T) {
	w := newTestWorld([]levels.BlockSpec{woodBlock(400, 250, 40, 100)}, farEnemy)
	fly(w, core.V(380, 300), core.V(10, 0))

	w.Step(frame, Aim{})

	if w.Blocks[0].State != BlockFalling {
		t.Errorf("block state = %v, expected falling", w.Blocks[0].State)
	}
	if w.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Score)
	}
	if w.Bird.Vel.X() >= 0 {
		t.Errorf("bird should rebound, vx = %v", w.Bird.Vel.X())
	}
	if !containsEvent(w.drainEvents(), core.EventBlockHit) {
		t.Error("expected a block hit event")
	}
}

func TestChainReactionSameFrame(t *testing.T) {
	w := newTestWorld([]levels.BlockSpec{
		woodBlock(400, 250, 40, 100),
		woodBlock(430, 250, 40, 100),
	}, farEnemy)
	fly(w, core.V(380, 300), core.V(10, 0))

	w.Step(frame, Aim{})

	if w.Score != 10 {
		t.Errorf("score = %d, expected only the direct hit to score", w.Score)
	}
	for i, b := range w.Blocks {
		if b.State != BlockFalling {
			t.Errorf("block %d state = %v, expected falling", i, b.State)
		}
	}
}

func TestFallingBlockDamagesEnemyWithCooldown(t *testing.T) {
	w := newTestWorld([]levels.BlockSpec{woodBlock(480, 490, 40, 40)}, levels.EnemySpec{X: 500, Y: 535})
	w.Blocks[0].State = BlockFalling
	spawn := w.Enemies[0].Pos

	w.Step(frame, Aim{})
	e := w.Enemies[0]
	if e.Health != 2 || e.State != EnemyFalling {
		t.Fatalf("enemy = %+v, expected knocked up with 2 health", e)
	}
	if !near(e.HitTimer, 0.5) {
		t.Errorf("hit timer = %v, expected 0.5", e.HitTimer)
	}
	if !containsEvent(w.drainEvents(), core.EventEnemyHit) {
		t.Error("expected an enemy hit event")
	}

	// Still overlapping but inside the cooldown window.
	w.Enemies[0].State = EnemyAlive
	w.Enemies[0].Pos = spawn
	w.Step(frame, Aim{})
	if w.Enemies[0].Health != 2 {
		t.Errorf("health = %d, expected no damage during cooldown", w.Enemies[0].Health)
	}

	w.Enemies[0].State = EnemyAlive
	w.Enemies[0].Pos = spawn
	w.Enemies[0].HitTimer = 0
	w.Enemies[0].Health = 1
	w.Blocks[0].Rect.Y = 490
	out := w.Step(frame, Aim{})

	if w.Enemies[0].State != EnemyDead {
		t.Errorf("enemy state = %v, expected dead", w.Enemies[0].State)
	}
	if w.Score != 100 {
		t.Errorf("score = %d, expected 100", w.Score)
	}
	if out != OutcomeCleared {
		t.Errorf("outcome = %v, expected cleared", out)
	}
}

func TestDamageEnemy(t *testing.T) {
	w := newTestWorld(nil, levels.EnemySpec{X: 500, Y: 500, Health: 2})

	if w.DamageEnemy(-1, 1) || w.DamageEnemy(5, 1) {
		t.Error("out of range index should be ignored")
	}
	if w.DamageEnemy(0, 1) {
		t.Error("first hit should not kill")
	}
	if !w.DamageEnemy(0, 1) {
		t.Error("second hit should kill")
	}
	if w.DamageEnemy(0, 1) {
		t.Error("dead enemy should be ignored")
	}
	if w.Enemies[0].Health != 0 {
		t.Errorf("health = %d, expected 0", w.Enemies[0].Health)
	}
}

func TestShotOverConsumesBird(t *testing.T) {
	w := newTestWorld(nil, farEnemy)
	fly(w, core.V(1530, 300), core.V(20, 0))

	if out := w.Step(frame, Aim{}); out != OutcomeNone {
		t.Errorf("outcome = %v, expected none", out)
	}
	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if w.Bird.State != BirdResting || w.Bird.Pos != w.Anchor {
		t.Errorf("bird should respawn on the anchor, got %+v", w.Bird)
	}
	if !containsEvent(w.drainEvents(), core.EventLifeLost) {
		t.Error("expected a life lost event")
	}
}

func TestLastBirdOutOfBirds(t *testing.T) {
	w := newTestWorld(nil, farEnemy)
	w.Lives = 1
	fly(w, core.V(1530, 300), core.V(20, 0))

	if out := w.Step(frame, Aim{}); out != OutcomeOutOfBirds {
		t.Errorf("outcome = %v, expected out of birds", out)
	}
	if w.Lives != 0 || !w.OutOfBirds {
		t.Errorf("lives=%d outOfBirds=%v", w.Lives, w.OutOfBirds)
	}

	before := w.Snapshot()
	w.Step(frame, Aim{Fire: true})
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("a finished world must not change")
	}
}

func TestClearedWinsOverLastBird(t *testing.T) {
	w := newTestWorld(nil, levels.EnemySpec{X: 1520, Y: 300})
	w.Lives = 1
	fly(w, core.V(1515, 300), core.V(25, 0))

	if out := w.Step(frame, Aim{}); out != OutcomeCleared {
		t.Errorf("outcome = %v, expected cleared", out)
	}
}

func TestEntitiesStayAboveGround(t *testing.T) {
	w := NewWorld(config.DefaultSlingshotConfig(), levels.Builtin()[0], 7)
	fly(w, core.V(200, 350), core.V(24, -6))

	for step := 0; step < 1500; step++ {
		w.Step(frame, Aim{Fire: step%200 == 0})

		if w.Bird.Pos.Y()+w.Bird.Radius > w.GroundY+1e-9 {
			t.Fatalf("step %d: bird below ground at %v", step, w.Bird.Pos)
		}
		for i, b := range w.Blocks {
			if b.State != BlockResting && b.Rect.Bottom() > w.GroundY+1e-9 {
				t.Fatalf("step %d: block %d below ground at %+v", step, i, b.Rect)
			}
			if b.State == BlockSettled && (b.Vel != (core.Vec{}) || b.AngularVel != 0) {
				t.Fatalf("step %d: settled block %d still moving", step, i)
			}
		}
		for i, e := range w.Enemies {
			if e.Pos.Y()+e.Radius > w.GroundY+1e-9 {
				t.Fatalf("step %d: enemy %d below ground at %v", step, i, e.Pos)
			}
			if (e.Health <= 0) != (e.State == EnemyDead) {
				t.Fatalf("step %d: enemy %d health %d with state %v", step, i, e.Health, e.State)
			}
		}
	}
}

func TestHardPresetRaisesEveryEnemy(t *testing.T) {
	normal := config.DefaultSlingshotConfig()
	hard := config.DefaultSlingshotConfig()
	config.ApplySlingshotPreset(&hard, config.DifficultyHard)

	for _, tpl := range levels.Builtin() {
		base := NewWorld(normal, tpl, 1)
		tough := NewWorld(hard, tpl, 1)
		for i := range base.Enemies {
			want := base.Enemies[i].Health + 1
			got := tough.Enemies[i]
			if got.Health != want || got.MaxHealth != want {
				t.Errorf("level %s enemy %d: health=%d max=%d, expected %d",
					tpl.ID, i, got.Health, got.MaxHealth, want)
			}
		}
	}
}

func TestExplicitHealthGetsBonus(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	cfg.Gameplay.HealthBonus = 1
	tpl := levels.Template{ID: "hp", Enemies: []levels.EnemySpec{{X: 1000, Y: 535, Health: 2}}}

	w := NewWorld(cfg, tpl, 1)
	if w.Enemies[0].Health != 3 {
		t.Errorf("health = %d, expected template 2 plus bonus 1", w.Enemies[0].Health)
	}

	cfg.Gameplay.HealthBonus = -5
	w = NewWorld(cfg, tpl, 1)
	if w.Enemies[0].Health != 1 || !w.Enemies[0].Active() {
		t.Errorf("negative bonus should leave enemies alive with 1 health, got %+v", w.Enemies[0])
	}
}

func TestSnapshotCoversSpawnParameters(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	tpl := levels.Builtin()[0]
	base := NewWorld(cfg, tpl, 7).Snapshot()

	mutations := map[string]func(w *World){
		"bird radius":      func(w *World) { w.Bird.Radius++ },
		"block start":      func(w *World) { w.Blocks[0].Start.X++ },
		"block mass":       func(w *World) { w.Blocks[0].Mass++ },
		"block friction":   func(w *World) { w.Blocks[0].Friction += 0.1 },
		"block bounciness": func(w *World) { w.Blocks[0].Bounciness += 0.1 },
		"enemy max health": func(w *World) { w.Enemies[0].MaxHealth++ },
		"enemy vx":         func(w *World) { w.Enemies[0].Vel = core.V(1, 0) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(cfg, tpl, 7)
			mutate(w)
			snap := w.Snapshot()
			if snap.Hash() == base.Hash() {
				t.Errorf("hash unchanged after changing %s", name)
			}
		})
	}
}

func TestResetMatchesFreshLoad(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	tpl := levels.Builtin()[0]

	fresh := NewWorld(cfg, tpl, 42)
	want := fresh.Snapshot()

	w := NewWorld(cfg, tpl, 42)
	fly(w, core.V(800, 350), core.V(20, 0))
	for range 300 {
		w.Step(frame, Aim{})
	}
	w.Score = 999
	w.Reset()

	got := w.Snapshot()
	if got.Hash() != want.Hash() {
		t.Errorf("reset hash %d differs from fresh %d", got.Hash(), want.Hash())
	}
}

func TestLoadLevelKeepsScore(t *testing.T) {
	all := levels.Builtin()
	w := NewWorld(config.DefaultSlingshotConfig(), all[0], 1)
	w.Score = 320
	w.Lives = 1

	w.LoadLevel(all[1])

	if w.Score != 320 {
		t.Errorf("score = %d, expected carry over", w.Score)
	}
	if w.Lives != 3 || w.Template().ID != all[1].ID {
		t.Errorf("lives=%d level=%q", w.Lives, w.Template().ID)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		w := NewWorld(config.DefaultSlingshotConfig(), levels.Builtin()[2], 99)
		aims := []Aim{
			{Nudge: core.V(-KeyboardAimStep, 0)},
			{Nudge: core.V(-KeyboardAimStep, KeyboardAimStep)},
			{Nudge: core.V(-KeyboardAimStep, 0)},
			{Fire: true},
		}
		for i := range 600 {
			a := Aim{}
			if i < len(aims) {
				a = aims[i]
			}
			w.Step(frame, a)
		}
		snap := w.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestRNGRangeInclusive(t *testing.T) {
	r := NewSimpleRNG(5)
	seen := map[int]bool{}
	for range 1000 {
		v := r.Range(-3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("Range(-3, 3) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Errorf("saw %d distinct values, expected 7", len(seen))
	}
}

func containsEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
