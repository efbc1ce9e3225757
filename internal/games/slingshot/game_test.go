package slingshot

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	SetLevels(nil)
	SetStartLevel(0)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func pointer(g *Game, p core.PointerState) core.StepResult {
	in := core.NewInputFrame()
	p.Valid = true
	in.Pointer = p
	return g.Step(in)
}

func killAll(w *World) {
	for i := range w.Enemies {
		w.DamageEnemy(i, 100)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("slingshot")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "slingshot" || g.Title() != "Slingshot" {
		t.Errorf("got %q / %q", g.ID(), g.Title())
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != PhaseMenu {
		t.Errorf("phase = %v, expected menu", g.Phase())
	}
	st := g.State()
	if !st.Paused || st.Level != 1 || st.TotalLevels != 3 || st.Lives != 3 {
		t.Errorf("state = %+v", st)
	}
	if g.menuItems()[0] != "Play" {
		t.Errorf("first item = %q, expected Play", g.menuItems()[0])
	}
}

func TestMenuPlayAndContinue(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionConfirm)
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.Phase())
	}

	press(g, core.ActionBack)
	if g.Phase() != PhaseMenu {
		t.Fatalf("Esc should open the menu, phase = %v", g.Phase())
	}
	if g.menuItems()[0] != "Continue" {
		t.Errorf("first item = %q, expected Continue", g.menuItems()[0])
	}

	press(g, core.ActionBack)
	if g.Phase() != PhasePlaying {
		t.Errorf("Esc in the menu should resume, phase = %v", g.Phase())
	}
}

func TestMenuExit(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionDown)
	press(g, core.ActionDown)
	press(g, core.ActionConfirm)

	if !g.State().Quit {
		t.Error("Exit should set Quit")
	}
}

func TestMenuPointerClick(t *testing.T) {
	g := newTestGame(t)
	box := menuBox(80, 24, menuCount)
	row := menuItemRow(24, menuCount, menuSettings)

	pointer(g, core.PointerState{X: box.X + 5, Y: row, Pressed: true, Down: true})

	if g.Phase() != PhaseSettings {
		t.Errorf("phase = %v, expected settings", g.Phase())
	}
}

func TestPointerItemHitTest(t *testing.T) {
	box := menuBox(80, 24, menuCount)
	row := menuItemRow(24, menuCount, menuExit)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"left edge of row", box.X, row, menuExit},
		{"last column of row", box.Right() - 1, row, menuExit},
		{"right of box", box.Right(), row, -1},
		{"gap between rows", box.X + 5, row - 1, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := core.NewInputFrame()
			in.Pointer = core.PointerState{X: tc.x, Y: tc.y, Valid: true, Pressed: true, Down: true}
			if got := pointerItem(in, 80, 24, menuCount); got != tc.want {
				t.Errorf("pointerItem = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestSettingsToggleAndReturn(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)
	press(g, core.ActionSettings)
	if g.Phase() != PhaseSettings {
		t.Fatalf("phase = %v, expected settings", g.Phase())
	}

	press(g, core.ActionConfirm)
	press(g, core.ActionDown)
	press(g, core.ActionConfirm)

	s := g.Settings()
	if s.SoundEnabled || s.ShowTrajectory {
		t.Errorf("settings = %+v, expected both off", s)
	}

	press(g, core.ActionBack)
	if g.Phase() != PhasePlaying {
		t.Errorf("Esc should return to playing, phase = %v", g.Phase())
	}
}

func TestMuteToggle(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionMute)
	if g.Settings().SoundEnabled {
		t.Error("mute should disable sound")
	}
	press(g, core.ActionMute)
	if !g.Settings().SoundEnabled {
		t.Error("second mute should enable sound")
	}
}

func TestLevelCompleteAndAdvance(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	g.World().Score = 500
	killAll(g.World())
	res := press(g)

	if g.Phase() != PhaseLevelComplete || !res.Has(core.EventLevelComplete) {
		t.Fatalf("phase = %v events = %v, expected level complete", g.Phase(), res.Events)
	}
	if res.State.Finished() {
		t.Error("level complete is not a terminal state")
	}

	press(g, core.ActionNextLevel)

	if g.LevelIndex() != 1 || g.Phase() != PhasePlaying {
		t.Errorf("level=%d phase=%v", g.LevelIndex(), g.Phase())
	}
	if g.State().Score != 500 {
		t.Errorf("score = %d, expected carry over", g.State().Score)
	}
	if g.World().EnemiesLeft() == 0 {
		t.Error("next level should spawn enemies")
	}
}

func TestVictoryStartsNewCampaign(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	g.levelIndex = 2
	g.World().LoadLevel(g.campaign[2])
	g.World().Score = 900
	killAll(g.World())
	res := press(g)

	if !res.State.Victory || !res.Has(core.EventVictory) {
		t.Fatalf("state = %+v events = %v, expected victory", res.State, res.Events)
	}

	press(g, core.ActionConfirm)

	if g.LevelIndex() != 0 || g.State().Score != 0 || g.Phase() != PhasePlaying {
		t.Errorf("level=%d score=%d phase=%v", g.LevelIndex(), g.State().Score, g.Phase())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	w := g.World()
	w.Lives = 1
	fly(w, core.V(1530, 300), core.V(20, 0))
	res := press(g)

	if !res.State.GameOver || !res.Has(core.EventGameOver) || !res.Has(core.EventLifeLost) {
		t.Fatalf("state = %+v events = %v, expected game over", res.State, res.Events)
	}

	press(g, core.ActionRestart)

	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", g.Phase())
	}
	fresh := NewWorld(g.cfg, g.Level(), 42).Snapshot()
	got := g.World().Snapshot()
	if got.Hash() != fresh.Hash() {
		t.Error("restart should match a fresh load of the level")
	}
}

func TestPointerAimThroughViewport(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	col, row := g.view.ToScreen(g.World().Anchor.X(), g.World().Anchor.Y())
	pointer(g, core.PointerState{X: col, Y: row, Pressed: true, Down: true})
	if g.World().Bird.State != BirdDragging {
		t.Fatalf("press on the slingshot should grab the bird, state = %v", g.World().Bird.State)
	}

	res := pointer(g, core.PointerState{X: col - 5, Y: row + 2, Released: true})

	if !res.Has(core.EventLaunch) {
		t.Errorf("events = %v, expected launch", res.Events)
	}
	b := g.World().Bird
	if b.State != BirdInFlight || b.Vel.X() <= 0 || b.Vel.Y() >= 0 {
		t.Errorf("bird = %+v, expected flying up and right", b)
	}
}

func TestFrameTime(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		delta time.Duration
		want  float64
	}{
		{0, 1.0 / 60},
		{20 * time.Millisecond, 0.02},
		{time.Second, 0.05},
	}
	for _, tt := range tests {
		in := core.InputFrame{Delta: tt.delta}
		if got := g.frameTime(in); !near(got, tt.want) {
			t.Errorf("frameTime(%v) = %v, expected %v", tt.delta, got, tt.want)
		}
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(20, 8)

	press(g, core.ActionConfirm)
	if g.Phase() != PhaseMenu {
		t.Error("input should be ignored on a tiny screen")
	}

	dst := core.NewScreen(20, 8)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", dst.String())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	if !strings.Contains(dst.String(), "SLINGSHOT") {
		t.Error("menu title missing")
	}

	press(g, core.ActionConfirm)
	g.Render(dst)
	out := dst.String()
	for _, want := range []string{"Score:", string(SlingChar), string(BirdChar), string(EnemyChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if dst.GetCell(0, 23).Rune != GroundChar {
		t.Errorf("bottom row should be ground, got %q", dst.GetCell(0, 23).Rune)
	}
}

func TestCustomLevelsAndStartLevel(t *testing.T) {
	t.Cleanup(func() {
		SetLevels(nil)
		SetStartLevel(0)
	})

	single := levels.Template{
		ID:      "solo",
		Name:    "Solo",
		Enemies: []levels.EnemySpec{{X: 900, Y: 535}},
	}
	SetLevels([]levels.Template{single})
	SetStartLevel(5)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.LevelIndex() != 0 || g.State().TotalLevels != 1 || g.Level().ID != "solo" {
		t.Fatalf("level=%d total=%d", g.LevelIndex(), g.State().TotalLevels)
	}

	press(g, core.ActionConfirm)
	killAll(g.World())
	if res := press(g); !res.State.Victory {
		t.Error("clearing the only level should be a victory")
	}
}

func TestScoreCounterEases(t *testing.T) {
	var c scoreCounter
	c.Snap(0)

	c.Update(0.1, 100)
	if v := c.Value(); v <= 0 || v >= 100 {
		t.Errorf("mid-tween value = %d, expected between 0 and 100", v)
	}

	c.Update(1, 100)
	if c.Value() != 100 {
		t.Errorf("value = %d, expected 100", c.Value())
	}

	c.Update(0.1, 0)
	if c.Value() != 0 {
		t.Errorf("value = %d, expected snap to 0", c.Value())
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, 1536, 550)
	for _, cell := range [][2]int{{0, 1}, {7, 17}, {79, 22}} {
		x, y := v.ToWorld(cell[0], cell[1])
		col, row := v.ToScreen(x, y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("round trip of %v gave (%d, %d)", cell, col, row)
		}
	}
	if v.GroundRow() != 23 {
		t.Errorf("GroundRow = %d, expected 23", v.GroundRow())
	}
}
