package slingshot

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
)

// Visual characters for rendering
const (
	BirdChar       = '●'
	EnemyChar      = '◉'
	SlingChar      = 'Y'
	SlingPostChar  = '│'
	BandChar       = '·'
	TrajectoryChar = '∙'
	GroundChar     = '▓'
	TiltUpChar     = '╱'
	TiltDownChar   = '╲'
)

// Tilt beyond which a falling block is drawn as a slanted glyph.
const tiltThreshold = 20.0

// materialStyle returns the fill glyph and color of a block material.
func materialStyle(m levels.Material) (rune, core.Color) {
	switch m {
	case levels.MaterialStone:
		return '█', core.ColorGray
	case levels.MaterialIce:
		return '░', core.ColorCyan
	default:
		return '▒', core.ColorOrange
	}
}

// enemyColor shades an enemy by remaining health.
func enemyColor(e Enemy) core.Color {
	switch {
	case e.Health >= e.MaxHealth:
		return core.ColorBrightGreen
	case e.Health*2 >= e.MaxHealth:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderGround(dst)
	g.renderSlingshot(dst)
	g.renderTrajectory(dst)
	g.renderBlocks(dst)
	g.renderEnemies(dst)
	g.renderBird(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, birds left and the level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world

	scoreText := fmt.Sprintf("Score: %d", g.score.Value())
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	birds := "Birds: " + strings.Repeat(string(BirdChar), w.Lives)
	dst.DrawTextCenteredColored(0, birds, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level %d/%d  Enemies: %d", g.levelIndex+1, len(g.campaign), w.EnemiesLeft())
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightWhite)
}

func (g *Game) renderGround(dst *core.Screen) {
	row := g.view.GroundRow()
	dst.DrawRectColored(core.NewRect(0, row, dst.Width(), dst.Height()-row), GroundChar, core.ColorGreen)

	if g.phase == PhasePlaying && g.world.Bird.State == BirdResting {
		hint := " drag the bird or use arrows + space "
		if !g.prefs.SoundEnabled {
			hint += "[muted] "
		}
		dst.DrawTextCenteredColored(row, hint, core.ColorBrightWhite)
	}
}

func (g *Game) renderSlingshot(dst *core.Screen) {
	a := g.world.Anchor
	col, row := g.view.ToScreen(a.X(), a.Y())
	// The fork sits just below the anchor so a resting bird does not hide it.
	dst.SetColored(col, row+1, SlingChar, core.ColorOrange)
	for y := row + 2; y < g.view.GroundRow(); y++ {
		dst.SetColored(col, y, SlingPostChar, core.ColorOrange)
	}

	b := g.world.Bird
	if b.State == BirdDragging {
		bc, br := g.view.ToScreen(b.Pos.X(), b.Pos.Y())
		dst.DrawLine(col, row, bc, br, BandChar, core.ColorYellow)
	}
}

func (g *Game) renderTrajectory(dst *core.Screen) {
	if !g.prefs.ShowTrajectory {
		return
	}
	for _, p := range g.world.Preview() {
		if p.Y() >= g.world.GroundY {
			break
		}
		col, row := g.view.ToScreen(p.X(), p.Y())
		if row < 1 {
			continue
		}
		dst.SetColored(col, row, TrajectoryChar, core.ColorWhite)
	}
}

// tilt folds a rotation in degrees into (-90, 90].
func tilt(deg float64) float64 {
	t := math.Mod(deg, 180)
	if t > 90 {
		t -= 180
	} else if t <= -90 {
		t += 180
	}
	return t
}

// blockCells returns the cell rectangle covered by a world box.
func (g *Game) blockCells(b core.Box) core.Rect {
	c0, r0 := g.view.ToScreen(b.X, b.Y)
	c1, r1 := g.view.ToScreen(b.Right()-1e-6, b.Bottom()-1e-6)
	return core.NewRect(c0, r0, core.Max(c1-c0+1, 1), core.Max(r1-r0+1, 1))
}

func (g *Game) renderBlocks(dst *core.Screen) {
	for _, b := range g.world.Blocks {
		glyph, color := materialStyle(b.Material)
		if b.State == BlockFalling {
			switch t := tilt(b.Rotation); {
			case t > tiltThreshold:
				glyph = TiltUpChar
			case t < -tiltThreshold:
				glyph = TiltDownChar
			}
		}
		dst.DrawRectColored(g.blockCells(b.Rect), glyph, color)
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.world.Enemies {
		if !e.Active() {
			continue
		}
		col, row := g.view.ToScreen(e.Pos.X(), e.Pos.Y())
		dst.SetColored(col, row, EnemyChar, enemyColor(e))
	}
}

func (g *Game) renderBird(dst *core.Screen) {
	b := g.world.Bird
	col, row := g.view.ToScreen(b.Pos.X(), b.Pos.Y())
	if row < 1 {
		return
	}
	dst.SetColored(col, row, BirdChar, core.ColorBrightRed)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	score := g.world.Score
	switch g.phase {
	case PhaseMenu:
		g.renderMainMenu(dst)

	case PhaseSettings:
		g.renderSettings(dst)

	case PhaseLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  N: next level  R: replay", score)
		drawCenteredBox(dst, "LEVEL CLEAR", subtitle, core.ColorBrightGreen)

	case PhaseVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Enter: play again", score)
		drawCenteredBox(dst, "VICTORY!", subtitle, core.ColorBrightYellow)

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  R: retry  Esc: menu", score)
		drawCenteredBox(dst, "OUT OF BIRDS", subtitle, core.ColorBrightRed)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
