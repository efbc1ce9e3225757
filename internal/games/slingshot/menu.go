package slingshot

import (
	"fmt"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Main menu entries.
const (
	menuPlay = iota
	menuSettings
	menuExit
	menuCount
)

// Settings entries.
const (
	settingSound = iota
	settingTrajectory
	settingBack
	settingCount
)

// menuItems returns the labels of the main menu.
func (g *Game) menuItems() []string {
	play := "Play"
	if g.started {
		play = "Continue"
	}
	return []string{play, "Settings", "Exit"}
}

// settingsItems returns the labels of the settings overlay.
func (g *Game) settingsItems() []string {
	return []string{
		"Sound: " + onOff(g.prefs.SoundEnabled),
		"Trajectory: " + onOff(g.prefs.ShowTrajectory),
		"Back",
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// menuBox returns the frame of a centered menu with count entries.
func menuBox(screenW, screenH, count int) core.Rect {
	w := 30
	h := count*2 + 4
	return core.NewRect((screenW-w)/2, (screenH-h)/2, w, h)
}

// menuItemRow is the screen row of entry i in a menu with count entries.
func menuItemRow(screenH, count, i int) int {
	box := menuBox(0, screenH, count)
	return box.Y + 3 + i*2
}

// pointerItem returns the entry under a pointer press, or -1.
func pointerItem(in core.InputFrame, screenW, screenH, count int) int {
	if !in.Pointer.Valid || !in.Pointer.Pressed {
		return -1
	}
	box := menuBox(screenW, screenH, count)
	for i := range count {
		row := core.NewRect(box.X, menuItemRow(screenH, count, i), box.W, 1)
		if row.Contains(in.Pointer.X, in.Pointer.Y) {
			return i
		}
	}
	return -1
}

// moveCursor moves a menu cursor with wrap-around.
func moveCursor(cursor, count int, in core.InputFrame) int {
	if in.Has(core.ActionUp) {
		cursor = (cursor - 1 + count) % count
	}
	if in.Has(core.ActionDown) {
		cursor = (cursor + 1) % count
	}
	return cursor
}

func (g *Game) openMenu() {
	if g.phase != PhaseMenu && g.phase != PhaseSettings {
		g.resume = g.phase
	}
	g.phase = PhaseMenu
	g.menuCursor = 0
}

func (g *Game) openSettings() {
	g.returnTo = g.phase
	g.phase = PhaseSettings
	g.settingsCursor = 0
}

func (g *Game) stepMenu(in core.InputFrame) {
	g.menuCursor = moveCursor(g.menuCursor, menuCount, in)

	selected := -1
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		selected = g.menuCursor
	}
	if i := pointerItem(in, g.runtime.ScreenW, g.runtime.ScreenH, menuCount); i >= 0 {
		g.menuCursor = i
		selected = i
	}
	if in.Has(core.ActionBack) && g.started {
		selected = menuPlay
	}
	if in.Has(core.ActionSettings) {
		selected = menuSettings
	}

	switch selected {
	case menuPlay:
		if g.started {
			g.phase = g.resume
		} else {
			g.started = true
			g.phase = PhasePlaying
		}
	case menuSettings:
		g.openSettings()
	case menuExit:
		g.quit = true
	}
}

func (g *Game) stepSettings(in core.InputFrame) {
	g.settingsCursor = moveCursor(g.settingsCursor, settingCount, in)

	if in.Has(core.ActionBack) {
		g.phase = g.returnTo
		return
	}

	selected := -1
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) || in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		selected = g.settingsCursor
	}
	if i := pointerItem(in, g.runtime.ScreenW, g.runtime.ScreenH, settingCount); i >= 0 {
		g.settingsCursor = i
		selected = i
	}

	switch selected {
	case settingSound:
		g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	case settingTrajectory:
		g.prefs.ShowTrajectory = !g.prefs.ShowTrajectory
	case settingBack:
		g.phase = g.returnTo
	}
}

// renderMenu draws a framed menu with a highlighted cursor.
func renderMenu(dst *core.Screen, title string, items []string, cursor int, footer string) {
	box := menuBox(dst.Width(), dst.Height(), len(items))
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBoxColored(box, core.ColorCyan)

	titleX := box.X + (box.W-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, core.ColorBrightYellow)

	for i, item := range items {
		row := menuItemRow(dst.Height(), len(items), i)
		label := "  " + item
		color := core.ColorWhite
		if i == cursor {
			label = "> " + item
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(box.X+4, row, label, color)
	}

	if footer != "" {
		dst.DrawTextCenteredColored(box.Bottom(), footer, core.ColorGray)
	}
}

func (g *Game) renderMainMenu(dst *core.Screen) {
	footer := fmt.Sprintf("%d levels", len(g.campaign))
	renderMenu(dst, "SLINGSHOT", g.menuItems(), g.menuCursor, footer)
}

func (g *Game) renderSettings(dst *core.Screen) {
	renderMenu(dst, "SETTINGS", g.settingsItems(), g.settingsCursor, "Enter: toggle  Esc: back")
}
