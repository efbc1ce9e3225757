// Package tui provides the Bubble Tea host for games: the tick loop with real
// frame deltas, key and mouse mapping, colored rendering, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds accepted from the command line.
const (
	minTickRate     = 10
	maxTickRate     = 240
	defaultTickRate = 60
)

// TickMsg carries the wall-clock time of a simulation tick.
type TickMsg time.Time

// normalizeTickRate maps an unset rate to the default and clamps the rest.
func normalizeTickRate(rate int) int {
	switch {
	case rate <= 0:
		return defaultTickRate
	case rate < minTickRate:
		return minTickRate
	case rate > maxTickRate:
		return maxTickRate
	}
	return rate
}

// tickCmd schedules the next tick. The model measures the real gap between
// ticks, so a late tick integrates the time that actually passed.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(normalizeTickRate(tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
