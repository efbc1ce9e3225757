package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Current score
	Lives       int  // Birds left, including the one on the slingshot
	Level       int  // 1-based level index
	TotalLevels int  // Number of levels in the campaign
	GameOver    bool // Out of birds
	Victory     bool // Final level cleared
	Paused      bool // Simulation suspended (menu or settings)
	Quit        bool // Player chose Exit from the in-game menu
}

// Finished reports whether the run has reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// Event is a notable occurrence during a single step.
type Event int

const (
	EventLaunch Event = iota + 1
	EventBlockHit
	EventEnemyHit
	EventEnemyKilled
	EventLifeLost
	EventLevelComplete
	EventVictory
	EventGameOver
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventLaunch:
		return "launch"
	case EventBlockHit:
		return "block_hit"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
