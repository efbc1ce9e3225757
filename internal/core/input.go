package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - aim up / menu up
	ActionDown             // S, Down arrow - aim down / menu down
	ActionLeft             // A, Left arrow - pull the band back
	ActionRight            // D, Right arrow - ease the band forward
	ActionFire             // Space - start aiming with the keyboard, then release the bird
	ActionConfirm          // Enter - confirm selection in menu, continue after level complete
	ActionBack             // Escape - open the menu / leave settings
	ActionRestart          // R key - restart the current level
	ActionNextLevel        // N key - advance after a level is complete
	ActionMute             // M key - toggle sound
	ActionSettings         // O key - open settings
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionMute:
		return "Mute"
	case ActionSettings:
		return "Settings"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerState is the mouse state sampled once per frame, in screen cells.
type PointerState struct {
	X, Y     int  // Last known position
	Valid    bool // Whether the host has reported any position yet
	Down     bool // Button currently held
	Pressed  bool // Button went down during this frame
	Released bool // Button went up during this frame
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame, the pointer
// state and the elapsed time since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	Pointer PointerState

	// Delta is the real time elapsed since the previous frame.
	// Zero means the game should assume one fixed tick.
	Delta time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets actions and pointer edges for the next frame.
// The pointer position and held state carry over.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
	f.Delta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Delta = f.Delta
	return clone
}
