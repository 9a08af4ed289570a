package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionShoot          // Space - fire
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputState holds the pressed/released state of the movement and fire
// actions. Unlike a per-tick event frame, these are level-triggered flags:
// the driver sets an action pressed and later releases it, and the
// simulation reads the current level on every tick.
type InputState struct {
	held map[Action]bool
}

// NewInputState creates an input state with nothing pressed.
func NewInputState() InputState {
	return InputState{held: make(map[Action]bool)}
}

// Set marks an action as pressed or released.
func (s *InputState) Set(a Action, pressed bool) {
	if s.held == nil {
		s.held = make(map[Action]bool)
	}
	if pressed {
		s.held[a] = true
	} else {
		delete(s.held, a)
	}
}

// Held returns true if the given action is currently pressed.
func (s InputState) Held(a Action) bool {
	if s.held == nil {
		return false
	}
	return s.held[a]
}

// Clear releases all actions.
func (s *InputState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}
