package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are delivered as discrete edge events, one per key press.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W - flap; also starts the session
	ActionRestart        // R - restart after death
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
