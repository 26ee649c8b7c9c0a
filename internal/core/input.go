package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer events. The game only ever sees actions, never their origin.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, left click - flap upward
	ActionRestart        // R, Enter, restart button - new session after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionHelp           // ? - toggle full help
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
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
