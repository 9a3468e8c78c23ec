package core

// Action represents a semantic quiz action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up, k - move cursor up a row
	ActionDown           // Down, j - move cursor down a row
	ActionLeft           // Left, h - move cursor left
	ActionRight          // Right, l - move cursor right
	ActionToggle         // Space, x - toggle the image under the cursor
	ActionPick           // 1-6 - toggle image by number (Input.Index)
	ActionCheck          // Enter - check answers
	ActionNext           // n - next level
	ActionRestart        // r - start over with a reshuffled catalog
	ActionHelp           // ? - toggle full help
	ActionQuit           // q, Ctrl+C - exit
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
	case ActionToggle:
		return "Toggle"
	case ActionPick:
		return "Pick"
	case ActionCheck:
		return "Check"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded key press.
type Input struct {
	Action Action
	Index  int // Zero-based image index for ActionPick
}
