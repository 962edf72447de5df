package core

// Action represents a semantic input intent, abstracted from physical key presses.
// Screens react to intents rather than raw keys so bindings stay in one place.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // Up arrow, k - previous menu row
	ActionDown                   // Down arrow, j - next menu row
	ActionLeft                   // Left arrow, h - previous candidate / toggle signedness
	ActionRight                  // Right arrow, l - next candidate / toggle signedness
	ActionSelect                 // Enter - confirm guess, advance, restart
	ActionExit                   // Esc, q - leave the current screen
	ActionToggleAnimation        // a - pause/resume the title animation
	ActionSkip                   // s - give up on the current puzzle
	ActionQuit                   // Ctrl+C - hard exit, bypasses screen handling
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
	case ActionSelect:
		return "Select"
	case ActionExit:
		return "Exit"
	case ActionToggleAnimation:
		return "ToggleAnimation"
	case ActionSkip:
		return "Skip"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
