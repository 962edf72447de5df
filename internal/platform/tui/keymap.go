package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binbreak/internal/core"
)

// KeyMap holds every key binding of the game.
// It centralizes bindings so screens only ever see core.Action values.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Left            key.Binding
	Right           key.Binding
	Select          key.Binding
	Exit            key.Binding
	ToggleAnimation key.Binding
	Skip            key.Binding
	Quit            key.Binding
	Screenshot      key.Binding
}

// DefaultKeyMap returns the default bindings (arrows plus vim keys).
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "q", "Q"),
			key.WithHelp("esc/q", "exit"),
		),
		ToggleAnimation: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "animation"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a semantic intent.
// Screenshot is handled by the caller and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Select):
		return core.ActionSelect
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	case key.Matches(msg, k.ToggleAnimation):
		return core.ActionToggleAnimation
	case key.Matches(msg, k.Skip):
		return core.ActionSkip
	}
	return core.ActionNone
}

// menuHelp is the key list shown under the title menu.
func (k KeyMap) menuHelp() []key.Binding {
	left := k.Left
	left.SetHelp("←/→", "signedness")
	sel := k.Select
	sel.SetHelp("enter", "play")
	return []key.Binding{k.Up, k.Down, left, sel, k.ToggleAnimation, k.Exit}
}
