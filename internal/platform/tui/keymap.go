package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from configuration and double as the help footer.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left:  binding(c.Left, "left"),
		Right: binding(c.Right, "right"),
		Up:    binding(c.Up, "up"),
		Down:  binding(c.Down, "down"),
		Fire:  binding(c.Fire, "fire"),
		Quit:  binding(c.Quit, "quit"),
	}
}

func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, keyString(n))
		labels = append(labels, keyLabel(n))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyString converts a configured key name to the string Bubble Tea reports.
func keyString(name string) string {
	switch strings.ToLower(name) {
	case "space":
		return " "
	case "escape":
		return "esc"
	default:
		return strings.ToLower(name)
	}
}

// keyLabel returns a compact label for the help footer.
func keyLabel(name string) string {
	switch strings.ToLower(name) {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return strings.ToLower(name)
	}
}

// Action returns the action bound to a key message, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Fire, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Quit},
	}
}
