package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexring/internal/input"
)

// KeyMap defines the key bindings shown in the help line. Movement, zoom
// and pause keys are forwarded to the game's keyboard; reload and quit are
// handled by the model.
type KeyMap struct {
	Thrust  key.Binding
	Reverse key.Binding
	Turn    key.Binding
	Zoom    key.Binding
	Pause   key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Turn, k.Pause, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Reverse, k.Turn, k.Zoom},
		{k.Pause, k.Reload, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "thrust"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "reverse"),
		),
		Turn: key.NewBinding(
			key.WithKeys("left", "right", "a", "d"),
			key.WithHelp("a/d", "turn"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("+", "=", "-"),
			key.WithHelp("+/-", "zoom"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forwarded reports whether a key message belongs to the game keyboard and
// returns its normalized id.
func (k KeyMap) forwarded(msg tea.KeyMsg) (input.Key, bool) {
	if key.Matches(msg, k.Thrust, k.Reverse, k.Turn, k.Zoom, k.Pause) {
		return input.Normalize(msg.String()), true
	}
	return "", false
}
