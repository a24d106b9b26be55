package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wuxing-arcade/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	AimLeft    key.Binding
	AimRight   key.Binding
	Fire       key.Binding
	Swap       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimLeft, k.AimRight, k.Fire, k.Swap, k.Pause}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimLeft, k.AimRight, k.Fire, k.Swap},
		{k.Pause, k.Restart, k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default in-game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		AimLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "aim right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "fire"),
		),
		Swap: key.NewBinding(
			key.WithKeys("tab", "down", "s", "j", "c"),
			key.WithHelp("tab", "swap hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MenuKeyMap defines the menu key bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Scoreboard, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/→", "difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "next difficulty"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Game.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Game.AimLeft):
		return core.ActionAimLeft, false
	case key.Matches(msg, km.Game.AimRight):
		return core.ActionAimRight, false
	case key.Matches(msg, km.Game.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.Game.Swap):
		return core.ActionSwap, false
	case key.Matches(msg, km.Game.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Game.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.Game.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.Left):
		return MenuActionLeft
	case key.Matches(msg, km.Menu.Right):
		return MenuActionRight
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, km.Menu.Back):
		return MenuActionBack
	}

	return MenuActionNone
}
