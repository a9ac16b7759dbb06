package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Screen1 key.Binding
	Screen2 key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Screen1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Tool Calls"),
	),
	Screen2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Logs"),
	),
}

// CallListKeys are active on the tool calls screen.
type CallListKeys struct {
	Up   key.Binding
	Down key.Binding
}

var callListKeys = CallListKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
}

// LogKeys are active on the logs screen when the search box is not focused.
type LogKeys struct {
	Up          key.Binding
	Down        key.Binding
	ToggleInfo  key.Binding
	ToggleTool  key.Binding
	ToggleError key.Binding
	ToggleDebug key.Binding
	ToggleAll   key.Binding
	Search      key.Binding
}

var logKeys = LogKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	ToggleInfo: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "toggle INFO"),
	),
	ToggleTool: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle TOOL"),
	),
	ToggleError: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "toggle ERROR"),
	),
	ToggleDebug: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle DEBUG"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all/none"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
}

// SearchKeys are active while the search box is focused.
type SearchKeys struct {
	Accept key.Binding
	Cancel key.Binding
}

var searchKeys = SearchKeys{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "accept"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear"),
	),
}
