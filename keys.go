package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	SwitchFocus  key.Binding
	Down         key.Binding
	Up           key.Binding
	Select       key.Binding
	ResetFilters key.Binding
	ResetView    key.Binding
	CenterOn     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	PanUp        key.Binding
	PanDown      key.Binding
	Search       key.Binding
	Jump         key.Binding
	Export       key.Binding
	Reload       key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	SwitchFocus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch markers / years"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next marker or year"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous marker or year"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open ficha / toggle year"),
	),
	ResetFilters: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset year filters"),
	),
	ResetView: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "reset map view"),
	),
	CenterOn: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "center on marker"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("H", "left"),
		key.WithHelp("H/←", "pan west"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("L", "right"),
		key.WithHelp("L/→", "pan east"),
	),
	PanUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "pan north"),
	),
	PanDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "pan south"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search visible records"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to record number"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export visible to csv"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload dataset"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.SwitchFocus,
		k.Down,
		k.Up,
		k.Select,
		k.ResetFilters,
		k.ResetView,
		k.CenterOn,
		k.ZoomIn,
		k.ZoomOut,
		k.PanLeft,
		k.PanRight,
		k.PanUp,
		k.PanDown,
		k.Search,
		k.Jump,
		k.Export,
		k.Reload,
	}
}
