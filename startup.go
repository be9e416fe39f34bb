package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	startupFailureTitle = "Error al cargar el mapa"
	startupFailureBody  = "Verificá tu conexión y recargá la página."
)

// failureModel replaces the map when startup fails. Nothing else is initialised.
type failureModel struct {
	err           error
	width, height int
}

func newFailureModel(err error) *failureModel {
	return &failureModel{err: err}
}

func (f *failureModel) Init() tea.Cmd { return nil }

func (f *failureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return f, tea.Quit
		}
	}
	return f, nil
}

func (f *failureModel) View() string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		errorTitleStyle.Render(startupFailureTitle),
		"",
		errorBodyStyle.Render(startupFailureBody),
	)
	if f.width == 0 || f.height == 0 {
		return msg
	}
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, msg)
}
