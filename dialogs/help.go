package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// Help is a visible flag, a list of key bindings and some notes to show.
type Help struct {
	visible  bool
	bindings []key.Binding
	notes    []string
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a help dialog showing the given bindings followed by notes.
func NewHelpDialog(bindings []key.Binding, notes ...string) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
		notes:    notes,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "q", "?":
			d.visible = false
			return d, nil
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	for i, n := range d.notes {
		if i == 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wordwrap.String(n, 54))
	}

	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hintStyle.Render("enter/esc to return"))
	return boxStyle(60).Render(content)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
