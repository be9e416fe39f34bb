package dialogs

import "github.com/charmbracelet/lipgloss"

func boxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")). // match the overlay
		Padding(1, 2).
		Width(width)
}

var hintStyle = lipgloss.NewStyle().Faint(true)

// Bounds returns the top-left cell and size of a dialog view placed in the center of a
// width x height screen, the way the model places it.
func Bounds(view string, width, height int) (x, y, w, h int) {
	w = lipgloss.Width(view)
	h = lipgloss.Height(view)
	x = (width - w) / 2
	y = (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}
