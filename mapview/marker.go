package mapview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Icon is how a marker is drawn on the canvas.
type Icon struct {
	Glyph    string
	Selected string
	Style    lipgloss.Style
	Focus    lipgloss.Style
}

// Popup is the short summary bound to a marker.
type Popup struct {
	Title   string
	Date    string
	Address string
	Hint    string
}

// Render lays the popup out for a box width wide.
func (p Popup) Render(width int, title, body, hint lipgloss.Style) string {
	if width < 4 {
		width = 4
	}
	lines := []string{title.Render(wordwrap.String(p.Title, width))}
	if p.Date != "" {
		lines = append(lines, body.Render(wordwrap.String(p.Date, width)))
	}
	if p.Address != "" {
		lines = append(lines, body.Render(wordwrap.String(p.Address, width)))
	}
	if p.Hint != "" {
		lines = append(lines, "", hint.Render(p.Hint))
	}
	return strings.Join(lines, "\n")
}

type Marker struct {
	Position LatLng
	Icon     Icon
	Popup    Popup
}

func NewMarker(pos LatLng, icon Icon, popup Popup) *Marker {
	return &Marker{Position: pos, Icon: icon, Popup: popup}
}
