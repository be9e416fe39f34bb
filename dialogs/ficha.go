package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/memoria/memorial"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// --- Messages ---------------------------------------------------------------

type (
	FichaClosedMsg struct{}
	FichaCopyMsg   struct{ Text string }
)

var (
	fichaNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d4b896"))
	fichaSubtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#b8936d"))
	fichaLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	fichaSectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

const fichaWidth = 64

// Ficha is the record detail modal. It implements memorial.DetailSurface: the presenter
// fills the slots and opens it, the dialog only draws what it was given.
type Ficha struct {
	visible  bool
	locked   bool
	fields   map[memorial.Slot]string
	lines    map[memorial.Slot][]string
	sections map[memorial.Slot]bool
	body     viewport.Model
}

func NewFichaDialog() *Ficha {
	return &Ficha{
		fields:   make(map[memorial.Slot]string),
		lines:    make(map[memorial.Slot][]string),
		sections: make(map[memorial.Slot]bool),
		body:     viewport.New(fichaWidth-6, 16),
	}
}

func (d *Ficha) SetField(slot memorial.Slot, value string) {
	d.fields[slot] = value
	d.sync()
}

func (d *Ficha) SetLines(slot memorial.Slot, lines []string) {
	d.lines[slot] = append([]string(nil), lines...)
	d.sync()
}

func (d *Ficha) SetSectionVisible(slot memorial.Slot, visible bool) {
	d.sections[slot] = visible
	d.sync()
}

func (d *Ficha) SetModalOpen(open bool) {
	d.visible = open
	if open {
		d.body.GotoTop()
	}
}

func (d *Ficha) SetScrollLocked(locked bool) { d.locked = locked }

// ScrollLocked reports whether the background must ignore navigation.
func (d *Ficha) ScrollLocked() bool { return d.locked }

func (d *Ficha) Field(slot memorial.Slot) string { return d.fields[slot] }

func (d *Ficha) SectionVisible(slot memorial.Slot) bool { return d.sections[slot] }

// SetSize fits the scrollable body into a terminal of the given size.
func (d *Ficha) SetSize(width, height int) {
	w := min(fichaWidth, width-4) - 6
	h := height - 12
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	d.body.Width = w
	d.body.Height = h
	d.sync()
}

func (d *Ficha) sync() {
	d.body.SetContent(d.content(d.body.Width))
}

func (d *Ficha) content(width int) string {
	rows := []struct {
		label string
		slot  memorial.Slot
	}{
		{"Apodo", memorial.SlotNickname},
		{"DNI", memorial.SlotNationalID},
		{"Fecha", memorial.SlotDate},
		{"Nacionalidad", memorial.SlotNationality},
		{"Profesión", memorial.SlotProfession},
		{"Lugar", memorial.SlotLocation},
	}
	valueW := max(4, width-14)
	var out []string
	for _, r := range rows {
		val := wordwrap.String(d.fields[r.slot], valueW)
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, fichaLabelStyle.Render(r.label), val))
	}
	if d.sections[memorial.SlotBiography] {
		out = append(out, fichaSectionStyle.Render("Historia"))
		for _, l := range d.lines[memorial.SlotBiographyText] {
			out = append(out, wordwrap.String(l, width))
		}
	}
	return strings.Join(out, "\n")
}

func (d *Ficha) header() string {
	parts := []string{fichaNameStyle.Render(d.fields[memorial.SlotName])}
	if sub := d.fields[memorial.SlotSubtitle]; sub != "" {
		parts = append(parts, fichaSubtitleStyle.Render(sub))
	}
	if d.sections[memorial.SlotPhoto] && d.fields[memorial.SlotPhoto] != "" {
		parts = append(parts, hintStyle.Render("Foto: "+d.fields[memorial.SlotPhoto]))
	}
	return strings.Join(parts, "\n")
}

// Text returns the ficha as plain text.
func (d *Ficha) Text() string {
	var b strings.Builder
	b.WriteString(d.fields[memorial.SlotName])
	if sub := d.fields[memorial.SlotSubtitle]; sub != "" {
		b.WriteString(" (" + sub + ")")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Apodo: %s\n", d.fields[memorial.SlotNickname])
	fmt.Fprintf(&b, "DNI: %s\n", d.fields[memorial.SlotNationalID])
	fmt.Fprintf(&b, "Fecha: %s\n", d.fields[memorial.SlotDate])
	fmt.Fprintf(&b, "Nacionalidad: %s\n", d.fields[memorial.SlotNationality])
	fmt.Fprintf(&b, "Profesión: %s\n", d.fields[memorial.SlotProfession])
	fmt.Fprintf(&b, "Lugar: %s\n", d.fields[memorial.SlotLocation])
	if d.sections[memorial.SlotBiography] {
		b.WriteString("\n" + strings.Join(d.lines[memorial.SlotBiographyText], "\n") + "\n")
	}
	return b.String()
}

func (d *Ficha) Init() tea.Cmd { return nil }

func (d *Ficha) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return FichaClosedMsg{} }
		case "y":
			text := d.Text()
			return d, func() tea.Msg { return FichaCopyMsg{Text: text} }
		}
	}
	var cmd tea.Cmd
	d.body, cmd = d.body.Update(msg)
	return d, cmd
}

func (d *Ficha) View() string {
	if !d.visible {
		return ""
	}
	help := hintStyle.Render("↑/↓ scroll • y copy • esc/q close")
	content := lipgloss.JoinVertical(lipgloss.Left, d.header(), "", d.body.View(), "", help)
	return boxStyle(min(fichaWidth, d.body.Width+6)).Render(content)
}

func (d *Ficha) Show()           { d.visible = true }
func (d *Ficha) Hide()           { d.visible = false }
func (d *Ficha) Focus() tea.Cmd  { return nil }
func (d *Ficha) Blur()           {}
func (d *Ficha) IsVisible() bool { return d.visible }
