package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/memoria/logging"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 30

type layout struct {
	innerW, innerH int
	mapW, mapH     int
	yearsH         int
}

func (m *model) layout() layout {
	l := layout{
		innerW: max(20, m.terminalWidth-4),
		innerH: max(10, m.terminalHeight-2),
	}
	// sidebar + its border, map border, one column gap
	l.mapW = max(10, l.innerW-(sidebarWidth+2)-2-1)
	// header, attribution, map border, footer
	l.mapH = max(4, l.innerH-1-1-2-2)
	l.yearsH = max(2, l.mapH/2-1)
	return l
}

func (m *model) headerView() string {
	c := m.data.counters
	stats := fmt.Sprintf("Total %d · Visibles %d · zoom %d", c.Total, c.Visible, m.mapv.Zoom())
	return headerStyle.Render("Memoria") + "  " + dimStyle.Render(stats)
}

func (m *model) mapView(l layout) string {
	style := tableStyle
	if m.ui.focus == focusMarkers {
		style = focusStyle
	}
	canvas := style.Render(m.mapv.Render(l.mapW, l.mapH, m.selectedIndex()))
	attribution := dimStyle.Render(truncatePlain(m.mapv.Attribution(), l.mapW+2))
	return lipgloss.JoinVertical(lipgloss.Left, canvas, attribution)
}

func (m *model) sidebarView(l layout) string {
	yearsStyle := tableStyle
	if m.ui.focus == focusYears {
		yearsStyle = focusStyle
	}
	years := panelTitleStyle.Render("Años") + "\n" +
		m.panel.render(sidebarWidth, l.yearsH, m.ui.focus == focusYears)
	yearsBox := yearsStyle.Width(sidebarWidth).Height(l.yearsH + 1).Render(years)

	popupH := max(1, l.mapH-l.yearsH-3)
	popupBox := tableStyle.Width(sidebarWidth).Height(popupH).Render(m.popupView())

	return lipgloss.JoinVertical(lipgloss.Left, yearsBox, popupBox)
}

// popupView shows the popup bound to the marker under the cursor.
func (m *model) popupView() string {
	idx := m.selectedIndex()
	mk, ok := m.mapv.Marker(idx)
	if !ok {
		return dimStyle.Render("no visible markers")
	}
	body := mk.Popup.Render(sidebarWidth-2, popupTitleStyle, popupBodyStyle, dimStyle)
	pos := dimStyle.Render(fmt.Sprintf("#%d · %d/%d", idx+1, m.cursor+1, len(m.data.visibleIndices)))
	return body + "\n" + pos
}

func (m *model) footerView(width int) string {
	footerMode := CmdNone
	modeInput := ""
	switch {
	case m.ficha.IsVisible():
		footerMode = CmdFicha
	case m.ui.mode == modeCommand:
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	case m.ui.focus == focusYears:
		footerMode = CmdYears
	}

	st := FooterState{
		Mode:        footerMode,
		ModeInput:   modeInput,
		FileName:    filepath.Base(m.data.path),
		FilterLabel: m.panel.label(),
		Focus:       m.ui.focus.String(),
		Visible:     m.data.counters.Visible,
		Total:       m.data.counters.Total,
		Legend:      "(? help · tab focus · enter ficha/toggle · r reset · / search)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if logging.IsDebugMode() {
		c := m.mapv.Center()
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d center=%.4f,%.4f cur=%d",
			m.terminalWidth, m.terminalHeight, c.Lat, c.Lng, m.cursor)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	l := m.layout()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.mapView(l), " ", m.sidebarView(l))
	parts := []string{m.headerView(), body, m.footerView(l.innerW)}
	return appstyle.Render(strings.Join(parts, "\n"))
}
