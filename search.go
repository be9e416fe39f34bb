package main

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lower-cases s and strips diacritics so "peréz" matches "Perez".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// searchVisible moves the cursor to the next visible record after the current one whose
// name, nickname or place contains query, wrapping around.
func (m *model) searchVisible(query string) tea.Cmd {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	m.ui.searchQuery = query
	n := len(m.data.visibleIndices)
	ds := m.data.dataset()
	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		rec := ds[m.data.visibleIndices[i]]
		hay := fold(rec.Name + " " + rec.Nickname + " " + rec.Location)
		if strings.Contains(hay, q) {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice("No visible record matches "+query, "info", noticeDuration)
}
