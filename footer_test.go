package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderFooter(t *testing.T) {
	st := FooterState{
		Mode:          CmdYears,
		FileName:      "datos.json",
		FilterLabel:   "2/5",
		Focus:         "years",
		Visible:       7,
		Total:         12,
		StatusMessage: "✓ Reloaded 12 records",
		Legend:        "(? help)",
	}
	out := RenderFooter(120, st, DefaultFooterStyles())

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "YEARS")
	assert.Contains(t, lines[0], "datos.json")
	assert.Contains(t, lines[0], "[YEARS: 2/5]")
	assert.Contains(t, lines[0], "[FOCUS: years]")
	assert.Contains(t, lines[0], "Visibles 7/12")
	assert.Contains(t, lines[1], "Reloaded 12 records")
	assert.Contains(t, lines[1], "(? help)")
}

func TestRenderFooterZeroWidth(t *testing.T) {
	assert.Equal(t, "", RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}

func TestColorSeq(t *testing.T) {
	assert.Equal(t, "\x1b[49m", colorSeq(lipgloss.Color(""), true))
	assert.Equal(t, "\x1b[39m", colorSeq(lipgloss.Color(""), false))
}

func TestTruncatePlain(t *testing.T) {
	assert.Equal(t, "Peré", truncatePlain("Peréz", 4))
	assert.Equal(t, 2, cellWidth("年"))
	assert.Equal(t, 5, clamp(9, 0, 5))
	assert.Equal(t, 0, clamp(-1, 0, 5))
}
