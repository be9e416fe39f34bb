package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	FilterLabel string
	Focus       string

	Visible int
	Total   int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#d4b896"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "all"
	}
	if st.Legend == "" {
		st.Legend = "(? help · tab focus · r reset filters)"
	}
	if st.Visible < 0 {
		st.Visible = 0
	}
	if st.Total < 0 {
		st.Total = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	filterValW := 12
	focusW := 7
	statusFixedW := cellWidth(fmt.Sprintf("[YEARS: %s] · [FOCUS: %s]", strings.Repeat("X", filterValW), strings.Repeat("X", focusW)))

	rightPlain := fmt.Sprintf(" Visibles %d/%d", st.Visible, st.Total)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := cellWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 12, 24)
	statusColW := statusFixedW
	fileColW := leftW - modeColW - statusColW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 8 {
			shrink := min(deficit, modeColW-8)
			modeColW -= shrink
		}
		fileColW = leftW - modeColW - statusColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	modeText := commandLabel(st.Mode)
	modePillW := modeColW
	if cellWidth(modeText) <= max(0, modeColW-2) {
		modePillW = cellWidth(modeText) + 2
	}
	if slack := modeColW - modePillW; slack > 0 {
		modeColW = modePillW
		fileColW += slack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := renderFilterFocusSegment(statusColW, st, styles, filterValW, focusW)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	if actual := modeColW + fileColW + statusColW + 2*gapW; actual < leftW {
		left += strings.Repeat(" ", leftW-actual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-cellWidth(legendPlain))

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(commandLabel(st.Mode), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-cellWidth(pillPlain))

	pill := bgSeq(styles.ModePillBG) + fgSeq(styles.ModePillFG) + pillPlain
	pill += bgSeq(styles.BarBG) + fgSeq(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no dataset)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= cellWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= cellWidth(inputPlain)
	}
	remaining = max(0, remaining)

	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + strings.Repeat(" ", remaining)
}

func renderFilterFocusSegment(colW int, st FooterState, styles FooterStyles, filterValW, focusW int) string {
	if colW <= 0 {
		return ""
	}
	filterVal := truncatePlain(strings.TrimSpace(st.FilterLabel), filterValW)
	focus := truncatePlain(st.Focus, focusW)

	plain := fmt.Sprintf("[YEARS: %s] · [FOCUS: %s]", filterVal, focus)
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return bgSeq(bg) + fgSeq(baseFG) + s + termenv.CSI + "0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return fgSeq(fg) + s + fgSeq(resetFG)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	if _, ok := tc.(termenv.NoColor); ok {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := cellWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
