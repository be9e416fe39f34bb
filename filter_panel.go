package main

import (
	"fmt"
	"strings"

	"github.com/andareed/memoria/memorial"
)

// yearPanel holds the generated year toggles and a cursor over them.
type yearPanel struct {
	controls []*memorial.YearControl
	cursor   int
}

func (p *yearPanel) ClearControls() {
	p.controls = nil
	p.cursor = 0
}

func (p *yearPanel) AddControl(c *memorial.YearControl) {
	p.controls = append(p.controls, c)
}

func (p *yearPanel) move(delta int) {
	if len(p.controls) == 0 {
		p.cursor = 0
		return
	}
	p.cursor = clamp(p.cursor+delta, 0, len(p.controls)-1)
}

// invoke toggles the control under the cursor.
func (p *yearPanel) invoke() (*memorial.YearControl, bool) {
	if p.cursor < 0 || p.cursor >= len(p.controls) {
		return nil, false
	}
	c := p.controls[p.cursor]
	c.Invoke()
	return c, true
}

func (p *yearPanel) activeCount() int {
	n := 0
	for _, c := range p.controls {
		if c.Active() {
			n++
		}
	}
	return n
}

// label summarises the selection for the footer.
func (p *yearPanel) label() string {
	if len(p.controls) == 0 {
		return "none"
	}
	active := p.activeCount()
	if active == len(p.controls) {
		return "all"
	}
	return fmt.Sprintf("%d/%d", active, len(p.controls))
}

// render draws at most height rows, keeping the cursor in view.
func (p *yearPanel) render(width, height int, focused bool) string {
	if len(p.controls) == 0 {
		return dimStyle.Render("no dated records")
	}
	start := 0
	if height > 0 && p.cursor >= height {
		start = p.cursor - height + 1
	}
	end := len(p.controls)
	if height > 0 && end-start > height {
		end = start + height
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := p.controls[i]
		box := "[ ]"
		style := yearInactiveStyle
		if c.Active() {
			box = "[x]"
			style = yearActiveStyle
		}
		count := fmt.Sprintf("%d", c.Count)
		label := fmt.Sprintf("%s %d", box, c.Year)
		gap := max(1, width-cellWidth(label)-cellWidth(count))
		line := style.Render(label) + strings.Repeat(" ", gap) + countStyle.Render(count)
		if focused && i == p.cursor {
			line = rowSelectedStyle.Render(label + strings.Repeat(" ", gap) + count)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
