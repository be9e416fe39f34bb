// Package mapview is a small terminal map: a view (center and zoom) over a set of point
// markers projected with Web Mercator onto a character canvas.
package mapview

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TileSource describes the raster tiles a graphical client would draw under the
// markers. Only the attribution is shown on the terminal canvas.
type TileSource struct {
	URL         string
	Subdomains  string
	MaxZoom     int
	Attribution string
}

// TileURL expands the URL template for one tile, picking the subdomain by position.
func (t TileSource) TileURL(z, x, y int) string {
	s := ""
	if t.Subdomains != "" {
		s = string(t.Subdomains[(x+y)%len(t.Subdomains)])
	}
	r := strings.NewReplacer(
		"{s}", s,
		"{z}", fmt.Sprint(z),
		"{x}", fmt.Sprint(x),
		"{y}", fmt.Sprint(y),
		"{r}", "",
	)
	return r.Replace(t.URL)
}

type Config struct {
	Center  LatLng
	Zoom    int
	MinZoom int
	MaxZoom int
}

// Map owns the markers and the layer they are attached to. Markers are keyed by an
// integer chosen by the caller.
type Map struct {
	cfg      Config
	tiles    TileSource
	center   LatLng
	zoom     int
	markers  map[int]*Marker
	attached map[int]bool
	canvas   lipgloss.Style
}

func New(cfg Config, tiles TileSource) *Map {
	if cfg.MaxZoom < cfg.MinZoom {
		cfg.MaxZoom = cfg.MinZoom
	}
	m := &Map{
		cfg:      cfg,
		tiles:    tiles,
		markers:  make(map[int]*Marker),
		attached: make(map[int]bool),
		canvas:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
	m.SetView(cfg.Center, cfg.Zoom)
	return m
}

// SetView moves the map to center at zoom, clamped to the configured zoom range.
func (m *Map) SetView(center LatLng, zoom int) {
	m.center = center
	m.zoom = m.clampZoom(zoom)
}

// ResetView returns to the configured center and zoom.
func (m *Map) ResetView() {
	m.SetView(m.cfg.Center, m.cfg.Zoom)
}

func (m *Map) Center() LatLng { return m.center }
func (m *Map) Zoom() int      { return m.zoom }

func (m *Map) ZoomIn()  { m.zoom = m.clampZoom(m.zoom + 1) }
func (m *Map) ZoomOut() { m.zoom = m.clampZoom(m.zoom - 1) }

func (m *Map) clampZoom(z int) int {
	if z < m.cfg.MinZoom {
		return m.cfg.MinZoom
	}
	if m.cfg.MaxZoom > 0 && z > m.cfg.MaxZoom {
		return m.cfg.MaxZoom
	}
	return z
}

// Pan shifts the center by dx columns and dy rows.
func (m *Map) Pan(dx, dy int) {
	p := project(m.center, m.zoom)
	p.x += float64(dx * cellWidthPx)
	p.y += float64(dy * cellHeightPx)
	m.center = unproject(p, m.zoom)
}

// Place registers marker under key and attaches it.
func (m *Map) Place(key int, marker *Marker) {
	m.markers[key] = marker
	m.attached[key] = true
}

func (m *Map) Marker(key int) (*Marker, bool) {
	mk, ok := m.markers[key]
	return mk, ok
}

// ClearMarkers drops every marker.
func (m *Map) ClearMarkers() {
	m.markers = make(map[int]*Marker)
	m.attached = make(map[int]bool)
}

// Attach adds a placed marker to the layer. Unknown keys are ignored.
func (m *Map) Attach(key int) {
	if _, ok := m.markers[key]; ok {
		m.attached[key] = true
	}
}

func (m *Map) Detach(key int) {
	delete(m.attached, key)
}

func (m *Map) IsAttached(key int) bool {
	return m.attached[key]
}

func (m *Map) AttachedCount() int {
	return len(m.attached)
}

func (m *Map) Tiles() TileSource { return m.tiles }

func (m *Map) Attribution() string { return m.tiles.Attribution }

// cellOf returns the canvas cell for pos, given the canvas size.
func (m *Map) cellOf(pos LatLng, width, height int) (int, int) {
	c := project(m.center, m.zoom)
	p := project(pos, m.zoom)
	col := int(math.Floor((p.x-c.x)/cellWidthPx)) + width/2
	row := int(math.Floor((p.y-c.y)/cellHeightPx)) + height/2
	return col, row
}

// Render draws attached markers on a width x height canvas. The marker under key
// selected is drawn with its focus style. Several markers in one cell are drawn as a
// count.
func (m *Map) Render(width, height, selected int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	type cell struct {
		keys []int
	}
	grid := make(map[[2]int]*cell)

	keys := make([]int, 0, len(m.attached))
	for k := range m.attached {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		mk := m.markers[k]
		col, row := m.cellOf(mk.Position, width, height)
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}
		pos := [2]int{col, row}
		if grid[pos] == nil {
			grid[pos] = &cell{}
		}
		grid[pos].keys = append(grid[pos].keys, k)
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := grid[[2]int{col, row}]
			if c == nil {
				if row%4 == 0 && col%8 == 0 {
					b.WriteString(m.canvas.Render("·"))
				} else {
					b.WriteByte(' ')
				}
				continue
			}
			b.WriteString(m.renderCell(c.keys, selected))
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Map) renderCell(keys []int, selected int) string {
	focused := false
	for _, k := range keys {
		if k == selected {
			focused = true
			break
		}
	}
	icon := m.markers[keys[0]].Icon
	if focused {
		icon = m.markers[selected].Icon
	}
	glyph := icon.Glyph
	if glyph == "" {
		glyph = "●"
	}
	if len(keys) > 1 {
		glyph = clusterGlyph(len(keys))
	}
	if focused {
		if len(keys) == 1 && icon.Selected != "" {
			glyph = icon.Selected
		}
		return icon.Focus.Render(glyph)
	}
	return icon.Style.Render(glyph)
}

func clusterGlyph(n int) string {
	if n > 9 {
		return "+"
	}
	return fmt.Sprint(n)
}
