package mapview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quilmes = LatLng{Lat: -34.78, Lng: -58.265}

func testMap() *Map {
	return New(Config{Center: quilmes, Zoom: 12, MinZoom: 9, MaxZoom: 18}, TileSource{
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Subdomains:  "abcd",
		MaxZoom:     19,
		Attribution: "© OpenStreetMap © CARTO",
	})
}

func testIcon() Icon {
	return Icon{Glyph: "o", Selected: "O", Style: lipgloss.NewStyle(), Focus: lipgloss.NewStyle()}
}

func TestZoomIsClamped(t *testing.T) {
	m := testMap()
	for i := 0; i < 20; i++ {
		m.ZoomIn()
	}
	assert.Equal(t, 18, m.Zoom())
	for i := 0; i < 20; i++ {
		m.ZoomOut()
	}
	assert.Equal(t, 9, m.Zoom())

	m.SetView(quilmes, 3)
	assert.Equal(t, 9, m.Zoom())
}

func TestResetView(t *testing.T) {
	m := testMap()
	m.Pan(10, -4)
	m.ZoomIn()
	require.NotEqual(t, quilmes, m.Center())
	m.ResetView()
	assert.Equal(t, quilmes, m.Center())
	assert.Equal(t, 12, m.Zoom())
}

func TestPanRoundTrip(t *testing.T) {
	m := testMap()
	m.Pan(5, 3)
	assert.Less(t, m.Center().Lat, quilmes.Lat, "panning down moves south")
	assert.Greater(t, m.Center().Lng, quilmes.Lng, "panning right moves east")
	m.Pan(-5, -3)
	assert.InDelta(t, quilmes.Lat, m.Center().Lat, 1e-9)
	assert.InDelta(t, quilmes.Lng, m.Center().Lng, 1e-9)
}

func TestAttachDetach(t *testing.T) {
	m := testMap()
	m.Place(0, NewMarker(quilmes, testIcon(), Popup{Title: "Ana"}))
	m.Place(1, NewMarker(quilmes, testIcon(), Popup{Title: "Beto"}))
	assert.Equal(t, 2, m.AttachedCount())

	m.Detach(0)
	assert.False(t, m.IsAttached(0))
	assert.Equal(t, 1, m.AttachedCount())
	m.Attach(0)
	assert.True(t, m.IsAttached(0))

	m.Attach(7)
	assert.False(t, m.IsAttached(7), "unplaced keys cannot be attached")

	m.ClearMarkers()
	assert.Zero(t, m.AttachedCount())
	_, ok := m.Marker(1)
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	m := testMap()
	m.Place(0, NewMarker(quilmes, testIcon(), Popup{}))

	lines := strings.Split(m.Render(21, 11, -1), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "o", string([]rune(lines[5])[10]))

	t.Run("selected marker uses its focus glyph", func(t *testing.T) {
		lines := strings.Split(m.Render(21, 11, 0), "\n")
		assert.Equal(t, "O", string([]rune(lines[5])[10]))
	})

	t.Run("detached markers are not drawn", func(t *testing.T) {
		m.Detach(0)
		assert.NotContains(t, m.Render(21, 11, -1), "o")
		m.Attach(0)
	})

	t.Run("markers sharing a cell draw as a count", func(t *testing.T) {
		m.Place(1, NewMarker(quilmes, testIcon(), Popup{}))
		lines := strings.Split(m.Render(21, 11, -1), "\n")
		assert.Equal(t, "2", string([]rune(lines[5])[10]))
	})

	t.Run("markers off the canvas are skipped", func(t *testing.T) {
		far := testMap()
		far.Place(0, NewMarker(LatLng{Lat: 10, Lng: 10}, testIcon(), Popup{}))
		assert.NotContains(t, far.Render(21, 11, -1), "o")
	})

	assert.Empty(t, m.Render(0, 5, -1))
}

func TestTileURL(t *testing.T) {
	m := testMap()
	url := m.Tiles().TileURL(12, 1, 2)
	assert.Equal(t, "https://d.basemaps.cartocdn.com/light_all/12/1/2.png", url)
	assert.Equal(t, "© OpenStreetMap © CARTO", m.Attribution())
}

func TestPopupRender(t *testing.T) {
	p := Popup{Title: "Ana Pérez", Date: "1977", Address: "Quilmes", Hint: "enter: ficha"}
	out := p.Render(30, lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle())
	assert.Equal(t, "Ana Pérez\n1977\nQuilmes\n\nenter: ficha", out)
}
