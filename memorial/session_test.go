package memorial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, d Dataset) (*Session, *fakeSurface, *fakePanel, *fakeCounters) {
	t.Helper()
	surface := newFakeSurface()
	panel := &fakePanel{}
	counters := &fakeCounters{}
	s, err := NewSession(d, Options{Surface: surface, Panel: panel, Counters: counters})
	require.NoError(t, err)
	return s, surface, panel, counters
}

func TestNewSessionMissingDependencies(t *testing.T) {
	t.Run("no dataset", func(t *testing.T) {
		_, err := NewSession(nil, Options{Surface: newFakeSurface()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStartupDependencyMissing))
	})
	t.Run("no map surface", func(t *testing.T) {
		_, err := NewSession(scenario(), Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStartupDependencyMissing))
	})
}

func TestSessionScenario(t *testing.T) {
	s, surface, _, counters := newTestSession(t, scenario())

	assert.Equal(t, Counters{Total: 3, Visible: 3}, counters.last)
	assert.Equal(t, []int{1976}, s.Index().Years)

	s.Toggle(1976)
	assert.Equal(t, Counters{Total: 3, Visible: 1}, counters.last)
	assert.Equal(t, []int{1}, s.Visible())
	assert.True(t, surface.IsAttached(1), "undated record stays on the map")
	assert.False(t, surface.IsAttached(0))
	assert.False(t, surface.IsAttached(2))
}

func TestSessionToggleRefreshesOnce(t *testing.T) {
	s, _, _, counters := newTestSession(t, scenario())
	before := counters.calls
	s.Toggle(1976)
	assert.Equal(t, before+1, counters.calls)
	s.Reset()
	assert.Equal(t, before+2, counters.calls)
}

func TestSessionToggleRoundTrip(t *testing.T) {
	s, _, _, counters := newTestSession(t, Dataset{{DateText: "1976"}, {DateText: "1980"}})
	require.True(t, s.IsSelected(1980))
	s.Toggle(1980)
	assert.False(t, s.IsSelected(1980))
	s.Toggle(1980)
	assert.True(t, s.IsSelected(1980))
	assert.Equal(t, 2, counters.last.Visible)
}

func TestSessionUndatedAlwaysAttached(t *testing.T) {
	d := Dataset{{DateText: "1976"}, {DateText: "s/f"}, {DateText: "1977"}, {DateText: "1978"}}
	s, surface, _, _ := newTestSession(t, d)
	for _, y := range s.Index().Years {
		s.Toggle(y)
	}
	assert.Empty(t, s.Selected())
	assert.Equal(t, []int{1}, s.Visible())
	assert.True(t, surface.IsAttached(1))
}

func TestSessionReset(t *testing.T) {
	d := Dataset{{DateText: "1976"}, {DateText: "1977"}, {DateText: "?"}, {DateText: "1977"}}
	s, surface, panel, counters := newTestSession(t, d)

	s.Toggle(1976)
	s.Toggle(1977)
	s.Toggle(1999)
	panel.controls[0].Invoke()

	s.Reset()
	assert.Equal(t, []int{1976, 1977}, s.Selected())
	assert.Equal(t, Counters{Total: 4, Visible: 4}, counters.last)
	for i := range d {
		assert.True(t, surface.IsAttached(i))
	}
	for _, c := range panel.controls {
		assert.True(t, c.Active(), "control %d active after reset", c.Year)
	}
}

func TestSessionUnknownYearToggleDoesNotChangeMap(t *testing.T) {
	s, surface, _, counters := newTestSession(t, scenario())
	detaches := surface.detaches
	s.Toggle(2024)
	assert.Equal(t, detaches, surface.detaches)
	assert.Equal(t, 3, counters.last.Visible)
}

func TestSessionBuildFilters(t *testing.T) {
	d := Dataset{{DateText: "1980"}, {DateText: "1976"}, {DateText: "1980"}, {DateText: "nd"}}
	s, _, panel, counters := newTestSession(t, d)

	require.Len(t, panel.controls, 2)
	assert.Equal(t, 1976, panel.controls[0].Year)
	assert.Equal(t, 1, panel.controls[0].Count)
	assert.Equal(t, 1980, panel.controls[1].Year)
	assert.Equal(t, 2, panel.controls[1].Count)
	for _, c := range panel.controls {
		assert.True(t, c.Active())
	}

	t.Run("invoking a control toggles and tracks state", func(t *testing.T) {
		c := panel.controls[1]
		c.Invoke()
		assert.False(t, c.Active())
		assert.False(t, s.IsSelected(1980))
		assert.Equal(t, 2, counters.last.Visible)
		c.Invoke()
		assert.True(t, c.Active())
		assert.Equal(t, 4, counters.last.Visible)
	})

	t.Run("rebuilding regenerates instead of appending", func(t *testing.T) {
		clears := panel.clears
		s.BuildFilters()
		assert.Equal(t, clears+1, panel.clears)
		assert.Len(t, panel.controls, 2)
		assert.Len(t, s.Controls(), 2)
	})
}

func TestSessionReload(t *testing.T) {
	s, surface, panel, counters := newTestSession(t, scenario())
	s.Toggle(1976)
	clears := surface.clears

	next := Dataset{{DateText: "1990"}, {DateText: "1991"}}
	require.NoError(t, s.Reload(next))

	assert.Equal(t, clears+1, surface.clears)
	assert.Len(t, surface.placed, 2)
	assert.Equal(t, []int{1990, 1991}, s.Selected())
	assert.Len(t, panel.controls, 2)
	assert.Equal(t, Counters{Total: 2, Visible: 2}, counters.last)

	err := s.Reload(nil)
	assert.ErrorIs(t, err, ErrStartupDependencyMissing)
}

func TestSessionWithoutPanelOrCounters(t *testing.T) {
	s, err := NewSession(scenario(), Options{Surface: newFakeSurface()})
	require.NoError(t, err)
	s.Toggle(1976)
	assert.Equal(t, Counters{Total: 3, Visible: 1}, s.Counters())
}
