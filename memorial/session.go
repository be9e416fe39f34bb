package memorial

// MapSurface is the map provider as seen by a Session: a marker layer that can also
// build a marker for a record and drop every marker it holds.
type MapSurface interface {
	MarkerLayer
	PlaceMarker(index int, rec Record)
	ClearMarkers()
}

// ControlPanel holds the generated year filter controls.
type ControlPanel interface {
	ClearControls()
	AddControl(c *YearControl)
}

// CounterDisplay shows the total and visible marker counts.
type CounterDisplay interface {
	SetCounters(c Counters)
}

type Counters struct {
	Total   int
	Visible int
}

// YearControl is one generated year toggle.
type YearControl struct {
	Year   int
	Count  int
	active bool
	s      *Session
}

func (c *YearControl) Active() bool { return c.active }

// Invoke toggles the control's year and takes on the resulting selection state.
func (c *YearControl) Invoke() {
	c.s.Toggle(c.Year)
	c.active = c.s.IsSelected(c.Year)
}

// Session owns the state of one viewing session: the dataset, the filter selection,
// the markers on the map and the generated controls. It is used from a single event
// loop and is not safe for concurrent use.
type Session struct {
	dataset  Dataset
	filter   *FilterState
	vis      *Visibility
	surface  MapSurface
	panel    ControlPanel
	display  CounterDisplay
	controls []*YearControl
	counters Counters
}

// Options wires the external collaborators of a Session. Panel and Counters may be nil.
type Options struct {
	Surface  MapSurface
	Panel    ControlPanel
	Counters CounterDisplay
}

// NewSession checks the startup collaborators and builds the markers, the full year
// selection, the filter controls and the counters, in that order.
func NewSession(d Dataset, opts Options) (*Session, error) {
	if d == nil {
		return nil, missing("dataset not loaded")
	}
	if opts.Surface == nil {
		return nil, missing("map surface not available")
	}
	s := &Session{
		filter:  NewFilterState(),
		surface: opts.Surface,
		panel:   opts.Panel,
		display: opts.Counters,
	}
	s.load(d)
	return s, nil
}

// Reload replaces the dataset. Markers, selection and controls are rebuilt together.
func (s *Session) Reload(d Dataset) error {
	if d == nil {
		return missing("dataset not loaded")
	}
	s.load(d)
	return nil
}

func (s *Session) load(d Dataset) {
	s.dataset = d
	s.surface.ClearMarkers()
	for i, rec := range d {
		s.surface.PlaceMarker(i, rec)
	}
	s.vis = NewVisibility(d, s.filter, s.surface)
	s.filter.Initialize(BuildYearIndex(d).Years)
	s.BuildFilters()
	s.vis.Resync()
	s.RefreshCounters()
}

func (s *Session) Dataset() Dataset { return s.dataset }

// Index recomputes the year index from the current dataset.
func (s *Session) Index() YearIndex { return BuildYearIndex(s.dataset) }

func (s *Session) IsSelected(year int) bool { return s.filter.Contains(year) }

// Selected returns the selected years in ascending order.
func (s *Session) Selected() []int { return s.filter.Years() }

// Toggle flips year in the selection, then resyncs the map and the counters.
func (s *Session) Toggle(year int) {
	s.filter.Toggle(year)
	s.vis.Resync()
	s.RefreshCounters()
}

// Reset selects every known year again, recomputed from the dataset.
func (s *Session) Reset() {
	s.filter.Initialize(BuildYearIndex(s.dataset).Years)
	for _, c := range s.controls {
		c.active = s.filter.Contains(c.Year)
	}
	s.vis.Resync()
	s.RefreshCounters()
}

// BuildFilters regenerates the year controls from scratch, one per distinct year in
// ascending order, each starting active.
func (s *Session) BuildFilters() {
	idx := BuildYearIndex(s.dataset)
	s.controls = make([]*YearControl, 0, len(idx.Years))
	if s.panel != nil {
		s.panel.ClearControls()
	}
	for _, year := range idx.Years {
		c := &YearControl{Year: year, Count: idx.Count(year), active: true, s: s}
		s.controls = append(s.controls, c)
		if s.panel != nil {
			s.panel.AddControl(c)
		}
	}
}

func (s *Session) Controls() []*YearControl { return s.controls }

// Resync pushes the current selection to the map.
func (s *Session) Resync() { s.vis.Resync() }

// Shown reports whether the record at index currently belongs on the map.
func (s *Session) Shown(index int) bool { return s.vis.Shown(index) }

// Visible returns the dataset indices whose markers are attached.
func (s *Session) Visible() []int { return s.vis.Attached() }

// RefreshCounters recounts attached markers and pushes the result to the display.
func (s *Session) RefreshCounters() {
	s.counters = Counters{Total: len(s.dataset), Visible: len(s.vis.Attached())}
	if s.display != nil {
		s.display.SetCounters(s.counters)
	}
}

func (s *Session) Counters() Counters { return s.counters }
