package memorial

type fakeSurface struct {
	placed   map[int]Record
	attached map[int]bool
	attaches int
	detaches int
	clears   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{placed: map[int]Record{}, attached: map[int]bool{}}
}

func (f *fakeSurface) PlaceMarker(index int, rec Record) {
	f.placed[index] = rec
	f.attached[index] = true
}

func (f *fakeSurface) ClearMarkers() {
	f.clears++
	f.placed = map[int]Record{}
	f.attached = map[int]bool{}
}

func (f *fakeSurface) Attach(index int) {
	if _, ok := f.placed[index]; !ok {
		return
	}
	f.attaches++
	f.attached[index] = true
}

func (f *fakeSurface) Detach(index int) {
	f.detaches++
	delete(f.attached, index)
}

func (f *fakeSurface) IsAttached(index int) bool { return f.attached[index] }

type fakePanel struct {
	controls []*YearControl
	clears   int
}

func (p *fakePanel) ClearControls()            { p.clears++; p.controls = nil }
func (p *fakePanel) AddControl(c *YearControl) { p.controls = append(p.controls, c) }

type fakeCounters struct {
	last  Counters
	calls int
}

func (c *fakeCounters) SetCounters(v Counters) { c.last = v; c.calls++ }

type fakeDetail struct {
	fields   map[Slot]string
	lines    map[Slot][]string
	sections map[Slot]bool
	open     bool
	locked   bool
	calls    int
}

func newFakeDetail() *fakeDetail {
	return &fakeDetail{fields: map[Slot]string{}, lines: map[Slot][]string{}, sections: map[Slot]bool{}}
}

func (d *fakeDetail) SetField(slot Slot, v string)        { d.calls++; d.fields[slot] = v }
func (d *fakeDetail) SetLines(slot Slot, l []string)      { d.calls++; d.lines[slot] = l }
func (d *fakeDetail) SetSectionVisible(slot Slot, v bool) { d.calls++; d.sections[slot] = v }
func (d *fakeDetail) SetModalOpen(open bool)              { d.calls++; d.open = open }
func (d *fakeDetail) SetScrollLocked(locked bool)         { d.calls++; d.locked = locked }

func scenario() Dataset {
	return Dataset{
		{Name: "Ana", DateText: "1976", Location: "Quilmes"},
		{Name: "Beto", DateText: "sin datos", Location: "Bernal"},
		{Name: "Carla", DateText: "1976", Location: "Ezpeleta"},
	}
}
