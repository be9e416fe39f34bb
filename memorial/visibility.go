package memorial

// MarkerLayer is the map layer collection markers are attached to. A detached marker is
// not drawn and receives no interaction. Markers are keyed by dataset index.
type MarkerLayer interface {
	Attach(index int)
	Detach(index int)
	IsAttached(index int) bool
}

// Visibility keeps the marker layer in step with the filter state.
type Visibility struct {
	dataset Dataset
	filter  *FilterState
	layer   MarkerLayer
}

func NewVisibility(d Dataset, f *FilterState, layer MarkerLayer) *Visibility {
	return &Visibility{dataset: d, filter: f, layer: layer}
}

// Shown reports whether the record at index should be on the map. Records without a
// year are always shown, whatever the selection.
func (v *Visibility) Shown(index int) bool {
	rec, ok := v.dataset.At(index)
	if !ok {
		return false
	}
	year, ok := rec.Year()
	if !ok {
		return true
	}
	return v.filter.Contains(year)
}

// Resync attaches or detaches every marker to match Shown. Markers already in the right
// state are left alone, so calling it twice changes nothing the second time.
func (v *Visibility) Resync() {
	for i := range v.dataset {
		want := v.Shown(i)
		has := v.layer.IsAttached(i)
		switch {
		case want && !has:
			v.layer.Attach(i)
		case !want && has:
			v.layer.Detach(i)
		}
	}
}

// Attached returns the indices of markers currently on the layer, in dataset order.
func (v *Visibility) Attached() []int {
	out := make([]int, 0, len(v.dataset))
	for i := range v.dataset {
		if v.layer.IsAttached(i) {
			out = append(out, i)
		}
	}
	return out
}
