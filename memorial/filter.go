package memorial

import "sort"

// FilterState is the set of years currently selected for display.
type FilterState struct {
	selected map[int]struct{}
}

func NewFilterState() *FilterState {
	return &FilterState{selected: make(map[int]struct{})}
}

// Initialize replaces the selection with exactly years.
func (f *FilterState) Initialize(years []int) {
	f.selected = make(map[int]struct{}, len(years))
	for _, y := range years {
		f.selected[y] = struct{}{}
	}
}

// Toggle flips the membership of year.
func (f *FilterState) Toggle(year int) {
	if f.selected == nil {
		f.selected = make(map[int]struct{})
	}
	if _, ok := f.selected[year]; ok {
		delete(f.selected, year)
		return
	}
	f.selected[year] = struct{}{}
}

func (f *FilterState) Contains(year int) bool {
	_, ok := f.selected[year]
	return ok
}

func (f *FilterState) Len() int {
	return len(f.selected)
}

// Years returns the selection in ascending order.
func (f *FilterState) Years() []int {
	out := make([]int, 0, len(f.selected))
	for y := range f.selected {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
