package memorial

import "sort"

// YearIndex is derived from a Dataset: the distinct years in ascending order and how
// many records fall in each. Records without a year appear in neither.
type YearIndex struct {
	Years  []int
	Counts map[int]int
}

func BuildYearIndex(d Dataset) YearIndex {
	idx := YearIndex{Counts: make(map[int]int)}
	for _, rec := range d {
		year, ok := rec.Year()
		if !ok {
			continue
		}
		if idx.Counts[year] == 0 {
			idx.Years = append(idx.Years, year)
		}
		idx.Counts[year]++
	}
	sort.Ints(idx.Years)
	return idx
}

// Count returns how many records carry year.
func (y YearIndex) Count(year int) int {
	return y.Counts[year]
}
