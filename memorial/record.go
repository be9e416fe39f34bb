// Package memorial holds the records shown by memoria and the logic that decides
// which of them are visible on the map.
package memorial

import "strings"

// Record is one memorial entry. Field tags follow the wire names of the source dataset.
type Record struct {
	Name        string  `json:"nombre"`
	DateText    string  `json:"fecha"`
	Location    string  `json:"lugar"`
	Nickname    string  `json:"apodo"`
	NationalID  string  `json:"dni"`
	Nationality string  `json:"nacionalidad,omitempty"`
	Profession  string  `json:"profesion,omitempty"`
	Biography   string  `json:"historia,omitempty"`
	ImageRef    string  `json:"imagen,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
}

// Year returns the year extracted from the record's date text.
func (r Record) Year() (int, bool) {
	return ExtractYear(r.DateText)
}

// HasBiography reports whether the biography has any non-blank content.
func (r Record) HasBiography() bool {
	return strings.TrimSpace(r.Biography) != ""
}

// HasImage reports whether the record carries a non-blank image reference.
func (r Record) HasImage() bool {
	return strings.TrimSpace(r.ImageRef) != ""
}

// Dataset is the ordered, read-only record sequence. A record's position is its key:
// the marker for Dataset[i] is always registered under index i.
type Dataset []Record

// At returns the record at index i, or false when i is out of range.
func (d Dataset) At(i int) (Record, bool) {
	if i < 0 || i >= len(d) {
		return Record{}, false
	}
	return d[i], true
}
