package main

type focusArea int

const (
	focusMarkers focusArea = iota
	focusYears
)

func (f focusArea) String() string {
	if f == focusYears {
		return "years"
	}
	return "markers"
}

type uiState struct {
	mode        mode
	focus       focusArea
	command     CommandInput
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	searchQuery string
}
