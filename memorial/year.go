package memorial

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the first run of four consecutive digits in dateText as an int.
// Only the first run counts, so "1977 y 1980" yields 1977 and an ISO date yields its
// year, but a date written with a four digit day or a leading serial number does not.
// The value is not checked against the calendar.
func ExtractYear(dateText string) (int, bool) {
	match := yearPattern.FindString(dateText)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}
