package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/andareed/memoria/memorial"
)

var exportHeader = []string{"nombre", "fecha", "año", "lugar", "apodo", "dni", "nacionalidad", "profesion", "imagen", "lat", "lng"}

// ExportVisible writes the records at indices to a CSV file, in the order given.
func ExportVisible(path string, d memorial.Dataset, indices []int) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	n := 0
	for _, idx := range indices {
		rec, ok := d.At(idx)
		if !ok {
			return n, fmt.Errorf("visible index %d out of range", idx)
		}
		year := ""
		if y, ok := rec.Year(); ok {
			year = strconv.Itoa(y)
		}
		row := []string{
			rec.Name, rec.DateText, year, rec.Location, rec.Nickname, rec.NationalID,
			rec.Nationality, rec.Profession, rec.ImageRef,
			strconv.FormatFloat(rec.Latitude, 'f', -1, 64),
			strconv.FormatFloat(rec.Longitude, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return n, fmt.Errorf("write row %d: %w", idx, err)
		}
		n++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return n, fmt.Errorf("flush csv: %w", err)
	}
	return n, nil
}
