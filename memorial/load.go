package memorial

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadFile reads a dataset from a .json or .csv file. A missing or unreadable file is
// reported as ErrStartupDependencyMissing.
func LoadFile(path string) (Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, missing("no dataset file given")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" {
		return nil, fmt.Errorf("%w %q (want .json or .csv)", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartupDependencyMissing, err)
	}
	defer f.Close()

	if ext == ".json" {
		return DecodeJSON(f)
	}
	return DecodeCSV(f)
}

// DecodeJSON reads a JSON array of records.
func DecodeJSON(r io.Reader) (Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset json: %w", err)
	}
	if d == nil {
		d = Dataset{}
	}
	return d, nil
}

var csvColumns = map[string]string{
	"nombre":       "name",
	"name":         "name",
	"fecha":        "date",
	"date":         "date",
	"datetext":     "date",
	"lugar":        "location",
	"location":     "location",
	"apodo":        "nickname",
	"nickname":     "nickname",
	"dni":          "id",
	"nationalid":   "id",
	"nacionalidad": "nationality",
	"nationality":  "nationality",
	"profesion":    "profession",
	"profesión":    "profession",
	"profession":   "profession",
	"historia":     "biography",
	"biography":    "biography",
	"imagen":       "image",
	"image":        "image",
	"imageref":     "image",
	"lat":          "lat",
	"latitude":     "lat",
	"lng":          "lng",
	"lon":          "lng",
	"longitude":    "lng",
}

// DecodeCSV reads a header row followed by one record per row. Headers are matched
// case-insensitively against the Spanish wire names or the English field names;
// unknown columns are ignored.
func DecodeCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read dataset csv: no header row")
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := csvColumns[h]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}

	d := make(Dataset, 0, len(rows)-1)
	for n, row := range rows[1:] {
		get := func(field string) string {
			i, ok := cols[field]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		lat, err := parseCoord(get("lat"))
		if err != nil {
			return nil, fmt.Errorf("row %d: lat: %w", n+2, err)
		}
		lng, err := parseCoord(get("lng"))
		if err != nil {
			return nil, fmt.Errorf("row %d: lng: %w", n+2, err)
		}
		d = append(d, Record{
			Name:        get("name"),
			DateText:    get("date"),
			Location:    get("location"),
			Nickname:    get("nickname"),
			NationalID:  get("id"),
			Nationality: get("nationality"),
			Profession:  get("profession"),
			Biography:   strings.ReplaceAll(get("biography"), `\n`, "\n"),
			ImageRef:    get("image"),
			Latitude:    lat,
			Longitude:   lng,
		})
	}
	return d, nil
}

func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
