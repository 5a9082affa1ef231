package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DayColumn       string // Column name for the time index (default: "day")
	CovariateColumn string // Column name for the covariate (default: "temperature")
	ResponseColumn  string // Column name for the response (default: "y")
	HasHeader       bool   // Whether CSV has header row (default: true)
	Delimiter       rune   // Field delimiter (default: ',')
	SkipRows        int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DayColumn:       "day",
		CovariateColumn: "temperature",
		ResponseColumn:  "y",
		HasHeader:       true,
		Delimiter:       ',',
	}
}

// LoadObservationsFile loads observations from a CSV file.
func LoadObservationsFile(filename string, opts *CSVOptions) ([]Observation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadObservationsCSV(file, opts)
}

// LoadObservationsCSV loads observations from an io.Reader.
// Rows with a missing or non-numeric field are skipped.
func LoadObservationsCSV(r io.Reader, opts *CSVOptions) ([]Observation, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	// Without a header the layout is day, covariate, response.
	dayIdx, covIdx, respIdx := 0, 1, 2

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		dayIdx, covIdx, respIdx = -1, -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch h {
			case opts.DayColumn:
				dayIdx = i
			case opts.CovariateColumn:
				covIdx = i
			case opts.ResponseColumn:
				respIdx = i
			}
		}

		if dayIdx < 0 || covIdx < 0 || respIdx < 0 {
			return nil, fmt.Errorf("missing column: need %q, %q and %q",
				opts.DayColumn, opts.CovariateColumn, opts.ResponseColumn)
		}
	}

	var obs []Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		day, ok := parseField(record, dayIdx)
		if !ok {
			continue
		}
		cov, ok := parseField(record, covIdx)
		if !ok {
			continue
		}
		resp, ok := parseField(record, respIdx)
		if !ok {
			continue
		}

		obs = append(obs, Observation{Day: day, Covariate: cov, Response: resp})
	}

	if len(obs) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return obs, nil
}

func parseField(record []string, idx int) (float64, bool) {
	if idx >= len(record) {
		return 0, false
	}
	s := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
