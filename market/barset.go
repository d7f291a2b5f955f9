package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Validate checks that the bar sequence is usable by the engine: strictly
// ascending, unique times, and high >= low on every bar.
func Validate(bars []Bar) error {
	for i, b := range bars {
		if b.High < b.Low {
			return fmt.Errorf("bar %d: high %v below low %v", i, b.High, b.Low)
		}
		if i > 0 && b.Time <= bars[i-1].Time {
			return fmt.Errorf("bar %d: time %d not after previous %d", i, b.Time, bars[i-1].Time)
		}
	}
	return nil
}

// LoadCSV reads bars from a CSV file with columns
// time,open,high,low,close[,volume]. A header row is detected by the first
// field being "time". Times may be RFC3339 or unix seconds.
func LoadCSV(path string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads bars from r. See LoadCSV for the accepted format.
func ReadCSV(r io.Reader) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var bars []Bar
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}
		b, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	if err := Validate(bars); err != nil {
		return nil, err
	}
	return bars, nil
}

func parseRow(row []string) (Bar, error) {
	if len(row) < 5 {
		return Bar{}, fmt.Errorf("bad row (need time,open,high,low,close[,volume]): %v", row)
	}

	ts, err := parseTime(strings.TrimSpace(row[0]))
	if err != nil {
		return Bar{}, err
	}

	vals := make([]float64, 0, 5)
	for _, field := range row[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad value %q: %w", field, err)
		}
		vals = append(vals, v)
		if len(vals) == 5 {
			break
		}
	}

	b := Bar{Time: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
	if len(vals) > 4 {
		b.Volume = vals[4]
	}
	return b, nil
}

func parseTime(s string) (int64, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Unix(), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("bad time %q (want RFC3339 or unix seconds)", s)
}
