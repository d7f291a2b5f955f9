package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rustyeddy/figures/indicators"
)

// WriteCSV writes a figure set as a wide table: one time column followed by
// one column per figure key. Figures computed from the same bar set share
// timestamps row for row; warm-up samples are written as NaN.
func WriteCSV(w io.Writer, figures []indicators.Figure) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(figures)+1)
	header = append(header, "time")
	rows := 0
	for _, fig := range figures {
		header = append(header, fig.Key)
		if len(fig.Data) > rows {
			rows = len(fig.Data)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for i := 0; i < rows; i++ {
		record[0] = ""
		for j, fig := range figures {
			if i >= len(fig.Data) {
				record[j+1] = ""
				continue
			}
			pt := fig.Data[i]
			if record[0] == "" {
				record[0] = strconv.FormatInt(pt.Time, 10)
			}
			record[j+1] = formatValue(pt.Value)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
