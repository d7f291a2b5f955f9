// Package journal persists computed figure sets so runs can be compared or
// exported later. Backends: SQLite and CSV.
package journal

import (
	"time"

	"github.com/rustyeddy/figures/indicators"
)

// Run describes one recorded calculation: which indicator ran, over how many
// bars, and when.
type Run struct {
	ID        string
	CreatedAt time.Time
	Indicator string
	Bars      int
}

// Journal records calculation runs and their figures.
type Journal interface {
	RecordRun(run Run, figures []indicators.Figure) error
	Close() error
}
