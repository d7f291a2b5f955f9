// Package indicators computes derived numeric series ("figures") from
// ordered bar sequences: moving averages, oscillators, volatility bands,
// directional-movement and momentum families, stochastic/SAR state machines,
// and volume-weighted metrics.
//
// Every calculation is a single index-ascending pass driven by streaming
// kernels. Output figures are position-aligned with the input bars: one point
// per bar, NaN while a window-based computation is still warming up.
package indicators

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/figures/market"
)

// FigureKind tells the renderer how to paint a figure.
type FigureKind string

const (
	Line      FigureKind = "line"
	Histogram FigureKind = "histogram"
)

// Point is one output sample, aligned by position with the input bar of the
// same index.
type Point struct {
	Time  int64
	Value float64
}

// Figure is one named output series.
type Figure struct {
	Key   string
	Title string
	Kind  FigureKind
	Data  []Point
}

// FigureSpec describes one output of a definition before any data exists.
// Titles already embed the resolved numeric parameter values ("MA12").
type FigureSpec struct {
	Key   string
	Title string
	Kind  FigureKind
}

// stepper advances one resolved instance of a definition across the bar
// sequence. step is called exactly once per bar, index-ascending, and returns
// one value per output (NaN during warm-up).
type stepper interface {
	outputs() []FigureSpec
	step(b market.Bar) []float64
}

// Definition declares one named indicator: its parameter table and a
// constructor for per-instance calculation state. Definitions are pure; the
// parameter table is passed explicitly to the build function, never read
// through a receiver.
type Definition struct {
	Name         string
	ShortName    string
	RequiresOHLC bool
	NeedsVolume  bool
	Params       []Param

	// build constructs per-instance state. tag is the rendered numeric
	// parameter values for embedding in figure titles ("12", "9/3/3").
	build func(p Resolved, tag string) (stepper, error)
}

var (
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrInvalidParams    = errors.New("invalid parameters")
)

var registry = map[string]*Definition{}

func register(d *Definition) {
	if len(d.Params) == 0 {
		panic(fmt.Sprintf("indicator %s: empty parameter table", d.Name))
	}
	registry[strings.ToUpper(d.Name)] = d
}

// Lookup returns the definition for name (case-insensitive).
func Lookup(name string) (*Definition, error) {
	d, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	return d, nil
}

// Names returns all registered indicator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
