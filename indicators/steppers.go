package indicators

import (
	"fmt"
	"math"

	"github.com/rustyeddy/figures/market"
)

// funcStepper adapts a closure over streaming kernels into a stepper. All
// definitions build one of these; the closure owns the instance state.
type funcStepper struct {
	specs []FigureSpec
	fn    func(b market.Bar) []float64
}

func (s *funcStepper) outputs() []FigureSpec { return s.specs }

func (s *funcStepper) step(b market.Bar) []float64 { return s.fn(b) }

func line(key, title string) FigureSpec {
	return FigureSpec{Key: key, Title: title, Kind: Line}
}

func histo(key, title string) FigureSpec {
	return FigureSpec{Key: key, Title: title, Kind: Histogram}
}

func errPeriod(indicator, param string) error {
	return fmt.Errorf("%w: %s.%s must be a positive period", ErrInvalidParams, indicator, param)
}

// feed pushes v into a kernel only once v is defined, so downstream warm-up
// counts from the first defined upstream sample.
func feed(update func(float64), v float64) {
	if !math.IsNaN(v) {
		update(v)
	}
}

var sourceOptions = []string{"close", "open", "high", "low", "hl2", "hlc3", "ohlc4"}

// sourceValue extracts the configured price source from a bar.
func sourceValue(b market.Bar, source string) float64 {
	switch source {
	case "open":
		return b.Open
	case "high":
		return b.High
	case "low":
		return b.Low
	case "hl2":
		return b.HL2()
	case "hlc3":
		return b.TypicalPrice()
	case "ohlc4":
		return (b.Open + b.High + b.Low + b.Close) / 4
	default:
		return b.Close
	}
}

// zeroGuard substitutes fallback when the denominator is zero, the documented
// behavior for every ratio-based indicator.
func zeroGuard(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}
