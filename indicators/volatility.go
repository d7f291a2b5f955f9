package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Volatility family: BOLL, ATR, Keltner-style ATR bands, Super Trend.

func init() {
	register(&Definition{
		Name: "BOLL", ShortName: "BOLL",
		Params: []Param{
			{Name: "period", Spec: numParam(20, 1, 1000, 1)},
			{Name: "multiplier", Spec: numParam(2, 0, 10, 0.1)},
			{Name: "sample", Spec: ParamSpec{Default: Bool(false)}},
		},
		build: buildBOLL,
	})
	register(&Definition{
		Name: "ATR", ShortName: "ATR", RequiresOHLC: true,
		Params: []Param{{Name: "period", Spec: numParam(14, 1, 1000, 1)}},
		build:  buildATR,
	})
	register(&Definition{
		Name: "KC", ShortName: "KC", RequiresOHLC: true,
		Params: []Param{
			{Name: "period", Spec: numParam(20, 1, 1000, 1)},
			{Name: "atrPeriod", Spec: numParam(10, 1, 1000, 1)},
			{Name: "multiplier", Spec: numParam(2, 0, 10, 0.1)},
		},
		build: buildKC,
	})
	register(&Definition{
		Name: "SUPERTREND", ShortName: "ST", RequiresOHLC: true,
		Params: []Param{
			{Name: "period", Spec: numParam(10, 1, 1000, 1)},
			{Name: "multiplier", Spec: numParam(3, 0, 10, 0.1)},
		},
		build: buildSuperTrend,
	})
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(current, previous market.Bar) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)
	return math.Max(highLow, math.Max(highClose, lowClose))
}

func buildBOLL(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("BOLL", "period")
	}
	k := r.Float("multiplier")
	if k < 0 {
		return nil, errPeriod("BOLL", "multiplier")
	}
	stats := NewWindowStats(n, r.Flag("sample"))
	return &funcStepper{
		specs: []FigureSpec{
			line("mid", "MID"+tag),
			line("up", "UP"+tag),
			line("dn", "DN"+tag),
		},
		fn: func(b market.Bar) []float64 {
			stats.Update(b.Close)
			mid := stats.Mean()
			band := k * stats.StdDev()
			return []float64{mid, mid + band, mid - band}
		},
	}, nil
}

func buildATR(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("ATR", "period")
	}
	atr := NewWilder(n)
	var prev market.Bar
	havePrev := false
	return &funcStepper{
		specs: []FigureSpec{line("atr", "ATR"+tag)},
		fn: func(b market.Bar) []float64 {
			if !havePrev {
				prev, havePrev = b, true
				return []float64{math.NaN()}
			}
			atr.Update(trueRange(b, prev))
			prev = b
			return []float64{atr.Value()}
		},
	}, nil
}

func buildKC(r Resolved, tag string) (stepper, error) {
	n, an := r.Period("period"), r.Period("atrPeriod")
	if n < 1 {
		return nil, errPeriod("KC", "period")
	}
	if an < 1 {
		return nil, errPeriod("KC", "atrPeriod")
	}
	k := r.Float("multiplier")
	if k < 0 {
		return nil, errPeriod("KC", "multiplier")
	}
	mid := NewEMA(n)
	atr := NewWilder(an)
	var prev market.Bar
	havePrev := false
	return &funcStepper{
		specs: []FigureSpec{
			line("mid", "MID"+tag),
			line("up", "UP"+tag),
			line("dn", "DN"+tag),
		},
		fn: func(b market.Bar) []float64 {
			mid.Update(b.Close)
			if havePrev {
				atr.Update(trueRange(b, prev))
			}
			prev, havePrev = b, true
			m := mid.Value()
			band := k * atr.Value()
			return []float64{m, m + band, m - band}
		},
	}, nil
}

func buildSuperTrend(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("SUPERTREND", "period")
	}
	k := r.Float("multiplier")
	if k < 0 {
		return nil, errPeriod("SUPERTREND", "multiplier")
	}
	atr := NewWilder(n)
	var prev market.Bar
	havePrev := false
	finalUpper, finalLower := math.NaN(), math.NaN()
	st := math.NaN()
	return &funcStepper{
		specs: []FigureSpec{line("supertrend", "ST"+tag)},
		fn: func(b market.Bar) []float64 {
			if !havePrev {
				prev, havePrev = b, true
				return []float64{math.NaN()}
			}
			atr.Update(trueRange(b, prev))
			prevClose := prev.Close
			prev = b

			basicUpper := b.HL2() + k*atr.Value()
			basicLower := b.HL2() - k*atr.Value()

			if math.IsNaN(finalUpper) {
				finalUpper, finalLower = basicUpper, basicLower
				st = finalUpper
				return []float64{st}
			}

			// Band carry-forward: bands only tighten until price closes
			// beyond them.
			prevUpper, prevLower, prevST := finalUpper, finalLower, st
			if basicUpper < prevUpper || prevClose > prevUpper {
				finalUpper = basicUpper
			}
			if basicLower > prevLower || prevClose < prevLower {
				finalLower = basicLower
			}

			if prevST == prevUpper {
				if b.Close <= finalUpper {
					st = finalUpper
				} else {
					st = finalLower
				}
			} else {
				if b.Close >= finalLower {
					st = finalLower
				} else {
					st = finalUpper
				}
			}
			return []float64{st}
		},
	}, nil
}
