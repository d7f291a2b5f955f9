package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Range/extremum indicators: HHV, LLV, CCI, WR, KDJ.

func init() {
	register(&Definition{
		Name: "HHV", ShortName: "HHV", RequiresOHLC: true,
		Params: []Param{{Name: "period", Spec: numParam(20, 1, 1000, 1)}},
		build:  buildHHV,
	})
	register(&Definition{
		Name: "LLV", ShortName: "LLV", RequiresOHLC: true,
		Params: []Param{{Name: "period", Spec: numParam(20, 1, 1000, 1)}},
		build:  buildLLV,
	})
	register(&Definition{
		Name: "CCI", ShortName: "CCI", RequiresOHLC: true,
		Params: []Param{{Name: "period", Spec: numParam(20, 1, 1000, 1)}},
		build:  buildCCI,
	})
	register(&Definition{
		Name: "WR", ShortName: "WR", RequiresOHLC: true,
		Params: []Param{{Name: "period", Spec: numParam(14, 1, 1000, 1)}},
		build:  buildWR,
	})
	register(&Definition{
		Name: "KDJ", ShortName: "KDJ", RequiresOHLC: true,
		Params: []Param{
			{Name: "period", Spec: numParam(9, 1, 1000, 1)},
			{Name: "kPeriod", Spec: numParam(3, 1, 100, 1)},
			{Name: "dPeriod", Spec: numParam(3, 1, 100, 1)},
		},
		build: buildKDJ,
	})
}

func buildHHV(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("HHV", "period")
	}
	mm := NewMinMax(n)
	return &funcStepper{
		specs: []FigureSpec{line("hhv", "HHV"+tag)},
		fn: func(b market.Bar) []float64 {
			mm.Update(b.High)
			return []float64{mm.Highest()}
		},
	}, nil
}

func buildLLV(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("LLV", "period")
	}
	mm := NewMinMax(n)
	return &funcStepper{
		specs: []FigureSpec{line("llv", "LLV"+tag)},
		fn: func(b market.Bar) []float64 {
			mm.Update(b.Low)
			return []float64{mm.Lowest()}
		},
	}, nil
}

func buildCCI(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("CCI", "period")
	}
	stats := NewWindowStats(n, false)
	return &funcStepper{
		specs: []FigureSpec{line("cci", "CCI"+tag)},
		fn: func(b market.Bar) []float64 {
			tp := b.TypicalPrice()
			stats.Update(tp)
			if !stats.Ready() {
				return []float64{math.NaN()}
			}
			return []float64{zeroGuard(tp-stats.Mean(), 0.015*stats.MeanDev(), 0)}
		},
	}, nil
}

func buildWR(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("WR", "period")
	}
	highs := NewMinMax(n)
	lows := NewMinMax(n)
	return &funcStepper{
		specs: []FigureSpec{line("wr", "WR"+tag)},
		fn: func(b market.Bar) []float64 {
			highs.Update(b.High)
			lows.Update(b.Low)
			if !highs.Ready() {
				return []float64{math.NaN()}
			}
			hhv, llv := highs.Highest(), lows.Lowest()
			return []float64{zeroGuard((hhv-b.Close)*100, hhv-llv, 0)}
		},
	}, nil
}

func buildKDJ(r Resolved, tag string) (stepper, error) {
	n, kp, dp := r.Period("period"), r.Period("kPeriod"), r.Period("dPeriod")
	if n < 1 {
		return nil, errPeriod("KDJ", "period")
	}
	if kp < 1 {
		return nil, errPeriod("KDJ", "kPeriod")
	}
	if dp < 1 {
		return nil, errPeriod("KDJ", "dPeriod")
	}
	highs := NewMinMax(n)
	lows := NewMinMax(n)
	// %K/%D recursions are seeded at the 50 midline.
	k, d := 50.0, 50.0
	return &funcStepper{
		specs: []FigureSpec{
			line("k", "K"+tag),
			line("d", "D"+tag),
			line("j", "J"+tag),
		},
		fn: func(b market.Bar) []float64 {
			highs.Update(b.High)
			lows.Update(b.Low)
			if !highs.Ready() {
				nan := math.NaN()
				return []float64{nan, nan, nan}
			}
			llv := lows.Lowest()
			rsv := zeroGuard((b.Close-llv)*100, highs.Highest()-llv, 0)
			k = (float64(kp-1)*k + rsv) / float64(kp)
			d = (float64(dp-1)*d + k) / float64(dp)
			return []float64{k, d, 3*k - 2*d}
		},
	}, nil
}
