package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Close-derived oscillators: RSI, BIAS, ROC, MTM, PSY.

func init() {
	register(&Definition{
		Name: "RSI", ShortName: "RSI",
		Params: []Param{{Name: "period", Spec: numParam(14, 1, 1000, 1)}},
		build:  buildRSI,
	})
	register(&Definition{
		Name: "BIAS", ShortName: "BIAS",
		Params: []Param{{Name: "period", Spec: numParam(6, 1, 1000, 1)}},
		build:  buildBIAS,
	})
	register(&Definition{
		Name: "ROC", ShortName: "ROC",
		Params: []Param{{Name: "period", Spec: numParam(12, 1, 1000, 1)}},
		build:  buildROC,
	})
	register(&Definition{
		Name: "MTM", ShortName: "MTM",
		Params: []Param{{Name: "period", Spec: numParam(6, 1, 1000, 1)}},
		build:  buildMTM,
	})
	register(&Definition{
		Name: "PSY", ShortName: "PSY",
		Params: []Param{{Name: "period", Spec: numParam(12, 1, 1000, 1)}},
		build:  buildPSY,
	})
}

func buildRSI(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("RSI", "period")
	}
	gains := NewWindowSum(n)
	losses := NewWindowSum(n)
	prevClose := math.NaN()
	return &funcStepper{
		specs: []FigureSpec{line("rsi", "RSI"+tag)},
		fn: func(b market.Bar) []float64 {
			if !math.IsNaN(prevClose) {
				diff := b.Close - prevClose
				gains.Update(math.Max(diff, 0))
				losses.Update(math.Max(-diff, 0))
			}
			prevClose = b.Close

			if !losses.Ready() {
				return []float64{math.NaN()}
			}
			avgLoss := losses.Sum()
			if avgLoss == 0 {
				return []float64{100}
			}
			return []float64{100 - 100/(1+gains.Sum()/avgLoss)}
		},
	}, nil
}

func buildBIAS(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("BIAS", "period")
	}
	ma := NewWindowSum(n)
	return &funcStepper{
		specs: []FigureSpec{line("bias", "BIAS"+tag)},
		fn: func(b market.Bar) []float64 {
			ma.Update(b.Close)
			if !ma.Ready() {
				return []float64{math.NaN()}
			}
			mean := ma.Mean()
			return []float64{zeroGuard((b.Close-mean)*100, mean, 0)}
		},
	}, nil
}

func buildROC(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("ROC", "period")
	}
	ref := NewDelay(n)
	return &funcStepper{
		specs: []FigureSpec{line("roc", "ROC"+tag)},
		fn: func(b market.Bar) []float64 {
			ref.Update(b.Close)
			if !ref.Ready() {
				return []float64{math.NaN()}
			}
			return []float64{zeroGuard((b.Close-ref.Value())*100, ref.Value(), 0)}
		},
	}, nil
}

func buildMTM(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("MTM", "period")
	}
	ref := NewDelay(n)
	return &funcStepper{
		specs: []FigureSpec{line("mtm", "MTM"+tag)},
		fn: func(b market.Bar) []float64 {
			ref.Update(b.Close)
			if !ref.Ready() {
				return []float64{math.NaN()}
			}
			return []float64{b.Close - ref.Value()}
		},
	}, nil
}

func buildPSY(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("PSY", "period")
	}
	ups := NewWindowSum(n)
	prevClose := math.NaN()
	return &funcStepper{
		specs: []FigureSpec{line("psy", "PSY"+tag)},
		fn: func(b market.Bar) []float64 {
			if !math.IsNaN(prevClose) {
				up := 0.0
				if b.Close > prevClose {
					up = 1
				}
				ups.Update(up)
			}
			prevClose = b.Close
			if !ups.Ready() {
				return []float64{math.NaN()}
			}
			return []float64{ups.Sum() / float64(n) * 100}
		},
	}, nil
}
