package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Volume-anchored indicators: VWAP, OBV, EMV, VOLMA. All of these degrade to
// empty figures when no volume series is available.

func init() {
	register(&Definition{
		Name: "VWAP", ShortName: "VWAP", RequiresOHLC: true, NeedsVolume: true,
		Params: []Param{{Name: "anchorInterval", Spec: numParam(240, 1, 100000, 1)}},
		build:  buildVWAP,
	})
	register(&Definition{
		Name: "OBV", ShortName: "OBV", NeedsVolume: true,
		Params: []Param{{Name: "maPeriod", Spec: numParam(30, 1, 1000, 1)}},
		build:  buildOBV,
	})
	register(&Definition{
		Name: "EMV", ShortName: "EMV", RequiresOHLC: true, NeedsVolume: true,
		Params: []Param{
			{Name: "period", Spec: numParam(14, 1, 1000, 1)},
			{Name: "maPeriod", Spec: numParam(9, 1, 1000, 1)},
		},
		build: buildEMV,
	})
	register(&Definition{
		Name: "VOLMA", ShortName: "VOLMA", NeedsVolume: true,
		Params: []Param{{Name: "period", Spec: numParam(5, 1, 1000, 1)}},
		build:  buildVOLMA,
	})
}

func buildVWAP(r Resolved, tag string) (stepper, error) {
	anchor := r.Period("anchorInterval")
	if anchor < 1 {
		return nil, errPeriod("VWAP", "anchorInterval")
	}
	// Anchored rolling reset: cumulative sums restart every anchor bars, not
	// a fixed sliding window.
	count := 0
	cumPV, cumV := 0.0, 0.0
	return &funcStepper{
		specs: []FigureSpec{line("vwap", "VWAP"+tag)},
		fn: func(b market.Bar) []float64 {
			if count%anchor == 0 {
				cumPV, cumV = 0, 0
			}
			count++
			cumPV += b.TypicalPrice() * b.Volume
			cumV += b.Volume
			return []float64{zeroGuard(cumPV, cumV, 0)}
		},
	}, nil
}

func buildOBV(r Resolved, tag string) (stepper, error) {
	mp := r.Period("maPeriod")
	if mp < 1 {
		return nil, errPeriod("OBV", "maPeriod")
	}
	obv := 0.0
	prevClose := math.NaN()
	maObv := NewWindowSum(mp)
	return &funcStepper{
		specs: []FigureSpec{
			line("obv", "OBV"+tag),
			line("maObv", "MAOBV"+tag),
		},
		fn: func(b market.Bar) []float64 {
			if !math.IsNaN(prevClose) {
				switch {
				case b.Close > prevClose:
					obv += b.Volume
				case b.Close < prevClose:
					obv -= b.Volume
				}
			}
			prevClose = b.Close
			maObv.Update(obv)
			return []float64{obv, maObv.Mean()}
		},
	}, nil
}

func buildEMV(r Resolved, tag string) (stepper, error) {
	n, mp := r.Period("period"), r.Period("maPeriod")
	if n < 1 {
		return nil, errPeriod("EMV", "period")
	}
	if mp < 1 {
		return nil, errPeriod("EMV", "maPeriod")
	}
	emv := NewWindowSum(n)
	maEmv := NewWindowSum(mp)
	var prev market.Bar
	havePrev := false
	return &funcStepper{
		specs: []FigureSpec{
			line("emv", "EMV"+tag),
			line("maEmv", "MAEMV"+tag),
		},
		fn: func(b market.Bar) []float64 {
			if !havePrev {
				prev, havePrev = b, true
				nan := math.NaN()
				return []float64{nan, nan}
			}
			distance := b.HL2() - prev.HL2()
			em := zeroGuard(distance*(b.High-b.Low), b.Volume, 0)
			prev = b
			emv.Update(em)
			feed(maEmv.Update, emv.Mean())
			return []float64{emv.Mean(), maEmv.Mean()}
		},
	}, nil
}

func buildVOLMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("VOLMA", "period")
	}
	ma := NewWindowSum(n)
	return &funcStepper{
		specs: []FigureSpec{line("volma", "VOLMA"+tag)},
		fn: func(b market.Bar) []float64 {
			ma.Update(b.Volume)
			return []float64{ma.Mean()}
		},
	}, nil
}
