package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Moving-average family: MA, EMA, WMA, VWMA, ALMA, RMA, BBI, DMA, MACD, TRIX.

func init() {
	register(&Definition{
		Name: "MA", ShortName: "MA",
		Params: []Param{
			{Name: "period", Spec: numParam(5, 1, 1000, 1)},
			{Name: "source", Spec: ParamSpec{Default: Sel("close"), Options: sourceOptions}},
		},
		build: buildMA,
	})
	register(&Definition{
		Name: "EMA", ShortName: "EMA",
		Params: []Param{{Name: "period", Spec: numParam(12, 1, 1000, 1)}},
		build:  buildEMA,
	})
	register(&Definition{
		Name: "WMA", ShortName: "WMA",
		Params: []Param{{Name: "period", Spec: numParam(9, 1, 1000, 1)}},
		build:  buildWMA,
	})
	register(&Definition{
		Name: "VWMA", ShortName: "VWMA", NeedsVolume: true,
		Params: []Param{{Name: "period", Spec: numParam(20, 1, 1000, 1)}},
		build:  buildVWMA,
	})
	register(&Definition{
		Name: "ALMA", ShortName: "ALMA",
		Params: []Param{
			{Name: "period", Spec: numParam(9, 1, 1000, 1)},
			{Name: "offset", Spec: numParam(0.85, 0, 1, 0.05)},
			{Name: "sigma", Spec: numParam(6, 1, 100, 1)},
		},
		build: buildALMA,
	})
	register(&Definition{
		Name: "RMA", ShortName: "RMA",
		Params: []Param{{Name: "period", Spec: numParam(14, 1, 1000, 1)}},
		build:  buildRMA,
	})
	register(&Definition{
		Name: "BBI", ShortName: "BBI",
		Params: []Param{
			{Name: "p1", Spec: numParam(3, 1, 1000, 1)},
			{Name: "p2", Spec: numParam(6, 1, 1000, 1)},
			{Name: "p3", Spec: numParam(12, 1, 1000, 1)},
			{Name: "p4", Spec: numParam(24, 1, 1000, 1)},
		},
		build: buildBBI,
	})
	register(&Definition{
		Name: "DMA", ShortName: "DMA",
		Params: []Param{
			{Name: "fast", Spec: numParam(10, 1, 1000, 1)},
			{Name: "slow", Spec: numParam(50, 1, 1000, 1)},
			{Name: "maPeriod", Spec: numParam(10, 1, 1000, 1)},
		},
		build: buildDMA,
	})
	register(&Definition{
		Name: "MACD", ShortName: "MACD",
		Params: []Param{
			{Name: "fast", Spec: numParam(12, 1, 1000, 1)},
			{Name: "slow", Spec: numParam(26, 1, 1000, 1)},
			{Name: "signal", Spec: numParam(9, 1, 1000, 1)},
		},
		build: buildMACD,
	})
	register(&Definition{
		Name: "TRIX", ShortName: "TRIX",
		Params: []Param{
			{Name: "period", Spec: numParam(12, 1, 1000, 1)},
			{Name: "maPeriod", Spec: numParam(9, 1, 1000, 1)},
		},
		build: buildTRIX,
	})
}

func buildMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("MA", "period")
	}
	source := r.Text("source")
	sum := NewWindowSum(n)
	return &funcStepper{
		specs: []FigureSpec{line("ma", "MA"+tag)},
		fn: func(b market.Bar) []float64 {
			sum.Update(sourceValue(b, source))
			return []float64{sum.Mean()}
		},
	}, nil
}

func buildEMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("EMA", "period")
	}
	ema := NewEMA(n)
	return &funcStepper{
		specs: []FigureSpec{line("ema", "EMA"+tag)},
		fn: func(b market.Bar) []float64 {
			ema.Update(b.Close)
			return []float64{ema.Value()}
		},
	}, nil
}

func buildWMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("WMA", "period")
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	ws := NewWeightedSum(weights)
	return &funcStepper{
		specs: []FigureSpec{line("wma", "WMA"+tag)},
		fn: func(b market.Bar) []float64 {
			ws.Update(b.Close)
			return []float64{ws.Mean()}
		},
	}, nil
}

func buildVWMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("VWMA", "period")
	}
	pv := NewWindowSum(n)
	vol := NewWindowSum(n)
	return &funcStepper{
		specs: []FigureSpec{line("vwma", "VWMA"+tag)},
		fn: func(b market.Bar) []float64 {
			pv.Update(b.Close * b.Volume)
			vol.Update(b.Volume)
			if !vol.Ready() {
				return []float64{math.NaN()}
			}
			return []float64{zeroGuard(pv.Sum(), vol.Sum(), 0)}
		},
	}, nil
}

func buildALMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("ALMA", "period")
	}
	offset := r.Float("offset")
	sigma := r.Float("sigma")
	if sigma <= 0 {
		return nil, errPeriod("ALMA", "sigma")
	}

	// Gaussian window centered at offset*(period-1), width period/sigma.
	m := offset * float64(n-1)
	s := float64(n) / sigma
	weights := make([]float64, n)
	for i := range weights {
		d := float64(i) - m
		weights[i] = math.Exp(-d * d / (2 * s * s))
	}
	ws := NewWeightedSum(weights)
	return &funcStepper{
		specs: []FigureSpec{line("alma", "ALMA"+tag)},
		fn: func(b market.Bar) []float64 {
			ws.Update(b.Close)
			return []float64{ws.Mean()}
		},
	}, nil
}

func buildRMA(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("RMA", "period")
	}
	w := NewWilder(n)
	return &funcStepper{
		specs: []FigureSpec{line("rma", "RMA"+tag)},
		fn: func(b market.Bar) []float64 {
			w.Update(b.Close)
			return []float64{w.Value()}
		},
	}, nil
}

func buildBBI(r Resolved, tag string) (stepper, error) {
	sums := make([]*WindowSum, 0, 4)
	for _, name := range []string{"p1", "p2", "p3", "p4"} {
		n := r.Period(name)
		if n < 1 {
			return nil, errPeriod("BBI", name)
		}
		sums = append(sums, NewWindowSum(n))
	}
	return &funcStepper{
		specs: []FigureSpec{line("bbi", "BBI"+tag)},
		fn: func(b market.Bar) []float64 {
			total := 0.0
			for _, s := range sums {
				s.Update(b.Close)
				total += s.Mean()
			}
			return []float64{total / 4}
		},
	}, nil
}

func buildDMA(r Resolved, tag string) (stepper, error) {
	fast, slow, mp := r.Period("fast"), r.Period("slow"), r.Period("maPeriod")
	if fast < 1 {
		return nil, errPeriod("DMA", "fast")
	}
	if slow < 1 {
		return nil, errPeriod("DMA", "slow")
	}
	if mp < 1 {
		return nil, errPeriod("DMA", "maPeriod")
	}
	maFast := NewWindowSum(fast)
	maSlow := NewWindowSum(slow)
	maDif := NewWindowSum(mp)
	return &funcStepper{
		specs: []FigureSpec{
			line("dma", "DMA"+tag),
			line("ama", "AMA"+tag),
		},
		fn: func(b market.Bar) []float64 {
			maFast.Update(b.Close)
			maSlow.Update(b.Close)
			dif := maFast.Mean() - maSlow.Mean()
			feed(maDif.Update, dif)
			return []float64{dif, maDif.Mean()}
		},
	}, nil
}

func buildMACD(r Resolved, tag string) (stepper, error) {
	fast, slow, signal := r.Period("fast"), r.Period("slow"), r.Period("signal")
	if fast < 1 {
		return nil, errPeriod("MACD", "fast")
	}
	if slow < 1 {
		return nil, errPeriod("MACD", "slow")
	}
	if signal < 1 {
		return nil, errPeriod("MACD", "signal")
	}
	emaFast := NewEMA(fast)
	emaSlow := NewEMA(slow)
	dea := NewEMA(signal)
	return &funcStepper{
		specs: []FigureSpec{
			line("dif", "DIF"+tag),
			line("dea", "DEA"+tag),
			histo("macd", "MACD"+tag),
		},
		fn: func(b market.Bar) []float64 {
			emaFast.Update(b.Close)
			emaSlow.Update(b.Close)
			dif := emaFast.Value() - emaSlow.Value()
			feed(dea.Update, dif)
			return []float64{dif, dea.Value(), (dif - dea.Value()) * 2}
		},
	}, nil
}

func buildTRIX(r Resolved, tag string) (stepper, error) {
	n, mp := r.Period("period"), r.Period("maPeriod")
	if n < 1 {
		return nil, errPeriod("TRIX", "period")
	}
	if mp < 1 {
		return nil, errPeriod("TRIX", "maPeriod")
	}
	ema1 := NewEMA(n)
	ema2 := NewEMA(n)
	ema3 := NewEMA(n)
	prevTr := math.NaN()
	maTrix := NewWindowSum(mp)
	return &funcStepper{
		specs: []FigureSpec{
			line("trix", "TRIX"+tag),
			line("maTrix", "MATRIX"+tag),
		},
		fn: func(b market.Bar) []float64 {
			ema1.Update(b.Close)
			feed(ema2.Update, ema1.Value())
			feed(ema3.Update, ema2.Value())
			tr := ema3.Value()

			trix := math.NaN()
			if !math.IsNaN(tr) {
				if !math.IsNaN(prevTr) {
					trix = zeroGuard((tr-prevTr)*100, prevTr, 0)
				}
				prevTr = tr
			}
			feed(maTrix.Update, trix)
			return []float64{trix, maTrix.Mean()}
		},
	}, nil
}
