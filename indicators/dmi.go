package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// Directional-movement family: DMI with PDI/MDI/ADX/ADXR outputs.

func init() {
	register(&Definition{
		Name: "DMI", ShortName: "DMI", RequiresOHLC: true,
		Params: []Param{
			{Name: "period", Spec: numParam(14, 1, 1000, 1)},
			{Name: "adxPeriod", Spec: numParam(6, 1, 1000, 1)},
		},
		build: buildDMI,
	})
}

func buildDMI(r Resolved, tag string) (stepper, error) {
	n, mm := r.Period("period"), r.Period("adxPeriod")
	if n < 1 {
		return nil, errPeriod("DMI", "period")
	}
	if mm < 1 {
		return nil, errPeriod("DMI", "adxPeriod")
	}
	trN := NewWilder(n)
	pdmN := NewWilder(n)
	mdmN := NewWilder(n)
	adx := NewWilder(mm)
	adxHist := NewDelay(mm)
	var prev market.Bar
	havePrev := false
	return &funcStepper{
		specs: []FigureSpec{
			line("pdi", "PDI"+tag),
			line("mdi", "MDI"+tag),
			line("adx", "ADX"+tag),
			line("adxr", "ADXR"+tag),
		},
		fn: func(b market.Bar) []float64 {
			if !havePrev {
				prev, havePrev = b, true
				nan := math.NaN()
				return []float64{nan, nan, nan, nan}
			}

			upMove := b.High - prev.High
			downMove := prev.Low - b.Low
			pdm, mdm := 0.0, 0.0
			if upMove > downMove && upMove > 0 {
				pdm = upMove
			}
			if downMove > upMove && downMove > 0 {
				mdm = downMove
			}

			trN.Update(trueRange(b, prev))
			pdmN.Update(pdm)
			mdmN.Update(mdm)
			prev = b

			pdi := zeroGuard(100*pdmN.Value(), trN.Value(), 0)
			mdi := zeroGuard(100*mdmN.Value(), trN.Value(), 0)
			dx := zeroGuard(100*math.Abs(pdi-mdi), pdi+mdi, 0)

			adx.Update(dx)
			adxHist.Update(adx.Value())

			adxr := math.NaN()
			if adxHist.Ready() {
				adxr = (adx.Value() + adxHist.Value()) / 2
			}
			return []float64{pdi, mdi, adx.Value(), adxr}
		},
	}, nil
}
