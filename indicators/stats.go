package indicators

import "github.com/rustyeddy/figures/market"

// Statistical series: rolling standard deviation and linear regression.

func init() {
	register(&Definition{
		Name: "STDDEV", ShortName: "STDDEV",
		Params: []Param{
			{Name: "period", Spec: numParam(20, 1, 1000, 1)},
			{Name: "sample", Spec: ParamSpec{Default: Bool(false)}},
		},
		build: buildStdDev,
	})
	register(&Definition{
		Name: "LINREG", ShortName: "LINREG",
		Params: []Param{{Name: "period", Spec: numParam(14, 1, 1000, 1)}},
		build:  buildLinReg,
	})
}

func buildStdDev(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("STDDEV", "period")
	}
	stats := NewWindowStats(n, r.Flag("sample"))
	return &funcStepper{
		specs: []FigureSpec{line("stddev", "STDDEV"+tag)},
		fn: func(b market.Bar) []float64 {
			stats.Update(b.Close)
			return []float64{stats.StdDev()}
		},
	}, nil
}

func buildLinReg(r Resolved, tag string) (stepper, error) {
	n := r.Period("period")
	if n < 1 {
		return nil, errPeriod("LINREG", "period")
	}
	lr := NewLinReg(n)
	return &funcStepper{
		specs: []FigureSpec{line("linreg", "LINREG"+tag)},
		fn: func(b market.Bar) []float64 {
			lr.Update(b.Close)
			return []float64{lr.Value()}
		},
	}, nil
}
