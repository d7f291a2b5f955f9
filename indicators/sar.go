package indicators

import (
	"math"

	"github.com/rustyeddy/figures/market"
)

// SAR (Stop And Reverse) is the one indicator whose value depends on
// accumulated state rather than a fixed window. The recurrence is modeled as
// an explicit two-direction state machine with a pure transition function.

func init() {
	register(&Definition{
		Name: "SAR", ShortName: "SAR", RequiresOHLC: true,
		Params: []Param{
			{Name: "accStart", Spec: numParam(0.02, 0.001, 1, 0.001)},
			{Name: "accStep", Spec: numParam(0.02, 0.001, 1, 0.001)},
			{Name: "accMax", Spec: numParam(0.2, 0.01, 1, 0.01)},
		},
		build: buildSAR,
	})
}

type sarDirection int

const (
	sarUp sarDirection = iota
	sarDown
)

// sarState holds the full recurrence state: trend direction, acceleration
// factor, extreme point, and the current stop value.
type sarState struct {
	dir sarDirection
	af  float64
	ep  float64
	sar float64
}

// sarInit seeds the state from the first two bars: a rising close starts an
// uptrend with the stop under the first bar's low, a falling close the
// mirror image.
func sarInit(first, second market.Bar) sarState {
	if second.Close > first.Close {
		return sarState{dir: sarUp, ep: second.High, sar: first.Low}
	}
	return sarState{dir: sarDown, ep: second.Low, sar: first.High}
}

// sarStep advances the state over one bar: the stop accelerates toward the
// extreme point, flips direction when price crosses it, and otherwise
// extends the extreme and acceleration factor on new extremes.
func sarStep(s sarState, b market.Bar, start, step, max float64) sarState {
	sar := s.sar + s.af*(s.ep-s.sar)
	switch s.dir {
	case sarUp:
		if b.Low <= sar {
			// Price crossed the stop: reverse, stop jumps to the old extreme.
			return sarState{dir: sarDown, af: start, ep: b.Low, sar: s.ep}
		}
		if b.High > s.ep {
			return sarState{dir: sarUp, af: math.Min(s.af+step, max), ep: b.High, sar: sar}
		}
		return sarState{dir: sarUp, af: s.af, ep: s.ep, sar: sar}
	default:
		if b.High >= sar {
			return sarState{dir: sarUp, af: start, ep: b.High, sar: s.ep}
		}
		if b.Low < s.ep {
			return sarState{dir: sarDown, af: math.Min(s.af+step, max), ep: b.Low, sar: sar}
		}
		return sarState{dir: sarDown, af: s.af, ep: s.ep, sar: sar}
	}
}

func buildSAR(r Resolved, tag string) (stepper, error) {
	start, step, max := r.Float("accStart"), r.Float("accStep"), r.Float("accMax")
	if start <= 0 || step <= 0 || max <= 0 {
		return nil, errPeriod("SAR", "accStart/accStep/accMax")
	}
	// af starts at accStart; accStart doubles as the post-flip reset.
	var first market.Bar
	seen := 0
	var state sarState
	return &funcStepper{
		specs: []FigureSpec{line("sar", "SAR"+tag)},
		fn: func(b market.Bar) []float64 {
			switch seen {
			case 0:
				first = b
				seen++
				return []float64{math.NaN()}
			case 1:
				state = sarInit(first, b)
				state.af = start
				seen++
				return []float64{state.sar}
			default:
				state = sarStep(state, b, start, step, max)
				return []float64{state.sar}
			}
		},
	}, nil
}
