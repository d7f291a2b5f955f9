package indicators

import (
	"fmt"

	"github.com/rustyeddy/figures/market"
)

// AuxSeries carries optional caller-supplied series, index-aligned 1:1 with
// the bar sequence.
type AuxSeries map[string][]float64

// VolumeSeries is the aux key for a volume series. When present it overrides
// the bars' own volume field.
const VolumeSeries = "volume"

// Calc computes all figures for the named indicator over bars. Overrides are
// partial: parameters not named fall back to their declared defaults. A
// parameter override may be an array; the longest array decides how many
// parallel instances run, and every instance's figures are concatenated in
// instance order with _N / #N suffixes for disambiguation.
//
// Calc is a pure batch function: it recomputes the full history on every call
// and retains no state between calls. Use Instance for incremental updates.
func Calc(name string, bars []market.Bar, overrides map[string]Value, aux AuxSeries) ([]Figure, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := market.Validate(bars); err != nil {
		return nil, fmt.Errorf("calc %s: %w", def.Name, err)
	}

	if vol, ok := aux[VolumeSeries]; ok {
		if len(vol) != len(bars) {
			return nil, fmt.Errorf("calc %s: volume series has %d samples for %d bars",
				def.Name, len(vol), len(bars))
		}
		merged := make([]market.Bar, len(bars))
		copy(merged, bars)
		for i := range merged {
			merged[i].Volume = vol[i]
		}
		bars = merged
	}

	resolved, err := resolve(def, overrides)
	if err != nil {
		return nil, err
	}

	// Volume-anchored indicators degrade to empty figures when no volume is
	// available, rather than failing the call.
	hasVolume := !def.NeedsVolume || volumePresent(bars)

	var figures []Figure
	multi := len(resolved) > 1
	for i, rp := range resolved {
		st, err := def.build(rp, paramTag(def, rp))
		if err != nil {
			return nil, err
		}
		specs := st.outputs()

		data := make([][]Point, len(specs))
		for k := range data {
			data[k] = make([]Point, 0, len(bars))
		}
		if hasVolume {
			for _, b := range bars {
				vals := st.step(b)
				for k, v := range vals {
					data[k] = append(data[k], Point{Time: b.Time, Value: v})
				}
			}
		}

		for k, spec := range specs {
			figures = append(figures, assemble(spec, data[k], multi, i))
		}
	}
	return figures, nil
}

// assemble packages one output series, applying the multi-instance naming
// convention: key suffix "_N", title suffix " #N".
func assemble(spec FigureSpec, data []Point, multi bool, instance int) Figure {
	f := Figure{Key: spec.Key, Title: spec.Title, Kind: spec.Kind, Data: data}
	if multi {
		f.Key = fmt.Sprintf("%s_%d", f.Key, instance+1)
		f.Title = fmt.Sprintf("%s #%d", f.Title, instance+1)
	}
	return f
}

func volumePresent(bars []market.Bar) bool {
	for _, b := range bars {
		if b.Volume != 0 {
			return true
		}
	}
	return false
}

// Instance is a stateful cursor over one resolved parameter set of an
// indicator. Unlike Calc it persists its rolling kernel state across calls,
// so feeding each new bar through Advance is O(1) amortized instead of a
// full-history recompute.
type Instance struct {
	def   *Definition
	specs []FigureSpec
	st    stepper
	index int
}

// NewInstances resolves overrides against the named indicator and returns one
// Instance per resolved parameter set, in instance order.
func NewInstances(name string, overrides map[string]Value) ([]*Instance, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	resolved, err := resolve(def, overrides)
	if err != nil {
		return nil, err
	}

	multi := len(resolved) > 1
	out := make([]*Instance, 0, len(resolved))
	for i, rp := range resolved {
		st, err := def.build(rp, paramTag(def, rp))
		if err != nil {
			return nil, err
		}
		specs := st.outputs()
		named := make([]FigureSpec, len(specs))
		for k, spec := range specs {
			if multi {
				spec.Key = fmt.Sprintf("%s_%d", spec.Key, i+1)
				spec.Title = fmt.Sprintf("%s #%d", spec.Title, i+1)
			}
			named[k] = spec
		}
		out = append(out, &Instance{def: def, specs: named, st: st})
	}
	return out, nil
}

// Outputs describes the figures this instance produces, one Point per output
// on each Advance.
func (in *Instance) Outputs() []FigureSpec { return in.specs }

// Advance consumes the next bar and returns one point per output, NaN while
// the underlying kernels are warming up. Bars must arrive index-ascending;
// volume-dependent indicators read the bar's Volume field.
func (in *Instance) Advance(b market.Bar) []Point {
	vals := in.st.step(b)
	points := make([]Point, len(vals))
	for k, v := range vals {
		points[k] = Point{Time: b.Time, Value: v}
	}
	in.index++
	return points
}

// Index reports how many bars the instance has consumed.
func (in *Instance) Index() int { return in.index }
