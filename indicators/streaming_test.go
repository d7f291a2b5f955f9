package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowSum_WarmupAndSlide(t *testing.T) {
	w := NewWindowSum(3)

	require.False(t, w.Ready())
	require.True(t, math.IsNaN(w.Mean()))

	// 1,2,3,4,5 with period 3: means NaN, NaN, 2, 3, 4
	want := []float64{math.NaN(), math.NaN(), 2, 3, 4}
	for i, v := range []float64{1, 2, 3, 4, 5} {
		w.Update(v)
		got := w.Mean()
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got), "step %d", i)
			continue
		}
		require.InDelta(t, want[i], got, 1e-9, "step %d", i)
	}
	require.InDelta(t, 12.0, w.Sum(), 1e-9)
}

func TestWindowSum_Reset(t *testing.T) {
	w := NewWindowSum(2)
	w.Update(1)
	w.Update(2)
	require.True(t, w.Ready())

	w.Reset()
	require.False(t, w.Ready())
	require.True(t, math.IsNaN(w.Sum()))

	w.Update(3)
	w.Update(5)
	require.InDelta(t, 4.0, w.Mean(), 1e-9)
}

func TestEMA_SeedAndRecurrence(t *testing.T) {
	ema := NewEMA(3)

	// seed = mean(10, 11, 12) = 11
	ema.Update(10)
	require.True(t, math.IsNaN(ema.Value()))
	ema.Update(11)
	require.True(t, math.IsNaN(ema.Value()))
	ema.Update(12)
	require.InDelta(t, 11.0, ema.Value(), 1e-9)

	// next = (13*2 + 2*11) / 4 = 12
	ema.Update(13)
	require.InDelta(t, 12.0, ema.Value(), 1e-9)
}

func TestEMA_ConstantSeries(t *testing.T) {
	ema := NewEMA(5)
	for i := 0; i < 50; i++ {
		ema.Update(7.5)
	}
	require.InDelta(t, 7.5, ema.Value(), 1e-9)
}

func TestWilder_SeedAndRecurrence(t *testing.T) {
	w := NewWilder(3)
	require.True(t, math.IsNaN(w.Value()))

	// seeded with the first sample
	w.Update(10)
	require.InDelta(t, 10.0, w.Value(), 1e-9)

	// (10*2 + 13) / 3 = 11
	w.Update(13)
	require.InDelta(t, 11.0, w.Value(), 1e-9)

	// (11*2 + 14) / 3 = 12
	w.Update(14)
	require.InDelta(t, 12.0, w.Value(), 1e-9)
}

func TestMinMax_Window(t *testing.T) {
	m := NewMinMax(3)
	m.Update(5)
	m.Update(1)
	require.True(t, math.IsNaN(m.Highest()))

	m.Update(4)
	require.InDelta(t, 5.0, m.Highest(), 1e-9)
	require.InDelta(t, 1.0, m.Lowest(), 1e-9)

	// window slides to [1, 4, 2]
	m.Update(2)
	require.InDelta(t, 4.0, m.Highest(), 1e-9)
	require.InDelta(t, 1.0, m.Lowest(), 1e-9)
}

func TestWindowStats_KnownWindow(t *testing.T) {
	s := NewWindowStats(4, false)
	for _, v := range []float64{1, 2, 3, 4} {
		s.Update(v)
	}

	// mean 2.5, |deviations| {1.5, 0.5, 0.5, 1.5}, squared {2.25, 0.25, 0.25, 2.25}
	require.InDelta(t, 2.5, s.Mean(), 1e-9)
	require.InDelta(t, 1.0, s.MeanDev(), 1e-9)
	require.InDelta(t, 1.25, s.Variance(), 1e-9)
	require.InDelta(t, math.Sqrt(1.25), s.StdDev(), 1e-9)
}

func TestWindowStats_SampleVariance(t *testing.T) {
	s := NewWindowStats(4, true)
	for _, v := range []float64{1, 2, 3, 4} {
		s.Update(v)
	}
	require.InDelta(t, 5.0/3.0, s.Variance(), 1e-9)
}

func TestWindowStats_SampleOfOne(t *testing.T) {
	s := NewWindowStats(1, true)
	s.Update(3)
	require.True(t, math.IsNaN(s.Variance()))
}

func TestLinReg_ExactOnLinearData(t *testing.T) {
	lr := NewLinReg(3)

	// a perfectly linear series regresses onto itself
	lr.Update(1)
	lr.Update(2)
	require.True(t, math.IsNaN(lr.Value()))
	for _, v := range []float64{3, 4, 5} {
		lr.Update(v)
		require.InDelta(t, v, lr.Value(), 1e-9)
	}
}

func TestLinReg_KnownFit(t *testing.T) {
	lr := NewLinReg(3)
	// points (0,1) (1,2) (2,4): slope 1.5, intercept 5/6, endpoint 23/6
	for _, v := range []float64{1, 2, 4} {
		lr.Update(v)
	}
	require.InDelta(t, 23.0/6.0, lr.Value(), 1e-9)
}

func TestLinReg_PeriodOne(t *testing.T) {
	lr := NewLinReg(1)
	lr.Update(9)
	require.InDelta(t, 9.0, lr.Value(), 1e-9)
	lr.Update(4)
	require.InDelta(t, 4.0, lr.Value(), 1e-9)
}

func TestWeightedSum_LinearWeights(t *testing.T) {
	ws := NewWeightedSum([]float64{1, 2, 3})
	ws.Update(1)
	ws.Update(2)
	require.True(t, math.IsNaN(ws.Sum()))

	// oldest gets weight 1: 1*1 + 2*2 + 3*3 = 14, total 6
	ws.Update(3)
	require.InDelta(t, 14.0, ws.Sum(), 1e-9)
	require.InDelta(t, 14.0/6.0, ws.Mean(), 1e-9)

	// window slides to [2, 3, 4]: 1*2 + 2*3 + 3*4 = 20
	ws.Update(4)
	require.InDelta(t, 20.0, ws.Sum(), 1e-9)
}

func TestDelay_Lag(t *testing.T) {
	d := NewDelay(2)
	d.Update(1)
	d.Update(2)
	require.True(t, math.IsNaN(d.Value()))

	d.Update(3)
	require.InDelta(t, 1.0, d.Value(), 1e-9)

	d.Update(4)
	require.InDelta(t, 2.0, d.Value(), 1e-9)
}
