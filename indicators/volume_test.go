package indicators

import (
	"math"
	"testing"

	"github.com/rustyeddy/figures/market"
	"github.com/stretchr/testify/require"
)

func volBars(prices []float64, volumes []float64) []market.Bar {
	bars := make([]market.Bar, len(prices))
	for i, p := range prices {
		bars[i] = market.Bar{Time: int64(i + 1), Open: p, High: p, Low: p, Close: p, Volume: volumes[i]}
	}
	return bars
}

func TestVWAP_AnchorReset(t *testing.T) {
	bars := volBars([]float64{10, 20, 30, 40}, []float64{1, 1, 1, 1})
	figures, err := Calc("VWAP", bars, map[string]Value{"anchorInterval": Num(2)}, nil)
	require.NoError(t, err)

	// cumulative averages restart on the third bar
	want := []float64{10, 15, 30, 35}
	for i, pt := range figures[0].Data {
		require.InDelta(t, want[i], pt.Value, 1e-9, "index %d", i)
	}
}

func TestVWAP_VolumeWeighting(t *testing.T) {
	bars := volBars([]float64{10, 20}, []float64{3, 1})
	figures, err := Calc("VWAP", bars, nil, nil)
	require.NoError(t, err)

	// (10*3 + 20*1) / 4
	require.InDelta(t, 12.5, figures[0].Data[1].Value, 1e-9)
}

func TestOBV_KnownSequence(t *testing.T) {
	bars := volBars([]float64{1, 2, 1, 1}, []float64{10, 10, 10, 10})
	figures, err := Calc("OBV", bars, map[string]Value{"maPeriod": Num(2)}, nil)
	require.NoError(t, err)
	require.Len(t, figures, 2)

	obv := figures[0].Data
	want := []float64{0, 10, 0, 0}
	for i := range want {
		require.InDelta(t, want[i], obv[i].Value, 1e-9, "index %d", i)
	}

	ma := figures[1].Data
	require.True(t, math.IsNaN(ma[0].Value))
	require.InDelta(t, 5.0, ma[1].Value, 1e-9)
	require.InDelta(t, 5.0, ma[2].Value, 1e-9)
	require.InDelta(t, 0.0, ma[3].Value, 1e-9)
}

func TestEMV_WarmupAndFlatSeries(t *testing.T) {
	// flat prices move nothing: EMV settles at zero
	bars := volBars([]float64{5, 5, 5, 5, 5}, []float64{10, 10, 10, 10, 10})
	figures, err := Calc("EMV", bars, map[string]Value{
		"period": Num(2), "maPeriod": Num(2),
	}, nil)
	require.NoError(t, err)

	emv := figures[0].Data
	require.True(t, math.IsNaN(emv[0].Value))
	require.True(t, math.IsNaN(emv[1].Value))
	require.InDelta(t, 0.0, emv[2].Value, 1e-9)
	require.InDelta(t, 0.0, figures[1].Data[4].Value, 1e-9)
}

func TestVOLMA_KnownSequence(t *testing.T) {
	bars := volBars([]float64{1, 1, 1}, []float64{10, 20, 30})
	figures, err := Calc("VOLMA", bars, map[string]Value{"period": Num(2)}, nil)
	require.NoError(t, err)

	data := figures[0].Data
	require.True(t, math.IsNaN(data[0].Value))
	require.InDelta(t, 15.0, data[1].Value, 1e-9)
	require.InDelta(t, 25.0, data[2].Value, 1e-9)
}

func TestVWAP_DegradesWithoutVolume(t *testing.T) {
	figures, err := Calc("VWAP", closeBars(1, 2, 3), nil, nil)
	require.NoError(t, err)
	require.Len(t, figures, 1)
	require.Equal(t, "vwap", figures[0].Key)
	require.Empty(t, figures[0].Data)
}
