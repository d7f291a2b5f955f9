package indicators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	def, err := Lookup("MA")
	require.NoError(t, err)

	resolved, err := resolve(def, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, 5, resolved[0].Period("period"))
	require.Equal(t, "close", resolved[0].Text("source"))
}

func TestResolve_BroadcastClamp(t *testing.T) {
	def, err := Lookup("MA")
	require.NoError(t, err)

	// longest array wins: 3 instances; the shorter source array clamps to
	// its last element for the overflow instance
	resolved, err := resolve(def, map[string]Value{
		"period": Nums(5, 10, 20),
		"source": Sels("close", "high"),
	})
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	require.Equal(t, 5, resolved[0].Period("period"))
	require.Equal(t, "close", resolved[0].Text("source"))
	require.Equal(t, 10, resolved[1].Period("period"))
	require.Equal(t, "high", resolved[1].Text("source"))
	require.Equal(t, 20, resolved[2].Period("period"))
	require.Equal(t, "high", resolved[2].Text("source"))
}

func TestResolve_ScalarBroadcast(t *testing.T) {
	def, err := Lookup("MACD")
	require.NoError(t, err)

	resolved, err := resolve(def, map[string]Value{
		"fast": Nums(6, 12),
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	require.Equal(t, 26, resolved[0].Period("slow"))
	require.Equal(t, 26, resolved[1].Period("slow"))
}

func TestResolve_Errors(t *testing.T) {
	def, err := Lookup("MA")
	require.NoError(t, err)

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := resolve(def, map[string]Value{"nope": Num(1)})
		require.ErrorIs(t, err, ErrInvalidParams)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		_, err := resolve(def, map[string]Value{"period": Sel("five")})
		require.ErrorIs(t, err, ErrInvalidParams)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := resolve(def, map[string]Value{"period": Nums()})
		require.ErrorIs(t, err, ErrInvalidParams)
	})
}

func TestParamTag(t *testing.T) {
	cases := []struct {
		indicator string
		want      string
	}{
		// select and boolean parameters are never embedded
		{"MA", "5"},
		{"KDJ", "9/3/3"},
		{"BOLL", "20/2"},
		{"ALMA", "9/0.85/6"},
		{"MACD", "12/26/9"},
	}
	for _, tc := range cases {
		t.Run(tc.indicator, func(t *testing.T) {
			def, err := Lookup(tc.indicator)
			require.NoError(t, err)
			resolved, err := resolve(def, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, paramTag(def, resolved[0]))
		})
	}
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "2.5", Num(2.5).String())
	require.Equal(t, "1,2,3", Nums(1, 2, 3).String())
	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "close", Sel("close").String())
	require.Equal(t, "a,b", Sels("a", "b").String())
}

func TestLookup(t *testing.T) {
	def, err := Lookup("macd")
	require.NoError(t, err)
	require.Equal(t, "MACD", def.Name)

	_, err = Lookup("NOPE")
	require.ErrorIs(t, err, ErrUnknownIndicator)
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	require.Contains(t, names, "MA")
	require.Contains(t, names, "SAR")
	require.Contains(t, names, "VWAP")
	require.IsIncreasing(t, names)
}
