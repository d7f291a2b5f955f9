package cmd

import (
	"testing"

	"github.com/rustyeddy/figures/indicators"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	t.Run("scalar number", func(t *testing.T) {
		name, val, err := parseSet("period=14")
		require.NoError(t, err)
		require.Equal(t, "period", name)
		require.Equal(t, indicators.Number, val.Kind())
		require.Equal(t, 1, val.Len())
	})

	t.Run("number array", func(t *testing.T) {
		name, val, err := parseSet("period=5,10,20")
		require.NoError(t, err)
		require.Equal(t, "period", name)
		require.Equal(t, indicators.Number, val.Kind())
		require.Equal(t, 3, val.Len())
	})

	t.Run("boolean", func(t *testing.T) {
		_, val, err := parseSet("sample=true")
		require.NoError(t, err)
		require.Equal(t, indicators.Boolean, val.Kind())
	})

	t.Run("string falls back to select", func(t *testing.T) {
		_, val, err := parseSet("source=hl2")
		require.NoError(t, err)
		require.Equal(t, indicators.Select, val.Kind())
	})

	t.Run("mixed tokens become selects", func(t *testing.T) {
		_, val, err := parseSet("source=close,2")
		require.NoError(t, err)
		require.Equal(t, indicators.Select, val.Kind())
		require.Equal(t, 2, val.Len())
	})

	t.Run("missing value", func(t *testing.T) {
		_, _, err := parseSet("period")
		require.Error(t, err)

		_, _, err = parseSet("period=")
		require.Error(t, err)
	})
}
