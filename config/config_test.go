package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/figures/indicators"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTemp(t, "presets.yaml", `
presets:
  - name: fast-ma
    indicator: MA
    params:
      period: [5, 10]
      source: high
  - name: default-macd
    indicator: MACD
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Presets, 2)

	p, err := cfg.Preset("fast-ma")
	require.NoError(t, err)
	require.Equal(t, "MA", p.Indicator)

	overrides, err := p.Overrides()
	require.NoError(t, err)
	require.Equal(t, 2, overrides["period"].Len())
	require.Equal(t, indicators.Select, overrides["source"].Kind())
}

func TestLoadFromFile_JSONFallback(t *testing.T) {
	path := writeTemp(t, "presets.json", `{
  "presets": [
    {"name": "bands", "indicator": "BOLL", "params": {"period": 20, "sample": true}}
  ]
}`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	p, err := cfg.Preset("bands")
	require.NoError(t, err)
	overrides, err := p.Overrides()
	require.NoError(t, err)
	require.Equal(t, indicators.Number, overrides["period"].Kind())
	require.Equal(t, indicators.Boolean, overrides["sample"].Kind())
}

func TestPreset_CaseInsensitiveLookup(t *testing.T) {
	cfg := &Config{Presets: []Preset{{Name: "Fast-MA", Indicator: "MA"}}}
	_, err := cfg.Preset("fast-ma")
	require.NoError(t, err)

	_, err = cfg.Preset("nope")
	require.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := &Config{Presets: []Preset{{Indicator: "MA"}}}
		require.Error(t, cfg.Validate())
	})

	t.Run("duplicate name", func(t *testing.T) {
		cfg := &Config{Presets: []Preset{
			{Name: "a", Indicator: "MA"},
			{Name: "a", Indicator: "EMA"},
		}}
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown indicator", func(t *testing.T) {
		cfg := &Config{Presets: []Preset{{Name: "a", Indicator: "NOPE"}}}
		require.Error(t, cfg.Validate())
	})

	t.Run("empty param array", func(t *testing.T) {
		cfg := &Config{Presets: []Preset{{
			Name: "a", Indicator: "MA",
			Params: map[string]any{"period": []any{}},
		}}}
		require.Error(t, cfg.Validate())
	})

	t.Run("mixed param array", func(t *testing.T) {
		cfg := &Config{Presets: []Preset{{
			Name: "a", Indicator: "MA",
			Params: map[string]any{"period": []any{1, "two"}},
		}}}
		require.Error(t, cfg.Validate())
	})
}

func TestOverrides_DriveCalc(t *testing.T) {
	p := Preset{Name: "multi", Indicator: "MA", Params: map[string]any{"period": []any{2, 3}}}
	overrides, err := p.Overrides()
	require.NoError(t, err)

	instances, err := indicators.NewInstances(p.Indicator, overrides)
	require.NoError(t, err)
	require.Len(t, instances, 2)
}
