// Package config loads named indicator presets from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/figures/indicators"
	"gopkg.in/yaml.v3"
)

// Config is a set of named indicator presets.
type Config struct {
	Presets []Preset `json:"presets" yaml:"presets"`
}

// Preset names one indicator invocation: which indicator and which parameter
// overrides. Override values may be scalars or lists; lists fan out into
// multiple instances.
type Preset struct {
	Name      string         `json:"name" yaml:"name"`
	Indicator string         `json:"indicator" yaml:"indicator"`
	Params    map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML first, JSON fallback).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks preset names, indicator names, and override values.
func (c *Config) Validate() error {
	seen := map[string]bool{}
	for i, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if _, err := indicators.Lookup(p.Indicator); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := p.Overrides(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// Preset returns the preset with the given name.
func (c *Config) Preset(name string) (Preset, error) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// Overrides converts the preset's raw parameter values into engine values.
func (p Preset) Overrides() (map[string]indicators.Value, error) {
	if len(p.Params) == 0 {
		return nil, nil
	}
	out := make(map[string]indicators.Value, len(p.Params))
	for name, raw := range p.Params {
		v, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// toValue maps decoded YAML/JSON scalars and lists onto the engine's closed
// parameter sum type. Strings become select values.
func toValue(raw any) (indicators.Value, error) {
	switch v := raw.(type) {
	case int:
		return indicators.Num(float64(v)), nil
	case int64:
		return indicators.Num(float64(v)), nil
	case float64:
		return indicators.Num(v), nil
	case bool:
		return indicators.Bool(v), nil
	case string:
		return indicators.Sel(v), nil
	case []any:
		return listValue(v)
	default:
		return indicators.Value{}, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}

func listValue(items []any) (indicators.Value, error) {
	if len(items) == 0 {
		return indicators.Value{}, fmt.Errorf("empty parameter array")
	}
	switch items[0].(type) {
	case int, int64, float64:
		nums := make([]float64, 0, len(items))
		for _, it := range items {
			switch n := it.(type) {
			case int:
				nums = append(nums, float64(n))
			case int64:
				nums = append(nums, float64(n))
			case float64:
				nums = append(nums, n)
			default:
				return indicators.Value{}, fmt.Errorf("mixed array element %v (%T)", it, it)
			}
		}
		return indicators.Nums(nums...), nil
	case bool:
		bools := make([]bool, 0, len(items))
		for _, it := range items {
			b, ok := it.(bool)
			if !ok {
				return indicators.Value{}, fmt.Errorf("mixed array element %v (%T)", it, it)
			}
			bools = append(bools, b)
		}
		return indicators.Bools(bools...), nil
	case string:
		strs := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return indicators.Value{}, fmt.Errorf("mixed array element %v (%T)", it, it)
			}
			strs = append(strs, s)
		}
		return indicators.Sels(strs...), nil
	default:
		return indicators.Value{}, fmt.Errorf("unsupported array element %v (%T)", items[0], items[0])
	}
}
