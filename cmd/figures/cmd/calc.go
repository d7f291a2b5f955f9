package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/figures/config"
	"github.com/rustyeddy/figures/indicators"
	"github.com/rustyeddy/figures/journal"
	"github.com/rustyeddy/figures/market"
)

var calcCmd = &cobra.Command{
	Use:   "calc <indicator> <bars.csv>",
	Short: "Compute an indicator over a CSV bar file",
	Long: `Compute an indicator over a CSV bar file and emit the resulting figures.

Parameters default from the indicator's schema and can be overridden with
repeated --set flags. Array values fan out into multiple instances:

  figures calc MA bars.csv --set period=5,10,20
  figures calc MACD bars.csv --set shortPeriod=12 --set longPeriod=26
  figures calc BOLL bars.csv --preset slow-bands --config presets.yaml

Output is CSV on stdout by default; --out writes to a file and --db records
the run to a SQLite journal instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runCalc,
}

var (
	calcSets   []string
	calcPreset string
	calcConfig string
	calcOut    string
	calcDBPath string
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringArrayVarP(&calcSets, "set", "s", nil, "parameter override name=value (repeatable, comma for arrays)")
	calcCmd.Flags().StringVarP(&calcPreset, "preset", "p", "", "named preset from the config file")
	calcCmd.Flags().StringVarP(&calcConfig, "config", "c", "", "preset config file (YAML or JSON)")
	calcCmd.Flags().StringVarP(&calcOut, "out", "o", "", "write CSV output to a file instead of stdout")
	calcCmd.Flags().StringVarP(&calcDBPath, "db", "d", "", "record the run to a SQLite journal at this path")
}

func runCalc(cmd *cobra.Command, args []string) error {
	name, barsPath := args[0], args[1]

	bars, err := market.LoadCSV(barsPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}

	overrides, err := calcOverrides(name)
	if err != nil {
		return err
	}

	figures, err := indicators.Calc(name, bars, overrides, nil)
	if err != nil {
		return fmt.Errorf("calc %s: %w", name, err)
	}

	if calcDBPath != "" {
		j, err := journal.NewSQLite(calcDBPath)
		if err != nil {
			return err
		}
		defer j.Close()

		run := journal.NewRun(name, len(bars))
		if err := j.RecordRun(run, figures); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Printf("recorded run %s (%s over %d bars)\n", run.ID, name, len(bars))
		return nil
	}

	out := os.Stdout
	if calcOut != "" {
		f, err := os.Create(calcOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return journal.WriteCSV(out, figures)
}

// calcOverrides merges preset values with --set flags, flags winning.
func calcOverrides(indicator string) (map[string]indicators.Value, error) {
	overrides := map[string]indicators.Value{}

	if calcPreset != "" {
		if calcConfig == "" {
			return nil, fmt.Errorf("--preset requires --config")
		}
		cfg, err := config.LoadFromFile(calcConfig)
		if err != nil {
			return nil, err
		}
		p, err := cfg.Preset(calcPreset)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(p.Indicator, indicator) {
			return nil, fmt.Errorf("preset %q is for %s, not %s", calcPreset, p.Indicator, indicator)
		}
		vals, err := p.Overrides()
		if err != nil {
			return nil, err
		}
		for k, v := range vals {
			overrides[k] = v
		}
	}

	for _, s := range calcSets {
		name, val, err := parseSet(s)
		if err != nil {
			return nil, err
		}
		overrides[name] = val
	}

	if len(overrides) == 0 {
		return nil, nil
	}
	return overrides, nil
}

// parseSet parses a name=value override. Comma-separated values become
// arrays; elements must be homogeneous (all numbers, all booleans, or all
// strings).
func parseSet(s string) (string, indicators.Value, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" || raw == "" {
		return "", indicators.Value{}, fmt.Errorf("invalid --set %q, want name=value", s)
	}

	elems := strings.Split(raw, ",")

	nums := make([]float64, 0, len(elems))
	for _, e := range elems {
		n, err := strconv.ParseFloat(e, 64)
		if err != nil {
			nums = nil
			break
		}
		nums = append(nums, n)
	}
	if nums != nil {
		return name, indicators.Nums(nums...), nil
	}

	bools := make([]bool, 0, len(elems))
	for _, e := range elems {
		switch e {
		case "true":
			bools = append(bools, true)
		case "false":
			bools = append(bools, false)
		default:
			bools = nil
		}
		if bools == nil {
			break
		}
	}
	if bools != nil {
		return name, indicators.Bools(bools...), nil
	}

	return name, indicators.Sels(elems...), nil
}
