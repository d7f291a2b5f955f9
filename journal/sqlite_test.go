package journal

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/figures/indicators"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *SQLite {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "figures.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestNewRun(t *testing.T) {
	a := NewRun("MACD", 100)
	b := NewRun("MACD", 100)

	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Less(t, a.ID, b.ID)
	require.Equal(t, "MACD", a.Indicator)
	require.Equal(t, 100, a.Bars)
	require.WithinDuration(t, time.Now().UTC(), a.CreatedAt, 5*time.Second)
}

func TestSQLite_RoundTrip(t *testing.T) {
	j := openTestJournal(t)

	run := NewRun("MACD", 2)
	require.NoError(t, j.RecordRun(run, sampleFigures()))

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, run.ID, runs[0].ID)
	require.Equal(t, "MACD", runs[0].Indicator)
	require.Equal(t, 2, runs[0].Bars)

	figures, err := j.Figures(run.ID)
	require.NoError(t, err)
	require.Len(t, figures, 2)

	byKey := map[string]indicators.Figure{}
	for _, fig := range figures {
		byKey[fig.Key] = fig
	}

	dif := byKey["dif"]
	require.Equal(t, "DIF12/26/9", dif.Title)
	require.Equal(t, indicators.Line, dif.Kind)
	require.Len(t, dif.Data, 2)

	// NaN survives the NULL round trip
	require.True(t, math.IsNaN(dif.Data[0].Value))
	require.InDelta(t, 1.5, dif.Data[1].Value, 1e-9)
}

func TestSQLite_ListRunsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	first := NewRun("MA", 1)
	second := NewRun("EMA", 1)
	require.NoError(t, j.RecordRun(first, nil))
	require.NoError(t, j.RecordRun(second, nil))

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, second.ID, runs[0].ID)
	require.Equal(t, first.ID, runs[1].ID)
}

func TestSQLite_DuplicateRunRejected(t *testing.T) {
	j := openTestJournal(t)

	run := NewRun("MA", 1)
	require.NoError(t, j.RecordRun(run, nil))
	require.Error(t, j.RecordRun(run, nil))
}

func TestSQLite_FiguresUnknownRun(t *testing.T) {
	j := openTestJournal(t)
	figures, err := j.Figures("nope")
	require.NoError(t, err)
	require.Empty(t, figures)
}
