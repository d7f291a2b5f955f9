package journal

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/figures/indicators"
)

// SQLite stores runs and figure points in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

var _ Journal = (*SQLite)(nil)

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// RecordRun writes the run and every figure point in one transaction.
func (s *SQLite) RecordRun(run Run, figures []indicators.Figure) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, created_at, indicator, bars) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Indicator, run.Bars,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO figures (run_id, key, title, kind, time, value) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare figure insert: %w", err)
	}
	defer stmt.Close()

	for _, fig := range figures {
		for _, pt := range fig.Data {
			// Warm-up samples are NaN; REAL columns cannot hold NaN so
			// they go in as NULL and come back out as NaN.
			var val any
			if !math.IsNaN(pt.Value) {
				val = pt.Value
			}
			if _, err := stmt.Exec(run.ID, fig.Key, fig.Title, string(fig.Kind), pt.Time, val); err != nil {
				return fmt.Errorf("insert figure point %s/%s: %w", fig.Key, run.ID, err)
			}
		}
	}

	return tx.Commit()
}

// ListRuns returns all recorded runs, newest first.
func (s *SQLite) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, indicator, bars FROM runs ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Indicator, &r.Bars); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Figures reloads the figure set recorded for a run.
func (s *SQLite) Figures(runID string) ([]indicators.Figure, error) {
	rows, err := s.db.Query(
		`SELECT key, title, kind, time, value FROM figures WHERE run_id = ? ORDER BY key, time`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load figures for %s: %w", runID, err)
	}
	defer rows.Close()

	var figures []indicators.Figure
	index := map[string]int{}
	for rows.Next() {
		var (
			key, title, kind string
			t                int64
			val              sql.NullFloat64
		)
		if err := rows.Scan(&key, &title, &kind, &t, &val); err != nil {
			return nil, fmt.Errorf("scan figure point: %w", err)
		}
		i, ok := index[key]
		if !ok {
			i = len(figures)
			index[key] = i
			figures = append(figures, indicators.Figure{
				Key:   key,
				Title: title,
				Kind:  indicators.FigureKind(kind),
			})
		}
		v := math.NaN()
		if val.Valid {
			v = val.Float64
		}
		figures[i].Data = append(figures[i].Data, indicators.Point{Time: t, Value: v})
	}
	return figures, rows.Err()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
