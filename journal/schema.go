package journal

// Schema creates the run and figure tables. Figure points are stored one row
// per sample; NaN warm-up values round-trip as NULL.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	indicator  TEXT NOT NULL,
	bars       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS figures (
	run_id TEXT NOT NULL REFERENCES runs(id),
	key    TEXT NOT NULL,
	title  TEXT NOT NULL,
	kind   TEXT NOT NULL,
	time   INTEGER NOT NULL,
	value  REAL
);

CREATE INDEX IF NOT EXISTS idx_figures_run ON figures(run_id, key, time);
`
