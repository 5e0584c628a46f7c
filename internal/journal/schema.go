package journal

// Schema DDL for the journal database.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    variant TEXT NOT NULL,
    script TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createSteps = `CREATE TABLE IF NOT EXISTS steps (
    run_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    op TEXT NOT NULL,
    arg INTEGER NOT NULL DEFAULT 0,
    result TEXT NOT NULL DEFAULT '',
    error TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (run_id, seq),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	createRunsIndex = `CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`
)

// schemaStatements is executed in order on Open.
var schemaStatements = []string{
	createRuns,
	createSteps,
	createRunsIndex,
}
