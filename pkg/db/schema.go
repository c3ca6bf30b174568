package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per recorded split
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    dataset_dir TEXT NOT NULL,
    suffix TEXT NOT NULL,
    deterministic BOOLEAN NOT NULL DEFAULT 0,
    seed INTEGER NOT NULL,
    item_count INTEGER NOT NULL,
    training_count INTEGER NOT NULL,
    testing_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_dataset ON runs(dataset_dir);

-- Run items: shuffled list of a run; position keeps duplicates apart
CREATE TABLE IF NOT EXISTS run_items (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    identifier TEXT NOT NULL,
    filename TEXT NOT NULL DEFAULT '',
    subset TEXT NOT NULL CHECK (subset IN ('training', 'testing')),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_items_run ON run_items(run_id);
CREATE INDEX IF NOT EXISTS idx_run_items_identifier ON run_items(identifier);
`
