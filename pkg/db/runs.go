package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/dataset-split/models"
)

const (
	SubsetTraining = "training"
	SubsetTesting  = "testing"
)

var ErrRunNotFound = errors.New("run not found")

// Run represents one recorded split
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	DatasetDir    string
	Suffix        string
	Deterministic bool
	Seed          int64
	ItemCount     int
	TrainingCount int
	TestingCount  int
}

// RunItem is one identifier of a run at its shuffled position.
// Filename is empty for runs recorded without filenames.
type RunItem struct {
	Position   int
	Identifier string
	Filename   string
	Subset     string
}

// RecordRun stores a split and its members in one transaction.
// Returns the new run_id.
func (db *DB) RecordRun(cfg models.SplitConfig, split models.Split) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	result, err := tx.Exec(`
		INSERT INTO runs (dataset_dir, suffix, deterministic, seed, item_count, training_count, testing_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, cfg.DatasetDir, cfg.Suffix, cfg.Deterministic, split.Seed, split.Total(), len(split.Training), len(split.Testing))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_items (run_id, position, identifier, filename, subset)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare run item insert: %w", err)
	}
	defer stmt.Close()

	for position, id := range split.Items() {
		subset := SubsetTraining
		if position >= len(split.Training) {
			subset = SubsetTesting
		}
		if _, err := stmt.Exec(runID, position, id, split.File(position), subset); err != nil {
			return 0, fmt.Errorf("failed to insert run item %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns recorded runs, newest first. limit <= 0 means all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, dataset_dir, suffix, deterministic, seed,
		       item_count, training_count, testing_count
		FROM runs
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// GetRunByID retrieves a run by ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, created_at, dataset_dir, suffix, deterministic, seed,
		       item_count, training_count, testing_count
		FROM runs
		WHERE run_id = ?
	`, runID)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetRunItems returns the members of a run in shuffled order.
func (db *DB) GetRunItems(runID int64) ([]RunItem, error) {
	rows, err := db.Query(`
		SELECT position, identifier, filename, subset
		FROM run_items
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run items: %w", err)
	}
	defer rows.Close()

	var items []RunItem
	for rows.Next() {
		var it RunItem
		if err := rows.Scan(&it.Position, &it.Identifier, &it.Filename, &it.Subset); err != nil {
			return nil, fmt.Errorf("failed to scan run item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run items: %w", err)
	}

	return items, nil
}

// GetRunSplit rebuilds the split recorded for a run.
func (db *DB) GetRunSplit(runID int64) (models.Split, error) {
	run, err := db.GetRunByID(runID)
	if err != nil {
		return models.Split{}, err
	}
	items, err := db.GetRunItems(runID)
	if err != nil {
		return models.Split{}, err
	}

	split := models.Split{
		Training: make([]string, 0, run.TrainingCount),
		Testing:  make([]string, 0, run.TestingCount),
		Seed:     run.Seed,
	}
	var trainingFiles, testingFiles []string
	withFiles := true
	for _, it := range items {
		withFiles = withFiles && it.Filename != ""
		if it.Subset == SubsetTraining {
			split.Training = append(split.Training, it.Identifier)
			trainingFiles = append(trainingFiles, it.Filename)
		} else {
			split.Testing = append(split.Testing, it.Identifier)
			testingFiles = append(testingFiles, it.Filename)
		}
	}
	// Runs recorded before filenames were stored come back without them.
	if withFiles {
		split.TrainingFiles = trainingFiles
		split.TestingFiles = testingFiles
	}
	return split, nil
}

// LatestRunID returns the most recently recorded run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRunNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	err := row.Scan(&r.RunID, &r.CreatedAt, &r.DatasetDir, &r.Suffix, &r.Deterministic,
		&r.Seed, &r.ItemCount, &r.TrainingCount, &r.TestingCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	return &r, nil
}
