package split

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/dataset-split/models"
	"github.com/dtnitsch/dataset-split/pkg/dataset"
	"github.com/dtnitsch/dataset-split/pkg/db"
	"github.com/dtnitsch/dataset-split/pkg/manifest"
	"github.com/dtnitsch/dataset-split/pkg/report"
	"github.com/dtnitsch/dataset-split/pkg/splitter"
	"github.com/dtnitsch/dataset-split/pkg/storage"
)

// Options selects the optional exports of a run. The zero value exports
// nothing.
type Options struct {
	ManifestPath string
	Record       bool
	DBPath       string
}

// Run enumerates, partitions and reports one split. Nothing is written to
// out unless enumeration succeeds.
func Run(cfg models.SplitConfig, opts Options, out io.Writer, logger *slog.Logger) (models.Split, error) {
	names, err := dataset.ListNames(cfg.DatasetDir, cfg.Suffix)
	if err != nil {
		return models.Split{}, err
	}
	logger.Info("enumerated candidates", "dataset_dir", cfg.DatasetDir, "suffix", cfg.Suffix, "count", len(names))

	if cfg.UniqueIDs {
		if err := dataset.CheckUnique(dataset.Identifiers(names)); err != nil {
			return models.Split{}, err
		}
	}

	split := splitter.Split(names, cfg)
	logger.Info("partitioned candidates",
		"seed", split.Seed,
		"deterministic", cfg.Deterministic,
		"training", len(split.Training),
		"testing", len(split.Testing))

	if err := report.WriteCounts(out, split); err != nil {
		return split, err
	}

	if opts.ManifestPath != "" {
		if err := manifest.Write(opts.ManifestPath, manifest.Build(cfg, split), &storage.Storage{}); err != nil {
			return split, err
		}
		logger.Info("wrote manifest", "path", opts.ManifestPath)
	}

	if opts.Record {
		runID, err := record(cfg, split, opts.DBPath)
		if err != nil {
			return split, err
		}
		logger.Info("recorded run", "run_id", runID)
	}

	return split, nil
}

func record(cfg models.SplitConfig, split models.Split, dbPath string) (int64, error) {
	database, err := db.OpenOrDefault(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return database.RecordRun(cfg, split)
}
