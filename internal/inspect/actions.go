package inspect

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/dataset-split/internal/common"
	"github.com/dtnitsch/dataset-split/models"
	"github.com/dtnitsch/dataset-split/pkg/caching"
	dbpkg "github.com/dtnitsch/dataset-split/pkg/db"
	"github.com/dtnitsch/dataset-split/pkg/inspect"
	"github.com/dtnitsch/dataset-split/pkg/manifest"
	"github.com/dtnitsch/dataset-split/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// InspectAction prints a YAML summary of each named item, or of every item
// in one subset of a recorded run (--run) or a manifest (--manifest).
func InspectAction(c *cli.Context) error {
	logger := common.NewLogger(c.App.ErrWriter, c.Bool("verbose"))
	inspector := inspect.NewInspector(logger)
	if dir := c.String("cache-dir"); dir != "" {
		cache, err := caching.NewCache(dir, c.Duration("cache-ttl"))
		if err != nil {
			return err
		}
		inspector.WithCache(cache)
	}

	var docs []*inspect.Document
	if c.IsSet("run") || c.IsSet("manifest") {
		if c.NArg() > 0 || (c.IsSet("run") && c.IsSet("manifest")) {
			return fmt.Errorf("use only one of file arguments, --run and --manifest")
		}
		dir, split, err := loadSplit(c)
		if err != nil {
			return err
		}
		files, err := subsetFiles(split, c.String("subset"))
		if err != nil {
			return err
		}
		subsetDocs, err := inspector.InspectFiles(dir, files)
		if err != nil {
			return err
		}
		docs = subsetDocs
	} else {
		if c.NArg() == 0 {
			return fmt.Errorf("no files given. Usage: dataset-split inspect <file.html.gz>... | --run <id> | --manifest <file>")
		}
		for _, path := range c.Args().Slice() {
			doc, err := inspector.Inspect(path)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
	}

	enc := yaml.NewEncoder(c.App.Writer)
	defer enc.Close()
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
	}
	return nil
}

// loadSplit returns the dataset directory and split of the recorded run
// or manifest named on the command line.
func loadSplit(c *cli.Context) (string, models.Split, error) {
	if path := c.String("manifest"); path != "" {
		m, err := manifest.Read(path, &storage.Storage{})
		if err != nil {
			return "", models.Split{}, err
		}
		return m.DatasetDir, m.Split(), nil
	}

	database, err := dbpkg.OpenOrDefault(c.String("db"))
	if err != nil {
		return "", models.Split{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID := c.Int64("run")
	run, err := database.GetRunByID(runID)
	if err != nil {
		return "", models.Split{}, err
	}
	split, err := database.GetRunSplit(runID)
	if err != nil {
		return "", models.Split{}, err
	}
	return run.DatasetDir, split, nil
}

// subsetFiles picks the filenames of one subset. Identifiers alone cannot
// be used since two files may share one.
func subsetFiles(split models.Split, subset string) ([]string, error) {
	var ids, files []string
	switch strings.ToLower(subset) {
	case dbpkg.SubsetTraining:
		ids, files = split.Training, split.TrainingFiles
	case dbpkg.SubsetTesting:
		ids, files = split.Testing, split.TestingFiles
	default:
		return nil, fmt.Errorf("unknown subset: %s (use: training or testing)", subset)
	}
	if len(files) != len(ids) {
		return nil, fmt.Errorf("split has no filenames for its %s subset; record it again", strings.ToLower(subset))
	}
	return files, nil
}
