package db

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/dataset-split/pkg/db"
	"github.com/urfave/cli/v2"
)

// RunsAction lists recorded runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.OpenOrDefault(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs found")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-8s %-8s %-8s %-20s %-30s\n",
		"ID", "Created", "Items", "Train", "Test", "Seed", "Dataset Dir")
	fmt.Fprintln(out, strings.Repeat("-", 106))

	for _, r := range runs {
		seed := fmt.Sprintf("%d", r.Seed)
		if r.Deterministic {
			seed += " (fixed)"
		}
		fmt.Fprintf(out, "%-6d %-20s %-8d %-8d %-8d %-20s %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ItemCount,
			r.TrainingCount,
			r.TestingCount,
			seed,
			r.DatasetDir,
		)
	}

	fmt.Fprintf(out, "\nTotal: %d runs\n", len(runs))
	return nil
}

// RunAction shows one run and its identifiers.
func RunAction(c *cli.Context) error {
	database, err := dbpkg.OpenOrDefault(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	subset := strings.ToLower(c.String("subset"))
	if subset != "" && subset != dbpkg.SubsetTraining && subset != dbpkg.SubsetTesting {
		return fmt.Errorf("unknown subset: %s (use: training or testing)", subset)
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	split, err := database.GetRunSplit(runID)
	if err != nil {
		return fmt.Errorf("failed to get run items: %w", err)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Run %d\n", run.RunID)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Created:       %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Dataset Dir:   %s\n", run.DatasetDir)
	fmt.Fprintf(out, "Suffix:        %s\n", run.Suffix)
	fmt.Fprintf(out, "Seed:          %d (deterministic: %t)\n", run.Seed, run.Deterministic)
	fmt.Fprintf(out, "Items:         %d (%d training, %d testing)\n",
		run.ItemCount, run.TrainingCount, run.TestingCount)

	if subset == "" || subset == dbpkg.SubsetTraining {
		printIdentifiers(c, "Training", split.Training)
	}
	if subset == "" || subset == dbpkg.SubsetTesting {
		printIdentifiers(c, "Testing", split.Testing)
	}
	return nil
}

func printIdentifiers(c *cli.Context, title string, ids []string) {
	out := c.App.Writer
	fmt.Fprintf(out, "\n%s (%d):\n", title, len(ids))
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for i, id := range ids {
		fmt.Fprintf(out, "%4d. %s\n", i+1, id)
	}
}
