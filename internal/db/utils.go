package db

import (
	"fmt"
	"strconv"

	dbpkg "github.com/dtnitsch/dataset-split/pkg/db"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags shared by the history commands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "db", Usage: "history database path (default: next to the binary)"},
	}
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runID, err := database.LatestRunID()
		if err != nil {
			return 0, fmt.Errorf("no runs found. Run 'dataset-split --record' first: %w", err)
		}
		return runID, nil
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
