package split

import (
	"fmt"

	"github.com/dtnitsch/dataset-split/internal/common"
	"github.com/dtnitsch/dataset-split/models"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags of the root command and the split subcommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.StringFlag{Name: "dataset-dir", Aliases: []string{"d"}, Value: models.DefaultDatasetDir, Usage: "directory to scan"},
		&cli.StringFlag{Name: "suffix", Value: models.DefaultSuffix, Usage: "filename suffix of dataset items"},
		&cli.BoolFlag{Name: "deterministic", Usage: "shuffle with the fixed seed"},
		&cli.Int64Flag{Name: "seed", Value: models.DefaultFixedSeed, Usage: "fixed seed (implies --deterministic)"},
		&cli.BoolFlag{Name: "unique", Usage: "fail when two files map to the same identifier"},
		&cli.StringFlag{Name: "manifest", Usage: "write the split identifiers to this YAML file"},
		&cli.BoolFlag{Name: "record", Usage: "record the run in the history database"},
		&cli.StringFlag{Name: "db", Usage: "history database path (default: next to the binary)"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log progress to stderr"},
	}
}

// SplitAction runs one split and prints the subset sizes.
func SplitAction(c *cli.Context) error {
	logger := common.NewLogger(c.App.ErrWriter, c.Bool("verbose"))

	cfg, err := ConfigFromFlags(c)
	if err != nil {
		return err
	}

	opts := Options{
		ManifestPath: c.String("manifest"),
		Record:       c.Bool("record"),
		DBPath:       c.String("db"),
	}
	_, err = Run(cfg, opts, c.App.Writer, logger)
	return err
}

// ConfigFromFlags loads --config (if given) and applies explicitly set
// flags on top of it.
func ConfigFromFlags(c *cli.Context) (models.SplitConfig, error) {
	cfg := models.DefaultSplitConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("dataset-dir") {
		cfg.DatasetDir = c.String("dataset-dir")
	}
	if c.IsSet("suffix") {
		cfg.Suffix = c.String("suffix")
	}
	if c.IsSet("deterministic") {
		cfg.Deterministic = c.Bool("deterministic")
	}
	if c.IsSet("seed") {
		cfg.FixedSeed = c.Int64("seed")
		// --seed implies deterministic mode unless --deterministic is given.
		if !c.IsSet("deterministic") {
			cfg.Deterministic = true
		}
	}
	if c.IsSet("unique") {
		cfg.UniqueIDs = c.Bool("unique")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
