package main

import (
	"log"
	"os"
	"time"

	dbactions "github.com/dtnitsch/dataset-split/internal/db"
	"github.com/dtnitsch/dataset-split/internal/inspect"
	"github.com/dtnitsch/dataset-split/internal/split"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI. With no subcommand it runs a split.
func newApp() *cli.App {
	return &cli.App{
		Name:   "dataset-split",
		Usage:  "shuffle dataset items into a training set (2/3) and a testing set (1/3)",
		Flags:  split.Flags(),
		Action: split.SplitAction,
		Commands: []*cli.Command{
			{
				Name:   "split",
				Usage:  "split the dataset directory and print subset sizes",
				Flags:  split.Flags(),
				Action: split.SplitAction,
			},
			{
				Name:      "inspect",
				Usage:     "decompress dataset items and summarize their content",
				ArgsUsage: "<file.html.gz>...",
				Flags: append([]cli.Flag{
					&cli.Int64Flag{Name: "run", Usage: "inspect items of a recorded run instead of files"},
					&cli.StringFlag{Name: "manifest", Usage: "inspect items of a split manifest instead of files"},
					&cli.StringFlag{Name: "subset", Value: "testing", Usage: "subset of --run or --manifest to inspect: training or testing"},
					&cli.StringFlag{Name: "cache-dir", Usage: "reuse summaries of unchanged files from this directory"},
					&cli.DurationFlag{Name: "cache-ttl", Value: 24 * time.Hour, Usage: "maximum age of cached summaries (0 keeps them forever)"},
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log progress to stderr"},
				}, dbactions.Flags()...),
				Action: inspect.InspectAction,
			},
			{
				Name:  "runs",
				Usage: "list recorded runs",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to show (0 for all)"},
				}, dbactions.Flags()...),
				Action: dbactions.RunsAction,
			},
			{
				Name:      "run",
				Usage:     "show a recorded run and its identifiers (latest by default)",
				ArgsUsage: "[run-id]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "subset", Usage: "only show training or testing"},
				}, dbactions.Flags()...),
				Action: dbactions.RunAction,
			},
		},
	}
}
