package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "scentalloc",
		Usage: "Allocate perfume inventory to store requests",
		Commands: []*cli.Command{
			runCmd,
			compareCmd,
			genCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Run the optimizing allocation engine",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Required: true,
			Usage:    "specify the input catalog.csv",
		},
		&cli.StringFlag{
			Name:     "stores",
			Required: true,
			Usage:    "specify the input stores.json",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output results.csv",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify an engine tuning file (yaml)",
		},
		&cli.BoolFlag{
			Name:  "note-biased",
			Usage: "weigh note matches 6x the other criteria",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "specify the log level (debug|info|warn|error)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doRun(
			ctx.String("catalog"), ctx.String("stores"), ctx.String("out"),
			ctx.String("config"), ctx.String("log-level"), ctx.Bool("note-biased"),
		)
	},
}

var compareCmd = &cli.Command{
	Name:    "compare",
	Usage:   "Run the optimizing engine against the random baseline",
	Aliases: []string{"c"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Required: true,
			Usage:    "specify the input catalog.csv",
		},
		&cli.StringFlag{
			Name:     "stores",
			Required: true,
			Usage:    "specify the input stores.json",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "also write the optimized results.csv",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify an engine tuning file (yaml)",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "specify the baseline shuffle seed",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "specify the log level (debug|info|warn|error)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doCompare(
			ctx.String("catalog"), ctx.String("stores"), ctx.String("out"),
			ctx.String("config"), ctx.String("log-level"), ctx.Int64("seed"),
		)
	},
}

var genCmd = &cli.Command{
	Name:    "gen",
	Usage:   "Generate random store requests from a catalog",
	Aliases: []string{"g"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "specify an input catalog.csv to draw notes from",
		},
		&cli.StringFlag{
			Name:  "catalog-out",
			Usage: "synthesize a catalog and write it here (when no --catalog)",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output stores.json",
		},
		&cli.IntFlag{
			Name:  "count",
			Value: 10,
			Usage: "specify how many stores to generate",
		},
		&cli.IntFlag{
			Name:  "perfumes",
			Value: 20,
			Usage: "specify how many perfumes to synthesize for --catalog-out",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "specify the generator seed",
		},
	},
	Action: func(ctx *cli.Context) error {
		count := ctx.Int("count")
		perfumes := ctx.Int("perfumes")
		if count <= 0 || perfumes <= 0 {
			return errors.New("invalid count")
		}
		return doGen(
			ctx.String("catalog"), ctx.String("catalog-out"), ctx.String("out"),
			count, perfumes, ctx.Int64("seed"),
		)
	},
}
