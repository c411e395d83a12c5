// salary-trends computes salary-trend statistics from a directory of CSV
// vacancy chunks: average salary and vacancy counts per year, the same two
// restricted to a target profession, and an area-share ranking.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/ybocharov/salary-trends/internal/analyze"
)

func main() {
	app := &cli.App{
		Name:  "salary-trends",
		Usage: "aggregate vacancy CSV chunks into salary-trend statistics",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "aggregate all chunks in a directory and print statistics",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "directory holding the CSV chunk files",
					},
					&cli.StringFlag{
						Name:    "profession",
						Aliases: []string{"p"},
						Usage:   "profession substring for the filtered statistics track",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "number of concurrent chunk workers",
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file (flags override its values)",
					},
					&cli.StringFlag{
						Name:  "rates",
						Usage: "YAML currency rate table replacing the built-in one",
					},
					&cli.BoolFlag{
						Name:  "areas",
						Usage: "also print the area share and salary ranking",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress progress output and non-error logs",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
