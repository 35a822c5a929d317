package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/smartsched/syllascan/internal/extractcmd"
	"github.com/smartsched/syllascan/internal/process"
	"github.com/smartsched/syllascan/internal/runs"
	"github.com/smartsched/syllascan/pkg/artifacts"
)

func main() {
	app := &cli.App{
		Name:  "syllascan",
		Usage: "extract calendar events from course documents",
		Description: "Scans syllabi and other course documents (PDF, HTML, or plain text) " +
			"for dated events: lecture schedules, exams, assignment deadlines, and holidays. " +
			"Results are stored as runs that can be listed, inspected, and exported as iCalendar files.",
		Commands: []*cli.Command{
			{
				Name:      "process",
				Usage:     "Run the full extraction pipeline over a document",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					courseFlag(),
					semesterFlag(),
					yearFlag(),
					formatFlag(),
					&cli.StringFlag{
						Name:  "output-dir",
						Value: artifacts.DefaultBaseDir,
						Usage: "base directory for run artifacts",
					},
					&cli.BoolFlag{
						Name:  "no-store",
						Usage: "skip recording the run in the database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: process.ProcessAction,
			},
			{
				Name:      "extract",
				Usage:     "Run only the line-scan pass (file argument or stdin)",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					courseFlag(),
					yearFlag(),
					formatFlag(),
				},
				Action: extractcmd.ExtractAction,
			},
			{
				Name:      "syllabus",
				Usage:     "Run only the syllabus-table pass (file argument or stdin)",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					courseFlag(),
					semesterFlag(),
					yearFlag(),
					formatFlag(),
				},
				Action: extractcmd.SyllabusAction,
			},
			{
				Name:  "runs",
				Usage: "Inspect stored extraction runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List stored runs, newest first",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to show",
							},
						},
						Action: runs.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show details for a run (latest if no ID given)",
						ArgsUsage: "[run-id]",
						Action:    runs.ShowAction,
					},
					{
						Name:      "events",
						Usage:     "Print the full event records for a run",
						ArgsUsage: "[run-id]",
						Flags: []cli.Flag{
							formatFlag(),
							selectedFlag(),
						},
						Action: runs.EventsAction,
					},
				},
			},
			{
				Name:  "export",
				Usage: "Export stored runs",
				Subcommands: []*cli.Command{
					{
						Name:      "ics",
						Usage:     "Write a run's events as an iCalendar file",
						ArgsUsage: "[run-id]",
						Flags: []cli.Flag{
							selectedFlag(),
							&cli.BoolFlag{
								Name:  "stdout",
								Usage: "print the calendar instead of writing a file",
							},
							&cli.StringFlag{
								Name:  "output-dir",
								Value: artifacts.DefaultBaseDir,
								Usage: "base directory for run artifacts",
							},
						},
						Action: runs.ExportICSAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func courseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "course",
		Usage: "course name, e.g. BUS254 (detected from the document when omitted)",
	}
}

func semesterFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "semester",
		Usage: "semester label, e.g. Fall (detected from the document when omitted)",
	}
}

func yearFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "year",
		Usage: "reference year for dates without an explicit year (detected when omitted)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "yaml",
		Usage: "output format: yaml or json",
	}
}

func selectedFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "selected",
		Usage: "only include events marked selected (exams and deadlines)",
	}
}
