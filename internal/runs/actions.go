// Package runs implements the CLI commands for inspecting and exporting
// stored extraction runs.
package runs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/artifacts"
	dbpkg "github.com/smartsched/syllascan/pkg/db"
	"github.com/smartsched/syllascan/pkg/export"
)

// ListAction prints the stored runs, newest first.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %-6s %-7s %-6s %-9s %-30s\n",
		"ID", "Created", "Course", "Semester", "Year", "Events", "Score", "Warnings", "Document")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10s %-8s %-6d %-7d %-6.1f %-9d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.CourseName,
			r.Semester,
			r.Year,
			r.EventCount,
			r.SyllabusScore,
			len(r.Warnings),
			r.Path,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'syllascan runs show <id>' to see details\n")

	return nil
}

// ShowAction shows details for a specific run, or the latest run when no ID
// is given.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	events, err := database.GetRunEvents(runID)
	if err != nil {
		return fmt.Errorf("failed to get run events: %w", err)
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Printf("  Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Document:    %s (%s)\n", run.Path, run.Kind)
	fmt.Printf("  Course:      %s\n", run.CourseName)
	fmt.Printf("  Semester:    %s %d\n", run.Semester, run.Year)
	if run.Language != "" {
		fmt.Printf("  Language:    %s\n", run.Language)
	}
	fmt.Printf("  Score:       %.1f\n", run.SyllabusScore)
	fmt.Printf("  Events:      %d (%d table, %d line-scan)\n", run.EventCount, run.TableCount, run.LineScanCount)
	for _, w := range run.Warnings {
		fmt.Printf("  Warning:     %s\n", w)
	}

	if len(events) > 0 {
		fmt.Printf("\n%-12s %-11s %-10s %-8s %-40s\n", "Date", "Time", "Type", "Selected", "Title")
		fmt.Println(strings.Repeat("-", 90))
		for _, ev := range events {
			clock := ev.StartTime
			if ev.EndTime != "" {
				clock = ev.StartTime + "-" + ev.EndTime
			}
			if clock == "" {
				clock = "all-day"
			}
			selected := ""
			if ev.Selected {
				selected = "yes"
			}
			fmt.Printf("%-12s %-11s %-10s %-8s %-40s\n", ev.Date, clock, ev.Type, selected, ev.Title)
		}
	}

	fmt.Printf("\nTip: 'syllascan runs events %d' for the full event records\n", runID)
	return nil
}

// EventsAction prints the full event records for a run.
func EventsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	events, err := database.GetRunEvents(runID)
	if err != nil {
		return fmt.Errorf("failed to get run events: %w", err)
	}

	if c.Bool("selected") {
		kept := events[:0]
		for _, ev := range events {
			if ev.Selected {
				kept = append(kept, ev)
			}
		}
		events = kept
	}

	var data []byte
	switch c.String("format") {
	case "json":
		data, err = json.MarshalIndent(events, "", "  ")
	default:
		data, err = yaml.Marshal(events)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// ExportICSAction serializes a run's events as an iCalendar file.
func ExportICSAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	events, err := database.GetRunEvents(runID)
	if err != nil {
		return fmt.Errorf("failed to get run events: %w", err)
	}

	if c.Bool("selected") {
		kept := []models.ExtractedEvent{}
		for _, ev := range events {
			if ev.Selected {
				kept = append(kept, ev)
			}
		}
		events = kept
	}

	if len(events) == 0 {
		return fmt.Errorf("run %d has no events to export", runID)
	}

	ical, err := export.Calendar(events)
	if err != nil {
		return fmt.Errorf("failed to build calendar: %w", err)
	}

	if c.Bool("stdout") {
		fmt.Print(ical)
		return nil
	}

	manager, err := artifacts.NewManager(c.String("output-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize artifact manager: %w", err)
	}
	name := run.CourseName
	if name == "" {
		name = run.Path
	}
	path, err := manager.WriteCalendar(runID, name, ical)
	if err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Calendar written: %s\n", path)
	return nil
}
