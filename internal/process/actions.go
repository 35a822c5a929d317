package process

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/smartsched/syllascan/internal/common"
	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/artifacts"
	"github.com/smartsched/syllascan/pkg/db"
	"github.com/smartsched/syllascan/pkg/extract"
	"github.com/smartsched/syllascan/pkg/ident"
	"github.com/smartsched/syllascan/pkg/ingest"
)

// ProcessAction runs the full pipeline for one document: acquire text,
// extract events from both passes, persist the run, and print the result.
func ProcessAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: No document provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  syllascan process syllabus.pdf`)
		fmt.Fprintln(os.Stderr, `  syllascan process --course BUS254 --year 2023 outline.html`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: syllascan process --help")
		os.Exit(1)
	}

	config := &models.RunConfig{
		CourseName: c.String("course"),
		Semester:   c.String("semester"),
		Year:       c.Int("year"),
		OutputDir:  c.String("output-dir"),
		Format:     c.String("format"),
		Store:      !c.Bool("no-store"),
	}

	path := c.Args().First()
	logger.Info("Processing document", "path", path, "kind", ingest.Kind(path))

	text := ingest.FromFile(path)
	result := extract.ProcessDocument(func(string) models.TextResult { return text }, path, extract.PipelineOptions{
		CourseName: config.CourseName,
		Semester:   config.Semester,
		Year:       config.Year,
		IDs:        ident.UUID{},
	})

	if !result.Success {
		if err := printResult(&result, config.Format); err != nil {
			logger.Error("failed to print result", "error", err)
		}
		os.Exit(1)
	}

	counts := db.RunCounts{Merged: len(result.Events)}
	for _, ev := range result.Events {
		if ev.Source == models.SourceSyllabusTable {
			counts.Table++
		} else {
			counts.LineScan++
		}
	}
	logger.Info("Extraction complete",
		"events", counts.Merged,
		"table", counts.Table,
		"linescan", counts.LineScan,
		"syllabus_score", result.Metadata.SyllabusScore,
	)

	if config.Store {
		if err := storeRun(logger, path, text.Text, config, &result, counts); err != nil {
			logger.Error("failed to store run", "error", err)
			os.Exit(2)
		}
	}

	return printResult(&result, config.Format)
}

// storeRun records the document and its extraction run in the database, then
// writes the run artifacts next to it.
func storeRun(logger *slog.Logger, path, text string, config *models.RunConfig, result *models.ProcessResult, counts db.RunCounts) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document for hashing: %w", err)
	}

	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	docID, err := database.InsertDocument(path, common.ContentHash(data), ingest.Kind(path), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to record document: %w", err)
	}

	runID, err := database.CreateRun(docID, result.Metadata, counts, result.Warnings, result.Events)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	manager, err := artifacts.NewManager(config.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact manager: %w", err)
	}

	dir, err := manager.WriteRunArtifacts(runID, result, text)
	if err != nil {
		return fmt.Errorf("failed to write run artifacts: %w", err)
	}

	logger.Info("Run stored", "run_id", runID, "document_id", docID, "artifacts", dir)
	fmt.Fprintf(os.Stderr, "Run %d stored. Results: %s\n", runID, dir)
	fmt.Fprintf(os.Stderr, "  syllascan runs show %d     # Run details\n", runID)
	fmt.Fprintf(os.Stderr, "  syllascan export ics %d    # Calendar file\n", runID)
	return nil
}

func printResult(result *models.ProcessResult, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(result, "", "  ")
	default:
		data, err = yaml.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
