// Package extractcmd exposes the individual extraction passes as CLI
// commands, useful for inspecting what each pass finds on its own.
package extractcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/extract"
	"github.com/smartsched/syllascan/pkg/ident"
	"github.com/smartsched/syllascan/pkg/ingest"
)

// ExtractAction runs only the line-scan pass over a document and prints the
// events it finds.
func ExtractAction(c *cli.Context) error {
	text, err := documentText(c)
	if err != nil {
		return err
	}

	year := c.Int("year")
	if year == 0 {
		year = time.Now().Year()
	}

	events := extract.EventsFromText(text, extract.Options{
		Year:       year,
		CourseName: c.String("course"),
		IDs:        ident.UUID{},
	})
	return printEvents(events, c.String("format"))
}

// SyllabusAction runs only the syllabus-table pass over a document and prints
// the events it finds.
func SyllabusAction(c *cli.Context) error {
	text, err := documentText(c)
	if err != nil {
		return err
	}

	year := c.Int("year")
	if year == 0 {
		year = time.Now().Year()
	}

	events := extract.Syllabus(text, extract.SyllabusOptions{
		CourseName: c.String("course"),
		Semester:   c.String("semester"),
		Year:       year,
		IDs:        ident.UUID{},
	})
	return printEvents(events, c.String("format"))
}

// documentText loads text for a single extraction pass, either from a file
// argument or from stdin when no argument is given.
func documentText(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		result := ingest.FromFile(c.Args().First())
		if !result.Success {
			return "", fmt.Errorf("failed to read document: %s", result.Error)
		}
		return result.Text, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no document provided; pass a file path or pipe text on stdin")
	}
	return string(data), nil
}

func printEvents(events []models.ExtractedEvent, format string) error {
	var data []byte
	var err error
	switch format {
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
