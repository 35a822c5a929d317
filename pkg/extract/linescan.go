// Package extract turns raw document text into calendar events. Two
// independent passes run over the same text: a high-confidence structured
// syllabus-table recognizer and a lower-confidence free-line scanner, with
// results reconciled by Merge. Both passes are pure functions over an
// immutable text snapshot.
package extract

import (
	"sort"
	"strings"
	"time"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/classify"
	"github.com/smartsched/syllascan/pkg/ident"
	"github.com/smartsched/syllascan/pkg/scan"
)

// Options configures the line-scan extractor.
type Options struct {
	Year       int    // reference year for academic rollover; current year when zero
	CourseName string // defaults to "Course"
	IDs        ident.Generator
}

const (
	lineScanConfidence = 0.85
	descriptionLimit   = 200

	defaultStartTime = "09:00"
	defaultEndTime   = "10:00"
)

// EventsFromText walks document text line by line and produces a sorted,
// deduplicated event list. Dates are anchored to individual lines to avoid
// cross-line false matches; classification, time recognition, and title
// synthesis all see a context window of the line plus one line on each side.
// The first occurrence of each (date, category) key wins; later lines
// producing the same key are dropped.
func EventsFromText(text string, opts Options) []models.ExtractedEvent {
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}
	course := opts.CourseName
	if course == "" {
		course = "Course"
	}
	ids := opts.IDs
	if ids == nil {
		ids = ident.UUID{}
	}

	lines := strings.Split(text, "\n")
	seen := make(map[string]bool)
	events := make([]models.ExtractedEvent, 0)

	for i, line := range lines {
		window := contextWindow(lines, i)

		for _, dm := range scan.FindDates(line, year, scan.YearAcademic) {
			category := classify.Categorize(window)
			key := dm.Date + "|" + string(category)
			if seen[key] {
				continue
			}
			seen[key] = true

			start, end := defaultStartTime, defaultEndTime
			if ts, ok := scan.FindTime(window); ok {
				start, end = ts.Start, ts.End
			}

			events = append(events, models.ExtractedEvent{
				ID:          ids.NewID("event"),
				Title:       classify.Title(category, course, window),
				Date:        dm.Date,
				StartTime:   start,
				EndTime:     end,
				Type:        category,
				Description: truncate(strings.TrimSpace(window), descriptionLimit),
				Source:      models.SourceLineScan,
				Confidence:  lineScanConfidence,
				Selected:    category == models.EventExam || category == models.EventDeadline,
			})
		}
	}

	sortByDate(events)
	return events
}

// contextWindow joins lines [i-1, i+1], clamped to bounds, with spaces.
func contextWindow(lines []string, i int) string {
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	hi := i + 2
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], " ")
}

// sortByDate stable-sorts events ascending by date. ISO date strings order
// lexicographically, so string comparison is enough; ties keep discovery
// order.
func sortByDate(events []models.ExtractedEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit])
}
