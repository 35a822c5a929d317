package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/classify"
	"github.com/smartsched/syllascan/pkg/ident"
	"github.com/smartsched/syllascan/pkg/scan"
)

// SyllabusOptions configures the syllabus-table extractor.
type SyllabusOptions struct {
	CourseName string
	Semester   string
	Year       int // fallback when a row carries no explicit year
	IDs        ident.Generator
}

const (
	tableConfidence       = 0.95
	placeholderConfidence = 0.70

	// Standard lecture block for table-derived sessions.
	lectureStartTime = "10:30"
	lectureEndTime   = "12:20"
)

var (
	// "Week 8 | 25 Oct 2023 | Mid-term Exam ... | No tutorials"
	weekRowRe = regexp.MustCompile(`(?i)^\s*(?:wk|week)\s*(\d+)\s*\|([^|]+)\|\s*([^|]+)`)

	finalExamRe = regexp.MustCompile(`(?i)final\s+exam[:\s]*([^\n]*)`)
)

// Syllabus recognizes the pipe-delimited "Week N | Date | Topic" tabular
// convention used by course syllabi and produces higher-confidence events
// directly from table rows. A year explicit in a row takes precedence over
// the supplied fallback year; no academic rollover is applied on this path.
// Trailing pipe-delimited annotations after the topic (chapter references,
// tutorial notes) are stripped.
func Syllabus(text string, opts SyllabusOptions) []models.ExtractedEvent {
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

	events := make([]models.ExtractedEvent, 0)
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		m := weekRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		week := m[1]
		topic := strings.TrimSpace(m[3])
		if topic == "" {
			topic = "Week " + week
		}

		dates := scan.FindDates(m[2], year, scan.YearFixed)
		if len(dates) == 0 {
			continue
		}
		date := dates[0].Date

		isExam := classify.IsExamTopic(topic)
		category := models.EventLecture
		title := course + " Lecture: " + topic
		if isExam {
			category = models.EventExam
			title = course + " - " + topic
		}

		key := date + "|" + string(category)
		if seen[key] {
			continue
		}
		seen[key] = true

		events = append(events, models.ExtractedEvent{
			ID:          ids.NewID("syllabus"),
			Title:       title,
			Date:        date,
			StartTime:   lectureStartTime,
			EndTime:     lectureEndTime,
			Type:        category,
			Description: "Week " + week + ": " + topic,
			Source:      models.SourceSyllabusTable,
			Confidence:  tableConfidence,
			Selected:    isExam,
		})
	}

	if ev, ok := finalExamPlaceholder(text, course, year, ids); ok {
		key := ev.Date + "|" + string(ev.Type)
		if !seen[key] {
			events = append(events, ev)
		}
	}

	sortByDate(events)
	return events
}

// finalExamPlaceholder scans the whole text once for a "Final Exam" mention.
// Only a December mention produces a placeholder, dated the 15th; other
// months stay unrecognized rather than guessing. The event carries reduced
// confidence and a description noting the exact date is unannounced.
func finalExamPlaceholder(text, course string, year int, ids ident.Generator) (models.ExtractedEvent, bool) {
	m := finalExamRe.FindStringSubmatch(text)
	if m == nil || !strings.Contains(strings.ToLower(m[1]), "december") {
		return models.ExtractedEvent{}, false
	}

	return models.ExtractedEvent{
		ID:          ids.NewID("syllabus"),
		Title:       course + " Final Exam",
		Date:        fmt.Sprintf("%d-12-15", year),
		Type:        models.EventExam,
		Description: "Final exam expected in December; exact date not yet announced",
		Source:      models.SourceSyllabusTable,
		Confidence:  placeholderConfidence,
		Selected:    true,
	}, true
}
