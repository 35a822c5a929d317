package export

import (
	"strings"
	"testing"

	"github.com/smartsched/syllascan/models"
)

func TestCalendar_TimedEvent(t *testing.T) {
	events := []models.ExtractedEvent{
		{
			ID:          "ev-1",
			Title:       "BUS254 Midterm Exam",
			Date:        "2023-10-25",
			StartTime:   "10:30",
			EndTime:     "12:20",
			Type:        models.EventExam,
			Description: "Week 8: Mid-term Exam",
		},
	}

	ical, err := Calendar(events)
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:ev-1",
		"SUMMARY:BUS254 Midterm Exam",
		"CATEGORIES:EXAM",
		"METHOD:PUBLISH",
	} {
		if !strings.Contains(ical, want) {
			t.Errorf("calendar missing %q", want)
		}
	}

	if !strings.Contains(ical, "DTSTART") || !strings.Contains(ical, "DTEND") {
		t.Error("timed event should carry DTSTART and DTEND")
	}
}

func TestCalendar_AllDayEvent(t *testing.T) {
	events := []models.ExtractedEvent{
		{
			ID:    "ev-2",
			Title: "BUS254 Final Exam",
			Date:  "2023-12-15",
			Type:  models.EventExam,
		},
	}

	ical, err := Calendar(events)
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}

	if !strings.Contains(ical, "VALUE=DATE:20231215") {
		t.Error("all-day event should use a DATE value for its start")
	}
}

func TestCalendar_DefaultHourBlock(t *testing.T) {
	events := []models.ExtractedEvent{
		{
			ID:        "ev-3",
			Title:     "Course Assignment Due",
			Date:      "2026-01-08",
			StartTime: "14:30",
			Type:      models.EventDeadline,
		},
	}

	ical, err := Calendar(events)
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}

	if !strings.Contains(ical, "T143000") {
		t.Error("start time missing from serialized event")
	}
	if !strings.Contains(ical, "T153000") {
		t.Error("missing end time should default to one hour after start")
	}
}

func TestCalendar_InvalidDate(t *testing.T) {
	events := []models.ExtractedEvent{
		{ID: "ev-4", Title: "Broken", Date: "not-a-date"},
	}

	if _, err := Calendar(events); err == nil {
		t.Error("Calendar() should fail on an unparseable date")
	}
}

func TestCalendar_Empty(t *testing.T) {
	ical, err := Calendar(nil)
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	if !strings.Contains(ical, "BEGIN:VCALENDAR") {
		t.Error("empty input should still produce a calendar envelope")
	}
}
