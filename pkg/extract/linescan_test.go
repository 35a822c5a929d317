package extract

import (
	"testing"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/ident"
)

func TestEventsFromText_DeadlineWithTime(t *testing.T) {
	events := EventsFromText("Math hw due! Jan 8th @ 2:30pm", Options{Year: 2025, IDs: &ident.Sequence{}})
	if len(events) != 1 {
		t.Fatalf("EventsFromText() returned %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Date != "2026-01-08" {
		t.Errorf("date = %q, want 2026-01-08 (academic rollover)", ev.Date)
	}
	if ev.Type != models.EventDeadline {
		t.Errorf("type = %q, want deadline", ev.Type)
	}
	if ev.StartTime != "14:30" {
		t.Errorf("start time = %q, want 14:30", ev.StartTime)
	}
	if ev.EndTime != "" {
		t.Errorf("end time = %q, want empty for a single time mention", ev.EndTime)
	}
	if ev.Title != "Course Assignment Due" {
		t.Errorf("title = %q", ev.Title)
	}
	if !ev.Selected {
		t.Error("deadline should be selected")
	}
	if ev.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", ev.Confidence)
	}
	if ev.Source != models.SourceLineScan {
		t.Errorf("source = %q, want line-scan", ev.Source)
	}
}

func TestEventsFromText_DefaultTimes(t *testing.T) {
	events := EventsFromText("Guest speaker on Sep 14", Options{Year: 2023, IDs: &ident.Sequence{}})
	if len(events) != 1 {
		t.Fatalf("EventsFromText() returned %d events, want 1", len(events))
	}
	if events[0].StartTime != "09:00" || events[0].EndTime != "10:00" {
		t.Errorf("times = %s-%s, want defaults 09:00-10:00", events[0].StartTime, events[0].EndTime)
	}
	if events[0].Type != models.EventGeneric {
		t.Errorf("type = %q, want event", events[0].Type)
	}
}

func TestEventsFromText_DedupByDateAndCategory(t *testing.T) {
	text := "Exam on Oct 25\n\nExam reminder: Oct 25\n\nAssignment due Oct 25"
	events := EventsFromText(text, Options{Year: 2023, IDs: &ident.Sequence{}})

	// Same date: one exam (first mention wins), but a different category on
	// the same date is kept.
	var exams, deadlines int
	for _, ev := range events {
		switch ev.Type {
		case models.EventExam:
			exams++
		case models.EventDeadline:
			deadlines++
		}
	}
	if exams != 1 {
		t.Errorf("exam events = %d, want 1", exams)
	}
	if deadlines != 1 {
		t.Errorf("deadline events = %d, want 1", deadlines)
	}
}

func TestEventsFromText_SortedByDate(t *testing.T) {
	text := "Final exam Dec 12\nFirst class Sep 6\nEssay due Oct 3"
	events := EventsFromText(text, Options{Year: 2023, IDs: &ident.Sequence{}})
	if len(events) != 3 {
		t.Fatalf("EventsFromText() returned %d events, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date < events[i-1].Date {
			t.Errorf("events out of order: %q before %q", events[i-1].Date, events[i].Date)
		}
	}
	if events[0].Date != "2023-09-06" {
		t.Errorf("first date = %q, want 2023-09-06", events[0].Date)
	}
}

func TestEventsFromText_ContextWindowSpansNeighborLines(t *testing.T) {
	// The category keyword sits on the line above the date.
	text := "Midterm exam information:\nheld on Oct 25 in the usual room"
	events := EventsFromText(text, Options{Year: 2023, CourseName: "BUS254", IDs: &ident.Sequence{}})
	if len(events) != 1 {
		t.Fatalf("EventsFromText() returned %d events, want 1", len(events))
	}
	if events[0].Type != models.EventExam {
		t.Errorf("type = %q, want exam via context window", events[0].Type)
	}
	if events[0].Title != "BUS254 Midterm Exam" {
		t.Errorf("title = %q", events[0].Title)
	}
}

func TestEventsFromText_Empty(t *testing.T) {
	events := EventsFromText("", Options{Year: 2023, IDs: &ident.Sequence{}})
	if len(events) != 0 {
		t.Errorf("EventsFromText(\"\") returned %d events, want 0", len(events))
	}
	if events == nil {
		t.Error("EventsFromText should return an empty slice, not nil")
	}
}

func TestEventsFromText_RepeatRunsProduceSameEvents(t *testing.T) {
	text := loadFixture(t, "bus254.txt")
	opts := Options{Year: 2023, CourseName: "BUS254"}

	a := EventsFromText(text, Options{Year: opts.Year, CourseName: opts.CourseName, IDs: &ident.Sequence{}})
	b := EventsFromText(text, Options{Year: opts.Year, CourseName: opts.CourseName, IDs: &ident.Sequence{}})

	if len(a) != len(b) {
		t.Fatalf("runs disagree on event count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Date != b[i].Date || a[i].Type != b[i].Type || a[i].Title != b[i].Title {
			t.Errorf("event %d differs between runs: (%s,%s,%s) vs (%s,%s,%s)",
				i, a[i].Date, a[i].Type, a[i].Title, b[i].Date, b[i].Type, b[i].Title)
		}
	}
}
