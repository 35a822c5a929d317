package extract

import (
	"testing"

	"github.com/smartsched/syllascan/models"
)

func mkEvent(date string, typ models.EventType, source models.Source) models.ExtractedEvent {
	return models.ExtractedEvent{
		ID:     "test-" + date + "-" + string(typ),
		Title:  "Test",
		Date:   date,
		Type:   typ,
		Source: source,
	}
}

func TestMerge_PrimaryWinsOnSharedDate(t *testing.T) {
	primary := []models.ExtractedEvent{
		mkEvent("2023-10-25", models.EventExam, models.SourceSyllabusTable),
	}
	secondary := []models.ExtractedEvent{
		mkEvent("2023-10-25", models.EventDeadline, models.SourceLineScan),
		mkEvent("2023-11-01", models.EventDeadline, models.SourceLineScan),
	}

	merged := Merge(primary, secondary)
	if len(merged) != 2 {
		t.Fatalf("Merge() returned %d events, want 2", len(merged))
	}
	if merged[0].Source != models.SourceSyllabusTable {
		t.Errorf("shared date kept %q, want syllabus-table", merged[0].Source)
	}
	if merged[1].Date != "2023-11-01" {
		t.Errorf("unclaimed secondary date missing, got %q", merged[1].Date)
	}
}

func TestMerge_DateKeyIgnoresType(t *testing.T) {
	// A secondary event on a primary date is dropped even when its type
	// differs.
	primary := []models.ExtractedEvent{
		mkEvent("2023-10-25", models.EventLecture, models.SourceSyllabusTable),
	}
	secondary := []models.ExtractedEvent{
		mkEvent("2023-10-25", models.EventExam, models.SourceLineScan),
	}

	merged := Merge(primary, secondary)
	if len(merged) != 1 {
		t.Fatalf("Merge() returned %d events, want 1", len(merged))
	}
	if merged[0].Type != models.EventLecture {
		t.Errorf("kept type = %q, want the primary lecture", merged[0].Type)
	}
}

func TestMerge_SecondaryClaimsItsDates(t *testing.T) {
	secondary := []models.ExtractedEvent{
		mkEvent("2023-11-01", models.EventDeadline, models.SourceLineScan),
		mkEvent("2023-11-01", models.EventExam, models.SourceLineScan),
	}

	merged := Merge(nil, secondary)
	if len(merged) != 1 {
		t.Fatalf("Merge() returned %d events, want 1: an appended secondary event claims its date", len(merged))
	}
	if merged[0].Type != models.EventDeadline {
		t.Errorf("kept type = %q, want the first secondary event", merged[0].Type)
	}
}

func TestMerge_ResultSorted(t *testing.T) {
	primary := []models.ExtractedEvent{
		mkEvent("2023-12-15", models.EventExam, models.SourceSyllabusTable),
	}
	secondary := []models.ExtractedEvent{
		mkEvent("2023-09-06", models.EventGeneric, models.SourceLineScan),
	}

	merged := Merge(primary, secondary)
	if len(merged) != 2 {
		t.Fatalf("Merge() returned %d events, want 2", len(merged))
	}
	if merged[0].Date != "2023-09-06" || merged[1].Date != "2023-12-15" {
		t.Errorf("merge result not sorted: %q, %q", merged[0].Date, merged[1].Date)
	}
}

func TestMerge_Empty(t *testing.T) {
	if merged := Merge(nil, nil); len(merged) != 0 {
		t.Errorf("Merge(nil, nil) returned %d events, want 0", len(merged))
	}
}
