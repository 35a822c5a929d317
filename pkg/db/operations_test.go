package db

import (
	"testing"

	"github.com/smartsched/syllascan/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleEvents() []models.ExtractedEvent {
	return []models.ExtractedEvent{
		{
			ID:          "syllabus-0001",
			Title:       "BUS254 Lecture: Intro",
			Date:        "2023-09-06",
			StartTime:   "10:30",
			EndTime:     "12:20",
			Type:        models.EventLecture,
			Description: "Week 1: Intro",
			Source:      models.SourceSyllabusTable,
			Confidence:  0.95,
		},
		{
			ID:         "syllabus-0002",
			Title:      "BUS254 Final Exam",
			Date:       "2023-12-15",
			Type:       models.EventExam,
			Source:     models.SourceSyllabusTable,
			Confidence: 0.70,
			Selected:   true,
		},
	}
}

func insertSampleRun(t *testing.T, db *DB) int64 {
	t.Helper()

	docID, err := db.InsertDocument("syllabus.pdf", "abc123", "pdf", 2048)
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	meta := &models.DocumentMetadata{
		CourseName:    "BUS254",
		Semester:      "Fall",
		Year:          2023,
		SyllabusScore: 10.0,
	}
	runID, err := db.CreateRun(docID, meta, RunCounts{Merged: 2, Table: 2}, []string{"a warning"}, sampleEvents())
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}
	return runID
}

func TestInsertDocument_DedupByHash(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id1, err := db.InsertDocument("a.pdf", "hash-1", "pdf", 100)
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	// Same content from a new path reuses the row and updates the path.
	id2, err := db.InsertDocument("b.pdf", "hash-1", "pdf", 100)
	if err != nil {
		t.Fatalf("InsertDocument() second call error = %v", err)
	}
	if id1 != id2 {
		t.Errorf("document IDs differ for same hash: %d vs %d", id1, id2)
	}

	var path string
	if err := db.QueryRow("SELECT path FROM documents WHERE document_id = ?", id1).Scan(&path); err != nil {
		t.Fatalf("failed to read back document: %v", err)
	}
	if path != "b.pdf" {
		t.Errorf("path = %q, want updated to b.pdf", path)
	}

	id3, err := db.InsertDocument("c.pdf", "hash-2", "pdf", 200)
	if err != nil {
		t.Fatalf("InsertDocument() third call error = %v", err)
	}
	if id3 == id1 {
		t.Error("different content should get a new document row")
	}
}

func TestCreateRun_Roundtrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID := insertSampleRun(t, db)

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.CourseName != "BUS254" {
		t.Errorf("CourseName = %q, want BUS254", run.CourseName)
	}
	if run.Semester != "Fall" || run.Year != 2023 {
		t.Errorf("semester/year = %s/%d, want Fall/2023", run.Semester, run.Year)
	}
	if run.EventCount != 2 || run.TableCount != 2 || run.LineScanCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/2/0", run.EventCount, run.TableCount, run.LineScanCount)
	}
	if run.Path != "syllabus.pdf" || run.Kind != "pdf" {
		t.Errorf("document = %s (%s), want syllabus.pdf (pdf)", run.Path, run.Kind)
	}
	if len(run.Warnings) != 1 || run.Warnings[0] != "a warning" {
		t.Errorf("warnings = %v, want [a warning]", run.Warnings)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	events, err := db.GetRunEvents(runID)
	if err != nil {
		t.Fatalf("GetRunEvents() error = %v", err)
	}
	want := sampleEvents()
	if len(events) != len(want) {
		t.Fatalf("GetRunEvents() returned %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestCreateRun_NilMetadata(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.InsertDocument("notes.txt", "hash-x", "text", 10)
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}

	runID, err := db.CreateRun(docID, nil, RunCounts{}, nil, nil)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.CourseName != "" || run.EventCount != 0 {
		t.Errorf("run = %+v, want empty metadata and zero counts", run)
	}
	if len(run.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", run.Warnings)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Error("GetRunByID() on empty database should fail")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := insertSampleRun(t, db)

	docID, err := db.InsertDocument("other.txt", "hash-other", "text", 10)
	if err != nil {
		t.Fatalf("InsertDocument() error = %v", err)
	}
	second, err := db.CreateRun(docID, nil, RunCounts{}, nil, nil)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	if runs[0].RunID != second || runs[1].RunID != first {
		t.Errorf("runs not newest-first: got [%d %d], want [%d %d]",
			runs[0].RunID, runs[1].RunID, second, first)
	}

	limited, err := db.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].RunID != second {
		t.Errorf("ListRuns(1) = %d runs starting at %d, want the latest run only", len(limited), limited[0].RunID)
	}
}

func TestLatestRunID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("LatestRunID() on empty database should fail")
	}

	runID := insertSampleRun(t, db)
	latest, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() error = %v", err)
	}
	if latest != runID {
		t.Errorf("LatestRunID() = %d, want %d", latest, runID)
	}
}

func TestCascadeDeleteRunEvents(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID := insertSampleRun(t, db)

	if _, err := db.Exec("DELETE FROM runs WHERE run_id = ?", runID); err != nil {
		t.Fatalf("failed to delete run: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM run_events WHERE run_id = ?", runID).Scan(&count); err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	if count != 0 {
		t.Errorf("run_events rows remaining = %d, want 0 after cascade delete", count)
	}
}
