package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smartsched/syllascan/models"
)

// Run represents a recorded extraction run.
type Run struct {
	RunID         int64
	DocumentID    int64
	CreatedAt     time.Time
	Path          string
	Kind          string
	CourseName    string
	Semester      string
	Year          int
	Language      string
	SyllabusScore float64
	EventCount    int
	TableCount    int
	LineScanCount int
	Warnings      []string
}

// RunCounts carries the per-extractor event counts recorded with a run.
type RunCounts struct {
	Merged   int
	Table    int
	LineScan int
}

// InsertDocument inserts a document row, returning the document_id. A
// document with the same content hash reuses the existing row (the path is
// updated, since the same content may be processed from a new location).
func (db *DB) InsertDocument(path, contentHash, kind string, sizeBytes int64) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE content_hash = ?", contentHash).Scan(&existingID)
	if err == nil {
		if _, err := db.Exec("UPDATE documents SET path = ? WHERE document_id = ?", path, existingID); err != nil {
			return 0, fmt.Errorf("failed to update document path: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (path, content_hash, kind, size_bytes)
		VALUES (?, ?, ?, ?)
	`, path, contentHash, kind, sizeBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	documentID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}

	return documentID, nil
}

// CreateRun records an extraction run and its merged event list. Events are
// stored in their final sorted order so retrieval reproduces the run output
// exactly.
func (db *DB) CreateRun(documentID int64, meta *models.DocumentMetadata, counts RunCounts, warnings []string, events []models.ExtractedEvent) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	courseName, semester, language := "", "", ""
	year := 0
	score := 0.0
	if meta != nil {
		courseName = meta.CourseName
		semester = meta.Semester
		year = meta.Year
		language = meta.Language
		score = meta.SyllabusScore
	}

	result, err := tx.Exec(`
		INSERT INTO runs (document_id, course_name, semester, year, language, syllabus_score,
		                  event_count, table_count, linescan_count, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, documentID, courseName, semester, year, language, score,
		counts.Merged, counts.Table, counts.LineScan, strings.Join(warnings, "\n"))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for i, ev := range events {
		_, err := tx.Exec(`
			INSERT INTO run_events (run_id, position, ext_id, title, date, start_time, end_time,
			                        type, description, source, confidence, selected)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, i, ev.ID, ev.Title, ev.Date, nullable(ev.StartTime), nullable(ev.EndTime),
			string(ev.Type), ev.Description, string(ev.Source), ev.Confidence, ev.Selected)
		if err != nil {
			return 0, fmt.Errorf("failed to insert event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetRunByID returns one recorded run with its document info.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT r.run_id, r.document_id, r.created_at, d.path, d.kind,
		       r.course_name, r.semester, r.year, r.language, r.syllabus_score,
		       r.event_count, r.table_count, r.linescan_count, r.warnings
		FROM runs r
		JOIN documents d ON d.document_id = r.document_id
		WHERE r.run_id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT r.run_id, r.document_id, r.created_at, d.path, d.kind,
		       r.course_name, r.semester, r.year, r.language, r.syllabus_score,
		       r.event_count, r.table_count, r.linescan_count, r.warnings
		FROM runs r
		JOIN documents d ON d.document_id = r.document_id
		ORDER BY r.created_at DESC, r.run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunEvents returns the merged event list of a run in its original
// sorted order.
func (db *DB) GetRunEvents(runID int64) ([]models.ExtractedEvent, error) {
	rows, err := db.Query(`
		SELECT ext_id, title, date, start_time, end_time, type, description, source, confidence, selected
		FROM run_events
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run events: %w", err)
	}
	defer rows.Close()

	var events []models.ExtractedEvent
	for rows.Next() {
		var ev models.ExtractedEvent
		var evType, source string
		var startTime, endTime sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &startTime, &endTime,
			&evType, &ev.Description, &source, &ev.Confidence, &ev.Selected); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.StartTime = startTime.String
		ev.EndTime = endTime.String
		ev.Type = models.EventType(evType)
		ev.Source = models.Source(source)
		events = append(events, ev)
	}

	return events, rows.Err()
}

// LatestRunID returns the ID of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY created_at DESC, run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no runs recorded yet. Run 'syllascan process <file>' first")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var warnings string
	err := s.Scan(&run.RunID, &run.DocumentID, &run.CreatedAt, &run.Path, &run.Kind,
		&run.CourseName, &run.Semester, &run.Year, &run.Language, &run.SyllabusScore,
		&run.EventCount, &run.TableCount, &run.LineScanCount, &warnings)
	if err != nil {
		return nil, err
	}
	if warnings != "" {
		run.Warnings = strings.Split(warnings, "\n")
	}
	return &run, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
