// Package models defines the shared data structures for extraction results,
// runtime options, and CLI response envelopes.
package models

// EventType classifies an extracted event. Categories are checked by the
// classifier in a fixed priority order; EventGeneric is the unclassified
// fallback.
type EventType string

const (
	EventExam     EventType = "exam"
	EventDeadline EventType = "deadline"
	EventLecture  EventType = "lecture"
	EventHoliday  EventType = "holiday"
	EventGeneric  EventType = "event"
)

// Source records which extraction pass produced an event. It is provenance
// for audit and debugging only; merge precedence is keyed on date, not source.
type Source string

const (
	SourceSyllabusTable Source = "syllabus-table"
	SourceLineScan      Source = "line-scan"
)

// ExtractedEvent is the unit of extraction output. Date is always a fully
// resolved YYYY-MM-DD string; StartTime/EndTime are 24-hour HH:MM or empty,
// an empty EndTime meaning a point-in-time or day-long event.
type ExtractedEvent struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Date        string    `json:"date" yaml:"date"`
	StartTime   string    `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Type        EventType `json:"type" yaml:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Source      Source    `json:"source" yaml:"source"`
	Confidence  float64   `json:"confidence" yaml:"confidence"`
	Selected    bool      `json:"selected" yaml:"selected"`
}
