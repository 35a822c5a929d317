package extract

import (
	"fmt"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/detect"
	"github.com/smartsched/syllascan/pkg/ident"
)

// TextSource is the upstream collaborator contract: given an opaque document
// handle, return raw text or a failure.
type TextSource func(handle string) models.TextResult

// PipelineOptions configures a full extraction run. Zero-valued fields are
// filled in from document detection before extraction starts.
type PipelineOptions struct {
	CourseName string
	Semester   string
	Year       int
	IDs        ident.Generator
}

// Process runs both extraction passes over the same text and merges the
// results: syllabus-table events take precedence, line-scan events fill the
// remaining dates.
func Process(text string, opts PipelineOptions) []models.ExtractedEvent {
	tableEvents := Syllabus(text, SyllabusOptions{
		CourseName: opts.CourseName,
		Semester:   opts.Semester,
		Year:       opts.Year,
		IDs:        opts.IDs,
	})
	lineEvents := EventsFromText(text, Options{
		Year:       opts.Year,
		CourseName: opts.CourseName,
		IDs:        opts.IDs,
	})
	return Merge(tableEvents, lineEvents)
}

// ProcessDocument orchestrates a full run: obtain raw text from the source
// collaborator, fill in missing metadata from document detection, run both
// extractors, and merge. Upstream failure propagates as an unsuccessful
// result without attempting extraction; an empty event list with Success
// true is a valid zero-result outcome. Any unexpected internal fault is
// caught here and converted to a failure result rather than crossing the
// boundary as a panic.
func ProcessDocument(source TextSource, handle string, opts PipelineOptions) (result models.ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			result = models.NewFailureResult("internal_error", fmt.Sprintf("extraction failed: %v", r))
		}
	}()

	text := source(handle)
	if !text.Success {
		msg := text.Error
		if msg == "" {
			msg = "failed to extract text from document"
		}
		return models.NewFailureResult("text_unavailable", msg,
			"Check that the file exists and is a readable PDF, HTML, or text document")
	}

	info := detect.Analyze(text.Text)
	if opts.CourseName == "" {
		opts.CourseName = info.CourseName
	}
	if opts.Semester == "" {
		opts.Semester = info.Semester
	}
	if opts.Year == 0 {
		opts.Year = info.Year
	}

	result = models.ProcessResult{
		Success: true,
		Events:  Process(text.Text, opts),
		Metadata: &models.DocumentMetadata{
			CourseName:    opts.CourseName,
			Semester:      opts.Semester,
			Year:          opts.Year,
			SyllabusScore: info.SyllabusScore,
		},
	}
	result.TotalFound = len(result.Events)

	if lang, english := detect.Language(text.Text); !english {
		result.Metadata.Language = lang
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("document appears to be %s; date recognition only understands English month names", lang))
	} else {
		result.Metadata.Language = lang
	}

	return result
}
