package models

// DocumentMetadata describes what was learned about the source document,
// either supplied by the caller or inferred from the text itself.
type DocumentMetadata struct {
	CourseName    string  `json:"course_name,omitempty" yaml:"course_name,omitempty"`
	Semester      string  `json:"semester,omitempty" yaml:"semester,omitempty"`
	Year          int     `json:"year,omitempty" yaml:"year,omitempty"`
	Language      string  `json:"language,omitempty" yaml:"language,omitempty"`
	SyllabusScore float64 `json:"syllabus_score" yaml:"syllabus_score"`
}

// TextResult is the contract with the upstream text-acquisition collaborator.
// The pipeline does not care whether the text came from a PDF byte stream,
// an HTML page, or an OCR dump; it only requires a UTF-8 blob.
type TextResult struct {
	Success bool   `json:"success" yaml:"success"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ProcessResult is the envelope returned by the full extraction pipeline.
// An empty Events slice with Success=true is a valid zero-result outcome,
// distinct from failure.
type ProcessResult struct {
	Success    bool              `json:"success" yaml:"success"`
	Events     []ExtractedEvent  `json:"events" yaml:"events"`
	Metadata   *DocumentMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	TotalFound int               `json:"total_found" yaml:"total_found"`
	Warnings   []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error      *ErrorInfo        `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewFailureResult builds a failed ProcessResult with the given error type
// and message.
func NewFailureResult(errType, message string, actions ...string) ProcessResult {
	return ProcessResult{
		Success: false,
		Events:  []ExtractedEvent{},
		Error: &ErrorInfo{
			Type:             errType,
			Message:          message,
			SuggestedActions: actions,
		},
	}
}
