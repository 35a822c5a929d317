// Package ingest acquires raw text from documents. The extraction core does
// not care where text comes from; everything here returns the same
// models.TextResult contract whether the source is a PDF byte stream, an
// HTML page, or a plain text / OCR dump.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smartsched/syllascan/models"
)

// FromFile reads a document and returns its raw text, dispatching on the
// file extension. Unknown extensions are treated as UTF-8 text.
func FromFile(path string) models.TextResult {
	info, err := os.Stat(path)
	if err != nil {
		return failure(fmt.Sprintf("cannot access %s: %v", path, err))
	}
	if info.IsDir() {
		return failure(fmt.Sprintf("%s is a directory, not a document", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(path)
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return failure(fmt.Sprintf("failed to read %s: %v", path, err))
		}
		return HTML(string(data))
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return failure(fmt.Sprintf("failed to read %s: %v", path, err))
		}
		return models.TextResult{Success: true, Text: string(data)}
	}
}

// Kind reports the document kind recorded with a run.
func Kind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "pdf"
	case ".html", ".htm":
		return "html"
	default:
		return "text"
	}
}

func failure(msg string) models.TextResult {
	return models.TextResult{Success: false, Error: msg}
}
