package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/smartsched/syllascan/models"
)

var (
	// Text in PDF content streams lives between BT (begin text) and ET
	// (end text) operators.
	textBlockRe = regexp.MustCompile(`(?s)BT(.*?)ET`)

	// (string) Tj, show text
	tjRe = regexp.MustCompile(`\(([^)]*)\)\s*Tj`)

	// [(a) -120 (b)] TJ, show text with positioning
	tjArrayRe = regexp.MustCompile(`\[([^\]]*)\]\s*TJ`)
	parenRe   = regexp.MustCompile(`\(([^)]*)\)`)

	// Sequences of printable characters, for the fallback path.
	readableRe   = regexp.MustCompile(`[\x20-\x7E]{10,}`)
	nonPrintable = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// PDF extracts text from a PDF file by scraping show-text operators out of
// the decoded page content streams. This handles the text-based PDFs course
// syllabi typically are; scanned image PDFs yield no text here and belong
// to the OCR path instead.
func PDF(path string) models.TextResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return failure(fmt.Sprintf("failed to read %s: %v", path, err))
	}
	rs := bytes.NewReader(data)

	pageCount, err := api.PageCount(rs, nil)
	if err != nil {
		return failure(fmt.Sprintf("not a readable PDF: %v", err))
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return failure(fmt.Sprintf("failed to rewind PDF reader: %v", err))
	}

	var blocks []string
	ctx, err := api.ReadValidateAndOptimize(rs, model.NewDefaultConfiguration())
	for page := 1; ctx != nil && err == nil && page <= pageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil || r == nil {
			// Best-effort: a page with an unreadable content stream is
			// skipped, not fatal.
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		if text := scrapeContentStream(string(content)); text != "" {
			blocks = append(blocks, text)
		}
	}

	text := strings.TrimSpace(strings.Join(blocks, "\n"))
	if text == "" {
		// Some PDFs store text outside recognizable BT/ET blocks; fall
		// back to harvesting readable strings from the raw bytes.
		text = readableText(string(data))
	}
	if text == "" {
		return failure("no text content found in PDF")
	}

	return models.TextResult{Success: true, Text: text}
}

// scrapeContentStream pulls display text out of one page's content stream:
// Tj and TJ operator arguments inside BT/ET blocks, one output line per
// block.
func scrapeContentStream(stream string) string {
	var lines []string

	for _, block := range textBlockRe.FindAllStringSubmatch(stream, -1) {
		var parts []string

		for _, m := range tjRe.FindAllStringSubmatch(block[1], -1) {
			if t := cleanPDFText(m[1]); t != "" {
				parts = append(parts, t)
			}
		}
		for _, m := range tjArrayRe.FindAllStringSubmatch(block[1], -1) {
			for _, inner := range parenRe.FindAllStringSubmatch(m[1], -1) {
				if t := cleanPDFText(inner[1]); t != "" {
					parts = append(parts, t)
				}
			}
		}

		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}

	return strings.Join(lines, "\n")
}

var pdfUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
	`\(`, "(",
	`\)`, ")",
	`\\`, `\`,
)

// cleanPDFText undoes PDF string escape sequences and strips non-printable
// characters.
func cleanPDFText(s string) string {
	s = pdfUnescaper.Replace(s)
	s = nonPrintable.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// readableText harvests printable character runs that look like prose,
// filtering out binary-looking strings (less than half letters).
func readableText(content string) string {
	var kept []string
	for _, run := range readableRe.FindAllString(content, -1) {
		letters := 0
		for _, r := range run {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				letters++
			}
		}
		if letters*2 > len(run) {
			kept = append(kept, strings.TrimSpace(run))
		}
	}
	return strings.Join(kept, "\n")
}
