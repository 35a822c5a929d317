// Package detect performs cheap signal detection on document text: course
// metadata inference, syllabus-likeness scoring, and a language gate for
// the English-only date recognizers.
package detect

import (
	"regexp"
	"strconv"
	"strings"
)

// DocumentInfo contains detection results for one document.
type DocumentInfo struct {
	CourseName string // e.g. "BUS254"; empty when no course code found
	Semester   string // Fall, Spring, Summer, Winter
	Year       int    // first plausible 4-digit year in the header, 0 if none

	// Syllabus signals
	WeekRowCount  int
	HasFinalExam  bool
	HasAssessment bool
	SyllabusScore float64 // 0-10 syllabus confidence
}

var (
	courseCodeRe = regexp.MustCompile(`\b([A-Z]{2,4})\s?(\d{3}[A-Z]?)\b`)
	semesterRe   = regexp.MustCompile(`(?i)\b(fall|spring|summer|winter)\b`)
	yearRe       = regexp.MustCompile(`\b(20\d{2})\b`)
	weekRowRe    = regexp.MustCompile(`(?im)^\s*(?:wk|week)\s*\d+\s*\|`)
	finalExamRe  = regexp.MustCompile(`(?i)\bfinal\s+exam\b`)
	assessmentRe = regexp.MustCompile(`(?i)\b(?:assessment|grading|weighting)\b`)
)

// Analyze scans document text for course metadata and syllabus signals.
// Detection is best-effort; callers treat zero values as "unknown" and any
// explicitly supplied option always wins over a detected one.
func Analyze(text string) *DocumentInfo {
	info := &DocumentInfo{}

	if m := courseCodeRe.FindStringSubmatch(text); m != nil {
		info.CourseName = m[1] + m[2]
	}
	if m := semesterRe.FindStringSubmatch(text); m != nil {
		info.Semester = strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	}
	if m := yearRe.FindStringSubmatch(text); m != nil {
		info.Year, _ = strconv.Atoi(m[1])
	}

	info.WeekRowCount = len(weekRowRe.FindAllString(text, -1))
	info.HasFinalExam = finalExamRe.MatchString(text)
	info.HasAssessment = assessmentRe.MatchString(text)
	info.SyllabusScore = info.score()

	return info
}

// score computes a 0-10 syllabus confidence from the detected signals.
func (info *DocumentInfo) score() float64 {
	score := 0.0
	if info.WeekRowCount > 0 {
		score += 3.0
		if info.WeekRowCount >= 5 {
			score += 1.5
		}
	}
	if info.HasFinalExam {
		score += 2.0
	}
	if info.HasAssessment {
		score += 1.0
	}
	if info.CourseName != "" {
		score += 1.5
	}
	if info.Semester != "" && info.Year != 0 {
		score += 1.0
	}
	if score > 10.0 {
		score = 10.0
	}
	return score
}
