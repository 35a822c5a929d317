package detect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Candidate languages for the gate. The set is small on purpose: the gate
// only needs to tell "clearly not English" from "English or unclear", and
// fewer candidates keeps the model footprint down.
func buildDetector() {
	detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.German,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.Chinese,
		).
		Build()
}

// Language reports the detected document language and whether extraction
// can rely on English month names. Short or inconclusive input is treated
// as English rather than blocking extraction.
func Language(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 40 {
		return "", true
	}

	detectorOnce.Do(buildDetector)

	lang, ok := detector.DetectLanguageOf(trimmed)
	if !ok {
		return "", true
	}
	return lang.String(), lang == lingua.English
}
