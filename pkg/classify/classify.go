// Package classify maps text context windows to event categories and
// synthesizes display titles.
package classify

import (
	"strings"

	"github.com/smartsched/syllascan/models"
)

// categoryRule pairs a category with the keywords that indicate it.
type categoryRule struct {
	category models.EventType
	keywords []string
}

// Category precedence is the order of this list, not map iteration order:
// the first rule with any keyword present wins.
var rules = []categoryRule{
	{models.EventExam, []string{"exam", "midterm", "mid-term", "final", "test", "quiz"}},
	{models.EventDeadline, []string{"due", "deadline", "submit", "submission", "assignment"}},
	{models.EventLecture, []string{"lecture", "class", "tutorial", "seminar", "lab"}},
	{models.EventHoliday, []string{"holiday", "break", "no class", "cancelled", "reading week"}},
}

// Categorize maps a context window to exactly one category. Matching is
// case-insensitive substring containment, not whole-word matching; the
// false-positive risk ("examine" matches "exam") is accepted. Returns
// EventGeneric when no keyword is present.
func Categorize(window string) models.EventType {
	lower := strings.ToLower(window)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return models.EventGeneric
}

// IsExamTopic reports whether a syllabus row topic marks an exam session.
// Syllabus rows use a narrower check than the full classifier: rows without
// exam markers are regular class sessions, not generic events.
func IsExamTopic(topic string) bool {
	lower := strings.ToLower(topic)
	return strings.Contains(lower, "exam") ||
		strings.Contains(lower, "midterm") ||
		strings.Contains(lower, "mid-term")
}
