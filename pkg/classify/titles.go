package classify

import (
	"regexp"
	"strings"

	"github.com/smartsched/syllascan/models"
)

var (
	assignmentRe = regexp.MustCompile(`(?i)(?:assignment|homework|hw|project|essay|report)\s*#?\s*(\d+)?`)
	chapterRe    = regexp.MustCompile(`(?i)(?:topic|chapter|chap|ch\.?)[:\s]+([^,\n]+)`)

	// Secondary topic pattern: a capitalized phrase following a separator.
	genericTopicRe = regexp.MustCompile(`[:–-]\s*([A-Z][^|,\n]{5,50})`)
)

// Title derives a human-readable title from the category, course name, and
// context window. The course name defaults to "Course" when empty.
func Title(category models.EventType, course, window string) string {
	if course == "" {
		course = "Course"
	}
	lower := strings.ToLower(window)

	switch category {
	case models.EventExam:
		switch {
		case strings.Contains(lower, "midterm") || strings.Contains(lower, "mid-term"):
			return course + " Midterm Exam"
		case strings.Contains(lower, "final"):
			return course + " Final Exam"
		case strings.Contains(lower, "quiz"):
			return course + " Quiz"
		}
		return course + " Exam"

	case models.EventDeadline:
		if m := assignmentRe.FindStringSubmatch(window); m != nil {
			if m[1] != "" {
				return course + " Assignment " + m[1] + " Due"
			}
			return course + " Assignment Due"
		}
		return course + " Deadline"

	case models.EventLecture:
		if m := chapterRe.FindStringSubmatch(window); m != nil {
			return course + ": " + strings.TrimSpace(m[1])
		}
		if m := genericTopicRe.FindStringSubmatch(window); m != nil {
			return course + ": " + strings.TrimSpace(m[1])
		}
		return course + " Lecture"

	case models.EventHoliday:
		return "No Class - Holiday"
	}

	return course + " Event"
}
