package extract

import "github.com/smartsched/syllascan/models"

// Merge combines syllabus-table output (primary) with line-scan output
// (secondary). The primary list is kept verbatim; a secondary event is
// appended only when its date does not already appear among primary dates.
// The precedence key is the date alone: a secondary event sharing a date
// with a primary event of a different type is still dropped. The combined
// list is stable-sorted ascending by date.
func Merge(primary, secondary []models.ExtractedEvent) []models.ExtractedEvent {
	merged := make([]models.ExtractedEvent, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)

	taken := make(map[string]bool, len(primary))
	for _, ev := range primary {
		taken[ev.Date] = true
	}

	for _, ev := range secondary {
		if taken[ev.Date] {
			continue
		}
		taken[ev.Date] = true
		merged = append(merged, ev)
	}

	sortByDate(merged)
	return merged
}
