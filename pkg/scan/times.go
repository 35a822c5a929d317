package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// TimeSpan is a normalized 24-hour time range. End is empty when only a
// single time was mentioned.
type TimeSpan struct {
	Start string // HH:MM
	End   string // HH:MM or empty
}

// "10:30am", "4:30-6:20 pm", "6pm-8pm", "14:30"
var timeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?(?:\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?)?\b`)

// FindTime returns the first time-of-day or time-range mention in the span.
// A bare number only counts as a time when minutes or a meridiem marker are
// present, so day numbers like "Jan 8th" are not mistaken for hours. Without
// a meridiem marker the hour is taken as given (ambiguous 24-hour
// assumption, not corrected). Only the first match is used; multiple time
// mentions in one span are not aggregated.
func FindTime(span string) (TimeSpan, bool) {
	for _, idx := range timeRe.FindAllStringSubmatchIndex(span, -1) {
		startHour := atoi(group(span, idx, 1))
		startMin := group(span, idx, 2)
		startPeriod := group(span, idx, 3)
		endHour := group(span, idx, 4)
		endMin := group(span, idx, 5)
		endPeriod := group(span, idx, 6)

		// Require a qualifying signal somewhere in the match.
		if startMin == "" && startPeriod == "" && endPeriod == "" {
			continue
		}

		start, ok := normalizeClock(startHour, startMin, startPeriod)
		if !ok {
			continue
		}

		ts := TimeSpan{Start: start}
		if endHour != "" {
			if end, ok := normalizeClock(atoi(endHour), endMin, endPeriod); ok {
				ts.End = end
			}
		}
		return ts, true
	}

	return TimeSpan{}, false
}

// normalizeClock converts an hour/minute/meridiem triple to HH:MM. Hour 12
// with "am" becomes 0; any other hour with "pm" gains 12. Missing minutes
// default to 00.
func normalizeClock(hour int, minute, period string) (string, bool) {
	switch strings.ToLower(period) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 23 {
		return "", false
	}

	min := 0
	if minute != "" {
		min = atoi(minute)
	}
	if min > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, min), true
}
