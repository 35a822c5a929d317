// Package scan recognizes calendar-date and time-of-day tokens in free text.
// All matching is stateless find-all matching; recognizers hold no cursor
// state between calls.
package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// YearPolicy controls how a date with no explicit year is resolved against
// the reference year.
type YearPolicy int

const (
	// YearAcademic applies the academic-year rollover rule: the reference
	// year names the start of the term, so months Jan-Apr belong to the
	// spring term of the following calendar year.
	YearAcademic YearPolicy = iota

	// YearFixed uses the reference year as-is.
	YearFixed
)

// DateMatch is a recognized calendar date within a span of text.
type DateMatch struct {
	Date string // fully resolved, zero-padded YYYY-MM-DD
	Text string // the matched substring

	start int
	end   int
}

// Month name alternation shared by the word-form patterns. Full names and
// 3-letter abbreviations, optionally followed by a period.
const monthNames = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var (
	// "Sep 6", "September 6th, 2023"
	monthDayRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)

	// "6 Sep", "25 October 2023"
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\.?(?:,?\s+(\d{4}))?\b`)

	// "2023-09-06"
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	// "09/06/2023", "9/6/23"
	usDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
)

var monthTable = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthNumber resolves a month name or abbreviation to 1-12. Trailing
// periods are stripped and the name is truncated to three characters, so
// "Sept.", "september" and "sep" all resolve to 9.
func MonthNumber(name string) (int, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(name, ".", ""))
	if len(normalized) > 3 {
		normalized = normalized[:3]
	}
	m, ok := monthTable[normalized]
	return m, ok
}

// FindDates scans a text span for calendar-date tokens and normalizes each
// to a resolved ISO date. Surface forms are tried in priority order
// (Month Day, Day Month, ISO, US); a lower-priority form never claims text
// already matched by a higher-priority one. Candidates that fail validation
// (day outside 1-31, unrecognized month) are silently skipped. Day values
// are not validated per month; "Feb 31" is accepted as a raw token.
func FindDates(span string, refYear int, policy YearPolicy) []DateMatch {
	var matches []DateMatch

	claimed := func(start, end int) bool {
		for _, m := range matches {
			if start < m.end && end > m.start {
				return true
			}
		}
		return false
	}

	add := func(start, end, month, day, year int) {
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return
		}
		if claimed(start, end) {
			return
		}
		if year == 0 {
			year = resolveYear(month, refYear, policy)
		}
		matches = append(matches, DateMatch{
			Date:  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Text:  span[start:end],
			start: start,
			end:   end,
		})
	}

	// Form 1: Month Day [Year]
	for _, idx := range monthDayRe.FindAllStringSubmatchIndex(span, -1) {
		month, ok := MonthNumber(group(span, idx, 1))
		if !ok {
			continue
		}
		day := atoi(group(span, idx, 2))
		year := atoi(group(span, idx, 3))
		add(idx[0], idx[1], month, day, year)
	}

	// Form 2: Day Month [Year]
	for _, idx := range dayMonthRe.FindAllStringSubmatchIndex(span, -1) {
		day := atoi(group(span, idx, 1))
		month, ok := MonthNumber(group(span, idx, 2))
		if !ok {
			continue
		}
		year := atoi(group(span, idx, 3))
		add(idx[0], idx[1], month, day, year)
	}

	// Form 3: ISO YYYY-MM-DD
	for _, idx := range isoDateRe.FindAllStringSubmatchIndex(span, -1) {
		year := atoi(group(span, idx, 1))
		month := atoi(group(span, idx, 2))
		day := atoi(group(span, idx, 3))
		add(idx[0], idx[1], month, day, year)
	}

	// Form 4: US M/D/YY[YY]
	for _, idx := range usDateRe.FindAllStringSubmatchIndex(span, -1) {
		month := atoi(group(span, idx, 1))
		day := atoi(group(span, idx, 2))
		year := atoi(group(span, idx, 3))
		if year < 100 {
			year += 2000
		}
		add(idx[0], idx[1], month, day, year)
	}

	// Present matches in the order they appear in the span regardless of
	// which form recognized them.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].start < matches[j-1].start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	return matches
}

// resolveYear applies the academic-year rollover rule: given a reference
// year naming the start of a term, months Jan-Apr fall in the spring term
// of the following calendar year.
func resolveYear(month, refYear int, policy YearPolicy) int {
	if policy == YearAcademic && month >= 1 && month <= 4 {
		return refYear + 1
	}
	return refYear
}

// group returns the text of the nth submatch from a SubmatchIndex result,
// or "" when the group did not participate in the match.
func group(s string, idx []int, n int) string {
	lo, hi := idx[2*n], idx[2*n+1]
	if lo < 0 {
		return ""
	}
	return s[lo:hi]
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
