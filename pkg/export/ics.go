// Package export renders extracted events as an iCalendar (RFC 5545)
// document so they can be imported into any calendar application.
package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/smartsched/syllascan/models"
)

const productID = "-//syllascan//event export//EN"

// Calendar serializes events into an ICS payload. Events with a start time
// become timed VEVENTs (a missing end time gets a one-hour default block);
// events without one become all-day VEVENTs.
func Calendar(events []models.ExtractedEvent) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	now := time.Now().UTC()

	for _, ev := range events {
		day, err := time.ParseInLocation("2006-01-02", ev.Date, time.UTC)
		if err != nil {
			return "", fmt.Errorf("event %s has invalid date %q: %w", ev.ID, ev.Date, err)
		}

		vevent := cal.AddEvent(ev.ID)
		vevent.SetDtStampTime(now)
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		vevent.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(string(ev.Type)))

		if ev.StartTime == "" {
			vevent.SetAllDayStartAt(day)
			vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		start, err := clockOn(day, ev.StartTime)
		if err != nil {
			return "", fmt.Errorf("event %s has invalid start time %q: %w", ev.ID, ev.StartTime, err)
		}
		end := start.Add(time.Hour)
		if ev.EndTime != "" {
			end, err = clockOn(day, ev.EndTime)
			if err != nil {
				return "", fmt.Errorf("event %s has invalid end time %q: %w", ev.ID, ev.EndTime, err)
			}
		}

		vevent.SetStartAt(start)
		vevent.SetEndAt(end)
	}

	return cal.Serialize(), nil
}

// clockOn combines a calendar day with an HH:MM wall-clock time.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
