package speech

import (
	"fmt"
	"strings"
	"time"

	"github.com/voicecal/voicecal/internal/calendar"
)

// Clock and date layouts for spoken output. 12-hour clock with AM/PM,
// rendered in the display timezone.
const (
	clockLayout  = "3:04 PM"
	dateLayout   = "Monday, January 2"
	allDayLayout = "2006-01-02"
	spokenAt     = "%s at %s. "
)

// FormatEventList renders a list of events into one spoken sentence.
// dateContext is the caller's wording for the day ("today", "tomorrow",
// "next Friday"). Zero events yields a fixed sentence without iterating.
func FormatEventList(events []calendar.EventRecord, dateContext string, loc *time.Location) string {
	if len(events) == 0 {
		return fmt.Sprintf("You have no events scheduled for %s.", dateContext)
	}

	noun := "events"
	if len(events) == 1 {
		noun = "event"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d %s scheduled for %s: ", len(events), noun, dateContext)
	for _, e := range events {
		fmt.Fprintf(&b, spokenAt, e.Title, eventTime(e, loc))
	}
	return strings.TrimSpace(b.String())
}

// eventTime formats the spoken time slot for one event. All-day events have
// no time-of-day component, so the date-only field is formatted instead.
func eventTime(e calendar.EventRecord, loc *time.Location) string {
	if e.AllDay {
		if d, err := time.ParseInLocation(allDayLayout, e.StartDate, loc); err == nil {
			return d.Format(dateLayout)
		}
		return e.StartDate
	}
	return e.Start.In(loc).Format(clockLayout)
}

// Created confirms a successful event creation.
func Created(title string, start time.Time, loc *time.Location) string {
	local := start.In(loc)
	return fmt.Sprintf("OK, I've added %q to your calendar on %s at %s.",
		title, local.Format(dateLayout), local.Format(clockLayout))
}

// Deleted confirms a successful event deletion.
func Deleted(title string) string {
	return fmt.Sprintf("OK, I've removed %q from your calendar.", title)
}
