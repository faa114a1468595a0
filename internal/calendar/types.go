package calendar

import (
	"context"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventDraft is the payload for creating a calendar event.
type EventDraft struct {
	// Title may be empty after title extraction; the backend accepts
	// untitled events.
	Title string

	Start time.Time
	End   time.Time

	// TimeZone is the display timezone label attached to both endpoints,
	// e.g. "America/New_York".
	TimeZone string
}

// EventRecord is an existing event as returned by the backend. All-day
// events carry only StartDate; timed events carry Start.
type EventRecord struct {
	ID    string
	Title string

	Start time.Time

	// StartDate is the YYYY-MM-DD date of an all-day event.
	StartDate string
	AllDay    bool
}

// Backend is the calendar surface the intent pipeline consumes. Client
// implements it against the Google Calendar API; tests substitute fakes.
type Backend interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]EventRecord, error)
	InsertEvent(ctx context.Context, calendarID string, draft EventDraft) (*EventRecord, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// toEventRecord converts a Google Calendar event to an EventRecord.
func toEventRecord(event *calendar.Event) EventRecord {
	if event == nil {
		return EventRecord{}
	}

	record := EventRecord{
		ID:    event.Id,
		Title: event.Summary,
	}

	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				record.Start = t
			}
		} else if event.Start.Date != "" {
			record.StartDate = event.Start.Date
			record.AllDay = true
		}
	}

	return record
}
