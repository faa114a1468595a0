// Package calendar provides the Google Calendar backend client used by the
// voice assistant.
//
// The package wraps google.golang.org/api/calendar/v3 behind the small
// Backend interface (list, insert, delete) that the intent pipeline needs.
// Listing always expands recurring events into single instances and orders
// them chronologically, which the event matcher relies on for its
// first-match-wins tie breaking.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	start, end := intent.DayRange(time.Now(), loc)
//	events, err := client.ListEvents(ctx, "primary", start, end)
package calendar
