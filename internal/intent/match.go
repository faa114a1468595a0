package intent

import (
	"strings"

	"github.com/voicecal/voicecal/internal/calendar"
)

// FindMatch returns the first candidate whose lowercased title contains
// searchTitle as a substring, or is contained by it. Candidates are checked
// in the order supplied, which is the backend's chronological order, so ties
// are broken by list order.
//
// The bidirectional containment is deliberately permissive: it lets a partial
// utterance ("the meeting") match a fuller event title ("Team Meeting with
// Bob") and vice versa, at the cost of occasional false positives when events
// share vocabulary. An empty searchTitle is contained in any title and
// therefore matches the first candidate of a non-empty list.
//
// Returns nil when no candidate matches.
func FindMatch(events []calendar.EventRecord, searchTitle string) *calendar.EventRecord {
	needle := strings.ToLower(searchTitle)
	for i := range events {
		title := strings.ToLower(events[i].Title)
		if strings.Contains(title, needle) || strings.Contains(needle, title) {
			return &events[i]
		}
	}
	return nil
}
