package speech

import "fmt"

// Fixed messages for the failure classes. These are spoken verbatim; raw
// error detail never reaches the caller's ears.
const (
	// MsgMissingEventText is spoken when a create/delete request carries no text.
	MsgMissingEventText = "I didn't catch that. Please tell me what you'd like to do with your calendar."

	// MsgMissingDateText is spoken when a query request carries no text.
	MsgMissingDateText = "I didn't catch that. Please tell me which day you'd like to hear about."

	// MsgUnparsableDate is spoken when no temporal expression was recognized.
	MsgUnparsableDate = "Sorry, I couldn't understand the date you mentioned. Please try again."

	// MsgBackendFailure is spoken on any calendar backend error.
	MsgBackendFailure = "Sorry, I couldn't reach your calendar right now. Please try again in a moment."
)

// NoMatch names the searched title and date when a deletion found nothing.
func NoMatch(searchTitle, dateContext string) string {
	if searchTitle == "" {
		return fmt.Sprintf("I couldn't find an event to remove for %s.", dateContext)
	}
	return fmt.Sprintf("I couldn't find an event matching %q for %s.", searchTitle, dateContext)
}
