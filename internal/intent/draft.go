package intent

import (
	"time"

	"github.com/voicecal/voicecal/internal/calendar"
)

// defaultEventDuration is used when an expression carries no end time.
const defaultEventDuration = time.Hour

// BuildDraft converts a title and a parsed temporal expression into an event
// creation payload. When the expression has no end instant the draft ends
// exactly one hour after it starts. Title emptiness is not validated here;
// that is a caller concern.
func BuildDraft(title string, expr Expression, timeZone string) calendar.EventDraft {
	end := expr.Start.Add(defaultEventDuration)
	if expr.End != nil {
		end = *expr.End
	}
	return calendar.EventDraft{
		Title:    title,
		Start:    expr.Start,
		End:      end,
		TimeZone: timeZone,
	}
}
