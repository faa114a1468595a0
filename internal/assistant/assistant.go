package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/voicecal/voicecal/internal/calendar"
	"github.com/voicecal/voicecal/internal/instrumentation"
	"github.com/voicecal/voicecal/internal/intent"
	"github.com/voicecal/voicecal/internal/logging"
	"github.com/voicecal/voicecal/internal/speech"
)

// Result classes recorded per intent resolution.
const (
	ResultSuccess        = "success"
	ResultMissingInput   = "missing_input"
	ResultUnparsableDate = "unparsable_date"
	ResultNoMatch        = "no_match"
	ResultBackendFailure = "backend_failure"
)

// Config is the immutable per-process configuration for the assistant.
// It is constructed once at startup and passed in explicitly; nothing here
// changes after construction, so no locking is needed.
type Config struct {
	// CalendarID is the single calendar all operations target.
	CalendarID string

	// Timezone is the display timezone for day boundaries and formatting.
	Timezone *time.Location

	// TimezoneLabel is the IANA name attached to event drafts.
	TimezoneLabel string
}

// Outcome is the result of one resolved intent.
type Outcome struct {
	// Spoken is the sentence for voice playback; always populated.
	Spoken string

	// Result is one of the Result* classes, for observability.
	Result string

	// Err carries the backend error on ResultBackendFailure, nil otherwise.
	// It is surfaced as a debug field only, never spoken.
	Err error
}

// Assistant executes the voice intents. It holds only read-only state and is
// safe for concurrent use; each call is an independent request-scoped
// pipeline.
type Assistant struct {
	cfg     Config
	backend calendar.Backend
	parser  *intent.Parser
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// New creates an Assistant. logger and metrics may be nil, in which case the
// default logger and a no-op recorder are used.
func New(cfg Config, backend calendar.Backend, parser *intent.Parser, logger *slog.Logger, metrics *instrumentation.Metrics) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Assistant{
		cfg:     cfg,
		backend: backend,
		parser:  parser,
		logger:  logger,
		metrics: metrics,
	}
}

// Create resolves a creation utterance and inserts the event.
func (a *Assistant) Create(ctx context.Context, eventText string) Outcome {
	if eventText == "" {
		return a.done(ctx, "create", Outcome{Spoken: speech.MsgMissingEventText, Result: ResultMissingInput})
	}

	exprs := a.parser.ParseAt(eventText, a.now())
	if len(exprs) == 0 {
		return a.done(ctx, "create", Outcome{Spoken: speech.MsgUnparsableDate, Result: ResultUnparsableDate})
	}

	title := intent.ExtractTitle(eventText, exprs)
	draft := intent.BuildDraft(title, exprs[0], a.cfg.TimezoneLabel)

	start := time.Now()
	_, err := a.backend.InsertEvent(ctx, a.cfg.CalendarID, draft)
	a.metrics.RecordCalendarOperation(ctx, "insert", statusOf(err), time.Since(start))
	if err != nil {
		return a.done(ctx, "create", Outcome{Spoken: speech.MsgBackendFailure, Result: ResultBackendFailure, Err: err})
	}

	return a.done(ctx, "create", Outcome{
		Spoken: speech.Created(title, draft.Start, a.cfg.Timezone),
		Result: ResultSuccess,
	})
}

// Query resolves a date utterance and lists that day's events.
func (a *Assistant) Query(ctx context.Context, dateText string) Outcome {
	if dateText == "" {
		return a.done(ctx, "query", Outcome{Spoken: speech.MsgMissingDateText, Result: ResultMissingInput})
	}

	target := a.now()
	dateContext := "today"
	if exprs := a.parser.ParseAt(dateText, target); len(exprs) > 0 {
		target = exprs[0].Start
		dateContext = strings.TrimSpace(exprs[0].Text)
	}

	events, outcome := a.listDay(ctx, "query", target)
	if outcome != nil {
		return *outcome
	}

	return a.done(ctx, "query", Outcome{
		Spoken: speech.FormatEventList(events, dateContext, a.cfg.Timezone),
		Result: ResultSuccess,
	})
}

// Delete resolves a deletion utterance, finds the best matching event on the
// target day, and removes it. Without a temporal expression the target day
// defaults to today.
func (a *Assistant) Delete(ctx context.Context, eventText string) Outcome {
	if eventText == "" {
		return a.done(ctx, "delete", Outcome{Spoken: speech.MsgMissingEventText, Result: ResultMissingInput})
	}

	target := a.now()
	exprs := a.parser.ParseAt(eventText, target)
	dateContext := "today"
	if len(exprs) > 0 {
		target = exprs[0].Start
		dateContext = strings.TrimSpace(exprs[0].Text)
	}
	searchTitle := intent.NormalizeSearchTitle(eventText, exprs)

	events, outcome := a.listDay(ctx, "delete", target)
	if outcome != nil {
		return *outcome
	}

	match := intent.FindMatch(events, searchTitle)
	if match == nil {
		return a.done(ctx, "delete", Outcome{
			Spoken: speech.NoMatch(searchTitle, dateContext),
			Result: ResultNoMatch,
		})
	}

	start := time.Now()
	err := a.backend.DeleteEvent(ctx, a.cfg.CalendarID, match.ID)
	a.metrics.RecordCalendarOperation(ctx, "delete", statusOf(err), time.Since(start))
	if err != nil {
		return a.done(ctx, "delete", Outcome{Spoken: speech.MsgBackendFailure, Result: ResultBackendFailure, Err: err})
	}

	return a.done(ctx, "delete", Outcome{Spoken: speech.Deleted(match.Title), Result: ResultSuccess})
}

// Today lists the current day's events.
func (a *Assistant) Today(ctx context.Context) Outcome {
	events, outcome := a.listDay(ctx, "today", a.now())
	if outcome != nil {
		return *outcome
	}

	return a.done(ctx, "today", Outcome{
		Spoken: speech.FormatEventList(events, "today", a.cfg.Timezone),
		Result: ResultSuccess,
	})
}

// now is the reference instant for temporal resolution, in the display
// timezone. Parsing must happen in that zone: "tomorrow" and "noon" are
// calendar words, and the host's zone may disagree with the caller's.
func (a *Assistant) now() time.Time {
	return time.Now().In(a.cfg.Timezone)
}

// listDay fetches the events of the calendar day containing target. On
// backend failure it returns a terminal outcome for the caller to propagate.
func (a *Assistant) listDay(ctx context.Context, intentName string, target time.Time) ([]calendar.EventRecord, *Outcome) {
	rangeStart, rangeEnd := intent.DayRange(target, a.cfg.Timezone)

	start := time.Now()
	events, err := a.backend.ListEvents(ctx, a.cfg.CalendarID, rangeStart, rangeEnd)
	a.metrics.RecordCalendarOperation(ctx, "list", statusOf(err), time.Since(start))
	if err != nil {
		outcome := a.done(ctx, intentName, Outcome{Spoken: speech.MsgBackendFailure, Result: ResultBackendFailure, Err: err})
		return nil, &outcome
	}

	return events, nil
}

// done records the resolution and logs it before handing the outcome back.
func (a *Assistant) done(ctx context.Context, intentName string, outcome Outcome) Outcome {
	a.metrics.RecordIntentResolution(ctx, intentName, outcome.Result)

	logger := logging.WithIntent(a.logger, intentName)
	if outcome.Err != nil {
		logger.Error("calendar backend call failed",
			logging.CalendarID(a.cfg.CalendarID),
			logging.Err(outcome.Err),
		)
	} else {
		logger.Debug("intent resolved",
			logging.Status(outcome.Result),
		)
	}
	return outcome
}

func statusOf(err error) string {
	if err != nil {
		return logging.StatusError
	}
	return logging.StatusSuccess
}
