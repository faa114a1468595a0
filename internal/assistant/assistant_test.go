package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicecal/voicecal/internal/calendar"
	"github.com/voicecal/voicecal/internal/intent"
	"github.com/voicecal/voicecal/internal/speech"
)

// fakeBackend records calls and returns canned data.
type fakeBackend struct {
	events    []calendar.EventRecord
	listErr   error
	insertErr error
	deleteErr error

	inserted []calendar.EventDraft
	deleted  []string
	listMin  time.Time
	listMax  time.Time
}

func (f *fakeBackend) ListEvents(_ context.Context, _ string, timeMin, timeMax time.Time) ([]calendar.EventRecord, error) {
	f.listMin, f.listMax = timeMin, timeMax
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeBackend) InsertEvent(_ context.Context, _ string, draft calendar.EventDraft) (*calendar.EventRecord, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, draft)
	return &calendar.EventRecord{ID: "new", Title: draft.Title, Start: draft.Start}, nil
}

func (f *fakeBackend) DeleteEvent(_ context.Context, _ string, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

func newTestAssistant(t *testing.T, backend calendar.Backend) *Assistant {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	cfg := Config{
		CalendarID:    "primary",
		Timezone:      loc,
		TimezoneLabel: "America/New_York",
	}
	return New(cfg, backend, intent.NewParser(), nil, nil)
}

func TestCreate_LunchWithSam(t *testing.T) {
	backend := &fakeBackend{}
	a := newTestAssistant(t, backend)

	outcome := a.Create(context.Background(), "lunch with Sam tomorrow at noon")

	require.Equal(t, ResultSuccess, outcome.Result)
	require.Len(t, backend.inserted, 1)

	draft := backend.inserted[0]
	assert.Equal(t, "lunch with Sam", draft.Title)

	loc, _ := time.LoadLocation("America/New_York")
	local := draft.Start.In(loc)
	assert.Equal(t, 12, local.Hour(), "start should be noon local")

	tomorrow := time.Now().In(loc).AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Day(), local.Day(), "start should be tomorrow")

	assert.Equal(t, time.Hour, draft.End.Sub(draft.Start), "default duration is one hour")
	assert.Contains(t, outcome.Spoken, "lunch with Sam")
}

func TestCreate_MissingText(t *testing.T) {
	backend := &fakeBackend{}
	a := newTestAssistant(t, backend)

	outcome := a.Create(context.Background(), "")

	assert.Equal(t, ResultMissingInput, outcome.Result)
	assert.Equal(t, speech.MsgMissingEventText, outcome.Spoken)
	assert.Empty(t, backend.inserted, "no backend call on missing input")
}

func TestCreate_UnparsableDate(t *testing.T) {
	backend := &fakeBackend{}
	a := newTestAssistant(t, backend)

	outcome := a.Create(context.Background(), "schedule the thing")

	assert.Equal(t, ResultUnparsableDate, outcome.Result)
	assert.Equal(t, speech.MsgUnparsableDate, outcome.Spoken)
	assert.Empty(t, backend.inserted, "no backend call without a parsed date")
}

func TestCreate_BackendFailure(t *testing.T) {
	netErr := errors.New("Post https://www.googleapis.com: connection refused")
	backend := &fakeBackend{insertErr: netErr}
	a := newTestAssistant(t, backend)

	outcome := a.Create(context.Background(), "lunch tomorrow at noon")

	assert.Equal(t, ResultBackendFailure, outcome.Result)
	assert.Equal(t, speech.MsgBackendFailure, outcome.Spoken)
	assert.NotContains(t, outcome.Spoken, "googleapis", "raw error must not be spoken")
	assert.ErrorIs(t, outcome.Err, netErr)
}

func TestCreate_ResolvesInDisplayTimezone(t *testing.T) {
	// A display zone far ahead of UTC. If parsing ran in the host's zone
	// instead of the configured one, noon would land hours off and
	// "tomorrow" could land on the wrong calendar day.
	loc, err := time.LoadLocation("Pacific/Kiritimati")
	require.NoError(t, err)

	backend := &fakeBackend{}
	cfg := Config{
		CalendarID:    "primary",
		Timezone:      loc,
		TimezoneLabel: "Pacific/Kiritimati",
	}
	a := New(cfg, backend, intent.NewParser(), nil, nil)

	outcome := a.Create(context.Background(), "standup tomorrow at noon")

	require.Equal(t, ResultSuccess, outcome.Result)
	require.Len(t, backend.inserted, 1)

	local := backend.inserted[0].Start.In(loc)
	assert.Equal(t, 12, local.Hour(), "noon in the display zone")

	tomorrow := time.Now().In(loc).AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Day(), local.Day(), "tomorrow in the display zone")
}

func TestQuery_FormatsDayEvents(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	backend := &fakeBackend{
		events: []calendar.EventRecord{
			{ID: "1", Title: "Team Sync", Start: time.Date(2026, 8, 27, 9, 0, 0, 0, loc)},
		},
	}
	a := newTestAssistant(t, backend)

	outcome := a.Query(context.Background(), "what's on tomorrow")

	require.Equal(t, ResultSuccess, outcome.Result)
	assert.Contains(t, outcome.Spoken, "Team Sync at 9:00 AM")

	// The list range must cover exactly one calendar day
	loc2, _ := time.LoadLocation("America/New_York")
	min, max := backend.listMin.In(loc2), backend.listMax.In(loc2)
	assert.Equal(t, min.YearDay(), max.YearDay(), "range must stay on one calendar day")
	assert.Equal(t, 0, min.Hour(), "range starts at local midnight")
	assert.Equal(t, 23, max.Hour(), "range ends in the last local hour")
}

func TestQuery_MissingText(t *testing.T) {
	a := newTestAssistant(t, &fakeBackend{})

	outcome := a.Query(context.Background(), "")

	assert.Equal(t, ResultMissingInput, outcome.Result)
	assert.Equal(t, speech.MsgMissingDateText, outcome.Spoken)
}

func TestDelete_DentistWithoutDate(t *testing.T) {
	// "cancel my dentist appointment" has no temporal expression: the target
	// day defaults to today and the search key drops the action verb.
	backend := &fakeBackend{
		events: []calendar.EventRecord{
			{ID: "evt-1", Title: "Dentist Appointment"},
		},
	}
	a := newTestAssistant(t, backend)

	outcome := a.Delete(context.Background(), "cancel my dentist appointment")

	require.Equal(t, ResultSuccess, outcome.Result)
	require.Equal(t, []string{"evt-1"}, backend.deleted)
	assert.Contains(t, outcome.Spoken, "Dentist Appointment")

	loc, _ := time.LoadLocation("America/New_York")
	start, _ := intent.DayRange(time.Now(), loc)
	assert.True(t, backend.listMin.Equal(start), "delete without a date searches today")
}

func TestDelete_NoMatch(t *testing.T) {
	backend := &fakeBackend{
		events: []calendar.EventRecord{
			{ID: "evt-1", Title: "Budget Review"},
		},
	}
	a := newTestAssistant(t, backend)

	outcome := a.Delete(context.Background(), "cancel my dentist appointment")

	assert.Equal(t, ResultNoMatch, outcome.Result)
	assert.Empty(t, backend.deleted, "no mutation when nothing matches")
	assert.Contains(t, outcome.Spoken, "my dentist appointment")
}

func TestDelete_BackendFailureOnList(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("quota exceeded")}
	a := newTestAssistant(t, backend)

	outcome := a.Delete(context.Background(), "cancel lunch")

	assert.Equal(t, ResultBackendFailure, outcome.Result)
	assert.Equal(t, speech.MsgBackendFailure, outcome.Spoken)
	assert.Empty(t, backend.deleted)
}

func TestToday_NoEvents(t *testing.T) {
	a := newTestAssistant(t, &fakeBackend{})

	outcome := a.Today(context.Background())

	require.Equal(t, ResultSuccess, outcome.Result)
	assert.Equal(t, "You have no events scheduled for today.", outcome.Spoken)
}

func TestToday_SingularGrammar(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	backend := &fakeBackend{
		events: []calendar.EventRecord{
			{ID: "1", Title: "Doctor", Start: time.Date(2026, 8, 26, 14, 30, 0, 0, loc)},
		},
	}
	a := newTestAssistant(t, backend)

	outcome := a.Today(context.Background())

	require.Equal(t, ResultSuccess, outcome.Result)
	assert.True(t, strings.HasPrefix(outcome.Spoken, "You have 1 event scheduled"), outcome.Spoken)
}
