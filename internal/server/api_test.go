package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicecal/voicecal/internal/assistant"
	"github.com/voicecal/voicecal/internal/calendar"
	"github.com/voicecal/voicecal/internal/intent"
	"github.com/voicecal/voicecal/internal/speech"
)

// stubBackend is a canned calendar backend for handler tests.
type stubBackend struct {
	events    []calendar.EventRecord
	insertErr error
	deleted   []string
}

func (s *stubBackend) ListEvents(context.Context, string, time.Time, time.Time) ([]calendar.EventRecord, error) {
	return s.events, nil
}

func (s *stubBackend) InsertEvent(_ context.Context, _ string, draft calendar.EventDraft) (*calendar.EventRecord, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	return &calendar.EventRecord{ID: "created", Title: draft.Title, Start: draft.Start}, nil
}

func (s *stubBackend) DeleteEvent(_ context.Context, _ string, eventID string) error {
	s.deleted = append(s.deleted, eventID)
	return nil
}

func newTestMux(t *testing.T, backend calendar.Backend) *http.ServeMux {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	a := assistant.New(assistant.Config{
		CalendarID:    "primary",
		Timezone:      loc,
		TimezoneLabel: "America/New_York",
	}, backend, intent.NewParser(), nil, nil)

	sc := NewServerContext(context.Background(), a, nil, nil)
	t.Cleanup(func() { _ = sc.Shutdown() })

	mux := http.NewServeMux()
	NewAPI(sc).RegisterRoutes(mux)
	NewHealthChecker(sc).RegisterHealthEndpoints(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateEndpoint_Success(t *testing.T) {
	mux := newTestMux(t, &stubBackend{})

	rec, resp := postJSON(t, mux, "/api/create", `{"eventText":"lunch with Sam tomorrow at noon"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.SiriResponse, "lunch with Sam")
	assert.Empty(t, resp.Error)
}

func TestCreateEndpoint_MissingText(t *testing.T) {
	mux := newTestMux(t, &stubBackend{})

	rec, resp := postJSON(t, mux, "/api/create", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code, "errors surface in the body, not the status")
	assert.Equal(t, speech.MsgMissingEventText, resp.SiriResponse)
}

func TestCreateEndpoint_MalformedBody(t *testing.T) {
	mux := newTestMux(t, &stubBackend{})

	rec, resp := postJSON(t, mux, "/api/create", `{not json`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, speech.MsgMissingEventText, resp.SiriResponse)
}

func TestCreateEndpoint_BackendFailure(t *testing.T) {
	backendErr := errors.New("googleapi: Error 503: backend unavailable")
	mux := newTestMux(t, &stubBackend{insertErr: backendErr})

	rec, resp := postJSON(t, mux, "/api/create", `{"eventText":"standup tomorrow at 9am"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, speech.MsgBackendFailure, resp.SiriResponse)
	// Raw detail lands in the debug field only
	assert.Equal(t, backendErr.Error(), resp.Error)
	assert.NotContains(t, resp.SiriResponse, "503")
}

func TestQueryEndpoint(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	backend := &stubBackend{
		events: []calendar.EventRecord{
			{ID: "1", Title: "Team Sync", Start: time.Date(2026, 8, 27, 9, 0, 0, 0, loc)},
			{ID: "2", Title: "Doctor", Start: time.Date(2026, 8, 27, 14, 30, 0, 0, loc)},
		},
	}
	mux := newTestMux(t, backend)

	_, resp := postJSON(t, mux, "/api/query", `{"dateText":"tomorrow"}`)

	assert.Contains(t, resp.SiriResponse, "2 events")
	assert.Contains(t, resp.SiriResponse, "Team Sync at 9:00 AM")
	assert.Contains(t, resp.SiriResponse, "Doctor at 2:30 PM")
}

func TestDeleteEndpoint_SubstringMatch(t *testing.T) {
	backend := &stubBackend{
		events: []calendar.EventRecord{
			{ID: "sync-1", Title: "Team Sync"},
			{ID: "doc-1", Title: "Doctor"},
		},
	}
	mux := newTestMux(t, backend)

	_, resp := postJSON(t, mux, "/api/delete", `{"eventText":"cancel sync"}`)

	assert.Equal(t, []string{"sync-1"}, backend.deleted)
	assert.Contains(t, resp.SiriResponse, "Team Sync")
}

func TestTodayEndpoint_NoEvents(t *testing.T) {
	mux := newTestMux(t, &stubBackend{})

	req := httptest.NewRequest(http.MethodGet, "/api/today", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You have no events scheduled for today.", resp.SiriResponse)
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestMux(t, &stubBackend{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
