package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/voicecal/voicecal/internal/logging"
)

// createRequest is the body of POST /api/create and POST /api/delete.
type createRequest struct {
	EventText string `json:"eventText"`
}

// queryRequest is the body of POST /api/query.
type queryRequest struct {
	DateText string `json:"dateText"`
}

// apiResponse is the body of every API response. Error is a debug field
// carrying backend error detail; it is never part of the spoken response.
type apiResponse struct {
	SiriResponse string `json:"siriResponse"`
	Error        string `json:"error,omitempty"`
}

// API exposes the voice-assistant endpoints.
type API struct {
	sc *ServerContext
}

// NewAPI creates the API around a server context.
func NewAPI(sc *ServerContext) *API {
	return &API{sc: sc}
}

// RegisterRoutes registers the API endpoints on the given mux.
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/create", a.instrument("/api/create", a.handleCreate))
	mux.Handle("POST /api/query", a.instrument("/api/query", a.handleQuery))
	mux.Handle("POST /api/delete", a.instrument("/api/delete", a.handleDelete))
	mux.Handle("GET /api/today", a.instrument("/api/today", a.handleToday))
}

// instrument wraps a handler with request logging and metrics. Every API
// response is HTTP 200, so the status label is constant.
func (a *API) instrument(path string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		elapsed := time.Since(start)

		a.sc.Metrics().RecordHTTPRequest(r.Context(), r.Method, path, http.StatusOK, elapsed)
		a.sc.Logger().Info("request handled",
			logging.Operation("api"+path),
			logging.Duration(elapsed),
		)
	})
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	outcome := a.sc.Assistant().Create(r.Context(), req.EventText)
	a.respond(w, outcome.Spoken, outcome.Err)
}

func (a *API) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	outcome := a.sc.Assistant().Query(r.Context(), req.DateText)
	a.respond(w, outcome.Spoken, outcome.Err)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	outcome := a.sc.Assistant().Delete(r.Context(), req.EventText)
	a.respond(w, outcome.Spoken, outcome.Err)
}

func (a *API) handleToday(w http.ResponseWriter, r *http.Request) {
	outcome := a.sc.Assistant().Today(r.Context())
	a.respond(w, outcome.Spoken, outcome.Err)
}

// respond writes the uniform 200 + JSON envelope. Decode and outcome errors
// never change the status code; the voice caller cannot act on HTTP status.
func (a *API) respond(w http.ResponseWriter, spoken string, debugErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	resp := apiResponse{SiriResponse: spoken}
	if debugErr != nil {
		resp.Error = debugErr.Error()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
