package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/voicecal/voicecal/internal/assistant"
	"github.com/voicecal/voicecal/internal/instrumentation"
)

// ServerContext holds the read-only dependencies of a running server.
// Everything here is constructed once at startup and injected; request
// handlers only ever read it, so no locking is needed beyond the shutdown
// flag.
type ServerContext struct {
	ctx       context.Context
	cancel    context.CancelFunc
	assistant *assistant.Assistant
	logger    *slog.Logger
	metrics   *instrumentation.Metrics

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context around the assembled
// assistant.
func NewServerContext(ctx context.Context, a *assistant.Assistant, logger *slog.Logger, metrics *instrumentation.Metrics) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	return &ServerContext{
		ctx:       shutdownCtx,
		cancel:    cancel,
		assistant: a,
		logger:    logger,
		metrics:   metrics,
	}
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Assistant returns the intent assistant
func (sc *ServerContext) Assistant() *assistant.Assistant {
	return sc.assistant
}

// Logger returns the server logger
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the metrics recorder
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
