package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/voicecal/voicecal/internal/assistant"
	"github.com/voicecal/voicecal/internal/calendar"
	"github.com/voicecal/voicecal/internal/instrumentation"
	"github.com/voicecal/voicecal/internal/intent"
	"github.com/voicecal/voicecal/internal/logging"
	"github.com/voicecal/voicecal/internal/server"
	"github.com/voicecal/voicecal/internal/tools"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultShutdownGrace  = 30 * time.Second
	defaultDisplayTZ      = "America/New_York"
	defaultCalendarTarget = "primary"
)

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		transport      string
		httpAddr       string
		account        string
		calendarID     string
		timezone       string
		readOnly       bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the voice-assistant calendar server",
		Long: `Start voicecal as a server.

With the default http transport it answers the voice assistant's webhook
calls on /api/create, /api/query, /api/delete and /api/today. With the
stdio transport it exposes the same operations as MCP tools for AI agents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Setup(debugMode)

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", timezone, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Observability first so everything below records into it
			instrConfig := instrumentation.DefaultConfig()
			instrConfig.ServiceVersion = version
			if err := instrConfig.Validate(); err != nil {
				return fmt.Errorf("invalid instrumentation config: %w", err)
			}
			provider, err := instrumentation.NewProvider(ctx, instrConfig)
			if err != nil {
				return fmt.Errorf("failed to initialize instrumentation: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					logger.Error("instrumentation shutdown failed", logging.Err(err))
				}
			}()

			if !calendar.HasTokenForAccount(account) {
				return fmt.Errorf("no Google OAuth token for account %q; run 'voicecal auth' first", account)
			}
			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			a := assistant.New(assistant.Config{
				CalendarID:    calendarID,
				Timezone:      loc,
				TimezoneLabel: timezone,
			}, client, intent.NewParser(), logger, provider.Metrics())

			sc := server.NewServerContext(ctx, a, logger, provider.Metrics())
			defer func() {
				if err := sc.Shutdown(); err != nil {
					logger.Error("server context shutdown failed", logging.Err(err))
				}
			}()

			switch transport {
			case "http":
				return runHTTPServer(ctx, sc, provider, httpAddr, metricsEnabled, metricsAddr)
			case "stdio":
				return runStdioServer(sc, readOnly)
			default:
				return fmt.Errorf("unsupported transport type: %s (supported: http, stdio)", transport)
			}
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "http", "Transport type: http or stdio (MCP)")
	cmd.Flags().StringVar(&httpAddr, "addr", defaultHTTPAddr, "Address for the HTTP server")
	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&calendarID, "calendar", defaultCalendarTarget, "Calendar ID all operations target")
	cmd.Flags().StringVar(&timezone, "timezone", defaultDisplayTZ, "Display timezone (IANA name)")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Only register read-only MCP tools (stdio transport)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Serve Prometheus metrics on a dedicated port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the metrics server")
	return cmd
}

// runHTTPServer runs the voice-assistant HTTP API until ctx is cancelled.
func runHTTPServer(ctx context.Context, sc *server.ServerContext, provider *instrumentation.Provider, addr string, metricsEnabled bool, metricsAddr string) error {
	logger := sc.Logger()

	mux := http.NewServeMux()
	server.NewAPI(sc).RegisterRoutes(mux)

	health := server.NewHealthChecker(sc)
	health.RegisterHealthEndpoints(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	// Metrics on a dedicated listener, never on the API port
	var metricsServer *server.MetricsServer
	if metricsEnabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsAddr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", logging.Err(err))
			}
		}()
	}

	serverDone := make(chan error, 1)
	go func() {
		logger.Info("starting voicecal HTTP server", "addr", addr, logging.Operation("serve"))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
		close(serverDone)
	}()

	select {
	case err := <-serverDone:
		return fmt.Errorf("server stopped with error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	health.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", logging.Err(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during metrics server shutdown", logging.Err(err))
		}
	}
	return nil
}

// runStdioServer exposes the intents as MCP tools over stdio.
func runStdioServer(sc *server.ServerContext, readOnly bool) error {
	mcpSrv := mcpserver.NewMCPServer("voicecal", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := tools.RegisterAssistantTools(mcpSrv, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register assistant tools: %w", err)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
