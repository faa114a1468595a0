package server

import (
	"context"
	"testing"

	"github.com/voicecal/voicecal/internal/instrumentation"
)

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"})
	if err == nil {
		t.Error("Expected error when instrumentation provider is missing")
	}
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider() failed: %v", err)
	}

	_, err = NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		InstrumentationProvider: provider,
	})
	if err == nil {
		t.Error("Expected error when instrumentation provider is disabled")
	}
}

func TestMetricsServer_DefaultAddr(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		Enabled:         true,
		ServiceName:     "voicecal-test",
		MetricsExporter: instrumentation.ExporterStdout,
		TracingExporter: instrumentation.ExporterNone,
	})
	if err != nil {
		t.Fatalf("NewProvider() failed: %v", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	s, err := NewMetricsServer(MetricsServerConfig{InstrumentationProvider: provider})
	if err != nil {
		t.Fatalf("NewMetricsServer() failed: %v", err)
	}
	if s.Addr() != DefaultMetricsAddr {
		t.Errorf("Expected default addr %s, got %s", DefaultMetricsAddr, s.Addr())
	}
}

func TestHealthChecker_ReadyToggle(t *testing.T) {
	h := NewHealthChecker(nil)
	if !h.IsReady() {
		t.Error("Expected server to start ready")
	}
	h.SetReady(false)
	if h.IsReady() {
		t.Error("Expected server to report not ready after SetReady(false)")
	}
}
