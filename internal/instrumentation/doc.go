// Package instrumentation provides OpenTelemetry-based observability for
// voicecal.
//
// It wires a meter provider (Prometheus, OTLP, or stdout exporters) and a
// tracer provider (OTLP, stdout, or none), and exposes a Metrics recorder for
// the domain's signals: HTTP requests, calendar API operations, and intent
// resolutions. When instrumentation is disabled the recorder degrades to
// no-ops so call sites need no guards.
package instrumentation
