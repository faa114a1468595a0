// Package logging provides structured logging utilities for voicecal.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithIntent(slog.Default(), "create")
//	logger.Info("event created",
//	    logging.Status(logging.StatusSuccess))
//
// Utterances are user speech and may contain names or other personal detail;
// log them at debug level only.
package logging
