// Package assistant orchestrates the voice intents against the calendar
// backend.
//
// Each method runs the full request-scoped pipeline once: temporal parse,
// title extraction or search-key normalization, backend call, and spoken
// response formatting. Every failure class maps to a fixed spoken sentence;
// the raw backend error is returned separately so the HTTP layer can expose
// it as a debug field without it ever being spoken.
//
// Both the HTTP API and the MCP tool surface call into this package, so the
// two transports cannot drift apart.
package assistant
