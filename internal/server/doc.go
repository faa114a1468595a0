// Package server provides the HTTP surface of voicecal.
//
// The API is shaped for voice-assistant callers: every endpoint responds
// HTTP 200 with a JSON body carrying a spoken-language siriResponse string.
// Failures surface inside the body, never through HTTP status codes, because
// the caller can only speak, not branch on status.
//
// The package also provides Kubernetes-style health endpoints and a dedicated
// metrics server that keeps Prometheus exposition off the main listener.
package server
