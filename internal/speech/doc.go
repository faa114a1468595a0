// Package speech renders calendar outcomes into sentences suitable for voice
// playback.
//
// Every operation of the assistant ends here: event listings, creation and
// deletion confirmations, and the fixed messages for each failure class.
// Callers never speak a raw backend error; failures map to the fixed messages
// in messages.go and the underlying error travels separately as a debug field.
package speech
