// Package google handles OAuth2 authentication for the Google Calendar API.
//
// Tokens are stored per account in the user cache directory and refreshed
// automatically through the oauth2 token source. The TokenProvider interface
// abstracts token storage so clients can be constructed against other sources
// in tests.
package google
