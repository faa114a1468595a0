// Package cmd implements the voicecal command-line interface.
//
// The root command exposes serve (the voice-assistant HTTP server and the
// optional MCP transport), auth (Google OAuth code exchange), and today
// (print the current day's agenda). The build version is reported through
// the standard --version flag.
package cmd
