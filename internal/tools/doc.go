// Package tools exposes the voice intents as MCP tools.
//
// AI agents connected over the Model Context Protocol get the same three
// operations as the HTTP API: create, query, and delete by free-form text.
// The tools return the spoken sentence the voice assistant would say, so
// agent behavior and voice behavior stay identical.
package tools
