// Package intent resolves free-form voice utterances into structured calendar
// intents.
//
// The package covers the full text-to-intent pipeline: recognizing temporal
// expressions in an utterance ("tomorrow at noon", "next Friday from 3pm to
// 5pm"), computing day boundaries in the display timezone, separating the
// temporal fragment from the semantic event title, building event drafts, and
// fuzzily matching an extracted title against candidate events returned by the
// calendar backend.
//
// All functions are pure with respect to their inputs; nothing in this package
// holds state across calls. The natural-language date grammar itself is
// provided by github.com/olebedev/when and wrapped by Parser.
//
// Example usage:
//
//	parser := intent.NewParser()
//	exprs := parser.Parse("lunch with Sam tomorrow at noon")
//	title := intent.ExtractTitle("lunch with Sam tomorrow at noon", exprs)
//	draft := intent.BuildDraft(title, exprs[0], "America/New_York")
package intent
