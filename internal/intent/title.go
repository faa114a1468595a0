package intent

import (
	"regexp"
	"strings"
)

// actionVerbs matches the whole-word deletion verbs that callers prepend to an
// event title ("cancel my dentist appointment").
var actionVerbs = regexp.MustCompile(`(?i)\b(cancel|delete|remove)\b`)

// ExtractTitle isolates the semantic event title from an utterance by removing
// each expression's matched text. Removal is a pure fold: every step removes
// the first occurrence of the matched span from the result of the previous
// step, so overlapping spans cannot corrupt each other. The result is trimmed
// of surrounding whitespace and may be empty; no placeholder is synthesized
// here.
func ExtractTitle(utterance string, exprs []Expression) string {
	title := utterance
	for _, e := range exprs {
		title = removeFirst(title, e.Text)
	}
	return strings.TrimSpace(title)
}

// NormalizeSearchTitle produces the lowercased matching key used for deletion
// lookups: the utterance minus its temporal spans and minus the action verbs
// cancel/delete/remove. The matched spans are lowercased before removal so
// that removal against the already-lowercased utterance cannot silently miss.
// Interior whitespace left behind by the removals is collapsed to single
// spaces, so a mid-string verb cannot break substring matching against
// single-spaced titles. The function is idempotent.
func NormalizeSearchTitle(utterance string, exprs []Expression) string {
	s := strings.ToLower(utterance)
	for _, e := range exprs {
		s = removeFirst(s, strings.ToLower(e.Text))
	}
	s = actionVerbs.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// removeFirst removes the first occurrence of substr from s.
func removeFirst(s, substr string) string {
	if substr == "" {
		return s
	}
	i := strings.Index(s, substr)
	if i < 0 {
		return s
	}
	return s[:i] + s[i+len(substr):]
}
