package intent

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Expression is one recognized date/time span within an utterance.
type Expression struct {
	// Text is the exact substring of the utterance that was recognized.
	Text string

	// Start is the resolved absolute start instant.
	Start time.Time

	// End is the resolved end instant, or nil when the utterance specifies
	// only a start.
	End *time.Time
}

// Parser recognizes natural-language temporal expressions in English text.
// It is safe for concurrent use; the underlying rule set is read-only after
// construction.
type Parser struct {
	w *when.Parser
}

// NewParser creates a Parser with the English and common rule sets.
func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w}
}

// Parse recognizes all temporal expressions in text relative to the current
// time. An empty result is a normal outcome, not an error: it means the text
// contains no recognizable date or time.
func (p *Parser) Parse(text string) []Expression {
	return p.ParseAt(text, time.Now())
}

// rangeConnectors are the words that join two temporal expressions into a
// single start/end range ("3pm to 5pm", "noon until 2").
var rangeConnectors = map[string]bool{
	"to":      true,
	"until":   true,
	"till":    true,
	"through": true,
	"-":       true,
}

// ParseAt recognizes all temporal expressions in text relative to base.
// Expressions are returned in order of appearance. Two adjacent expressions
// joined only by a range connector are merged into one Expression whose Text
// spans both matches and whose End carries the second instant.
func (p *Parser) ParseAt(text string, base time.Time) []Expression {
	type match struct {
		start, end int
		at         time.Time
	}

	var matches []match
	consumed := 0
	for consumed < len(text) {
		r, err := p.w.Parse(text[consumed:], base)
		if err != nil || r == nil || r.Text == "" {
			break
		}
		abs := consumed + r.Index
		matches = append(matches, match{start: abs, end: abs + len(r.Text), at: r.Time})
		consumed = abs + len(r.Text)
	}

	var exprs []Expression
	for i := 0; i < len(matches); i++ {
		m := matches[i]
		if i+1 < len(matches) {
			next := matches[i+1]
			gap := strings.ToLower(strings.TrimSpace(text[m.end:next.start]))
			if rangeConnectors[gap] && !next.at.Before(m.at) {
				end := next.at
				exprs = append(exprs, Expression{
					Text:  text[m.start:next.end],
					Start: m.at,
					End:   &end,
				})
				i++
				continue
			}
		}
		exprs = append(exprs, Expression{Text: text[m.start:m.end], Start: m.at})
	}
	return exprs
}
