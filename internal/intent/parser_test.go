package intent

import (
	"strings"
	"testing"
	"time"
)

func testBase(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	// Wednesday morning, zero minutes and seconds
	return time.Date(2026, 8, 26, 9, 0, 0, 0, loc)
}

func TestParseAt_NoTemporalText(t *testing.T) {
	p := NewParser()
	exprs := p.ParseAt("schedule the thing", testBase(t))
	if len(exprs) != 0 {
		t.Fatalf("expected no expressions, got %+v", exprs)
	}
}

func TestParseAt_EmptyInput(t *testing.T) {
	p := NewParser()
	if exprs := p.ParseAt("", testBase(t)); len(exprs) != 0 {
		t.Fatalf("expected no expressions for empty input, got %+v", exprs)
	}
}

func TestParseAt_TomorrowAtNoon(t *testing.T) {
	p := NewParser()
	base := testBase(t)
	utterance := "lunch with Sam tomorrow at noon"

	exprs := p.ParseAt(utterance, base)
	if len(exprs) != 1 {
		t.Fatalf("expected one expression, got %+v", exprs)
	}

	e := exprs[0]
	if !strings.Contains(utterance, e.Text) {
		t.Errorf("expression text %q is not a substring of the utterance", e.Text)
	}
	if e.End != nil {
		t.Errorf("expected no end instant, got %v", *e.End)
	}

	local := e.Start.In(base.Location())
	if local.Year() != 2026 || local.Month() != time.August || local.Day() != 27 {
		t.Errorf("expected tomorrow's date, got %v", local)
	}
	if local.Hour() != 12 {
		t.Errorf("expected noon, got hour %d", local.Hour())
	}
}

func TestParseAt_MergesRange(t *testing.T) {
	p := NewParser()
	base := testBase(t)

	exprs := p.ParseAt("block 3pm to 5pm for review", base)
	if len(exprs) != 1 {
		t.Fatalf("expected a single merged expression, got %+v", exprs)
	}

	e := exprs[0]
	if e.End == nil {
		t.Fatal("expected a merged range with an end instant")
	}
	if got := e.Start.In(base.Location()).Hour(); got != 15 {
		t.Errorf("expected start at 15:00, got hour %d", got)
	}
	if got := e.End.In(base.Location()).Hour(); got != 17 {
		t.Errorf("expected end at 17:00, got hour %d", got)
	}
}

func TestParseAt_SeparateExpressionsStayApart(t *testing.T) {
	p := NewParser()
	base := testBase(t)

	exprs := p.ParseAt("lunch today and dinner tomorrow", base)
	if len(exprs) != 2 {
		t.Fatalf("expected two expressions, got %+v", exprs)
	}
	for _, e := range exprs {
		if e.End != nil {
			t.Errorf("expected no end instant for %q, got %v", e.Text, *e.End)
		}
	}
	if !exprs[1].Start.After(exprs[0].Start) {
		t.Errorf("expected tomorrow after today, got %v then %v", exprs[0].Start, exprs[1].Start)
	}
}
