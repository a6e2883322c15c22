package detector

import (
	"reflect"
	"testing"

	"handoff/internal/core/triggers"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	p, err := triggers.Load()
	if err != nil {
		t.Fatalf("triggers.Load: %v", err)
	}
	return New(p)
}

func TestFindMatchesOperatorRequest(t *testing.T) {
	d := newTestDetector(t)

	got := d.FindMatches("Переведите на оператора, пожалуйста", "operator_request")
	want := []string{"оператора"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindMatches: got %v want %v", got, want)
	}
}

func TestFindMatchesDedupesCaseVariants(t *testing.T) {
	d := newTestDetector(t)

	// folding lowercases before matching, so variants collapse to one trigger
	got := d.FindMatches("ОПЕРАТОР! оператор! Оператор!", "operator_request")
	want := []string{"оператор"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindMatches: got %v want %v", got, want)
	}
}

func TestFindMatchesSortsDistinctTriggers(t *testing.T) {
	d := newTestDetector(t)

	got := d.FindMatches("надоело всё, ничего не работает", "frustration")
	want := []string{"надоело", "ничего не работает"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindMatches: got %v want %v", got, want)
	}
}

func TestFindMatchesUnknownType(t *testing.T) {
	d := newTestDetector(t)
	if got := d.FindMatches("позовите оператора", "no_such_type"); got != nil {
		t.Fatalf("unknown type should yield nil, got %v", got)
	}
}

func TestFindMatchesNoMatch(t *testing.T) {
	d := newTestDetector(t)
	if got := d.FindMatches("спасибо, всё отлично", "operator_request"); got != nil {
		t.Fatalf("clean text should yield nil, got %v", got)
	}
}

func TestScanMultipleTypes(t *testing.T) {
	d := newTestDetector(t)

	got := d.Scan("Это безобразие, верните деньги и соедините с оператором")
	if len(got) != 3 {
		t.Fatalf("Scan: got %d types, want 3: %v", len(got), got)
	}
	if !reflect.DeepEqual(got["operator_request"], []string{"оператором"}) {
		t.Fatalf("operator_request: %v", got["operator_request"])
	}
	if !reflect.DeepEqual(got["complaint"], []string{"безобразие"}) {
		t.Fatalf("complaint: %v", got["complaint"])
	}
	if !reflect.DeepEqual(got["refund_request"], []string{"верните деньги"}) {
		t.Fatalf("refund_request: %v", got["refund_request"])
	}
}

func TestScanEmptyText(t *testing.T) {
	d := newTestDetector(t)
	if got := d.Scan("   "); got != nil {
		t.Fatalf("whitespace only text should yield nil, got %v", got)
	}
}

func TestPhraseBoundaryGuard(t *testing.T) {
	// a phrase embedded inside a longer word run must not match
	if spans := phraseOccurrences("несколько можноваться", "сколько можно"); spans != nil {
		t.Fatalf("expected no spans, got %v", spans)
	}
	if spans := phraseOccurrences("ну сколько можно ждать", "сколько можно"); len(spans) != 1 {
		t.Fatalf("expected one span, got %v", spans)
	}
}

func TestPhraseOccurrencesNonOverlapping(t *testing.T) {
	spans := phraseOccurrences("сколько можно, сколько можно", "сколько можно")
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %v", spans)
	}
}
