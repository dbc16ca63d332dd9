package diag

import (
	"testing"

	"surge/internal/source"
)

func TestBagAddRespectsCapacity(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{}
	if !b.Add(NewError(SynUnexpectedToken, sp, "one")) {
		t.Fatal("expected first Add to succeed")
	}
	if !b.Add(NewError(SynUnexpectedToken, sp, "two")) {
		t.Fatal("expected second Add to succeed")
	}
	if b.Add(NewError(SynUnexpectedToken, sp, "three")) {
		t.Fatal("expected third Add to be rejected once at capacity")
	}
	if b.Len() != 2 {
		t.Errorf("expected Len() == 2, got %d", b.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	sp := source.Span{}

	warnOnly := NewBag(10)
	warnOnly.Add(New(SevWarning, SynEmptyBlock, sp, "warn"))
	if warnOnly.HasErrors() {
		t.Error("expected no errors in a warning-only bag")
	}
	if !warnOnly.HasWarnings() {
		t.Error("expected HasWarnings to be true")
	}

	withError := NewBag(10)
	withError.Add(New(SevError, SynUnexpectedToken, sp, "boom"))
	if !withError.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	sp := source.Span{}
	a := NewBag(1)
	a.Add(NewError(SynUnexpectedToken, sp, "a"))

	b := NewBag(1)
	b.Add(NewError(SynUnexpectedToken, sp, "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected Len() == 2 after merge, got %d", a.Len())
	}
	if a.Cap() < 2 {
		t.Errorf("expected Cap() to grow to at least 2, got %d", a.Cap())
	}
}

func TestBagSortOrdersByPositionThenSeverity(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynEmptyBlock, source.Span{File: 0, Start: 5, End: 6}, "later"))
	b.Add(New(SevError, SynUnexpectedToken, source.Span{File: 0, Start: 1, End: 2}, "earlier"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "earlier" {
		t.Errorf("expected the earlier-positioned diagnostic first, got %q", items[0].Message)
	}
}

func TestBagDedupRemovesDuplicates(t *testing.T) {
	sp := source.Span{File: 0, Start: 3, End: 4}
	b := NewBag(10)
	b.Add(NewError(SynUnexpectedToken, sp, "first"))
	b.Add(NewError(SynUnexpectedToken, sp, "duplicate"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected duplicates collapsed to 1, got %d", b.Len())
	}
}

func TestCodeIDFormatting(t *testing.T) {
	if got := LexUnknownChar.ID(); got != "LEX1001" {
		t.Errorf("expected LEX1001, got %q", got)
	}
	if got := SynUnexpectedToken.ID(); got != "SYN2001" {
		t.Errorf("expected SYN2001, got %q", got)
	}
	if got := UnknownCode.ID(); got != "E0000" {
		t.Errorf("expected E0000 for the unknown code, got %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SevInfo:    "INFO",
		SevWarning: "WARNING",
		SevError:   "ERROR",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}
