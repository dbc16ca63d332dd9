package source

import "testing"

func TestSpanEmpty(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 5}
	if !s.Empty() {
		t.Fatalf("expected empty span")
	}
	s.End = 6
	if s.Empty() {
		t.Fatalf("expected non-empty span")
	}
}

func TestSpanLen(t *testing.T) {
	s := Span{Start: 3, End: 10}
	if got := s.Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	want := Span{File: 1, Start: 2, End: 10}
	if got != want {
		t.Fatalf("Cover() = %+v, want %+v", got, want)
	}
}

func TestSpanCoverDifferentFilesIsNoop(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(b); got != a {
		t.Fatalf("Cover() across files should leave span unchanged, got %+v", got)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 3, Start: 1, End: 4}
	if got, want := s.String(), "3:1-4"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
