package calc

import (
	"io"
	"strings"
	"testing"
)

func TestTokenScannerNext(t *testing.T) {
	s := newTokenScanner(strings.NewReader("  1\n\tabc   4.5"))
	for _, want := range []string{"1", "abc", "4.5"} {
		got, err := s.next()
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if got != want {
			t.Fatalf("next = %q, want %q", got, want)
		}
	}
	if _, err := s.next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestTokenScannerDiscardLine(t *testing.T) {
	s := newTokenScanner(strings.NewReader("abc junk junk\nnext"))
	if tok, _ := s.next(); tok != "abc" {
		t.Fatalf("unexpected token %q", tok)
	}
	s.discardLine()
	tok, err := s.next()
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if tok != "next" {
		t.Fatalf("discardLine left %q as the next token", tok)
	}
}

func TestTokenScannerDiscardLineAtEOF(t *testing.T) {
	s := newTokenScanner(strings.NewReader("abc"))
	if tok, _ := s.next(); tok != "abc" {
		t.Fatalf("unexpected token %q", tok)
	}
	s.discardLine()
	if _, err := s.next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
