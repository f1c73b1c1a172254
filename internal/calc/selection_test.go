package calc

import (
	"errors"
	"testing"
)

func TestParseSelectionValid(t *testing.T) {
	cases := map[string]Selection{
		"1": Add,
		"2": Subtract,
		"3": Multiply,
		"4": Divide,
		"5": Remainder,
		"6": Power,
		"7": Exit,
	}
	for token, want := range cases {
		got, err := ParseSelection(token)
		if err != nil {
			t.Fatalf("ParseSelection(%q) failed: %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseSelection(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestParseSelectionMalformed(t *testing.T) {
	for _, token := range []string{"abc", "", "1.5", "one", "2x"} {
		_, err := ParseSelection(token)
		if !errors.Is(err, ErrMalformedSelection) {
			t.Fatalf("ParseSelection(%q): expected ErrMalformedSelection, got %v", token, err)
		}
	}
}

func TestParseSelectionOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		token string
		value int
	}{
		{"0", 0},
		{"8", 8},
		{"9", 9},
		{"-3", -3},
		{"100", 100},
	} {
		_, err := ParseSelection(tc.token)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("ParseSelection(%q): expected *RangeError, got %v", tc.token, err)
		}
		if rangeErr.Value != tc.value {
			t.Fatalf("ParseSelection(%q): RangeError.Value = %d, want %d", tc.token, rangeErr.Value, tc.value)
		}
	}
}

func TestSelectionString(t *testing.T) {
	if Add.String() != "Add" || Exit.String() != "Exit" {
		t.Fatalf("unexpected selection names: %v, %v", Add, Exit)
	}
	if Selection(42).String() != "Selection(42)" {
		t.Fatalf("unexpected fallback name: %v", Selection(42))
	}
}

func TestNeedsOperands(t *testing.T) {
	for s := Add; s <= Power; s++ {
		if !s.NeedsOperands() {
			t.Fatalf("%v should need operands", s)
		}
	}
	if Exit.NeedsOperands() {
		t.Fatalf("Exit should not need operands")
	}
}

func TestMenuLines(t *testing.T) {
	lines := MenuLines()
	if len(lines) != 7 {
		t.Fatalf("expected 7 menu lines, got %d", len(lines))
	}
	if lines[0] != "1. Add" {
		t.Fatalf("unexpected first menu line: %q", lines[0])
	}
	if lines[6] != "7. Exit" {
		t.Fatalf("unexpected last menu line: %q", lines[6])
	}
}
