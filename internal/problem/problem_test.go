package problem

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParsePart_Known(t *testing.T) {
	cases := []struct {
		input string
		want  Part
	}{
		{"1", PartOne},
		{"one", PartOne},
		{"Part One", PartOne},
		{"  p1 ", PartOne},
		{"PART 1", PartOne},
		{"2", PartTwo},
		{"two", PartTwo},
		{"Part Two", PartTwo},
		{"p2", PartTwo},
		{"part2", PartTwo},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePart(tc.input)
			if err != nil {
				t.Fatalf("ParsePart(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePart(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParsePart_Invalid(t *testing.T) {
	for _, input := range []string{"", "3", "three", "part", "1 2"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePart(input)
			if !errors.Is(err, ErrUnknownPart) {
				t.Fatalf("ParsePart(%q) error = %v, want ErrUnknownPart", input, err)
			}
		})
	}
}

func TestPartString(t *testing.T) {
	if got := PartOne.String(); got != "Part One" {
		t.Errorf("PartOne.String() = %q, want %q", got, "Part One")
	}
	if got := PartTwo.String(); got != "Part Two" {
		t.Errorf("PartTwo.String() = %q, want %q", got, "Part Two")
	}
	if got := Part(7).String(); got != "Part(7)" {
		t.Errorf("Part(7).String() = %q, want %q", got, "Part(7)")
	}
}

func TestParts_MenuOrder(t *testing.T) {
	parts := Parts()
	if len(parts) != 2 || parts[0] != PartOne || parts[1] != PartTwo {
		t.Fatalf("Parts() = %v, want [Part One Part Two]", parts)
	}
}

func TestResult_String(t *testing.T) {
	r := NewResult("Sum", 142).Note("%d lines", 4)
	if got := r.String(); got != "Sum: 142" {
		t.Errorf("String() = %q, want %q", got, "Sum: 142")
	}
	if len(r.Notes) != 1 || r.Notes[0] != "4 lines" {
		t.Errorf("Notes = %v, want [4 lines]", r.Notes)
	}
}

func TestMalformedInputError(t *testing.T) {
	err := Malformed(3, "Game x", "missing game id")

	if !errors.Is(err, ErrMalformedInput) {
		t.Fatal("errors.Is(err, ErrMalformedInput) = false, want true")
	}

	var mie *MalformedInputError
	if !errors.As(err, &mie) {
		t.Fatal("errors.As(err, *MalformedInputError) = false, want true")
	}
	if mie.Line != 3 {
		t.Errorf("Line = %d, want 3", mie.Line)
	}
	want := `malformed input at line 3 ("Game x"): missing game id`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMalformed_TruncatesLongText(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	var mie *MalformedInputError
	if !errors.As(Malformed(1, string(long), "bad"), &mie) {
		t.Fatal("expected *MalformedInputError")
	}
	if len(mie.Text) != 63 {
		t.Errorf("len(Text) = %d, want 63", len(mie.Text))
	}
}

func TestMalformed_TruncatesOnRuneBoundary(t *testing.T) {
	// 59 ASCII bytes put the 60th character, a two-byte rune, across the
	// 60-byte mark.
	text := strings.Repeat("x", 59) + strings.Repeat("é", 10)
	var mie *MalformedInputError
	if !errors.As(Malformed(1, text, "bad"), &mie) {
		t.Fatal("expected *MalformedInputError")
	}
	if !utf8.ValidString(mie.Text) {
		t.Errorf("Text %q is not valid UTF-8", mie.Text)
	}
	if want := strings.Repeat("x", 59) + "é..."; mie.Text != want {
		t.Errorf("Text = %q, want %q", mie.Text, want)
	}

	short := "Card 1: é | é"
	if !errors.As(Malformed(1, short, "bad"), &mie) || mie.Text != short {
		t.Errorf("short text changed to %q", mie.Text)
	}
}

func TestMalformedInputError_NoLine(t *testing.T) {
	err := &MalformedInputError{Reason: "no seeds"}
	if got := err.Error(); got != "malformed input: no seeds" {
		t.Errorf("Error() = %q", got)
	}
}
