package problem

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrMalformedInput is matched by every MalformedInputError.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownPart is returned for a part a problem does not implement.
	ErrUnknownPart = errors.New("unknown part")
	// ErrOverflow is returned when an answer does not fit in int64.
	ErrOverflow = errors.New("answer overflows int64")
)

// MalformedInputError reports a line that does not match the structure a
// solver expects. Only returned under strict parsing.
type MalformedInputError struct {
	Line   int    // 1-based line number, 0 when the error is not tied to a line
	Text   string // offending text, possibly truncated
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d (%q): %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Malformed builds a MalformedInputError for the given 1-based line.
func Malformed(line int, text, format string, args ...any) error {
	const maxText = 60
	if utf8.RuneCountInString(text) > maxText {
		text = string([]rune(text)[:maxText]) + "..."
	}
	return &MalformedInputError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// UnknownPart returns an error for a part the caller passed but no solver handles.
func UnknownPart(p Part) error {
	return fmt.Errorf("%w: %s", ErrUnknownPart, p)
}
