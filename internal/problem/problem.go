package problem

import (
	"fmt"
	"strings"
)

// Problem is one runnable puzzle solution.
type Problem interface {
	// ID returns the human-readable name shown in menus and used for lookup.
	ID() string
	// Solve computes the answer for the given part from raw input text.
	Solve(part Part, input string, opts Options) (*Result, error)
}

// Aliaser is implemented by problems that can also be looked up by short names
// such as "1" or "trebuchet".
type Aliaser interface {
	Aliases() []string
}

// Options controls how solvers treat input that does not match the expected
// structure.
type Options struct {
	// Strict makes solvers reject malformed lines with a MalformedInputError
	// instead of substituting zero values or skipping them.
	Strict bool
}

// Result is the computed answer for one part of a problem.
type Result struct {
	Label string   `json:"label"`
	Value int64    `json:"value"`
	Notes []string `json:"notes,omitempty"`
}

// NewResult returns a Result with the given label and value.
func NewResult(label string, value int64) *Result {
	return &Result{Label: label, Value: value}
}

// Note appends an informational message and returns r.
func (r *Result) Note(format string, args ...any) *Result {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
	return r
}

// String renders the result as "Label: value".
func (r *Result) String() string {
	return fmt.Sprintf("%s: %d", r.Label, r.Value)
}

// Part selects which half of a puzzle to compute.
type Part int

// Supported parts.
const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts returns all parts in menu order.
func Parts() []Part {
	return []Part{PartOne, PartTwo}
}

// String returns the display name used in menus ("Part One", "Part Two").
func (p Part) String() string {
	switch p {
	case PartOne:
		return "Part One"
	case PartTwo:
		return "Part Two"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// ParsePart converts user input to a Part. It accepts the display name as well
// as short forms such as "1", "one", "p1" and "part 2", case-insensitively.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one", "p1", "part 1", "part one", "part1":
		return PartOne, nil
	case "2", "two", "p2", "part 2", "part two", "part2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
}

// Numbered is implemented by problems that correspond to a numbered puzzle
// day. It is used to locate default input files.
type Numbered interface {
	Day() int
}
