package problem

import (
	"regexp"
	"strconv"
	"strings"
)

var matchUint = regexp.MustCompile(`\d+`)

// Line is one input line with its 1-based position.
type Line struct {
	Number int
	Text   string
}

// Lines splits input on newlines, strips trailing carriage returns and drops
// blank lines. Line numbers refer to the original input.
func Lines(input string) []Line {
	var lines []Line
	for i, raw := range strings.Split(input, "\n") {
		text := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text})
	}
	return lines
}

// FirstUint returns the first run of decimal digits in s.
// ok is false when s contains no digits or the number overflows.
func FirstUint(s string) (n int64, ok bool) {
	m := matchUint.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Uints returns every run of decimal digits in s, in order. Runs that
// overflow int64 are skipped.
func Uints(s string) []int64 {
	var out []int64
	for _, m := range matchUint.FindAllString(s, -1) {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
