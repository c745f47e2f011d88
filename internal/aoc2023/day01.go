package aoc2023

import (
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// Trebuchet solves Day 1: each line's calibration value is its first digit
// followed by its last digit. Part two also counts spelled-out digits, and
// spelled digits may overlap ("oneight" is 18).
type Trebuchet struct{}

func (Trebuchet) ID() string        { return "Day 1: Trebuchet?!" }
func (Trebuchet) Day() int          { return 1 }
func (Trebuchet) Aliases() []string { return []string{"1", "day1", "trebuchet"} }

func (Trebuchet) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	var spelled bool
	switch part {
	case problem.PartOne:
	case problem.PartTwo:
		spelled = true
	default:
		return nil, problem.UnknownPart(part)
	}

	var sum int64
	for _, line := range problem.Lines(input) {
		v, ok := calibrationValue(line.Text, spelled)
		if !ok {
			if opts.Strict {
				return nil, problem.Malformed(line.Number, line.Text, "no digit found")
			}
			continue
		}
		sum += v
	}
	return problem.NewResult("Sum", sum), nil
}

var digitWords = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibrationValue returns 10*first + last digit of line.
func calibrationValue(line string, spelled bool) (int64, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}
	return int64(10*first + last), true
}

// digitAt reports the digit starting at line[i], if any.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for d, word := range digitWords {
		if strings.HasPrefix(line[i:], word) {
			return d, true
		}
	}
	return 0, false
}
