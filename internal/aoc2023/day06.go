package aoc2023

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// WaitForIt solves Day 6: holding the boat button for t of T milliseconds
// travels t*(T-t) millimeters, and a race is won by beating its record.
type WaitForIt struct{}

func (WaitForIt) ID() string        { return "Day 6: Wait For It" }
func (WaitForIt) Day() int          { return 6 }
func (WaitForIt) Aliases() []string { return []string{"6", "day6", "wait-for-it"} }

func (WaitForIt) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	sheet, err := parseRaceSheet(input, opts)
	if err != nil {
		return nil, err
	}

	switch part {
	case problem.PartOne:
		n := min(len(sheet.times), len(sheet.records))
		if n == 0 {
			return problem.NewResult("Product", 0).Note("no races"), nil
		}
		product := int64(1)
		for i := 0; i < n; i++ {
			var ok bool
			product, ok = mulNonNeg(product, waysToWin(sheet.times[i], sheet.records[i]))
			if !ok {
				return nil, overflow(opts, sheet.timeLine, sheet.timeText, "product of ways to win")
			}
		}
		return problem.NewResult("Product", product), nil

	case problem.PartTwo:
		t, okT := joinDigits(sheet.timeText)
		d, okD := joinDigits(sheet.recordText)
		if !okT || !okD {
			if opts.Strict {
				return nil, problem.Malformed(sheet.timeLine, sheet.timeText, "race does not fit in 64 bits")
			}
			return problem.NewResult("Ways", 0).Note("no race"), nil
		}
		return problem.NewResult("Ways", waysToWin(t, d)), nil

	default:
		return nil, problem.UnknownPart(part)
	}
}

// waysToWin counts hold times t in [0, total] with t*(total-t) > record.
// Distance is symmetric around total/2 and increasing below it, so the
// smallest winning hold bounds the whole winning interval.
func waysToWin(total, record int64) int64 {
	half := total / 2
	if !beats(half, total, record) {
		return 0
	}
	lo, hi := int64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if beats(mid, total, record) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return total - 2*lo + 1
}

// beats reports whether holding for hold of total milliseconds travels
// further than record. A distance past int64 beats any record.
func beats(hold, total, record int64) bool {
	d, ok := mulNonNeg(hold, total-hold)
	return !ok || d > record
}

// joinDigits concatenates every digit in s into one number.
func joinDigits(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type raceSheet struct {
	times, records       []int64
	timeText, recordText string
	timeLine             int
}

var (
	matchTime     = regexp.MustCompile(`^Time:((?:\s+\d+)+)\s*$`)
	matchDistance = regexp.MustCompile(`^Distance:((?:\s+\d+)+)\s*$`)
)

func parseRaceSheet(input string, opts problem.Options) (*raceSheet, error) {
	sheet := &raceSheet{}
	var haveTime, haveDistance bool
	for _, line := range problem.Lines(input) {
		text := strings.TrimSpace(line.Text)
		switch {
		case strings.HasPrefix(text, "Time:"):
			if opts.Strict && !matchTime.MatchString(text) {
				return nil, problem.Malformed(line.Number, line.Text, "times must be whitespace separated numbers")
			}
			sheet.timeText = strings.TrimPrefix(text, "Time:")
			sheet.times = problem.Uints(sheet.timeText)
			sheet.timeLine = line.Number
			haveTime = true
		case strings.HasPrefix(text, "Distance:"):
			if opts.Strict && !matchDistance.MatchString(text) {
				return nil, problem.Malformed(line.Number, line.Text, "distances must be whitespace separated numbers")
			}
			sheet.recordText = strings.TrimPrefix(text, "Distance:")
			sheet.records = problem.Uints(sheet.recordText)
			haveDistance = true
		default:
			if opts.Strict {
				return nil, problem.Malformed(line.Number, line.Text, `expected a "Time:" or "Distance:" line`)
			}
		}
	}

	if opts.Strict {
		switch {
		case !haveTime:
			return nil, problem.Malformed(0, "", `missing "Time:" line`)
		case !haveDistance:
			return nil, problem.Malformed(0, "", `missing "Distance:" line`)
		case len(sheet.times) != len(sheet.records):
			return nil, problem.Malformed(0, "", "%d times but %d distances", len(sheet.times), len(sheet.records))
		}
	}
	return sheet, nil
}
