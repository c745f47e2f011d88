package aoc2023

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// Fertilizer solves Day 5: seeds pass through a chain of category maps
// (seed-to-soil, soil-to-fertilizer, ...) and the answer is the lowest
// resulting location. Part two reads the seed list as (start, length) pairs.
type Fertilizer struct{}

func (Fertilizer) ID() string        { return "Day 5: If You Give A Seed A Fertilizer" }
func (Fertilizer) Day() int          { return 5 }
func (Fertilizer) Aliases() []string { return []string{"5", "day5", "fertilizer"} }

func (Fertilizer) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	a, err := parseAlmanac(input, opts)
	if err != nil {
		return nil, err
	}

	var spans []span
	switch part {
	case problem.PartOne:
		for _, seed := range a.seeds {
			end, ok := addNonNeg(seed, 1)
			if !ok {
				if opts.Strict {
					return nil, problem.Malformed(a.seedLine, a.seedText, "seed %d has no representable successor", seed)
				}
				continue
			}
			spans = append(spans, span{start: seed, end: end})
		}
	case problem.PartTwo:
		if opts.Strict && len(a.seeds)%2 != 0 {
			return nil, problem.Malformed(a.seedLine, a.seedText, "seed ranges need an even count of numbers, got %d", len(a.seeds))
		}
		for i := 0; i+1 < len(a.seeds); i += 2 {
			if a.seeds[i+1] == 0 {
				continue
			}
			end, ok := addNonNeg(a.seeds[i], a.seeds[i+1])
			if !ok {
				if opts.Strict {
					return nil, problem.Malformed(a.seedLine, a.seedText, "seed range %d+%d overflows int64", a.seeds[i], a.seeds[i+1])
				}
				continue
			}
			spans = append(spans, span{start: a.seeds[i], end: end})
		}
	default:
		return nil, problem.UnknownPart(part)
	}

	for _, m := range a.maps {
		spans = m.convert(spans)
	}

	res := problem.NewResult("Location", 0)
	if len(spans) == 0 {
		res.Note("no seeds")
		return res, nil
	}
	lowest := spans[0].start
	for _, s := range spans[1:] {
		lowest = min(lowest, s.start)
	}
	res.Value = lowest
	res.Note("%d seed values through %d maps", len(a.seeds), len(a.maps))
	return res, nil
}

// span is the half-open interval [start, end).
type span struct {
	start, end int64
}

// mapRange maps [src, src+length) onto [dest, dest+length).
type mapRange struct {
	dest, src, length int64
}

type categoryMap struct {
	from, to string
	ranges   []mapRange
}

// convert maps every span through m, splitting spans that straddle range
// boundaries. Values outside every range map to themselves.
func (m categoryMap) convert(in []span) []span {
	out := make([]span, 0, len(in))
	pending := append([]span(nil), in...)
	for len(pending) > 0 {
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		mapped := false
		for _, r := range m.ranges {
			lo, hi := max(s.start, r.src), min(s.end, r.src+r.length)
			if lo >= hi {
				continue
			}
			shift := r.dest - r.src
			out = append(out, span{start: lo + shift, end: hi + shift})
			if s.start < lo {
				pending = append(pending, span{start: s.start, end: lo})
			}
			if hi < s.end {
				pending = append(pending, span{start: hi, end: s.end})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, s)
		}
	}
	return out
}

type almanac struct {
	seeds    []int64
	seedLine int
	seedText string
	maps     []categoryMap
}

var (
	matchSeeds  = regexp.MustCompile(`^seeds:((?:\s+\d+)*)\s*$`)
	matchHeader = regexp.MustCompile(`^([a-z]+)-to-([a-z]+) map:$`)
	matchRange  = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(\d+)$`)
)

func parseAlmanac(input string, opts problem.Options) (*almanac, error) {
	a := &almanac{}
	seen := false
	for _, line := range problem.Lines(input) {
		text := strings.TrimSpace(line.Text)
		switch {
		case strings.HasPrefix(text, "seeds:"):
			if opts.Strict && !matchSeeds.MatchString(text) {
				return nil, problem.Malformed(line.Number, line.Text, "seeds must be whitespace separated numbers")
			}
			a.seeds = problem.Uints(text)
			a.seedLine = line.Number
			a.seedText = line.Text
			seen = true

		case matchHeader.MatchString(text):
			m := matchHeader.FindStringSubmatch(text)
			a.maps = append(a.maps, categoryMap{from: m[1], to: m[2]})

		case matchRange.MatchString(text):
			if len(a.maps) == 0 {
				if opts.Strict {
					return nil, problem.Malformed(line.Number, line.Text, "range before any map header")
				}
				continue
			}
			r, err := parseMapRange(matchRange.FindStringSubmatch(text))
			if err != nil {
				if opts.Strict {
					return nil, problem.Malformed(line.Number, line.Text, "%v", err)
				}
				continue
			}
			cur := &a.maps[len(a.maps)-1]
			cur.ranges = append(cur.ranges, r)

		default:
			if opts.Strict {
				return nil, problem.Malformed(line.Number, line.Text, "unrecognized almanac line")
			}
		}
	}
	if opts.Strict && !seen {
		return nil, problem.Malformed(0, "", "missing seeds line")
	}
	return a, nil
}

func parseMapRange(m []string) (mapRange, error) {
	var vals [3]int64
	for i := range vals {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return mapRange{}, fmt.Errorf("range value %q out of range", m[i+1])
		}
		vals[i] = v
	}
	if _, ok := addNonNeg(vals[1], vals[2]); !ok {
		return mapRange{}, fmt.Errorf("source range %d+%d overflows int64", vals[1], vals[2])
	}
	if _, ok := addNonNeg(vals[0], vals[2]); !ok {
		return mapRange{}, fmt.Errorf("destination range %d+%d overflows int64", vals[0], vals[2])
	}
	return mapRange{dest: vals[0], src: vals[1], length: vals[2]}, nil
}
