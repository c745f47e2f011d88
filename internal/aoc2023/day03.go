package aoc2023

import (
	"regexp"
	"strconv"

	"github.com/advent-labs/advent/internal/problem"
)

// GearRatios solves Day 3: an engine schematic of part numbers and symbols.
// A symbol is any character other than a digit or '.'.
type GearRatios struct{}

func (GearRatios) ID() string        { return "Day 3: Gear Ratios" }
func (GearRatios) Day() int          { return 3 }
func (GearRatios) Aliases() []string { return []string{"3", "day3", "gear-ratios"} }

func (GearRatios) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	s, err := parseSchematic(input, opts)
	if err != nil {
		return nil, err
	}

	var (
		sum int64
		ok  = true
	)
	switch part {
	case problem.PartOne:
		for _, n := range s.numbers {
			if !s.touchesSymbol(n) {
				continue
			}
			if sum, ok = addNonNeg(sum, n.value); !ok {
				return nil, overflow(opts, 0, "", "sum of part numbers")
			}
		}
	case problem.PartTwo:
		for _, sym := range s.symbolList {
			if sym.char != '*' {
				continue
			}
			adjacent := s.numbersAround(sym)
			if len(adjacent) != 2 {
				continue
			}
			ratio, rok := mulNonNeg(adjacent[0].value, adjacent[1].value)
			if !rok {
				return nil, overflow(opts, 0, "", "gear ratio")
			}
			if sum, ok = addNonNeg(sum, ratio); !ok {
				return nil, overflow(opts, 0, "", "sum of gear ratios")
			}
		}
	default:
		return nil, problem.UnknownPart(part)
	}
	return problem.NewResult("Sum", sum), nil
}

// partNumber spans columns [start, end) of row.
type partNumber struct {
	value      int64
	row        int
	start, end int
}

type symbol struct {
	char     byte
	row, col int
}

// adjacent reports whether sym lies in the 8-neighborhood of n.
func (n partNumber) adjacent(sym symbol) bool {
	return sym.row >= n.row-1 && sym.row <= n.row+1 &&
		sym.col >= n.start-1 && sym.col <= n.end
}

type schematic struct {
	numbers    []partNumber
	numbersBy  map[int][]partNumber
	symbolList []symbol
	symbolsBy  map[int][]symbol
}

func (s *schematic) touchesSymbol(n partNumber) bool {
	for row := n.row - 1; row <= n.row+1; row++ {
		for _, sym := range s.symbolsBy[row] {
			if n.adjacent(sym) {
				return true
			}
		}
	}
	return false
}

func (s *schematic) numbersAround(sym symbol) []partNumber {
	var out []partNumber
	for row := sym.row - 1; row <= sym.row+1; row++ {
		for _, n := range s.numbersBy[row] {
			if n.adjacent(sym) {
				out = append(out, n)
			}
		}
	}
	return out
}

var (
	matchNumber = regexp.MustCompile(`\d+`)
	matchSymbol = regexp.MustCompile(`[^.\d\s]`)
)

// parseSchematic uses original line numbers as row coordinates so blank lines
// keep their place in the grid. Strict parsing requires a rectangular grid.
func parseSchematic(input string, opts problem.Options) (*schematic, error) {
	s := &schematic{
		numbersBy: make(map[int][]partNumber),
		symbolsBy: make(map[int][]symbol),
	}
	width := -1
	for _, line := range problem.Lines(input) {
		if opts.Strict {
			if width >= 0 && len(line.Text) != width {
				return nil, problem.Malformed(line.Number, line.Text, "row width %d, expected %d", len(line.Text), width)
			}
			width = len(line.Text)
		}

		for _, loc := range matchNumber.FindAllStringIndex(line.Text, -1) {
			v, err := strconv.ParseInt(line.Text[loc[0]:loc[1]], 10, 64)
			if err != nil {
				if opts.Strict {
					return nil, problem.Malformed(line.Number, line.Text, "part number out of range")
				}
				continue
			}
			n := partNumber{value: v, row: line.Number, start: loc[0], end: loc[1]}
			s.numbers = append(s.numbers, n)
			s.numbersBy[n.row] = append(s.numbersBy[n.row], n)
		}
		for _, loc := range matchSymbol.FindAllStringIndex(line.Text, -1) {
			sym := symbol{char: line.Text[loc[0]], row: line.Number, col: loc[0]}
			s.symbolList = append(s.symbolList, sym)
			s.symbolsBy[sym.row] = append(s.symbolsBy[sym.row], sym)
		}
	}
	return s, nil
}
