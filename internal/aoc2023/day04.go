package aoc2023

import (
	"regexp"
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// Scratchcards solves Day 4. Each card lists winning numbers and the numbers
// held; matches score points in part one and win copies of later cards in
// part two.
type Scratchcards struct{}

func (Scratchcards) ID() string        { return "Day 4: Scratchcards" }
func (Scratchcards) Day() int          { return 4 }
func (Scratchcards) Aliases() []string { return []string{"4", "day4", "scratchcards"} }

func (Scratchcards) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	cards, err := parseCards(input, opts)
	if err != nil {
		return nil, err
	}

	var (
		sum int64
		ok  = true
	)
	switch part {
	case problem.PartOne:
		for _, c := range cards {
			if c.matches == 0 {
				continue
			}
			if c.matches > 63 {
				return nil, overflow(opts, c.line.Number, c.line.Text, "card score")
			}
			if sum, ok = addNonNeg(sum, int64(1)<<(c.matches-1)); !ok {
				return nil, overflow(opts, c.line.Number, c.line.Text, "sum of card scores")
			}
		}
	case problem.PartTwo:
		copies := make([]int64, len(cards))
		for i := range copies {
			copies[i] = 1
		}
		for i, c := range cards {
			for j := i + 1; j <= i+c.matches && j < len(copies); j++ {
				if copies[j], ok = addNonNeg(copies[j], copies[i]); !ok {
					return nil, overflow(opts, cards[j].line.Number, cards[j].line.Text, "card copies")
				}
			}
			if sum, ok = addNonNeg(sum, copies[i]); !ok {
				return nil, overflow(opts, c.line.Number, c.line.Text, "total cards")
			}
		}
	default:
		return nil, problem.UnknownPart(part)
	}
	return problem.NewResult("Sum", sum), nil
}

var matchCard = regexp.MustCompile(`^Card\s+\d+:([\d\s]*)\|([\d\s]*)$`)

type card struct {
	line    problem.Line
	matches int
}

// parseCards returns the match count of each card in input order.
func parseCards(input string, opts problem.Options) ([]card, error) {
	var cards []card
	for _, line := range problem.Lines(input) {
		var winning, held []int64
		if opts.Strict {
			m := matchCard.FindStringSubmatch(strings.TrimSpace(line.Text))
			if m == nil {
				return nil, problem.Malformed(line.Number, line.Text, `expected "Card <id>: <winning> | <held>"`)
			}
			winning, held = problem.Uints(m[1]), problem.Uints(m[2])
		} else {
			// Lenient cards keep their position so part two copies still line
			// up; a card without a '|' simply has no held numbers.
			body := line.Text
			if i := strings.Index(body, ":"); i >= 0 {
				body = body[i+1:]
			}
			left, right, _ := strings.Cut(body, "|")
			winning, held = problem.Uints(left), problem.Uints(right)
		}
		cards = append(cards, card{line: line, matches: countMatches(winning, held)})
	}
	return cards, nil
}

func countMatches(winning, held []int64) int {
	set := make(map[int64]struct{}, len(winning))
	for _, w := range winning {
		set[w] = struct{}{}
	}
	n := 0
	for _, h := range held {
		if _, ok := set[h]; ok {
			n++
		}
	}
	return n
}
