package aoc2023

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// CubeConundrum solves Day 2: games draw sets of red, green and blue cubes
// from a bag.
type CubeConundrum struct{}

func (CubeConundrum) ID() string        { return "Day 2: Cube Conundrum" }
func (CubeConundrum) Day() int          { return 2 }
func (CubeConundrum) Aliases() []string { return []string{"2", "day2", "cube-conundrum"} }

// bag is the part one cube supply.
var bag = cubeSet{red: 12, green: 13, blue: 14}

func (CubeConundrum) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	games, err := parseGames(input, opts)
	if err != nil {
		return nil, err
	}

	var (
		sum int64
		ok  = true
	)
	switch part {
	case problem.PartOne:
		for _, g := range games {
			if !g.fitsWithin(bag) {
				continue
			}
			if sum, ok = addNonNeg(sum, g.id); !ok {
				return nil, overflow(opts, 0, "", "sum of game ids")
			}
		}
	case problem.PartTwo:
		for _, g := range games {
			p, pok := g.minSet().power()
			if !pok {
				return nil, overflow(opts, 0, "", fmt.Sprintf("power of game %d", g.id))
			}
			if sum, ok = addNonNeg(sum, p); !ok {
				return nil, overflow(opts, 0, "", "sum of powers")
			}
		}
	default:
		return nil, problem.UnknownPart(part)
	}
	return problem.NewResult("Sum", sum), nil
}

type cubeSet struct {
	red, green, blue int64
}

func (s cubeSet) fitsWithin(other cubeSet) bool {
	return s.red <= other.red && s.green <= other.green && s.blue <= other.blue
}

func (s cubeSet) power() (int64, bool) {
	rg, ok := mulNonNeg(s.red, s.green)
	if !ok {
		return 0, false
	}
	return mulNonNeg(rg, s.blue)
}

type game struct {
	id   int64
	sets []cubeSet
}

func (g game) fitsWithin(b cubeSet) bool {
	for _, s := range g.sets {
		if !s.fitsWithin(b) {
			return false
		}
	}
	return true
}

// minSet is the smallest bag that makes the game possible.
func (g game) minSet() cubeSet {
	var m cubeSet
	for _, s := range g.sets {
		m.red = max(m.red, s.red)
		m.green = max(m.green, s.green)
		m.blue = max(m.blue, s.blue)
	}
	return m
}

var (
	matchGame = regexp.MustCompile(`^Game (\d+):(.*)$`)
	matchCube = regexp.MustCompile(`^(\d+) (red|green|blue)$`)

	matchGameID = regexp.MustCompile(`Game (\d+)`)
	matchRed    = regexp.MustCompile(`(\d+) red`)
	matchGreen  = regexp.MustCompile(`(\d+) green`)
	matchBlue   = regexp.MustCompile(`(\d+) blue`)
)

func parseGames(input string, opts problem.Options) ([]game, error) {
	var games []game
	for _, line := range problem.Lines(input) {
		if !opts.Strict {
			games = append(games, parseGameLenient(line.Text))
			continue
		}
		g, err := parseGameStrict(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// parseGameLenient zero-fills anything it cannot find.
func parseGameLenient(text string) game {
	g := game{id: captureInt(matchGameID, text)}
	for _, draw := range strings.Split(text, ";") {
		g.sets = append(g.sets, cubeSet{
			red:   captureInt(matchRed, draw),
			green: captureInt(matchGreen, draw),
			blue:  captureInt(matchBlue, draw),
		})
	}
	return g
}

func parseGameStrict(line problem.Line) (game, error) {
	m := matchGame.FindStringSubmatch(strings.TrimSpace(line.Text))
	if m == nil {
		return game{}, problem.Malformed(line.Number, line.Text, `expected "Game <id>: <draws>"`)
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return game{}, problem.Malformed(line.Number, line.Text, "game id out of range")
	}

	g := game{id: id}
	for _, draw := range strings.Split(m[2], ";") {
		var s cubeSet
		for _, item := range strings.Split(draw, ",") {
			cm := matchCube.FindStringSubmatch(strings.TrimSpace(item))
			if cm == nil {
				return game{}, problem.Malformed(line.Number, line.Text, "bad cube count %q", strings.TrimSpace(item))
			}
			n, err := strconv.ParseInt(cm[1], 10, 64)
			if err != nil {
				return game{}, problem.Malformed(line.Number, line.Text, "cube count out of range")
			}
			switch cm[2] {
			case "red":
				s.red += n
			case "green":
				s.green += n
			case "blue":
				s.blue += n
			}
		}
		g.sets = append(g.sets, s)
	}
	return g, nil
}

// captureInt returns the first capture group of re in s as an integer, or 0.
func captureInt(re *regexp.Regexp, s string) int64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
