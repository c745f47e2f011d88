package aoc2023

import (
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/registry"
)

// Year is the registry identifier for this package's problems.
const Year = "2023"

// Problems returns the solvers in menu order.
func Problems() []problem.Problem {
	return []problem.Problem{
		Trebuchet{},
		CubeConundrum{},
		GearRatios{},
		Scratchcards{},
		Fertilizer{},
		WaitForIt{},
	}
}

// Load builds the 2023 year registry.
func Load() (*registry.Registry, error) {
	b := registry.NewBuilder(Year, "Problem:")
	for _, p := range Problems() {
		b.RegisterProblem(p)
	}
	return b.Build()
}
