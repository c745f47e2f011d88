// Package catalog assembles the top-level Advent of Code registry from the
// per-year registries.
package catalog

import (
	"fmt"

	"github.com/advent-labs/advent/internal/aoc2023"
	"github.com/advent-labs/advent/internal/registry"
)

// RootID is the identifier of the top-level registry.
const RootID = "Advent of Code"

// years lists the year loaders in menu order.
var years = []func() (*registry.Registry, error){
	aoc2023.Load,
}

// Load builds the top-level registry with one entry per year.
func Load() (*registry.Registry, error) {
	b := registry.NewBuilder(RootID, "Year:")
	for _, load := range years {
		year, err := load()
		if err != nil {
			return nil, fmt.Errorf("loading year registry: %w", err)
		}
		b.Register(year)
	}
	return b.Build()
}
