// Package aoc2023 contains the solvers for Advent of Code 2023 and builds the
// "2023" year registry.
//
// Every solver honors problem.Options: lenient parsing skips or zero-fills
// lines that do not match the expected shape, strict parsing rejects them
// with a problem.MalformedInputError.
package aoc2023
