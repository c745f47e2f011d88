// Package problem defines the contract every puzzle solver implements to be
// listed and run by a registry. A Problem exposes a stable identifier and
// computes a Result for one of its parts from raw input text. The package also
// carries the parsing policy (strict or lenient) and the small text helpers
// shared by solvers.
package problem
