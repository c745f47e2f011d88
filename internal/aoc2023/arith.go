package aoc2023

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/advent-labs/advent/internal/problem"
)

// addNonNeg returns a+b for non-negative operands; ok is false on overflow.
func addNonNeg(a, b int64) (sum int64, ok bool) {
	sum = a + b
	return sum, sum >= a
}

// mulNonNeg returns a*b for non-negative operands; ok is false on overflow.
func mulNonNeg(a, b int64) (product int64, ok bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// overflow reports a value that does not fit in int64. Strict parsing treats
// it as malformed input; lenient parsing still refuses to return a wrapped
// answer.
func overflow(opts problem.Options, line int, text, what string) error {
	if opts.Strict {
		return problem.Malformed(line, text, "%s overflows int64", what)
	}
	return fmt.Errorf("%w: %s", problem.ErrOverflow, what)
}
