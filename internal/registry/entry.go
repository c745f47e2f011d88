package registry

import (
	"context"
	"fmt"

	"github.com/advent-labs/advent/internal/problem"
	"go.uber.org/zap"
)

// Menu labels used when a problem prompts for its part and input.
const (
	PartLabel = "Part:"
	PathLabel = "Path:"
)

// ProblemEntry adapts a problem.Problem to Runnable. Running it prompts for a
// part and an input path, reads the input once and solves.
type ProblemEntry struct {
	problem problem.Problem
}

// NewProblemEntry wraps p.
func NewProblemEntry(p problem.Problem) *ProblemEntry {
	return &ProblemEntry{problem: p}
}

// ID returns the wrapped problem's identifier.
func (e *ProblemEntry) ID() string { return e.problem.ID() }

// Problem returns the wrapped problem.
func (e *ProblemEntry) Problem() problem.Problem { return e.problem }

// Aliases returns the wrapped problem's aliases, if it has any.
func (e *ProblemEntry) Aliases() []string {
	if a, ok := e.problem.(problem.Aliaser); ok {
		return a.Aliases()
	}
	return nil
}

// Run prompts for a part and an input path, then executes.
func (e *ProblemEntry) Run(ctx context.Context, s *Session) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if s == nil || s.Prompter == nil {
		return Outcome{}, ErrNoPrompter
	}

	parts := problem.Parts()
	labels := make([]string, len(parts))
	for i, p := range parts {
		labels[i] = p.String()
	}

	choice, err := s.Prompter.Select(PartLabel, labels)
	if err != nil {
		return noSelection(fmt.Errorf("%w: %w", ErrNoSelection, err)), nil
	}
	part, err := problem.ParsePart(choice)
	if err != nil {
		return noSelection(fmt.Errorf("%w: %w %q", ErrNoSelection, ErrUnknownEntry, choice)), nil
	}

	path, err := s.Prompter.Ask(PathLabel)
	if err != nil {
		return noSelection(fmt.Errorf("%w: %w", ErrNoSelection, err)), nil
	}

	return e.Execute(ctx, s, part, path)
}

// Execute reads the input at path and solves part without prompting.
func (e *ProblemEntry) Execute(ctx context.Context, s *Session, part problem.Part, path string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if s == nil || s.Inputs == nil {
		return Outcome{}, ErrNoInputs
	}

	s.logger().Debug("reading input", zap.String("entry", e.ID()), zap.String("path", path))
	input, err := s.Inputs.Read(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading input for %s: %w", e.ID(), err)
	}

	return e.Solve(s, part, input)
}

// Solve runs the problem on already-loaded input text.
func (e *ProblemEntry) Solve(s *Session, part problem.Part, input string) (Outcome, error) {
	var opts problem.Options
	if s != nil {
		opts = s.Options
	}

	s.logger().Debug("solving",
		zap.String("entry", e.ID()),
		zap.Stringer("part", part),
		zap.Bool("strict", opts.Strict))

	res, err := e.problem.Solve(part, input, opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("solving %s (%s): %w", e.ID(), part, err)
	}

	return Outcome{Status: StatusDispatched, Part: part, Result: res}, nil
}
