package registry

import (
	"github.com/advent-labs/advent/internal/problem"
	"go.uber.org/zap"
)

// Prompter is the interactive collaborator that resolves menu choices and
// free-text answers. Implementations return an error on cancellation or when
// no input is available.
type Prompter interface {
	// Select presents options under label and returns the chosen option text.
	Select(label string, options []string) (string, error)
	// Ask presents label and returns the answer text.
	Ask(label string) (string, error)
}

// InputReader loads puzzle input text for a path.
type InputReader interface {
	Read(path string) (string, error)
}

// Session carries the collaborators for one dispatch.
type Session struct {
	Prompter Prompter
	Inputs   InputReader
	Options  problem.Options
	Logger   *zap.Logger
}

func (s *Session) logger() *zap.Logger {
	if s == nil || s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
