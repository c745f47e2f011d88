package registry

import (
	"errors"
	"fmt"

	"github.com/advent-labs/advent/internal/problem"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPrompter answers prompts from a fixed script and records what it
// was shown. An empty script answer stands for cancellation.
type scriptedPrompter struct {
	answers []string
	menus   []menu
	asked   []string
}

type menu struct {
	label   string
	options []string
}

var errCancelled = errors.New("cancelled")

func script(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", errScriptExhausted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a == "" {
		return "", errCancelled
	}
	return a, nil
}

func (p *scriptedPrompter) Select(label string, options []string) (string, error) {
	p.menus = append(p.menus, menu{label: label, options: append([]string(nil), options...)})
	return p.next()
}

func (p *scriptedPrompter) Ask(label string) (string, error) {
	p.asked = append(p.asked, label)
	return p.next()
}

// mapInputs serves input text from memory.
type mapInputs map[string]string

func (m mapInputs) Read(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fmt.Errorf("open %s: no such file", path)
	}
	return text, nil
}

// countingProblem records how often it was solved and echoes the input length.
type countingProblem struct {
	id      string
	aliases []string
	calls   int
	parts   []problem.Part
	err     error
}

func (p *countingProblem) ID() string        { return p.id }
func (p *countingProblem) Aliases() []string { return p.aliases }

func (p *countingProblem) Solve(part problem.Part, input string, opts problem.Options) (*problem.Result, error) {
	p.calls++
	p.parts = append(p.parts, part)
	if p.err != nil {
		return nil, p.err
	}
	value := int64(len(input))
	if opts.Strict {
		value = -value
	}
	return problem.NewResult("Len", value), nil
}
