// Package check runs every case of an answers manifest without prompting and
// compares each answer with the expected value.
package check

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/advent-labs/advent/internal/manifest"
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/registry"
)

// Status is the verdict for one case.
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// CaseResult is the verdict for one manifest case.
type CaseResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Label  string `json:"label,omitempty"`
	Want   int64  `json:"want"`
	Got    int64  `json:"got"`
	Error  string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Report collects the case results of one manifest run.
type Report struct {
	Manifest string       `json:"manifest"`
	Strict   bool         `json:"strict"`
	Results  []CaseResult `json:"results"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	Errored  int          `json:"errored"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Errored == 0
}

func (r *Report) add(res CaseResult) {
	switch res.Status {
	case StatusPass:
		r.Passed++
	case StatusFail:
		r.Failed++
	default:
		r.Errored++
	}
	r.Results = append(r.Results, res)
}

// Run resolves and solves every case in m. Strict parsing applies when either
// opts or the manifest asks for it. A case that cannot be resolved, read or
// solved is recorded as StatusError and the run continues; only context
// cancellation aborts it, returning the partial report.
func Run(ctx context.Context, root *registry.Registry, m *manifest.AnswersManifest, reader registry.InputReader, opts problem.Options, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Strict = opts.Strict || m.Strict

	report := &Report{Manifest: m.Name, Strict: opts.Strict}
	session := &registry.Session{Inputs: reader, Options: opts, Logger: logger}

	for _, c := range m.Cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := runCase(ctx, root, session, c)
		logger.Debug("case finished",
			zap.String("case", res.Name),
			zap.String("status", string(res.Status)),
			zap.Int64("got", res.Got),
			zap.Int64("want", res.Want))
		report.add(res)
	}
	return report, nil
}

func runCase(ctx context.Context, root *registry.Registry, s *registry.Session, c manifest.Case) CaseResult {
	res := CaseResult{Name: c.Name(), Want: c.Want}
	fail := func(err error) CaseResult {
		res.Status = StatusError
		res.Err = err
		res.Error = err.Error()
		return res
	}

	entry, err := registry.Resolve(root, c.Year, c.Problem)
	if err != nil {
		return fail(err)
	}
	res.Name = fmt.Sprintf("%s/%s %s", c.Year, entry.ID(), c.Part.Part())

	out, err := entry.Execute(ctx, s, c.Part.Part(), c.Input)
	if err != nil {
		return fail(err)
	}

	res.Label = out.Result.Label
	res.Got = out.Result.Value
	if res.Got == c.Want {
		res.Status = StatusPass
	} else {
		res.Status = StatusFail
	}
	return res
}
