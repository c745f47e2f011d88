package registry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Runnable is anything a Registry can list and dispatch to.
type Runnable interface {
	ID() string
	Run(ctx context.Context, s *Session) (Outcome, error)
}

// Registry is an ordered, read-only collection of entries. It is itself
// Runnable, so registries nest.
type Registry struct {
	id      string
	label   string
	entries []Runnable
	byID    map[string]int
	byKey   map[string]int
}

// ID returns the registry identifier (e.g. "2023").
func (r *Registry) ID() string { return r.id }

// Label returns the menu label shown when this registry prompts.
func (r *Registry) Label() string { return r.label }

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// IDs returns entry identifiers in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID()
	}
	return ids
}

// Entries returns a copy of the entries in insertion order.
func (r *Registry) Entries() []Runnable {
	out := make([]Runnable, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup finds an entry by exact identifier, then by case-insensitive
// identifier or alias.
func (r *Registry) Lookup(query string) (Runnable, bool) {
	if i, ok := r.byID[query]; ok {
		return r.entries[i], true
	}
	if i, ok := r.byKey[strings.ToLower(strings.TrimSpace(query))]; ok {
		return r.entries[i], true
	}
	return nil, false
}

// Run presents the entry identifiers, waits for one selection and dispatches
// to the chosen entry. A cancelled, failed or unmatched selection ends in a
// StatusNoSelection outcome with a nil error; it is never retried. Errors are
// returned only for problems that ran and failed.
func (r *Registry) Run(ctx context.Context, s *Session) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if s == nil || s.Prompter == nil {
		return Outcome{}, ErrNoPrompter
	}
	log := s.logger().With(zap.String("registry", r.id))

	choice, err := s.Prompter.Select(r.label, r.IDs())
	if err != nil {
		log.Debug("selection unresolved", zap.Error(err))
		return noSelection(fmt.Errorf("%w: %w", ErrNoSelection, err)), nil
	}

	i, ok := r.byID[choice]
	if !ok {
		log.Debug("selection matched no entry", zap.String("choice", choice))
		return noSelection(fmt.Errorf("%w: %w %q", ErrNoSelection, ErrUnknownEntry, choice)), nil
	}

	log.Debug("dispatching", zap.String("entry", choice))
	out, err := r.entries[i].Run(ctx, s)
	out.Trail = append([]string{choice}, out.Trail...)
	return out, err
}

// Resolve walks root by identifier or alias, one segment per level, and
// returns the problem at the end of the path.
func Resolve(root *Registry, path ...string) (*ProblemEntry, error) {
	var cur Runnable = root
	for _, seg := range path {
		reg, ok := cur.(*Registry)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no entries below it", ErrNotFound, cur.ID())
		}
		next, ok := reg.Lookup(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrNotFound, seg, reg.ID())
		}
		cur = next
	}

	entry, ok := cur.(*ProblemEntry)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a problem", ErrNotFound, cur.ID())
	}
	return entry, nil
}
