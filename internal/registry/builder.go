package registry

import (
	"fmt"
	"strings"

	"github.com/advent-labs/advent/internal/problem"
)

// Builder accumulates entries for a Registry. Register only appends; all
// validation happens in Build.
type Builder struct {
	id      string
	label   string
	entries []Runnable
}

// NewBuilder starts a registry with the given identifier and menu label
// (e.g. "2023" and "Problem:").
func NewBuilder(id, label string) *Builder {
	return &Builder{id: id, label: label}
}

// Register appends an entry and returns b for chaining.
func (b *Builder) Register(entry Runnable) *Builder {
	b.entries = append(b.entries, entry)
	return b
}

// RegisterProblem wraps p in a ProblemEntry and appends it.
func (b *Builder) RegisterProblem(p problem.Problem) *Builder {
	return b.Register(NewProblemEntry(p))
}

// Build validates the entries and returns an immutable Registry. Identifiers
// and aliases are compared case-insensitively and must be unique.
func (b *Builder) Build() (*Registry, error) {
	r := &Registry{
		id:      b.id,
		label:   b.label,
		entries: make([]Runnable, len(b.entries)),
		byID:    make(map[string]int, len(b.entries)),
		byKey:   make(map[string]int, len(b.entries)),
	}
	copy(r.entries, b.entries)

	for i, e := range r.entries {
		id := e.ID()
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("registry %q entry %d: %w", b.id, i+1, ErrEmptyID)
		}
		if err := r.claim(id, i); err != nil {
			return nil, err
		}
		r.byID[id] = i

		for _, alias := range aliasesOf(e) {
			if err := r.claim(alias, i); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// claim reserves a lookup key for entry i.
func (r *Registry) claim(key string, i int) error {
	k := strings.ToLower(strings.TrimSpace(key))
	if owner, taken := r.byKey[k]; taken && owner != i {
		return fmt.Errorf("%w: %q in registry %q (already used by %q)", ErrDuplicateID, key, r.id, r.entries[owner].ID())
	}
	r.byKey[k] = i
	return nil
}

func aliasesOf(e Runnable) []string {
	if a, ok := e.(problem.Aliaser); ok {
		return a.Aliases()
	}
	return nil
}
