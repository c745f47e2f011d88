package registry

import "errors"

var (
	// ErrNoSelection marks an Outcome whose prompt did not resolve to an entry.
	// The wrapped cause tells cancellation, prompt failure and unknown choices apart.
	ErrNoSelection = errors.New("no selection")
	// ErrUnknownEntry is the cause when a prompt returns a choice that matches
	// no registered identifier.
	ErrUnknownEntry = errors.New("unknown entry")
	// ErrDuplicateID is returned by Build when two entries share an identifier or alias.
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrEmptyID is returned by Build for an entry with a blank identifier.
	ErrEmptyID = errors.New("empty identifier")
	// ErrNotFound is returned by Resolve when a path segment matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrNoPrompter is returned by Run when the session cannot prompt.
	ErrNoPrompter = errors.New("session has no prompter")
	// ErrNoInputs is returned when a problem runs without an input reader.
	ErrNoInputs = errors.New("session has no input reader")
)
