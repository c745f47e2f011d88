// Package registry holds ordered, named collections of runnable entries and
// dispatches to one of them through an interactive prompt. The same Registry
// type serves as a year (entries are problems) and as the top level (entries
// are years), so nesting is just a Registry registered into another.
//
// Registries are built with an append-only Builder and are read-only once
// built. Identifiers and aliases are unique keys: Build rejects collisions
// instead of letting the first match shadow later entries.
package registry
