// Package inputs is the input boundary: it resolves puzzle input paths and
// reads them once as raw text. Failures surface as UnavailableError so callers
// can tell a missing file apart from a solver error.
package inputs
