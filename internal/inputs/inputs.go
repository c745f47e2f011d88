package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/advent-labs/advent/internal/branding"
)

// InputsDir is the directory under the home dot-directory holding default inputs.
const InputsDir = "inputs"

// ErrUnavailable is matched by every UnavailableError.
var ErrUnavailable = errors.New("input unavailable")

// UnavailableError reports an input that could not be read.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("input %s unavailable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *UnavailableError) Unwrap() error { return e.Err }

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Reader reads input files. Relative paths that do not exist in the working
// directory are retried under Dir.
type Reader struct {
	Dir string
}

// Read returns the file contents unmodified.
func (r Reader) Read(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", &UnavailableError{Path: path, Err: errors.New("empty path")}
	}

	resolved, err := r.Resolve(path)
	if err != nil {
		return "", &UnavailableError{Path: path, Err: err}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", &UnavailableError{Path: path, Err: err}
	}
	return string(data), nil
}

// Resolve expands a leading "~" and picks the first existing candidate among
// the path itself and the path under Dir. When neither exists the expanded
// path is returned so the read error names it.
func (r Reader) Resolve(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) || r.Dir == "" {
		return expanded, nil
	}
	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}

	dir, err := ExpandHome(r.Dir)
	if err != nil {
		return "", err
	}
	candidate := filepath.Join(dir, expanded)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return expanded, nil
}

// DefaultPath returns <dir>/<year>/dayNN.txt.
func DefaultPath(dir, year string, day int) string {
	return filepath.Join(dir, year, fmt.Sprintf("day%02d.txt", day))
}

// DefaultDir returns the inputs directory. It checks the ADVENT_INPUTS
// environment variable first, then falls back to ~/.advent/inputs.
func DefaultDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("INPUTS")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), InputsDir), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
