package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ErrNoCases is returned for a manifest without any cases.
var ErrNoCases = errors.New("manifest has no cases")

// Parse decodes manifest YAML. Input paths are left as written.
func Parse(data []byte) (*AnswersManifest, error) {
	var m AnswersManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if len(m.Cases) == 0 {
		return nil, ErrNoCases
	}
	for i, c := range m.Cases {
		if c.Year == "" || c.Problem == "" || c.Input == "" {
			return nil, fmt.Errorf("case %d: year, problem and input are required", i+1)
		}
	}
	return &m, nil
}

// ParseFile reads a manifest file and resolves each relative case input
// against the manifest's directory.
func ParseFile(path string) (*AnswersManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	m.Dir = filepath.Dir(path)
	for i := range m.Cases {
		if !filepath.IsAbs(m.Cases[i].Input) {
			m.Cases[i].Input = filepath.Join(m.Dir, m.Cases[i].Input)
		}
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
