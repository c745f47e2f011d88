package manifest

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/advent-labs/advent/internal/problem"
)

// AnswersManifest is a named list of cases with expected answers.
type AnswersManifest struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Strict     bool   `yaml:"strict,omitempty" json:"strict,omitempty"`
	Cases      []Case `yaml:"cases" json:"cases"`

	// Dir is the directory the manifest was read from. Set by ParseFile.
	Dir string `yaml:"-" json:"-"`
}

// Case is one expected answer. Year and Problem are registry identifiers or
// aliases; Input is resolved against the manifest directory by ParseFile.
type Case struct {
	Year    string   `yaml:"year" json:"year"`
	Problem string   `yaml:"problem" json:"problem"`
	Part    PartSpec `yaml:"part" json:"part"`
	Input   string   `yaml:"input" json:"input"`
	Want    int64    `yaml:"want" json:"want"`
}

// Name describes the case for reports, e.g. "2023/1 Part One".
func (c Case) Name() string {
	return fmt.Sprintf("%s/%s %s", c.Year, c.Problem, c.Part.Part())
}

// PartSpec is a puzzle part written as a number or a name ("1", "one",
// "Part Two").
type PartSpec problem.Part

// Part returns the parsed part.
func (p PartSpec) Part() problem.Part { return problem.Part(p) }

// UnmarshalYAML accepts any form problem.ParsePart understands.
func (p *PartSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: part must be a number or a name", node.Line)
	}
	part, err := problem.ParsePart(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = PartSpec(part)
	return nil
}

// MarshalYAML writes the part as its number.
func (p PartSpec) MarshalYAML() (interface{}, error) {
	return int(p), nil
}
