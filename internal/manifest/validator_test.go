package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
		t.Fatal("expected valid")
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-missing-name.yaml", ""},
		{"invalid-bad-part.yaml", "/cases/0/part"},
		{"invalid-want-string.yaml", "/cases/0/want"},
		{"invalid-no-cases.yaml", "/cases"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s", tt.file)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Message == "" {
					t.Errorf("issue at %q has no message", issue.Path)
				}
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q in %+v", tt.path, result.Issues)
			}
			if result.Err() == nil {
				t.Error("Err() = nil for invalid result")
			}
		})
	}
}

func TestValidate_UnknownField(t *testing.T) {
	data := "name: x\nextra: true\ncases:\n  - {year: '2023', problem: '1', part: 1, input: a, want: 1}\n"
	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for unknown top-level field")
	}
	if !strings.Contains(result.Err().Error(), "extra") {
		t.Errorf("Err() = %v, want mention of extra", result.Err())
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestNormalizeYAML_NonStringKeys(t *testing.T) {
	in := map[interface{}]interface{}{2023: []interface{}{map[interface{}]interface{}{1: "x"}}}
	out, ok := normalizeYAML(in).(map[string]interface{})
	if !ok {
		t.Fatalf("normalizeYAML returned %T", normalizeYAML(in))
	}
	list, ok := out["2023"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("out[2023] = %#v", out["2023"])
	}
	if _, ok := list[0].(map[string]interface{}); !ok {
		t.Errorf("nested map not normalized: %T", list[0])
	}
}
