//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/advent-labs/advent/internal/catalog"
	"github.com/advent-labs/advent/internal/check"
	"github.com/advent-labs/advent/internal/config"
	"github.com/advent-labs/advent/internal/inputs"
	"github.com/advent-labs/advent/internal/manifest"
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/prompt"
	"github.com/advent-labs/advent/internal/registry"
	"github.com/spf13/viper"
)

// TestFullFlowInteractive drives the terminal menus from year down to an
// answer, reading the input from the configured inputs directory.
func TestFullFlowInteractive(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, inputs.DefaultPath(env.InputsDir, "2023", 2), examples[2])

	root, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	// Relative path resolved under the inputs directory.
	stdin := strings.NewReader("2023\nDay 2: Cube Conundrum\n2\n2023/day02.txt\n")
	var menus bytes.Buffer
	out, err := root.Run(context.Background(), &registry.Session{
		Prompter: prompt.NewTerminal(stdin, &menus),
		Inputs:   inputs.Reader{Dir: env.InputsDir},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Dispatched() {
		t.Fatalf("expected dispatch, got %s (%v)", out.Status, out.Reason)
	}
	if got := out.Result.String(); got != "Sum: 2286" {
		t.Errorf("result = %q, want %q", got, "Sum: 2286")
	}
	if got := out.Path(); got != "2023 / Day 2: Cube Conundrum" {
		t.Errorf("path = %q", got)
	}
	for _, label := range []string{"Year:", "Problem:", "Part:", "Path:"} {
		if !strings.Contains(menus.String(), label) {
			t.Errorf("menus missing %q:\n%s", label, menus.String())
		}
	}
}

// TestFullFlowCancel quits at the problem menu and checks nothing ran.
func TestFullFlowCancel(t *testing.T) {
	setupTestEnv(t)

	root, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	out, err := root.Run(context.Background(), &registry.Session{
		Prompter: prompt.NewTerminal(strings.NewReader("1\nq\n"), &bytes.Buffer{}),
		Inputs:   inputs.Reader{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Dispatched() {
		t.Fatal("expected no selection")
	}
	if !errors.Is(out.Reason, registry.ErrNoSelection) || !errors.Is(out.Reason, prompt.ErrCancelled) {
		t.Errorf("reason = %v", out.Reason)
	}
	if len(out.Trail) != 1 || out.Trail[0] != "2023" {
		t.Errorf("trail = %v, want [2023]", out.Trail)
	}
}

// TestFullFlowCheck writes an answers manifest, validates it and checks every
// case against the example answers.
func TestFullFlowCheck(t *testing.T) {
	env := setupTestEnv(t)
	for day, text := range examples {
		writeFile(t, filepath.Join(env.WorkDir, "inputs", inputs.DefaultPath("", "", day)), text)
	}

	path := writeFile(t, filepath.Join(env.WorkDir, "answers.yaml"), `name: examples
min_version: "0.1.0"
strict: true
cases:
  - {year: 2023, problem: 1, part: two, input: inputs/day01.txt, want: 281}
  - {year: 2023, problem: cube-conundrum, part: 1, input: inputs/day02.txt, want: 8}
  - {year: 2023, problem: scratchcards, part: 2, input: inputs/day04.txt, want: 30}
  - {year: 2023, problem: "Day 6: Wait For It", part: "Part One", input: inputs/day06.txt, want: 288}
`)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if err := result.Err(); err != nil {
		t.Fatalf("manifest invalid: %v", err)
	}

	m, err := manifest.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if err := manifest.CheckVersion(m.MinVersion, "v0.2.0"); err != nil {
		t.Fatalf("CheckVersion: %v", err)
	}

	root, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	report, err := check.Run(context.Background(), root, m, inputs.Reader{}, problem.Options{}, nil)
	if err != nil {
		t.Fatalf("check.Run: %v", err)
	}
	if !report.Strict {
		t.Error("manifest strict flag not applied")
	}
	if !report.OK() {
		for _, r := range report.Results {
			t.Errorf("%s: %s got=%d want=%d %s", r.Name, r.Status, r.Got, r.Want, r.Error)
		}
	}
	if report.Passed != 4 {
		t.Errorf("passed = %d, want 4", report.Passed)
	}
}

// TestConfigInputsDir checks that inputs_dir from the config file wins over
// the environment default.
func TestConfigInputsDir(t *testing.T) {
	env := setupTestEnv(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	config.Load()
	custom := filepath.Join(env.WorkDir, "puzzles")
	if err := config.Set(config.KeyInputsDir, custom); err != nil {
		t.Fatalf("config.Set: %v", err)
	}

	viper.Reset()
	config.Load()
	dir, err := config.InputsDir()
	if err != nil {
		t.Fatalf("InputsDir: %v", err)
	}
	if dir != custom {
		t.Errorf("InputsDir() = %q, want %q", dir, custom)
	}
}
