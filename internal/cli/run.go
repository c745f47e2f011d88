package cli

import (
	"encoding/json"
	"fmt"

	"github.com/advent-labs/advent/internal/catalog"
	"github.com/advent-labs/advent/internal/inputs"
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/registry"
	"github.com/spf13/cobra"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run <year> <problem> <part> [input-path]",
	Short: "Solve one puzzle part without prompting",
	Long: `Solve one part of one puzzle.

The year and problem may be given by identifier or alias ("2023 1",
"2023 trebuchet", "2023 'Day 1: Trebuchet?!'"). The part accepts 1, 2,
one, two or "Part One".

Without an input path the default input for the day is read from
<inputs_dir>/<year>/dayNN.txt.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(runCmd)
}

// runResult is the --json shape of one answer.
type runResult struct {
	Year    string   `json:"year"`
	Problem string   `json:"problem"`
	Part    int      `json:"part"`
	Label   string   `json:"label"`
	Value   int64    `json:"value"`
	Notes   []string `json:"notes,omitempty"`
}

func runRun(cmd *cobra.Command, args []string) error {
	root, err := catalog.Load()
	if err != nil {
		return err
	}

	entry, err := registry.Resolve(root, args[0], args[1])
	if err != nil {
		return err
	}
	year := args[0]
	if y, ok := root.Lookup(year); ok {
		year = y.ID()
	}

	part, err := problem.ParsePart(args[2])
	if err != nil {
		return err
	}

	reader, err := inputReader()
	if err != nil {
		return err
	}

	var path string
	if len(args) == 4 {
		path = args[3]
	} else {
		n, ok := entry.Problem().(problem.Numbered)
		if !ok {
			return fmt.Errorf("%s has no default input; pass an input path", entry.ID())
		}
		path = inputs.DefaultPath(reader.Dir, year, n.Day())
	}

	s := &registry.Session{Inputs: reader, Options: solveOptions(), Logger: logger}
	out, err := entry.Execute(cmd.Context(), s, part, path)
	if err != nil {
		return err
	}
	out.Trail = []string{year, entry.ID()}

	if runJSON {
		return printRunJSON(cmd, runResult{
			Year:    year,
			Problem: entry.ID(),
			Part:    int(out.Part),
			Label:   out.Result.Label,
			Value:   out.Result.Value,
			Notes:   out.Result.Notes,
		})
	}
	return printOutcome(cmd, out)
}

func printRunJSON(cmd *cobra.Command, res runResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
