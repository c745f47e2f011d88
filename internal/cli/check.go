package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/advent-labs/advent/internal/catalog"
	"github.com/advent-labs/advent/internal/check"
	"github.com/advent-labs/advent/internal/manifest"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <answers.yaml>",
	Short: "Verify answers listed in an answers manifest",
	Long: `Validate an answers manifest, then solve every case it lists and compare
each answer with the expected value.

Case inputs are resolved relative to the manifest file. The command fails
when any case does not pass.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report in JSON format")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	m, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}
	if err := manifest.CheckVersion(m.MinVersion, buildVersion); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	root, err := catalog.Load()
	if err != nil {
		return err
	}
	reader, err := inputReader()
	if err != nil {
		return err
	}

	report, err := check.Run(cmd.Context(), root, m, reader, solveOptions(), logger)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if checkJSON {
		if err := printCheckJSON(cmd, report); err != nil {
			return err
		}
	} else if err := printCheckTable(cmd, report); err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d cases did not pass", report.Failed+report.Errored, len(report.Results))
	}
	return nil
}

func printCheckTable(cmd *cobra.Command, report *check.Report) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCASE\tGOT\tWANT")
	for _, r := range report.Results {
		got := fmt.Sprint(r.Got)
		if r.Status == check.StatusError {
			got = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Status, r.Name, got, r.Want)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range report.Results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Name, r.Err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d errored\n", report.Passed, report.Failed, report.Errored)
	return nil
}

func printCheckJSON(cmd *cobra.Command, report *check.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
