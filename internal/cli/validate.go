package cli

import (
	"fmt"

	"github.com/advent-labs/advent/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <answers.yaml>",
	Short: "Validate an answers manifest against its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
		}
		return fmt.Errorf("%s: %d validation issue(s)", path, len(result.Issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
