package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/advent-labs/advent/internal/catalog"
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/registry"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "List registered problems",
	Long:  `List every registered problem with its aliases, optionally for a single year.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered problem for display.
type listEntry struct {
	Year    string   `json:"year"`
	Problem string   `json:"problem"`
	Aliases []string `json:"aliases,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := catalog.Load()
	if err != nil {
		return err
	}

	years := root.Entries()
	if len(args) == 1 {
		y, ok := root.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: year %q", registry.ErrNotFound, args[0])
		}
		years = []registry.Runnable{y}
	}

	var entries []listEntry
	for _, y := range years {
		year, ok := y.(*registry.Registry)
		if !ok {
			continue
		}
		for _, e := range year.Entries() {
			entry := listEntry{Year: year.ID(), Problem: e.ID()}
			if a, ok := e.(problem.Aliaser); ok {
				entry.Aliases = a.Aliases()
			}
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No problems registered.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "YEAR\tPROBLEM\tALIASES")
	for _, e := range entries {
		aliases := strings.Join(e.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Year, e.Problem, aliases)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
