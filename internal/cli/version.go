package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/advent-labs/advent/internal/branding"
	"github.com/advent-labs/advent/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo describes the build and the puzzle years compiled into it.
type versionInfo struct {
	Version string   `json:"version"`
	Commit  string   `json:"commit"`
	Date    string   `json:"date"`
	Go      string   `json:"go"`
	Years   []string `json:"years"`
}

func (v versionInfo) String() string {
	s := fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), v.Version, v.Commit, v.Date)
	if len(v.Years) > 0 {
		s += "\nyears: " + strings.Join(v.Years, ", ")
	}
	return s
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information and registered years",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info, err := currentVersion()
		if err != nil {
			return err
		}
		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintln(out, info)
		return nil
	},
}

func currentVersion() (versionInfo, error) {
	root, err := catalog.Load()
	if err != nil {
		return versionInfo{}, fmt.Errorf("loading catalog: %w", err)
	}
	info := versionInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
		Go:      runtime.Version(),
		Years:   []string{},
	}
	for _, y := range root.Entries() {
		info.Years = append(info.Years, y.ID())
	}
	return info, nil
}
