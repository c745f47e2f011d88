package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/advent-labs/advent/internal/branding"
	"github.com/advent-labs/advent/internal/catalog"
	"github.com/advent-labs/advent/internal/config"
	"github.com/advent-labs/advent/internal/inputs"
	"github.com/advent-labs/advent/internal/logging"
	"github.com/advent-labs/advent/internal/problem"
	"github.com/advent-labs/advent/internal/prompt"
	"github.com/advent-labs/advent/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagStrict  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` runs Advent of Code puzzle solutions.

With no arguments it walks the menus interactively: pick a year, a problem,
a part and an input file. Enter q at any prompt to quit. The run, list and
check commands do the same work without prompting.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		l, err := logging.New(flagVerbose || config.GetBool(config.KeyVerbose))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log dispatch details to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject malformed puzzle input instead of skipping it")
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the command's context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	root, err := catalog.Load()
	if err != nil {
		return err
	}
	reader, err := inputReader()
	if err != nil {
		return err
	}

	out, err := root.Run(cmd.Context(), &registry.Session{
		Prompter: prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr()),
		Inputs:   reader,
		Options:  solveOptions(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return printOutcome(cmd, out)
}

// printOutcome writes the answer to stdout, or "No selection." to stderr when
// nothing was dispatched.
func printOutcome(cmd *cobra.Command, out registry.Outcome) error {
	if !out.Dispatched() {
		logger.Debug("nothing dispatched", zap.Strings("trail", out.Trail), zap.Error(out.Reason))
		fmt.Fprintln(cmd.ErrOrStderr(), "No selection.")
		return nil
	}
	for _, note := range out.Result.Notes {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Result)
	return err
}

// solveOptions applies --strict on top of the strict config key.
func solveOptions() problem.Options {
	return problem.Options{Strict: flagStrict || config.GetBool(config.KeyStrict)}
}

// inputReader resolves relative input paths against the configured inputs
// directory.
func inputReader() (inputs.Reader, error) {
	dir, err := config.InputsDir()
	if err != nil {
		return inputs.Reader{}, fmt.Errorf("resolving inputs directory: %w", err)
	}
	return inputs.Reader{Dir: dir}, nil
}
