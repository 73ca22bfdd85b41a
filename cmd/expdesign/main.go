// Command expdesign balances experimental conditions across trials and
// sessions from the command line.
//
//	expdesign trials --conds A,B,C --trials 7 --shuffle none --start 0
//	expdesign sessions --conds A,B,C --trials 6 --sessions 2 --shuffle set --seed 1
//	expdesign nested --cond congruent=c1,c2 --cond incongruent=i1,i2 --trials 8 --sessions 4
//	expdesign run plan.yaml --format json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the global flag values and the logger shared by subcommands.
type cli struct {
	verbose bool
	format  string
	summary bool
	seed    int64
	start   int

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "expdesign",
		Short: "Balance experimental conditions across trials and sessions",
		Long: `expdesign assigns one condition to every trial so that all conditions
appear equally often, with a configurable shuffle policy:

  none  strict cyclic order
  set   each full pass through the conditions is permuted on its own
  all   the whole sequence (per session) is permuted

Nested designs balance top-level conditions per session and weave each
condition's own sub-condition sequence into its slots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVarP(&c.format, "format", "f", "", "output format: yaml, json or table (default table on a terminal, yaml otherwise)")
	pf.BoolVar(&c.summary, "summary", false, "print per-session condition counts after the schedule")

	root.AddCommand(
		newTrialsCmd(c),
		newSessionsCmd(c),
		newNestedCmd(c),
		newRunCmd(c),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
