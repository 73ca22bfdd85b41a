package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expdesign/balance"
	"github.com/katalvlaran/expdesign/plan"
)

// designFlags are the flags shared by trials, sessions and nested.
type designFlags struct {
	shuffle  string
	trials   int
	sessions int
}

func addDesignFlags(cmd *cobra.Command, c *cli, d *designFlags, withSessions bool) {
	f := cmd.Flags()
	f.StringVarP(&d.shuffle, "shuffle", "s", "all", "shuffle policy: all, none or set")
	f.IntVarP(&d.trials, "trials", "n", 0, "number of trials (per session)")
	_ = cmd.MarkFlagRequired("trials")
	if withSessions {
		f.IntVar(&d.sessions, "sessions", 1, "number of sessions")
	}
	f.Int64Var(&c.seed, "seed", 0, "seed for a reproducible schedule (default: process-wide random source)")
	f.IntVar(&c.start, "start", 0, "explicit cycling start index (default: random)")
}

// seedPtr and startPtr return nil unless the flag was given, so that
// --start 0 stays distinct from "not provided".
func (c *cli) seedPtr(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	v := c.seed
	return &v
}

func (c *cli) startPtr(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("start") {
		return nil
	}
	v := c.start
	return &v
}

func newTrialsCmd(c *cli) *cobra.Command {
	var (
		d     designFlags
		conds []string
	)
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Balance a flat condition set over a number of trials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shuffle, err := balance.ParseShuffleType(d.shuffle)
			if err != nil {
				return err
			}
			opts := []balance.Option{balance.WithLogger(c.logger)}
			seed := c.seedPtr(cmd)
			if seed != nil {
				opts = append(opts, balance.WithSeed(*seed))
			}
			if start := c.startPtr(cmd); start != nil {
				opts = append(opts, balance.WithStartPos(*start))
			}

			seq, err := balance.BalanceTrials(conds, d.trials, shuffle, opts...)
			if err != nil {
				return err
			}
			return c.emit(cmd, &plan.Schedule{
				ID:               uuid.NewString(),
				Name:             "trials",
				Shuffle:          shuffle,
				TrialsPerSession: d.trials,
				SessionCount:     1,
				Seed:             seed,
				Sessions:         [][]string{seq},
			})
		},
	}
	addDesignFlags(cmd, c, &d, false)
	cmd.Flags().StringSliceVarP(&conds, "conds", "c", nil, "comma-separated condition labels")
	_ = cmd.MarkFlagRequired("conds")
	return cmd
}

func newSessionsCmd(c *cli) *cobra.Command {
	var (
		d     designFlags
		conds []string
	)
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Balance a flat condition set across sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.flagPlan(cmd, "sessions", &d)
			if err != nil {
				return err
			}
			p.Conditions = conds
			return c.runPlan(cmd, p)
		},
	}
	addDesignFlags(cmd, c, &d, true)
	cmd.Flags().StringSliceVarP(&conds, "conds", "c", nil, "comma-separated condition labels")
	_ = cmd.MarkFlagRequired("conds")
	return cmd
}

func newNestedCmd(c *cli) *cobra.Command {
	var (
		d      designFlags
		nested []string
	)
	cmd := &cobra.Command{
		Use:   "nested",
		Short: "Balance top-level conditions and their sub-conditions across sessions",
		Long: `Each --cond takes LABEL=SUB1,SUB2,... and may be repeated:

  expdesign nested --cond congruent=c1,c2 --cond incongruent=i1,i2,i3,i4 \
      --trials 8 --sessions 4 --shuffle set

--shuffle applies to the top-level conditions; sub-conditions are always
shuffled within each session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.flagPlan(cmd, "nested", &d)
			if err != nil {
				return err
			}
			for _, raw := range nested {
				nc, err := parseNestedFlag(raw)
				if err != nil {
					return err
				}
				p.Nested = append(p.Nested, nc)
			}
			return c.runPlan(cmd, p)
		},
	}
	addDesignFlags(cmd, c, &d, true)
	cmd.Flags().StringArrayVar(&nested, "cond", nil, "LABEL=SUB1,SUB2,... (repeatable)")
	_ = cmd.MarkFlagRequired("cond")
	return cmd
}

// flagPlan builds the shared part of a plan from command flags.
func (c *cli) flagPlan(cmd *cobra.Command, name string, d *designFlags) (*plan.Plan, error) {
	shuffle, err := balance.ParseShuffleType(d.shuffle)
	if err != nil {
		return nil, err
	}
	return &plan.Plan{
		Name:     name,
		Shuffle:  shuffle,
		Trials:   d.trials,
		Sessions: d.sessions,
		Seed:     c.seedPtr(cmd),
		Start:    c.startPtr(cmd),
	}, nil
}

// parseNestedFlag parses "LABEL=SUB1,SUB2,...".
func parseNestedFlag(s string) (plan.NestedCondition, error) {
	label, subs, ok := strings.Cut(s, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return plan.NestedCondition{}, fmt.Errorf("--cond %q: want LABEL=SUB1,SUB2,...", s)
	}
	var out []string
	for _, sub := range strings.Split(subs, ",") {
		if sub = strings.TrimSpace(sub); sub != "" {
			out = append(out, sub)
		}
	}
	return plan.NestedCondition{Label: label, Sub: out}, nil
}
