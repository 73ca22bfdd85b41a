package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expdesign/plan"
)

func newRunCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run [plan.yaml]",
		Short: "Balance the design described by a YAML plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			return c.runPlan(cmd, p)
		},
	}
}

// runPlan balances p and writes the schedule.
func (c *cli) runPlan(cmd *cobra.Command, p *plan.Plan) error {
	s, err := plan.Run(p, c.logger)
	if err != nil {
		return err
	}
	return c.emit(cmd, s)
}
