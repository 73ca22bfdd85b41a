package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expdesign/plan"
)

// outputFormat resolves --format; without it, terminals get a table and
// pipes get YAML.
func (c *cli) outputFormat(w io.Writer) (plan.Format, error) {
	if c.format != "" {
		return plan.ParseFormat(c.format)
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return plan.FormatTable, nil
	}
	return plan.FormatYAML, nil
}

// emit writes s (and the summary, if requested) to the command's stdout.
func (c *cli) emit(cmd *cobra.Command, s *plan.Schedule) error {
	w := cmd.OutOrStdout()
	format, err := c.outputFormat(w)
	if err != nil {
		return err
	}
	if err := plan.Encode(w, s, format); err != nil {
		return err
	}
	if c.summary {
		return plan.EncodeSummary(w, s)
	}
	return nil
}
