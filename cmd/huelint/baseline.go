package huelint

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varalys/huelint/internal/report"
)

func newBaselineCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var output string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update baseline from current scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scanOpts := *opts
			scanOpts.baseline = ""
			findings, err := scanCwd(cmd, &scanOpts)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(output, findings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %d findings recorded in %s\n", len(findings), output)
			return nil
		},
	}
	update.Flags().StringVarP(&output, "output", "o", report.DefaultBaselinePath, "baseline file to write")

	cmd.AddCommand(update)
	return cmd
}
