package huelint

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varalys/huelint/internal/engine"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the kinds of finding huelint reports",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, id := range engine.DetectorIDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	}
}
