package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askiada/aoc-pipeline/pkg/solver"
)

func newListCmd(reg *solver.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that can be solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range reg.Days() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d day %d: %s (parts %s)\n",
					day.Year(), day.Number(), day.Title(), strings.Join(day.PartNames(), ", "))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
