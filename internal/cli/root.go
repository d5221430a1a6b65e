// Package cli wires the solvers to the command line.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/askiada/aoc-pipeline/pkg/logging"
	"github.com/askiada/aoc-pipeline/pkg/solver"
)

// NewRootCmd creates the root command solving the days of reg.
func NewRootCmd(reg *solver.Registry) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles through a pipeline",
		Long: `aoc parses puzzle inputs line by line and folds every record into the answer
of each part of the day, streaming the records through a concurrent pipeline.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newListCmd(reg))
	rootCmd.AddCommand(newSolveCmd(reg))

	return rootCmd
}
