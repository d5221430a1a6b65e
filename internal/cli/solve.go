package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/askiada/aoc-pipeline/pkg/logging"
	"github.com/askiada/aoc-pipeline/pkg/solver"
)

const stdinInput = "-"

type solveFlags struct {
	day         int
	parts       []string
	inputs      []string
	concurrency int
	bufferSize  int
	measure     bool
	draw        string
}

func (f *solveFlags) options() []solver.Option {
	opts := []solver.Option{
		solver.WithConcurrency(f.concurrency),
		solver.WithBufferSize(f.bufferSize),
		solver.WithParts(f.parts...),
		solver.WithLogger(logging.GetLogger("solver")),
	}
	if f.measure {
		opts = append(opts, solver.WithMeasure())
	}
	if f.draw != "" {
		opts = append(opts, solver.WithDrawing(f.draw))
	}

	return opts
}

// readInputs loads every input file. "-" reads the standard input.
func readInputs(cmd *cobra.Command, paths []string) ([]string, error) {
	inputs := make([]string, len(paths))
	for i, path := range paths {
		var (
			content []byte
			err     error
		)
		if path == stdinInput {
			content, err = io.ReadAll(cmd.InOrStdin())
		} else {
			content, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read input %s", path)
		}
		inputs[i] = string(content)
	}

	return inputs, nil
}

func newSolveCmd(reg *solver.Registry) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a day",
		Long: `Solve every part of a day, or only the parts given with --part.
Several inputs are solved as if they were a single concatenated input.`,
		Example: `  aoc solve --day 2 --input day02.txt
  aoc solve --day 1 --part 2 --input day01.txt --concurrency 4 --measure -v
  cat day01.txt | aoc solve --day 1 --input -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := reg.Lookup(flags.day)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd, flags.inputs)
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := runner.Solve(cmd.Context(), inputs, flags.options()...)
			if err != nil {
				return err
			}
			log.Debug().Dur("duration", time.Since(start)).Msg("Day solved")

			for _, res := range results {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "day %d part %s: %d\n", res.Day, res.Part, res.Value)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.day, "day", "d", 0, "Day to solve")
	cmd.Flags().StringSliceVarP(&flags.parts, "part", "p", nil, "Parts to solve (default all)")
	cmd.Flags().StringArrayVarP(&flags.inputs, "input", "i", nil, "Input file, - for the standard input (repeatable)")
	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "c", 1, "Number of goroutines parsing records")
	cmd.Flags().IntVar(&flags.bufferSize, "buffer-size", 1, "Capacity of the channels between stages")
	cmd.Flags().BoolVar(&flags.measure, "measure", false, "Log the average duration of every stage (needs -v)")
	cmd.Flags().StringVar(&flags.draw, "draw", "", "Write a DOT graph of the pipeline to this file")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
