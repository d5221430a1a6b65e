package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/askiada/aoc-pipeline/internal/cli"
	"github.com/askiada/aoc-pipeline/pkg/solver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(solver.Default())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
