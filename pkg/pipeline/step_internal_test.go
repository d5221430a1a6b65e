package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

var concurrencyCases = map[string]struct {
	concurrent int
}{
	"sequential":     {concurrent: 1},
	"sequential v2":  {concurrent: 0},
	"concurrent 2":   {concurrent: 2},
	"concurrent 100": {concurrent: 100},
}

func newTestSteps(t *testing.T, input chan int, concurrent int) (*model.Step[int], *model.Step[int]) {
	t.Helper()

	in := &model.Step[int]{Output: input, Details: &model.StepInfo{Name: "input"}}
	out := &model.Step[int]{Output: make(chan int), Details: &model.StepInfo{Name: "output", Concurrent: concurrent}}

	return in, out
}

func TestOneToOne(t *testing.T) {
	t.Parallel()

	for name, tc := range concurrencyCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			input, output := newTestSteps(t, createInputChan(t, 10), tc.concurrent)
			got := make(chan []int, 1)

			go func() {
				got <- processOutputChan(t, output.Output)
			}()

			errC := make(chan error, 1)
			go func() {
				defer close(output.Output)
				errC <- runStep(ctx, nil, input, output, oneToOne(func(_ context.Context, i int) (int, error) {
					return i * 2, nil
				}))
			}()

			assert.ElementsMatch(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, <-got)
			require.NoError(t, <-errC)
		})
	}
}

func TestOneToOneCancelInput(t *testing.T) {
	t.Parallel()

	for name, tc := range concurrencyCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			input, output := newTestSteps(t, createInputChanWithCancel(t, 10, 5, cancel), tc.concurrent)
			got := make(chan []int, 1)

			go func() {
				got <- processOutputChan(t, output.Output)
			}()

			errC := make(chan error, 1)
			go func() {
				defer close(output.Output)
				errC <- runStep(ctx, nil, input, output, oneToOne(func(ctx context.Context, i int) (int, error) {
					if i >= 5 {
						<-ctx.Done()

						return 0, ctx.Err()
					}

					return i, nil
				}))
			}()

			assert.Subset(t, []int{0, 1, 2, 3, 4}, <-got)
			require.ErrorIs(t, <-errC, context.Canceled)
		})
	}
}

func TestOneToOneError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	for name, tc := range concurrencyCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			input, output := newTestSteps(t, createInputChan(t, 10), tc.concurrent)
			got := make(chan []int, 1)

			go func() {
				got <- processOutputChan(t, output.Output)
			}()

			errC := make(chan error, 1)
			go func() {
				defer close(output.Output)
				errC <- runStep(ctx, nil, input, output, oneToOne(func(_ context.Context, i int) (int, error) {
					if i == 3 {
						return 0, errBoom
					}

					return i, nil
				}))
			}()

			assert.NotContains(t, <-got, 3)
			require.ErrorIs(t, <-errC, errBoom)
		})
	}
}

func TestOneToMany(t *testing.T) {
	t.Parallel()

	for name, tc := range concurrencyCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			input, output := newTestSteps(t, createInputChan(t, 4), tc.concurrent)
			got := make(chan []int, 1)

			go func() {
				got <- processOutputChan(t, output.Output)
			}()

			errC := make(chan error, 1)
			go func() {
				defer close(output.Output)
				// i copies of i, so 0 emits nothing
				errC <- runStep(ctx, nil, input, output, func(_ context.Context, i int) ([]int, error) {
					res := make([]int, i)
					for j := range res {
						res[j] = i
					}

					return res, nil
				})
			}()

			assert.ElementsMatch(t, []int{1, 2, 2, 3, 3, 3}, <-got)
			require.NoError(t, <-errC)
		})
	}
}

func TestRunStepHooks(t *testing.T) {
	t.Parallel()

	counter := newCountingOption()
	input, output := newTestSteps(t, createInputChan(t, 5), 3)
	got := make(chan []int, 1)

	go func() {
		got <- processOutputChan(t, output.Output)
	}()

	err := runStep(context.Background(), stepHooks{counter}, input, output, oneToOne(func(_ context.Context, i int) (int, error) {
		return i, nil
	}))
	close(output.Output)

	require.NoError(t, err)
	assert.Len(t, <-got, 5)
	assert.Equal(t, 5, counter.get("output"))
}

func TestRunStepHookError(t *testing.T) {
	t.Parallel()

	counter := newCountingOption()
	counter.err = errors.New("hook failed")
	input, output := newTestSteps(t, createInputChan(t, 5), 1)

	go func() {
		for range output.Output {
		}
	}()

	err := runStep(context.Background(), stepHooks{counter}, input, output, oneToOne(func(_ context.Context, i int) (int, error) {
		return i, nil
	}))
	close(output.Output)

	require.ErrorIs(t, err, counter.err)
	assert.Equal(t, 1, counter.get("output"))
}
