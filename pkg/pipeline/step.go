package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

type stepHooks []model.PipelineOption

func (h stepHooks) onStepOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	for _, opt := range h {
		err := opt.OnStepOutput(parentStep, step, iterationDuration, computationDuration)
		if err != nil {
			return errors.Wrap(err, "unable to run on step output function")
		}
	}

	return nil
}

// sequentialStepFn consumes input until it is closed and pushes everything stepFn returns to output.
func sequentialStepFn[I any, O any](ctx context.Context, hooks stepHooks, goIdx int, input *model.Step[I], output *model.Step[O], stepFn func(context.Context, I) ([]O, error)) error {
	for {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			outs, err := stepFn(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "go routine %d", goIdx)
			}
			endFn := time.Since(startFn)

			for _, out := range outs {
				// we check the context again to make sure all go routines currently running
				// stop to add new elements to the pipeline
				select {
				case <-ctx.Done():
					return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
				case output.Output <- out:
				}
			}

			err = hooks.onStepOutput(input.Details, output.Details, time.Since(startIter)-endFn, endFn)
			if err != nil {
				return err
			}
		}
	}
}

func concurrentStepFn[I any, O any](ctx context.Context, hooks stepHooks, concurrent int, input *model.Step[I], output *model.Step[O], stepFn func(context.Context, I) ([]O, error)) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)
	// each consumer stops as soon as one of them fails
	for goIdx := 0; goIdx < concurrent; goIdx++ {
		goIdx := goIdx
		errGrp.Go(func() error {
			return sequentialStepFn(dCtx, hooks, goIdx, input, output, stepFn)
		})
	}

	return errGrp.Wait()
}

func runStep[I any, O any](ctx context.Context, hooks stepHooks, input *model.Step[I], output *model.Step[O], stepFn func(context.Context, I) ([]O, error)) error {
	concurrent := 1
	if output.Details != nil && output.Details.Concurrent > 1 {
		concurrent = output.Details.Concurrent
	}
	if concurrent == 1 {
		return sequentialStepFn(ctx, hooks, 0, input, output, stepFn)
	}

	return concurrentStepFn(ctx, hooks, concurrent, input, output, stepFn)
}

// oneToOne turns a one-to-one function into a step function.
func oneToOne[I any, O any](oneToOneFn func(context.Context, I) (O, error)) func(context.Context, I) ([]O, error) {
	return func(ctx context.Context, in I) ([]O, error) {
		out, err := oneToOneFn(ctx, in)
		if err != nil {
			return nil, err
		}

		return []O{out}, nil
	}
}

func prepareStep[I, O any](pipe *Pipeline, name string, input *model.Step[I], opts ...StepOption[O]) (*model.Step[O], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.NormalStepType,
			Name:       name,
			Concurrent: 1,
		},
	}
	for _, opt := range opts {
		opt(step)
	}
	step.Output = make(chan O, step.Details.BufferSize)

	for _, opt := range pipe.opts {
		err := opt.PrepareStep(input.Details, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before step function")
		}
	}

	return step, nil
}

func addStep[I any, O any](pipe *Pipeline, input *model.Step[I], step *model.Step[O], stepFn func(context.Context, I) ([]O, error)) {
	pipe.register(step.Details.Name, 1, func(ctx context.Context, errC chan<- error) {
		defer close(step.Output)

		err := runStep(ctx, pipe.opts, input, step, stepFn)
		if err != nil {
			errC <- err
		}
	})
}

// AddStepOneToOne adds a step emitting exactly one output per input.
func AddStepOneToOne[I any, O any](pipe *Pipeline, name string, input *model.Step[I], oneToOneFn func(context.Context, I) (O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	step, err := prepareStep(pipe, name, input, opts...)
	if err != nil {
		return nil, err
	}

	addStep(pipe, input, step, oneToOne(oneToOneFn))

	return step, nil
}

// AddStepOneToMany adds a step emitting any number of outputs, including none, per input.
func AddStepOneToMany[I any, O any](pipe *Pipeline, name string, input *model.Step[I], oneToManyFn func(context.Context, I) ([]O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	step, err := prepareStep(pipe, name, input, opts...)
	if err != nil {
		return nil, err
	}

	addStep(pipe, input, step, oneToManyFn)

	return step, nil
}
