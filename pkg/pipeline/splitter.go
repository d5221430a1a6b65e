package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

// Splitter broadcasts every element of its input to Total branches.
type Splitter[I any] struct {
	mu            sync.Mutex
	currIdx       int
	mainStep      *model.Step[I]
	splittedSteps []*model.Step[I]
	bufferSize    int
	Total         int
}

// Get returns the next branch of the splitter. It returns false once every branch has been handed out.
func (s *Splitter[I]) Get() (*model.Step[I], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currIdx >= len(s.splittedSteps) {
		return nil, false
	}
	step := s.splittedSteps[s.currIdx]
	s.currIdx++

	return step, true
}

func prepareSplitter[I any](pipe *Pipeline, input *model.Step[I], splitter *Splitter[I]) error {
	for _, opt := range pipe.opts {
		err := opt.PrepareSplitter(input.Details, splitter.mainStep.Details)
		if err != nil {
			return errors.Wrap(err, "unable to run before splitter function")
		}
	}

	return nil
}

func (s *Splitter[I]) broadcast(ctx context.Context, pipe *Pipeline, input *model.Step[I]) error {
	for {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			for _, branch := range s.splittedSteps {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case branch.Output <- entry:
				}
			}
			endFn := time.Since(startFn)
			endIter := time.Since(startIter) - endFn

			for _, opt := range pipe.opts {
				err := opt.OnSplitterOutput(input.Details, s.mainStep.Details, endIter, endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run on splitter output function")
				}
			}
		}
	}
}

// AddSplitter adds a splitter to the pipeline. Each of the total branches receives every element of input.
// A branch blocks the others once its buffer is full, so every branch must be consumed.
func AddSplitter[I any](pipe *Pipeline, name string, input *model.Step[I], total int, opts ...SplitterOption[I]) (*Splitter[I], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}
	if total <= 0 {
		return nil, ErrSplitterTotal
	}
	splitter := &Splitter[I]{
		Total: total,
		mainStep: &model.Step[I]{
			Details: &model.StepInfo{
				Type:       model.SplitterStepType,
				Name:       name,
				Concurrent: 1,
			},
		},
	}
	for _, opt := range opts {
		opt(splitter)
	}
	if splitter.bufferSize == 0 {
		splitter.bufferSize = 1
	}
	splitter.mainStep.Details.BufferSize = splitter.bufferSize

	splitter.splittedSteps = make([]*model.Step[I], total)
	for i := 0; i < total; i++ {
		splitter.splittedSteps[i] = &model.Step[I]{
			Details: splitter.mainStep.Details,
			Output:  make(chan I, splitter.bufferSize),
		}
	}

	err := prepareSplitter(pipe, input, splitter)
	if err != nil {
		return nil, err
	}

	pipe.register(name, 1, func(ctx context.Context, errC chan<- error) {
		defer func() {
			for _, branch := range splitter.splittedSteps {
				close(branch.Output)
			}
		}()

		err := splitter.broadcast(ctx, pipe, input)
		if err != nil {
			errC <- err
		}
	})

	return splitter, nil
}
