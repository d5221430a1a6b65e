package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	ctx       context.Context
	errcList  *errorChans
	opts      []model.PipelineOption
	startTime time.Time
	goFn      []func(ctx context.Context)
}

// New creates a new pipeline. Every stage added to it stops as soon as ctx is done.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		ctx:       ctx,
		errcList:  &errorChans{},
		startTime: time.Now(),
		opts:      opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// waitForPipeline waits for results from all error channels.
// It returns early on the first error.
func waitForPipeline(errs ...*errorChan) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}

	return nil
}

// Run starts the pipeline and waits for it to finish.
// The first error returned by a stage cancels the others.
func (p *Pipeline) Run() error {
	dCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()

	p.startTime = time.Now()
	for _, fn := range p.goFn {
		go fn(dCtx)
	}

	err := waitForPipeline(p.errcList.list...)
	if err != nil {
		return err
	}

	// stages racing a cancelled context may all have completed
	if err := p.ctx.Err(); err != nil {
		return errors.Wrap(err, "pipeline cancelled")
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

// register schedules fn to run in its own goroutine once the pipeline runs.
// fn reports its failure on the returned channel, decorated with the stage name.
func (p *Pipeline) register(name string, capacity int, fn func(ctx context.Context, errC chan<- error)) {
	errC := make(chan error, capacity)
	p.errcList.add(newErrorChan(name, errC))
	p.goFn = append(p.goFn, func(ctx context.Context) {
		defer close(errC)
		fn(ctx, errC)
	})
}
