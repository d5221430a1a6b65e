package model

import "time"

// PipelineOption observes a pipeline. Prepare hooks run while the pipeline is assembled, in the
// order stages are added. Output hooks run from the goroutines of the stages, so they must be
// safe for concurrent use. Any error returned by a hook stops the pipeline.
type PipelineOption interface {
	// New runs when the pipeline is created.
	New() error
	// Finish runs once every stage has returned without error.
	Finish() error

	PrepareStep(parentStep, step *StepInfo) error
	// OnStepOutput runs once per consumed element, after its outputs are pushed.
	OnStepOutput(parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration) error

	PrepareSplitter(parentStep, splitterStep *StepInfo) error
	// OnSplitterOutput runs once an element has been handed to every branch.
	OnSplitterOutput(parentStep, splitterStep *StepInfo, iterationDuration, computationDuration time.Duration) error

	PrepareMerger(parentSteps []*StepInfo, step *StepInfo) error
	OnMergerOutput(parentStep *StepInfo, outputStep *StepInfo, iterationDuration time.Duration) error

	PrepareSink(parentStep, step *StepInfo) error
	OnSinkOutput(parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration) error
	// AfterSink runs when the input of the sink is exhausted.
	AfterSink(step *StepInfo, totalDuration time.Duration) error
}

// NopOption implements every hook of PipelineOption as a no-op.
// Embed it to implement only the hooks an option needs.
type NopOption struct{}

func (NopOption) New() error { return nil }
func (NopOption) Finish() error { return nil }
func (NopOption) PrepareStep(_, _ *StepInfo) error { return nil }
func (NopOption) PrepareSplitter(_, _ *StepInfo) error { return nil }
func (NopOption) PrepareMerger(_ []*StepInfo, _ *StepInfo) error { return nil }
func (NopOption) PrepareSink(_, _ *StepInfo) error { return nil }

func (NopOption) OnStepOutput(_, _ *StepInfo, _, _ time.Duration) error { return nil }
func (NopOption) OnSplitterOutput(_, _ *StepInfo, _, _ time.Duration) error { return nil }
func (NopOption) OnMergerOutput(_, _ *StepInfo, _ time.Duration) error { return nil }
func (NopOption) OnSinkOutput(_, _ *StepInfo, _, _ time.Duration) error { return nil }
func (NopOption) AfterSink(_ *StepInfo, _ time.Duration) error { return nil }

var _ PipelineOption = NopOption{}
