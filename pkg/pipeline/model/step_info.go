package model

// StepType identifies the kind of stage a step belongs to.
type StepType string

const (
	RootStepType     StepType = "root"
	NormalStepType   StepType = "step"
	SplitterStepType StepType = "splitter"
	SinkStepType     StepType = "sink"
	MergerStepType   StepType = "merger"
)

// StepInfo describes a step to the pipeline options.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
	BufferSize int
}

// StartStep and EndStep are virtual steps framing every pipeline.
// Root steps hang off StartStep and sinks lead to EndStep.
var (
	StartStep = &Step[any]{Details: &StepInfo{Name: "start"}}
	EndStep   = &Step[any]{Details: &StepInfo{Name: "end"}}
)

// Step is a stage of the pipeline. Output is closed once the stage has nothing left to emit.
type Step[O any] struct {
	Output  chan O
	Details *StepInfo
}
