// Package measure records how long every stage of a pipeline spends computing and waiting.
package measure

import "time"

// Measure holds one Metric per step of a pipeline, by step name.
type Measure interface {
	// AddMetric registers the step run by concurrent goroutines and returns its metric.
	AddMetric(name string, concurrent int) Metric
	// GetMetric returns nil for a step that was never added.
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the durations observed for a single step.
type Metric interface {
	// AddDuration records the time spent computing one element.
	AddDuration(elapsed time.Duration)
	// AddTransportDuration records the time spent waiting on an element of inputStepName.
	AddTransportDuration(inputStepName string, elapsed time.Duration)
	AVGDuration() time.Duration
	AVGTransportDuration() map[string]*TransportInfo
	AllTransports() map[string]*TransportInfo
	// SetTotalDuration records the time elapsed between the start of the pipeline and the end of the step.
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	// Count is the number of elements computed by the step.
	Count() int64
}
