// Package drawer renders the graph of a pipeline, optionally annotated with its measure.
package drawer

import (
	"time"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/measure"
)

// Drawer builds the graph of a pipeline while it is assembled and renders it once it is finished.
// Adding a step or a link twice is not an error.
type Drawer interface {
	AddStep(stepName string) error
	// AddLink links parentStepName to childStepName. Both steps must have been added.
	AddLink(parentStepName, childStepName string) error
	// SetTotalTime labels the step with the time elapsed since startTime.
	SetTotalTime(stepName string, startTime time.Time) error
	// AddMeasure labels steps and links with the durations of measure.
	AddMeasure(measure measure.Measure) error
	Draw() error
}
