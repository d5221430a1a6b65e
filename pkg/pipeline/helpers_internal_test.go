package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

func createInputChan(t *testing.T, total int) chan int {
	t.Helper()

	inputChan := make(chan int)

	go func() {
		defer close(inputChan)

		for i := 0; i < total; i++ {
			inputChan <- i
		}
	}()

	return inputChan
}

func createInputChanWithCancel(t *testing.T, total int, offset int, cancel context.CancelFunc) chan int {
	t.Helper()

	inputChan := make(chan int)

	go func() {
		defer close(inputChan)

		for i := 0; i < total; i++ {
			if i == offset {
				cancel()
			}

			inputChan <- i
		}
	}()

	return inputChan
}

func processOutputChan(t *testing.T, output <-chan int) []int {
	t.Helper()

	res := []int{}

	for out := range output {
		res = append(res, out)
	}

	return res
}

// countingOption counts the outputs reported to a pipeline option.
type countingOption struct {
	model.NopOption
	mu      sync.Mutex
	outputs map[string]int
	err     error
}

func newCountingOption() *countingOption {
	return &countingOption{outputs: map[string]int{}}
}

func (c *countingOption) count(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outputs[name]++

	return c.err
}

func (c *countingOption) get(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.outputs[name]
}


func (c *countingOption) OnStepOutput(_, step *model.StepInfo, _, _ time.Duration) error {
	return c.count(step.Name)
}

func (c *countingOption) OnSplitterOutput(_, step *model.StepInfo, _, _ time.Duration) error {
	return c.count(step.Name)
}

func (c *countingOption) OnMergerOutput(_, step *model.StepInfo, _ time.Duration) error {
	return c.count(step.Name)
}

func (c *countingOption) OnSinkOutput(_, step *model.StepInfo, _, _ time.Duration) error {
	return c.count(step.Name)
}
