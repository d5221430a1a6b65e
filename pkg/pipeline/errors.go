package pipeline

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("pipeline must be set")
	ErrInputMustBeSet    = errors.New("input must be set")
	ErrSplitterTotal     = errors.New("total must be greater than 0")
)

// errorChans collects the error channel of every stage registered on a pipeline.
type errorChans struct {
	mu   sync.Mutex
	list []*errorChan
}

func (ec *errorChans) add(errChan *errorChan) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.list = append(ec.list, errChan)
}

// errorChan carries the failures of the stage called name. A nil channel never fails.
type errorChan struct {
	c    <-chan error
	name string
}

func newErrorChan(name string, c <-chan error) *errorChan {
	return &errorChan{
		c:    c,
		name: name,
	}
}

// drain forwards every error of the stage to out, prefixed with the stage name.
func (ec *errorChan) drain(out chan<- error) {
	if ec.c == nil {
		return
	}
	for err := range ec.c {
		out <- errors.Wrap(err, ec.name)
	}
}

// mergeErrors fans the error channels of every stage into one channel,
// closed once all of them are closed.
func mergeErrors(cs ...*errorChan) <-chan error {
	// stages send at most one error each, so the buffer absorbs them after Run has returned
	out := make(chan error, len(cs))

	wg := sync.WaitGroup{}
	wg.Add(len(cs))
	for _, c := range cs {
		c := c
		go func() {
			defer wg.Done()
			c.drain(out)
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
