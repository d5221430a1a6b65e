package solver

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("day already registered")
)

// Registry holds the days that can be solved, by day number.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Runner
}

// NewRegistry returns a registry holding runners.
func NewRegistry(runners ...Runner) (*Registry, error) {
	reg := &Registry{days: make(map[int]Runner, len(runners))}
	for _, runner := range runners {
		err := reg.Register(runner)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register adds runner to the registry. Each day number can be registered once.
func (r *Registry) Register(runner Runner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.days[runner.Number()]; ok {
		return errors.Wrapf(ErrDuplicateDay, "day %d", runner.Number())
	}
	r.days[runner.Number()] = runner

	return nil
}

// Lookup returns the runner registered for day.
func (r *Registry) Lookup(day int) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.days[day]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDay, "day %d", day)
	}

	return runner, nil
}

// Days returns the registered runners ordered by day number.
func (r *Registry) Days() []Runner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runners := make([]Runner, 0, len(r.days))
	for _, runner := range r.days {
		runners = append(runners, runner)
	}
	sort.Slice(runners, func(i, j int) bool {
		return runners[i].Number() < runners[j].Number()
	})

	return runners
}
