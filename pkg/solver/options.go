package solver

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	concurrency int
	bufferSize  int
	measure     bool
	drawFile    string
	parts       []string
	logger      zerolog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		concurrency: 1,
		bufferSize:  1,
		logger:      log.Logger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = 1
	}
	if cfg.bufferSize < 0 {
		cfg.bufferSize = 0
	}

	return cfg
}

// Option configures how a day is solved.
type Option func(cfg *config)

// WithConcurrency sets the number of goroutines parsing records.
func WithConcurrency(concurrency int) Option {
	return func(cfg *config) {
		cfg.concurrency = concurrency
	}
}

// WithBufferSize sets the capacity of the channels between stages.
func WithBufferSize(bufferSize int) Option {
	return func(cfg *config) {
		cfg.bufferSize = bufferSize
	}
}

// WithMeasure logs the average duration of every stage once solved.
func WithMeasure() Option {
	return func(cfg *config) {
		cfg.measure = true
	}
}

// WithDrawing writes a DOT graph of the pipeline, annotated with durations, to fileName.
func WithDrawing(fileName string) Option {
	return func(cfg *config) {
		cfg.drawFile = fileName
	}
}

// WithParts restricts solving to the named parts. All parts are solved by default.
func WithParts(names ...string) Option {
	return func(cfg *config) {
		cfg.parts = names
	}
}

// WithLogger sets the logger. The global zerolog logger is used by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
