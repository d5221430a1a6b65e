package solver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/aoc-pipeline/internal/checked"
	"github.com/askiada/aoc-pipeline/internal/text"
	"github.com/askiada/aoc-pipeline/pkg/pipeline"
	"github.com/askiada/aoc-pipeline/pkg/pipeline/drawer"
	"github.com/askiada/aoc-pipeline/pkg/pipeline/measure"
	"github.com/askiada/aoc-pipeline/pkg/pipeline/model"
)

var (
	ErrNoInput     = errors.New("no input")
	ErrUnknownPart = errors.New("unknown part")
)

// Result is the answer of one part of a day.
type Result struct {
	Day   int
	Part  string
	Value uint64
}

// Runner solves a registered day.
type Runner interface {
	Year() int
	Number() int
	Title() string
	PartNames() []string
	Solve(ctx context.Context, inputs []string, opts ...Option) ([]Result, error)
}

// Part evaluates a single record. The answer of the part is the sum of the values of all records.
type Part[R any] struct {
	Name  string
	Value func(record R) (uint64, error)
}

// Day is a puzzle whose input holds one record of type R per line.
type Day[R any] struct {
	PuzzleYear int
	PuzzleDay  int
	Name       string
	Parse      func(line string) (R, error)
	Parts      []Part[R]
}

func (d *Day[R]) Year() int     { return d.PuzzleYear }
func (d *Day[R]) Number() int   { return d.PuzzleDay }
func (d *Day[R]) Title() string { return d.Name }

func (d *Day[R]) PartNames() []string {
	names := make([]string, len(d.Parts))
	for i, part := range d.Parts {
		names[i] = part.Name
	}

	return names
}

func (d *Day[R]) selectParts(names []string) ([]Part[R], error) {
	if len(names) == 0 {
		return d.Parts, nil
	}

	parts := make([]Part[R], 0, len(names))
outer:
	for _, name := range names {
		for _, part := range d.Parts {
			if part.Name == name {
				parts = append(parts, part)

				continue outer
			}
		}

		return nil, errors.Wrapf(ErrUnknownPart, "day %d has no part %q (parts: %s)", d.PuzzleDay, name, strings.Join(d.PartNames(), ", "))
	}

	return parts, nil
}

func pipelineOptions(cfg *config) (*measure.DefaultMeasure, []model.PipelineOption) {
	var (
		msr  *measure.DefaultMeasure
		opts []model.PipelineOption
	)

	if cfg.measure || cfg.drawFile != "" {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.PipelineMeasure(msr))
	}
	if cfg.drawFile != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(cfg.drawFile), msr))
	}

	return msr, opts
}

// addSources adds one root step per input, merged into a single step when there are several.
func addSources(pipe *pipeline.Pipeline, inputs []string) (*model.Step[string], error) {
	roots := make([]*model.Step[string], len(inputs))
	for i, input := range inputs {
		input := input
		root, err := pipeline.AddRootStep(pipe, fmt.Sprintf("input %d", i), func(ctx context.Context, rootChan chan<- string) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- input:
				return nil
			}
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add input %d", i)
		}
		roots[i] = root
	}

	if len(roots) == 1 {
		return roots[0], nil
	}

	merged, err := pipeline.AddMerger(pipe, "merge inputs", roots...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to merge inputs")
	}

	return merged, nil
}

func (d *Day[R]) addRecords(pipe *pipeline.Pipeline, source *model.Step[string], cfg *config) (*model.Step[R], error) {
	lines, err := pipeline.AddStepOneToMany(pipe, "split lines", source, func(_ context.Context, input string) ([]string, error) {
		return text.Lines(input), nil
	}, pipeline.StepBufferSize[string](cfg.bufferSize))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add line splitting")
	}

	records, err := pipeline.AddStepOneToOne(pipe, "parse", lines, func(_ context.Context, line string) (R, error) {
		record, err := d.Parse(line)
		if err != nil {
			return record, errors.Wrapf(err, "record %q", line)
		}

		return record, nil
	}, pipeline.StepConcurrency[R](cfg.concurrency), pipeline.StepBufferSize[R](cfg.bufferSize))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add parsing")
	}

	return records, nil
}

// Solve streams inputs, as one concatenated input, through the parser and every selected part.
// Results come in the order of the parts of the day. The first malformed record fails the whole run.
func (d *Day[R]) Solve(ctx context.Context, inputs []string, opts ...Option) ([]Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	cfg := newConfig(opts...)
	logger := cfg.logger.With().Int("day", d.PuzzleDay).Logger()

	parts, err := d.selectParts(cfg.parts)
	if err != nil {
		return nil, err
	}

	msr, pipeOpts := pipelineOptions(cfg)
	pipe, err := pipeline.New(ctx, pipeOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	source, err := addSources(pipe, inputs)
	if err != nil {
		return nil, err
	}
	records, err := d.addRecords(pipe, source, cfg)
	if err != nil {
		return nil, err
	}

	splitter, err := pipeline.AddSplitter(pipe, "dispatch parts", records, len(parts), pipeline.SplitterBufferSize[R](cfg.bufferSize))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add part dispatching")
	}

	totals := make([]uint64, len(parts))
	for i, part := range parts {
		i := i
		part := part
		branch, _ := splitter.Get()
		err = pipeline.AddSink(pipe, "part "+part.Name, branch, func(_ context.Context, record R) error {
			value, err := part.Value(record)
			if err != nil {
				return err
			}
			totals[i], err = checked.Add(totals[i], value)

			return err
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add part %s", part.Name)
		}
	}

	logger.Debug().
		Int("inputs", len(inputs)).
		Int("parts", len(parts)).
		Int("concurrency", cfg.concurrency).
		Int("buffer_size", cfg.bufferSize).
		Msg("Pipeline ready")

	err = pipe.Run()
	if err != nil {
		return nil, errors.Wrapf(err, "day %d", d.PuzzleDay)
	}

	results := make([]Result, len(parts))
	for i, part := range parts {
		results[i] = Result{Day: d.PuzzleDay, Part: part.Name, Value: totals[i]}
		logger.Info().Str("part", part.Name).Uint64("value", totals[i]).Msg("Part solved")
	}

	if cfg.measure {
		logMeasure(logger, msr)
	}

	return results, nil
}

func logMeasure(logger zerolog.Logger, msr measure.Measure) {
	metrics := msr.AllMetrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mt := metrics[name]
		logger.Info().
			Str("step", name).
			Int64("count", mt.Count()).
			Dur("avg", mt.AVGDuration()).
			Dur("end", mt.GetTotalDuration()).
			Msg("Step measure")
	}
}
