package drawer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/aoc-pipeline/pkg/pipeline"
	"github.com/askiada/aoc-pipeline/pkg/pipeline/drawer"
	"github.com/askiada/aoc-pipeline/pkg/pipeline/measure"
)

func TestDOTDrawer(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "graph.dot")
	drw := drawer.NewDOTDrawer(fileName)

	require.NoError(t, drw.AddStep("a"))
	require.NoError(t, drw.AddStep("a"))
	require.NoError(t, drw.AddStep("b"))
	require.NoError(t, drw.AddLink("a", "b"))
	require.NoError(t, drw.AddLink("a", "b"))
	require.Error(t, drw.AddLink("a", "missing"))
	require.NoError(t, drw.SetTotalTime("b", time.Now()))
	require.Error(t, drw.SetTotalTime("missing", time.Now()))
	require.NoError(t, drw.AddMeasure(measure.NewDefaultMeasure()))
	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "strict digraph")
	assert.Contains(t, string(content), `rankdir="LR"`)
	assert.Contains(t, string(content), `"a" -> "b"`)
	assert.Contains(t, string(content), `label=<b <BR />`)
}

func TestDOTDrawerDeterministic(t *testing.T) {
	t.Parallel()

	render := func(steps ...string) string {
		fileName := filepath.Join(t.TempDir(), "graph.dot")
		drw := drawer.NewDOTDrawer(fileName)
		for _, step := range steps {
			require.NoError(t, drw.AddStep(step))
		}
		require.NoError(t, drw.AddLink("x", "y"))
		require.NoError(t, drw.AddLink("x", "z"))
		require.NoError(t, drw.Draw())

		content, err := os.ReadFile(fileName)
		require.NoError(t, err)

		return string(content)
	}

	assert.Equal(t, render("x", "y", "z"), render("z", "y", "x"))
}

func TestDrawMissingDirectory(t *testing.T) {
	t.Parallel()

	drw := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "graph.dot"))
	require.Error(t, drw.Draw())
}

func TestPipelineDrawer(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")
	msr := measure.NewDefaultMeasure()

	pipe, err := pipeline.New(context.Background(), measure.PipelineMeasure(msr), drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), msr))
	require.NoError(t, err)

	root, err := pipeline.AddRootStep(pipe, "lines", func(ctx context.Context, rootChan chan<- string) error {
		for _, line := range []string{"a", "b", "c"} {
			rootChan <- line
		}

		return nil
	})
	require.NoError(t, err)

	upper, err := pipeline.AddStepOneToOne(pipe, "upper", root, func(_ context.Context, s string) (string, error) {
		time.Sleep(time.Millisecond)

		return s + s, nil
	})
	require.NoError(t, err)

	require.NoError(t, pipeline.AddSink(pipe, "print", upper, func(context.Context, string) error { return nil }))
	require.NoError(t, pipe.Run())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	dot := string(content)
	assert.Contains(t, dot, `"start" -> "lines"`)
	assert.Contains(t, dot, `"lines" -> "upper"`)
	assert.Contains(t, dot, `"upper" -> "print"`)
	assert.Contains(t, dot, `"print" -> "end"`)
	assert.Contains(t, dot, `fontcolor="blue"`)
}
