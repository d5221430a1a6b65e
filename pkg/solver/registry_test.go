package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/aoc-pipeline/pkg/solver"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := solver.Default()

	days := reg.Days()
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Number())
	assert.Equal(t, 2, days[1].Number())
	assert.Equal(t, 2023, days[0].Year())
	assert.Equal(t, "Cube Conundrum", days[1].Title())
	assert.Equal(t, []string{"1", "2"}, days[1].PartNames())

	runner, err := reg.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Trebuchet?!", runner.Title())

	_, err = reg.Lookup(3)
	assert.ErrorIs(t, err, solver.ErrUnknownDay)
}

func TestRegistryDuplicate(t *testing.T) {
	t.Parallel()

	_, err := solver.NewRegistry(solver.Trebuchet(), solver.Trebuchet())
	assert.ErrorIs(t, err, solver.ErrDuplicateDay)

	reg, err := solver.NewRegistry()
	require.NoError(t, err)
	assert.Empty(t, reg.Days())
	require.NoError(t, reg.Register(solver.CubeConundrum()))
	assert.ErrorIs(t, reg.Register(solver.CubeConundrum()), solver.ErrDuplicateDay)
}
