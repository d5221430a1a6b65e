package cubes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/aoc-pipeline/internal/checked"
	"github.com/askiada/aoc-pipeline/pkg/cubes"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func firstGame() cubes.Game {
	return cubes.Game{
		ID: 1,
		Sets: []cubes.Set{
			{{Color: cubes.Blue, Amount: 3}, {Color: cubes.Red, Amount: 4}},
			{{Color: cubes.Red, Amount: 1}, {Color: cubes.Green, Amount: 2}, {Color: cubes.Blue, Amount: 6}},
			{{Color: cubes.Green, Amount: 2}},
		},
	}
}

func TestParseGame(t *testing.T) {
	t.Parallel()

	got, err := cubes.ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)
	assert.Equal(t, firstGame(), got)
}

func TestParseGameEmptySet(t *testing.T) {
	t.Parallel()

	got, err := cubes.ParseGame("Game 12: 3 red; ; 2 blue")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got.ID)
	require.Len(t, got.Sets, 3)
	assert.Empty(t, got.Sets[1])
}

func TestParseGameErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line    string
		wantErr error
	}{
		"missing colon":  {line: "Game 1 3 red", wantErr: cubes.ErrMalformedGame},
		"wrong keyword":  {line: "Round 1: 3 red", wantErr: cubes.ErrMalformedGame},
		"missing id":     {line: "Game : 3 red", wantErr: cubes.ErrMalformedGame},
		"id too large":   {line: "Game 99999999999999999999: 3 red", wantErr: cubes.ErrMalformedGame},
		"unknown color":  {line: "Game 1: 3 red, 4 pink", wantErr: cubes.ErrUnknownColor},
		"bad amount":     {line: "Game 1: 3 red; x blue", wantErr: cubes.ErrMalformedDraw},
		"bad separator":  {line: "Game 1: 3 red,4 blue", wantErr: cubes.ErrMalformedDraw},
		"trailing comma": {line: "Game 1: 3 red, ", wantErr: cubes.ErrMalformedDraw},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := cubes.ParseGame(tc.line)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMinPossibleSet(t *testing.T) {
	t.Parallel()

	got, err := firstGame().MinPossibleSet()
	require.NoError(t, err)
	assert.Equal(t, cubes.Supply{Red: 4, Green: 2, Blue: 6}, got)
}

func TestMinPossibleSetDominatesEverySet(t *testing.T) {
	t.Parallel()

	games, err := cubes.ParseGames(sample + "\nGame 6: 2 red, 5 red, 1 blue; 6 red")
	require.NoError(t, err)

	for _, game := range games {
		minSet, err := game.MinPossibleSet()
		require.NoError(t, err)

		for _, set := range game.Sets {
			totals, err := set.Totals()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, minSet.Red, totals.Red)
			assert.GreaterOrEqual(t, minSet.Green, totals.Green)
			assert.GreaterOrEqual(t, minSet.Blue, totals.Blue)
		}
	}

	minSet, err := games[5].MinPossibleSet()
	require.NoError(t, err)
	assert.Equal(t, cubes.Supply{Red: 7, Blue: 1}, minSet)
}

func TestMinPossibleSetNoSets(t *testing.T) {
	t.Parallel()

	_, err := cubes.Game{ID: 3}.MinPossibleSet()
	assert.ErrorIs(t, err, cubes.ErrNoSets)

	_, err = cubes.SumPower([]cubes.Game{{ID: 3}})
	assert.ErrorIs(t, err, cubes.ErrNoSets)
}

func TestFeasible(t *testing.T) {
	t.Parallel()

	games, err := cubes.ParseGames(sample)
	require.NoError(t, err)

	feasible := map[uint64]bool{}
	for _, game := range games {
		feasible[game.ID] = game.Feasible(cubes.DefaultLimits)
	}
	assert.Equal(t, map[uint64]bool{1: true, 2: true, 3: false, 4: false, 5: true}, feasible)

	assert.True(t, firstGame().Feasible(cubes.Supply{Red: 4, Green: 2, Blue: 6}))
	assert.False(t, firstGame().Feasible(cubes.Supply{Red: 4, Green: 2, Blue: 5}))
	assert.Equal(t, uint64(0), cubes.FeasibleID(firstGame(), cubes.Supply{}))
}

func TestPower(t *testing.T) {
	t.Parallel()

	got, err := firstGame().Power()
	require.NoError(t, err)
	assert.Equal(t, uint64(48), got)

	huge := cubes.Game{ID: 9, Sets: []cubes.Set{{
		{Color: cubes.Red, Amount: math.MaxUint32 + 1},
		{Color: cubes.Green, Amount: math.MaxUint32 + 1},
		{Color: cubes.Blue, Amount: 1},
	}}}
	_, err = huge.Power()
	assert.ErrorIs(t, err, checked.ErrOverflow)
}

func TestPart1(t *testing.T) {
	t.Parallel()

	got, err := cubes.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}

func TestPart2(t *testing.T) {
	t.Parallel()

	got, err := cubes.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(2286), got)
}

func TestPartsAdditive(t *testing.T) {
	t.Parallel()

	other := "Game 6: 1 red, 1 green, 1 blue\nGame 7: 20 blue"
	for _, part := range []func(string) (uint64, error){cubes.Part1, cubes.Part2} {
		first, err := part(sample)
		require.NoError(t, err)
		second, err := part(other)
		require.NoError(t, err)

		both, err := part(sample + "\n" + other)
		require.NoError(t, err)
		assert.Equal(t, first+second, both)
	}
}

func TestPartsEmptyInput(t *testing.T) {
	t.Parallel()

	got, err := cubes.Part1("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = cubes.Part2("\n")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPartsMalformed(t *testing.T) {
	t.Parallel()

	_, err := cubes.Part1(sample + "\nGame 6: 1 orange")
	require.ErrorIs(t, err, cubes.ErrUnknownColor)
	assert.Contains(t, err.Error(), "record 6")

	_, err = cubes.Part2("nonsense")
	assert.ErrorIs(t, err, cubes.ErrMalformedGame)
}
