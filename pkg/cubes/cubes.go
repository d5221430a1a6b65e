package cubes

import (
	"github.com/pkg/errors"

	"github.com/askiada/aoc-pipeline/internal/checked"
	"github.com/askiada/aoc-pipeline/internal/text"
)

// ParseGames parses one game per non blank line of input.
func ParseGames(input string) ([]Game, error) {
	lines := text.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		games = append(games, game)
	}

	return games, nil
}

// FeasibleID returns the identifier of the game when it is feasible under limits, 0 otherwise.
func FeasibleID(game Game, limits Supply) uint64 {
	if game.Feasible(limits) {
		return game.ID
	}

	return 0
}

// SumFeasible adds up the identifiers of the games feasible under limits.
func SumFeasible(games []Game, limits Supply) (uint64, error) {
	var total uint64
	for _, game := range games {
		var err error
		total, err = checked.Add(total, FeasibleID(game, limits))
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// SumPower adds up the power of every game.
func SumPower(games []Game) (uint64, error) {
	var total uint64
	for _, game := range games {
		power, err := game.Power()
		if err != nil {
			return 0, err
		}
		total, err = checked.Add(total, power)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// Part1 sums the identifiers of the games of input feasible with DefaultLimits.
func Part1(input string) (uint64, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	return SumFeasible(games, DefaultLimits)
}

// Part2 sums the power of the games of input.
func Part2(input string) (uint64, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	return SumPower(games)
}
