package solver

import (
	"github.com/askiada/aoc-pipeline/pkg/calibration"
	"github.com/askiada/aoc-pipeline/pkg/cubes"
)

const puzzleYear = 2023

// Trebuchet is day 1: calibration values read from literal digits, then from literal and spelled digits.
func Trebuchet() *Day[string] {
	return &Day[string]{
		PuzzleYear: puzzleYear,
		PuzzleDay:  1,
		Name:       "Trebuchet?!",
		Parse: func(line string) (string, error) {
			return line, nil
		},
		Parts: []Part[string]{
			{Name: "1", Value: calibration.DigitScanner().Value},
			{Name: "2", Value: calibration.SpelledScanner().Value},
		},
	}
}

// CubeConundrum is day 2: identifiers of the games feasible with the default bag, then the power of every game.
func CubeConundrum() *Day[cubes.Game] {
	return &Day[cubes.Game]{
		PuzzleYear: puzzleYear,
		PuzzleDay:  2,
		Name:       "Cube Conundrum",
		Parse:      cubes.ParseGame,
		Parts: []Part[cubes.Game]{
			{Name: "1", Value: func(game cubes.Game) (uint64, error) {
				return cubes.FeasibleID(game, cubes.DefaultLimits), nil
			}},
			{Name: "2", Value: cubes.Game.Power},
		},
	}
}

// Default returns a registry holding every day of the module.
func Default() *Registry {
	reg, err := NewRegistry(Trebuchet(), CubeConundrum())
	if err != nil {
		panic(err)
	}

	return reg
}
