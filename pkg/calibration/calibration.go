package calibration

import (
	"github.com/pkg/errors"

	"github.com/askiada/aoc-pipeline/internal/checked"
	"github.com/askiada/aoc-pipeline/internal/text"
)

// Sum adds up the calibration values of lines. The first line without a digit aborts the sum.
func Sum(lines []string, scanner *Scanner) (uint64, error) {
	var total uint64
	for i, line := range lines {
		value, err := scanner.Value(line)
		if err != nil {
			return 0, errors.Wrapf(err, "record %d", i+1)
		}
		total, err = checked.Add(total, value)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// Part1 sums the calibration values of input, reading literal digits only.
func Part1(input string) (uint64, error) {
	return Sum(text.Lines(input), DigitScanner())
}

// Part2 sums the calibration values of input, reading literal and spelled digits.
func Part2(input string) (uint64, error) {
	return Sum(text.Lines(input), SpelledScanner())
}
