package cubes

import (
	"fmt"

	"github.com/askiada/aoc-pipeline/internal/checked"
)

// Supply is a number of cubes per color.
type Supply struct {
	Red, Green, Blue uint64
}

// DefaultLimits is the bag content games are checked against.
var DefaultLimits = Supply{Red: 12, Green: 13, Blue: 14}

// Get returns the number of cubes of color c.
func (s Supply) Get(c Color) uint64 {
	switch c {
	case Red:
		return s.Red
	case Green:
		return s.Green
	case Blue:
		return s.Blue
	}

	return 0
}

// With returns a copy of s holding n cubes of color c.
func (s Supply) With(c Color, n uint64) Supply {
	switch c {
	case Red:
		s.Red = n
	case Green:
		s.Green = n
	case Blue:
		s.Blue = n
	}

	return s
}

// Power returns the product of the three amounts.
func (s Supply) Power() (uint64, error) {
	return checked.Mul(s.Red, s.Green, s.Blue)
}

func (s Supply) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Red, s.Green, s.Blue)
}
