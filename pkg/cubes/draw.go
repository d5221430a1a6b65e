package cubes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/aoc-pipeline/internal/checked"
)

var (
	ErrUnknownColor  = errors.New("unknown color")
	ErrMalformedDraw = errors.New("malformed draw")
)

// Color is the color of a cube.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{Red: "red", Green: "green", Blue: "blue"}

func (c Color) String() string {
	if c < Red || c > Blue {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}

	return colorNames[c]
}

// ParseColor returns the color named name. Names are lowercase and matched exactly.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return Color(c), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownColor, "%q", name)
}

// Draw is a number of cubes of a single color.
type Draw struct {
	Color  Color
	Amount uint64
}

// ParseDraw parses "<amount> <color>", ignoring surrounding whitespace.
func ParseDraw(raw string) (Draw, error) {
	chunks := strings.Fields(raw)
	if len(chunks) != 2 {
		return Draw{}, errors.Wrapf(ErrMalformedDraw, "%q", raw)
	}

	amount, err := strconv.ParseUint(chunks[0], 10, 64)
	if err != nil {
		return Draw{}, errors.Wrapf(ErrMalformedDraw, "%q: %v", raw, err)
	}

	color, err := ParseColor(chunks[1])
	if err != nil {
		return Draw{}, err
	}

	return Draw{Color: color, Amount: amount}, nil
}

func (d Draw) String() string {
	return fmt.Sprintf("%d %s", d.Amount, d.Color)
}

// Set is the draws revealed at once. A color may appear more than once; its amounts add up.
type Set []Draw

// Totals returns the number of cubes of each color in the set.
func (s Set) Totals() (Supply, error) {
	var total Supply
	for _, d := range s {
		n, err := checked.Add(total.Get(d.Color), d.Amount)
		if err != nil {
			return Supply{}, errors.Wrapf(err, "%s cubes", d.Color)
		}
		total = total.With(d.Color, n)
	}

	return total, nil
}
