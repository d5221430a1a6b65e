// Package checked provides uint64 arithmetic failing on overflow instead of wrapping.
package checked

import (
	"math/bits"

	"github.com/pkg/errors"
)

// ErrOverflow is returned when a result does not fit in 64 bits.
var ErrOverflow = errors.New("uint64 overflow")

// Add returns a+b.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}

	return sum, nil
}

// Mul returns the product of factors, 1 when there are none.
func Mul(factors ...uint64) (uint64, error) {
	product := uint64(1)
	for _, f := range factors {
		hi, lo := bits.Mul64(product, f)
		if hi != 0 {
			return 0, errors.Wrapf(ErrOverflow, "%d * %d", product, f)
		}
		product = lo
	}

	return product, nil
}
