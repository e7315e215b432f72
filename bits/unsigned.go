// Package bits decomposes unsigned integers into their bits and rebuilds
// integers from bit sequences. Bits always travel least-significant first.
package bits

import (
	"github.com/pi/lsbits/gut"
	"golang.org/x/exp/constraints"
)

// Unsigned is the set of integer types the package works with: any fixed
// width unsigned integer, including named types over one.
type Unsigned interface {
	constraints.Unsigned
}

// Width returns the bit width of T.
func Width[T Unsigned]() uint {
	return uint(gut.BitLen(^T(0)))
}

// SignificantBits returns the number of bits up to and including the
// highest set bit of v. It is 0 for v == 0.
func SignificantBits[T Unsigned](v T) int {
	return gut.BitLen(v)
}
