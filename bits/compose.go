package bits

import "github.com/pi/lsbits/debug"

// BuildFrom reads up to maxBits bits from src, least-significant first, and
// returns them as a T. Reading stops early when src is exhausted; bit
// positions that were not read are zero. Bits beyond maxBits stay in src, so
// successive calls on one source decode successive groups of bits.
//
// maxBits must not exceed the width of T.
func BuildFrom[T Unsigned](src Source, maxBits uint) T {
	if maxBits > Width[T]() {
		panic("too many bits")
	}
	var val T
	for i := uint(0); i < maxBits; i++ {
		bit, ok := src.Next()
		if !ok {
			if debug.Enabled {
				debug.Log("bits: source ended after %d of %d bits", i, maxBits)
			}
			break
		}
		if bit {
			val |= T(1) << i
		}
	}
	return val
}
