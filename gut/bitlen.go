package gut

import "golang.org/x/exp/constraints"

var smallBitLenTable = [16]int{
	0,
	1,
	2,
	2,
	3,
	3,
	3,
	3,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
}

// BitLen returns the number of significant bits in x, 0 for x == 0.
func BitLen[T constraints.Unsigned](x T) (n int) {
	v := uint64(x)
	if v >= 1<<32 {
		v >>= 32
		n += 32
	}
	if v >= 1<<16 {
		v >>= 16
		n += 16
	}
	if v >= 1<<8 {
		v >>= 8
		n += 8
	}
	if v >= 1<<4 {
		v >>= 4
		n += 4
	}

	return n + smallBitLenTable[v]
}
