package bits

import (
	"iter"

	"github.com/pi/lsbits/gut"
)

// Decomposer yields the bits of an unsigned value, least-significant first.
//
// Only significant bits are produced: the sequence ends right after the bit
// whose removal leaves the remaining value at zero. A zero value therefore
// yields a single false bit. A Decomposer is single-pass and cannot be
// rewound. The zero Decomposer behaves like NewDecomposer(T(0)).
type Decomposer[T Unsigned] struct {
	val   T
	atEnd bool
}

func NewDecomposer[T Unsigned](init T) *Decomposer[T] {
	return &Decomposer[T]{val: init}
}

// Next returns the next bit. ok is false once the sequence is exhausted,
// and stays false.
func (d *Decomposer[T]) Next() (bit bool, ok bool) {
	if d.atEnd {
		return false, false
	}
	lsb := d.val & 1
	d.val >>= 1
	if d.val == 0 {
		d.atEnd = true
	}
	return lsb != 0, true
}

func (d *Decomposer[T]) Done() bool {
	return d.atEnd
}

// Len returns the number of bits Next will still produce.
func (d *Decomposer[T]) Len() int {
	if d.atEnd {
		return 0
	}
	if d.val == 0 {
		return 1
	}
	return gut.BitLen(d.val)
}

// All ranges over the remaining bits, consuming them. Bits not reached when
// the loop breaks stay in d.
func (d *Decomposer[T]) All() iter.Seq[bool] {
	return Seq(d)
}

// Collect drains the remaining bits into a slice.
func (d *Decomposer[T]) Collect() []bool {
	out := make([]bool, 0, d.Len())
	for {
		bit, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, bit)
	}
}
