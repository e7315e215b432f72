package bits

import "iter"

// Source is a single-pass producer of bits. Next reports ok == false when no
// bit is available, which is distinct from a false bit.
type Source interface {
	Next() (bit bool, ok bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (bool, bool)

func (f SourceFunc) Next() (bool, bool) {
	return f()
}

// Seq returns a push iterator over the remaining bits of src. Each bit
// handed to the loop body is consumed from src.
func Seq(src Source) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for {
			bit, ok := src.Next()
			if !ok || !yield(bit) {
				return
			}
		}
	}
}

// Pull turns a push iterator into a Source. stop must be called once the
// source is no longer needed.
func Pull(seq iter.Seq[bool]) (src Source, stop func()) {
	next, stop := iter.Pull(seq)
	return SourceFunc(next), stop
}

type sliceSource struct {
	bits []bool
}

// FromSlice returns a Source over bits. The slice is not copied.
func FromSlice(bits []bool) Source {
	return &sliceSource{bits: bits}
}

func (s *sliceSource) Next() (bool, bool) {
	if len(s.bits) == 0 {
		return false, false
	}
	bit := s.bits[0]
	s.bits = s.bits[1:]
	return bit, true
}

type concatSource struct {
	srcs []Source
}

// Concat yields the bits of each source in turn.
func Concat(srcs ...Source) Source {
	return &concatSource{srcs: srcs}
}

func (c *concatSource) Next() (bool, bool) {
	for len(c.srcs) > 0 {
		if bit, ok := c.srcs[0].Next(); ok {
			return bit, true
		}
		c.srcs = c.srcs[1:]
	}
	return false, false
}

type maskSource struct {
	src, mask Source
	done      bool
}

// Mask yields src AND mask bit by bit. It ends as soon as either side ends;
// mask is read first, so src is not advanced past the end of mask.
func Mask(src, mask Source) Source {
	return &maskSource{src: src, mask: mask}
}

func (m *maskSource) Next() (bool, bool) {
	if m.done {
		return false, false
	}
	mb, ok := m.mask.Next()
	if !ok {
		m.done = true
		return false, false
	}
	sb, ok := m.src.Next()
	if !ok {
		m.done = true
		return false, false
	}
	return sb && mb, true
}
