package testhelpers

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// SeqGen produces deterministic 64-bit test values.
type SeqGen interface {
	Seed(value uint64)
	Next() uint64
	Reset()
}

const (
	SgRand = iota
	SgSeq
	SgTwist
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// Uints takes n values from g truncated to T.
func Uints[T constraints.Unsigned](g SeqGen, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(g.Next())
	}
	return out
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint64 {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return g.r.Uint64()
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *randSG) Seed(value uint64) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint64
}

func (g *seqSG) Next() uint64 {
	g.cur++
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint64) {
	g.cur = value
}

// twistSG alternates between values with the top bit clear and set.
type twistSG struct {
	cur uint64
}

func (g *twistSG) Next() uint64 {
	if (g.cur & 0x8000000000000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	return g.cur
}

func (g *twistSG) Reset() {
	g.cur = 0
}
func (g *twistSG) Seed(value uint64) {
	g.cur = value
}
