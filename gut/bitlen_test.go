package gut

import (
	"testing"

	th "github.com/pi/lsbits/internal/testhelpers"
	"github.com/stretchr/testify/assert"
)

func TestBitLen(t *testing.T) {
	bl := func(v uint64) (n int) {
		for v > 0 {
			n++
			v >>= 1
		}
		return
	}

	g := th.NewSeqGen(th.SgRand)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		assert.EqualValues(t, bl(v), BitLen(v), "%x", v)
		assert.EqualValues(t, bl(uint64(uint8(v))), BitLen(uint8(v)), "%x", uint8(v))
		assert.EqualValues(t, bl(uint64(uint16(v))), BitLen(uint16(v)), "%x", uint16(v))
	}
}

func TestBitLenEdges(t *testing.T) {
	assert.Equal(t, 0, BitLen(uint8(0)))
	assert.Equal(t, 1, BitLen(uint8(1)))
	assert.Equal(t, 8, BitLen(^uint8(0)))
	assert.Equal(t, 32, BitLen(^uint32(0)))
	assert.Equal(t, 64, BitLen(^uint64(0)))
	for i := uint(0); i < 64; i++ {
		assert.Equal(t, int(i)+1, BitLen(uint64(1)<<i))
	}
}
