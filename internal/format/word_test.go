package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack_RoundTrip(t *testing.T) {
	cases := []struct {
		size      uint32
		allocated bool
	}{
		{0, true},
		{8, true},
		{8, false},
		{16, false},
		{4096, true},
		{1 << 20, false},
	}

	for _, tc := range cases {
		word := Pack(tc.size, tc.allocated)
		assert.Equal(t, tc.size, SizeOf(word), "size for %+v", tc)
		assert.Equal(t, tc.allocated, IsAllocated(word), "flag for %+v", tc)
	}
}

func TestPack_FlagOnlyUsesBitZero(t *testing.T) {
	word := Pack(4096, true)
	assert.Equal(t, uint32(1), word&uint32(AlignMask), "only bit 0 may carry the flag")
}

func TestReadPutU32_LittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	PutU32(buf, 4, 0x12345678)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, buf[4:8])
	assert.Equal(t, uint32(0x12345678), ReadU32(buf, 4))
}
