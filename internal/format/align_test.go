package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignDouble(t *testing.T) {
	cases := map[uint32]uint32{
		0:  0,
		1:  8,
		7:  8,
		8:  8,
		9:  16,
		15: 16,
		16: 16,
	}
	for in, want := range cases {
		assert.Equal(t, want, AlignDouble(in), "AlignDouble(%d)", in)
	}
}

func TestAlignWords_RoundsUpToEven(t *testing.T) {
	cases := map[uint32]uint32{
		0:    0,
		1:    2,
		2:    2,
		1023: 1024,
		1024: 1024,
	}
	for in, want := range cases {
		assert.Equal(t, want, AlignWords(in), "AlignWords(%d)", in)
	}
}

func TestAdjustedSize(t *testing.T) {
	cases := map[uint32]uint32{
		1:    MinBlockSize,
		8:    MinBlockSize,
		9:    24,
		16:   24,
		24:   32,
		100:  112,
		200:  208,
		4096: 4104,
	}
	for in, want := range cases {
		got := AdjustedSize(in)
		assert.Equal(t, want, got, "AdjustedSize(%d)", in)
		assert.GreaterOrEqual(t, got-Overhead, in, "payload must fit the request")
		assert.Zero(t, got%DoublewordSize, "block size must stay doubleword aligned")
	}
}
