package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/internal/format"
)

func TestNew_LaysDownSentinels(t *testing.T) {
	al := newTestAllocator(t, 1<<20)
	data := al.a.Bytes()

	// Padding word, prologue header/footer, then the seeded free chunk.
	assert.Equal(t, uint32(0), format.ReadU32(data, 0))
	assert.Equal(t, format.Pack(8, true), format.ReadU32(data, 4), "prologue header")
	assert.Equal(t, format.Pack(8, true), format.ReadU32(data, 8), "prologue footer")

	assert.Equal(t, 16+format.ChunkSize, al.HeapBytes())
	assert.Equal(t, format.Pack(0, true), format.ReadU32(data, len(data)-4), "epilogue header")

	free := freeBlocks(al)
	require.Len(t, free, 1)
	assert.Equal(t, uint32(16), free[0].bp, "first real block just past the prologue")
	assert.Equal(t, uint32(format.ChunkSize), free[0].size)

	assert.Equal(t, al.heapStart, al.rover, "cursor starts at the heap start")
	assertConsistent(t, al)
}

func TestNew_FailsWhenArenaCannotSupplyBootstrap(t *testing.T) {
	a, err := arena.New(arena.WithLimit(8))
	require.NoError(t, err)
	defer a.Close()

	_, err = New(a)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestNew_FailsWhenSeedChunkDoesNotFit(t *testing.T) {
	// Room for the sentinels but not for the initial chunk.
	a, err := arena.New(arena.WithLimit(64))
	require.NoError(t, err)
	defer a.Close()

	_, err = New(a)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}
