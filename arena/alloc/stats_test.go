package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

func TestStats_CountsOperations(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	a, _, err := al.Alloc(100)
	require.NoError(t, err)
	_, _, err = al.Alloc(200)
	require.NoError(t, err)
	require.NoError(t, al.Free(a))

	stats := al.Stats()
	assert.Equal(t, 2, stats.AllocCalls)
	assert.Equal(t, 2, stats.AllocFastPath)
	assert.Zero(t, stats.AllocSlowPath)
	assert.Equal(t, 1, stats.FreeCalls)
	assert.Equal(t, 1, stats.GrowCalls, "only the bootstrap chunk")
	assert.Equal(t, int64(format.ChunkSize), stats.GrowBytes)
	assert.Equal(t, int64(112+208), stats.BytesAllocated)
	assert.Equal(t, int64(112), stats.BytesFreed)
}

func TestFreeBytes_TracksHeapState(t *testing.T) {
	al := newTestAllocator(t, 1<<20)
	assert.Equal(t, format.ChunkSize, al.FreeBytes())

	ref, _, err := al.Alloc(1000)
	require.NoError(t, err)
	assert.Equal(t, format.ChunkSize-1008, al.FreeBytes())

	require.NoError(t, al.Free(ref))
	assert.Equal(t, format.ChunkSize, al.FreeBytes())
}

func TestUtilization_BoundedAndMonotonicUnderFill(t *testing.T) {
	al := newTestAllocator(t, 1<<20)
	idle := al.Utilization()

	_, _, err := al.Alloc(2048)
	require.NoError(t, err)
	busy := al.Utilization()

	assert.Greater(t, busy, idle)
	assert.GreaterOrEqual(t, idle, 0.0)
	assert.LessOrEqual(t, busy, 1.0)
}
