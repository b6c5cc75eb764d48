package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

func TestAlloc_ZeroBytesIsNoOp(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	ref, payload, err := al.Alloc(0)
	require.NoError(t, err)
	assert.Equal(t, Ref(0), ref)
	assert.Nil(t, payload)

	assert.Equal(t, 1, al.Stats().AllocCalls)
	assertConsistent(t, al)
}

func TestAlloc_PayloadsAreDoublewordAligned(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	for _, n := range []uint32{1, 7, 8, 9, 24, 100, 255, 4000} {
		ref, payload, err := al.Alloc(n)
		require.NoError(t, err, "Alloc(%d)", n)
		assert.Zero(t, ref%format.DoublewordSize, "Alloc(%d) returned unaligned 0x%X", n, ref)
		assert.GreaterOrEqual(t, uint32(len(payload)), n, "payload must hold the request")
		assertConsistent(t, al)
	}
}

func TestAlloc_SplitsLargeFreeBlock(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	ref, _, err := al.Alloc(100)
	require.NoError(t, err)
	assert.Equal(t, Ref(16), ref)

	blocks := walkHeap(al)
	// prologue, the allocated block, the split remainder
	require.Len(t, blocks, 3)
	assert.Equal(t, blockInfo{bp: 16, size: 112, allocated: true}, blocks[1])
	assert.Equal(t, blockInfo{bp: 128, size: format.ChunkSize - 112, allocated: false}, blocks[2])
	assert.Equal(t, 1, al.Stats().SplitCount)
	assertConsistent(t, al)
}

func TestAlloc_ConsumesWholeBlockWhenRemainderTooSmall(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	// Adjusted size 4096 exactly matches the seeded chunk; a split would
	// leave nothing, so the whole block is consumed.
	ref, payload, err := al.Alloc(4088)
	require.NoError(t, err)
	assert.Equal(t, Ref(16), ref)
	assert.Len(t, payload, 4088)

	assert.Empty(t, freeBlocks(al))
	assert.Zero(t, al.Stats().SplitCount)
	assertConsistent(t, al)
}

func TestAlloc_BlocksDoNotOverlap(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	a, _, err := al.Alloc(100)
	require.NoError(t, err)
	b, _, err := al.Alloc(200)
	require.NoError(t, err)

	assert.Greater(t, uint32(b), uint32(a)+100+format.Overhead,
		"second block must start past the first block's payload and tags")
	assertConsistent(t, al)
}

func TestAlloc_GrowsArenaWhenNoFit(t *testing.T) {
	al := newTestAllocator(t, 1<<20)
	before := al.HeapBytes()

	ref, _, err := al.Alloc(8000)
	require.NoError(t, err)
	assert.NotZero(t, ref)

	assert.Greater(t, al.HeapBytes(), before)
	assert.Equal(t, 1, al.Stats().AllocSlowPath)
	assertConsistent(t, al)
}

func TestAlloc_HeapNeverShrinks(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	last := al.HeapBytes()
	var refs []Ref
	for i := 0; i < 8; i++ {
		ref, _, err := al.Alloc(1024)
		require.NoError(t, err)
		refs = append(refs, ref)

		assert.GreaterOrEqual(t, al.HeapBytes(), last)
		last = al.HeapBytes()
	}
	for _, ref := range refs {
		require.NoError(t, al.Free(ref))
		assert.GreaterOrEqual(t, al.HeapBytes(), last)
		last = al.HeapBytes()
	}
	assertConsistent(t, al)
}

func TestFree_BadRefsAreRejected(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	assert.ErrorIs(t, al.Free(0), ErrBadRef)
	assert.ErrorIs(t, al.Free(4), ErrBadRef)
	assert.ErrorIs(t, al.Free(Ref(al.HeapBytes()+64)), ErrBadRef)
	assertConsistent(t, al)
}

func TestFree_HeaderFooterStayInSync(t *testing.T) {
	al := newTestAllocator(t, 1<<20)

	refs := make([]Ref, 0, 4)
	for i := 0; i < 4; i++ {
		ref, _, err := al.Alloc(64)
		require.NoError(t, err)
		refs = append(refs, ref)
		assertConsistent(t, al)
	}
	for _, ref := range refs {
		require.NoError(t, al.Free(ref))
		assertConsistent(t, al)
	}
}
