package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/arena"
)

// newTestAllocator bootstraps an allocator over a fresh arena capped at
// limit bytes. The arena is closed when the test finishes.
func newTestAllocator(t testing.TB, limit int) *Allocator {
	t.Helper()

	a, err := arena.New(arena.WithLimit(limit))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	al, err := New(a)
	require.NoError(t, err)
	return al
}

// assertConsistent fails the test if the consistency checker reports any
// violation.
func assertConsistent(t testing.TB, al *Allocator) {
	t.Helper()
	issues := al.CheckHeap(false)
	require.Empty(t, issues, "heap inconsistencies: %v", issues)
}

// blockInfo is a snapshot of one block taken by walkHeap.
type blockInfo struct {
	bp        uint32
	size      uint32
	allocated bool
}

// walkHeap returns every block between the prologue and the epilogue,
// prologue included, in address order.
func walkHeap(al *Allocator) []blockInfo {
	data := al.a.Bytes()
	var out []blockInfo
	for b := (block{data: data, bp: al.heapStart}); b.size() > 0; b = b.next() {
		out = append(out, blockInfo{bp: b.bp, size: b.size(), allocated: b.allocated()})
	}
	return out
}

// freeBlocks returns only the free blocks in address order.
func freeBlocks(al *Allocator) []blockInfo {
	var out []blockInfo
	for _, b := range walkHeap(al) {
		if !b.allocated {
			out = append(out, b)
		}
	}
	return out
}

// fillPayload writes a ref-derived pattern over a payload so overlap or
// copy bugs show up as pattern mismatches.
func fillPayload(ref Ref, payload []byte) {
	for i := range payload {
		payload[i] = byte(uint32(ref) + uint32(i))
	}
}

// checkPayload verifies the pattern written by fillPayload over the first
// n bytes.
func checkPayload(t testing.TB, ref Ref, payload []byte, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.Equal(t, byte(uint32(ref)+uint32(i)), payload[i],
			"payload of 0x%X corrupted at byte %d", ref, i)
	}
}
