package alloc

// Stats holds internal allocator counters for instrumentation and testing.
type Stats struct {
	AllocCalls    int   // Total Alloc() calls, including zero-byte no-ops
	AllocFastPath int   // Allocations satisfied without growing the arena
	AllocSlowPath int   // Allocations that required growth
	FreeCalls     int   // Total Free() calls
	ReallocCalls  int   // Total Realloc() calls
	GrowCalls     int   // Arena growth operations
	GrowBytes     int64 // Total bytes added by growth
	SplitCount    int   // Free blocks split during placement

	CoalesceForward  int // Merges with a free successor only
	CoalesceBackward int // Merges with a free predecessor only
	CoalesceBoth     int // Merges absorbing both neighbors

	BytesAllocated int64 // Total block bytes handed out (including tags)
	BytesFreed     int64 // Total block bytes released
}

// Stats returns a snapshot of the allocator's counters.
func (al *Allocator) Stats() Stats {
	return al.stats
}

// HeapBytes returns the current arena length in bytes.
func (al *Allocator) HeapBytes() int {
	return al.a.Size()
}

// FreeBytes walks the heap and returns the total size of free blocks.
func (al *Allocator) FreeBytes() int {
	data := al.a.Bytes()
	total := 0
	for b := (block{data: data, bp: al.heapStart}); b.size() > 0; b = b.next() {
		if !b.allocated() {
			total += int(b.size())
		}
	}
	return total
}

// Utilization returns the ratio of non-free heap bytes to the total arena
// length, between 0.0 and 1.0. Returns 0.0 for an empty arena.
func (al *Allocator) Utilization() float64 {
	heap := al.HeapBytes()
	if heap == 0 {
		return 0
	}
	return float64(heap-al.FreeBytes()) / float64(heap)
}
