// Package alloc implements a boundary-tagged heap allocator over a single
// growable arena, using an implicit block list with next-fit placement.
//
// # Overview
//
// All block metadata lives inside the managed memory itself. Every block
// carries a one-word header and an identical one-word footer encoding
// (size, allocated-bit); there are no free-list pointers and no metadata
// store outside the arena. Adjacency is discovered by arithmetic on the
// tags: the successor starts size bytes ahead, and the predecessor's size
// is read from the word immediately before the current header. This is
// what makes coalescing O(1): one predecessor and one successor inspection,
// never a list traversal.
//
// # Heap layout
//
//	offset 0   padding word (payload alignment)
//	offset 4   prologue header  (8, allocated)
//	offset 8   prologue footer  (8, allocated)
//	...        real blocks
//	end - 4    epilogue header  (0, allocated)
//
// The prologue and epilogue are permanently allocated sentinels so that
// every real block has well-defined neighbors and coalescing never walks
// off either end. The epilogue is relocated each time the arena grows.
//
// # Placement policy
//
// Allocation uses next-fit: the search resumes from a rotating cursor
// rather than the heap start, amortizing search cost across many
// allocations at the cost of potentially worse fragmentation. This is a
// deliberate trade-off, not a defect.
//
// # Usage Example
//
//	a, err := arena.New()
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	al, err := alloc.New(a)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := al.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//
//	// Later, release the block
//	err = al.Free(ref)
//
// # Block References
//
// Block references (Ref) are uint32 payload offsets from the arena base.
// Payload addresses are always doubleword (8-byte) aligned. Callers may
// write only within their granted payload range; writing into a header or
// footer is exactly the corruption CheckHeap is designed to surface.
//
// # Error Handling
//
// ErrOutOfMemory is the only recoverable error, returned by New, Alloc,
// and Realloc when the arena cannot grow. Corruption is never detected on
// the hot path; CheckHeap is the explicit, opt-in diagnostic. Releasing a
// reference that was never allocated is undefined behavior beyond a basic
// bounds check.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
