package alloc

import "github.com/joshuapare/heapkit/internal/format"

// Alloc allocates a block with at least n bytes of payload and returns its
// reference and payload slice. A zero-byte request is a no-op returning the
// null reference. Returns ErrOutOfMemory when no free block fits and the
// arena cannot grow.
func (al *Allocator) Alloc(n uint32) (Ref, []byte, error) {
	al.stats.AllocCalls++

	if n == 0 {
		return 0, nil, nil
	}
	if n > maxRequest {
		return 0, nil, ErrOutOfMemory
	}
	asize := format.AdjustedSize(n)

	if b, ok := al.findFit(asize); ok {
		al.place(b, asize)
		al.stats.AllocFastPath++
		return al.grant(b)
	}

	// No fit anywhere: grow by at least one chunk and place in the new block.
	extendSize := asize
	if extendSize < format.ChunkSize {
		extendSize = format.ChunkSize
	}
	b, err := al.extend(extendSize / format.WordSize)
	if err != nil {
		return 0, nil, err
	}
	al.place(b, asize)
	al.stats.AllocSlowPath++
	return al.grant(b)
}

// grant finalizes an allocation: accounts the block and returns its
// reference plus the payload slice between header and footer.
func (al *Allocator) grant(b block) (Ref, []byte, error) {
	size := b.size()
	al.stats.BytesAllocated += int64(size)
	payload := b.data[b.bp : b.bp+size-format.Overhead]
	return Ref(b.bp), payload, nil
}

// Free releases the block at ref: rewrites its tags as free and coalesces
// with free neighbors. Only bounds violations are detected; releasing a
// reference that was never granted, or twice, is undefined behavior.
func (al *Allocator) Free(ref Ref) error {
	al.stats.FreeCalls++

	data := al.a.Bytes()
	bp := uint32(ref)
	if int(bp) < format.WordSize+format.WordSize || int(bp) > len(data)-format.WordSize {
		return ErrBadRef
	}
	b := block{data: data, bp: bp}
	size := b.size()
	if size < format.MinBlockSize || int(bp+size) > len(data) {
		return ErrBadRef
	}

	b.setTags(size, false)
	al.stats.BytesFreed += int64(size)
	al.coalesce(b)
	return nil
}

// Realloc resizes the block at ref to n payload bytes by allocating a fresh
// block, copying the surviving payload, and releasing the old block. In-place
// growth is not attempted.
//
// On allocation failure the original block is left valid and unmodified and
// ErrOutOfMemory is returned. A null ref behaves like Alloc; n == 0 behaves
// like Free and returns the null reference.
func (al *Allocator) Realloc(ref Ref, n uint32) (Ref, []byte, error) {
	al.stats.ReallocCalls++

	if ref == 0 {
		return al.Alloc(n)
	}
	if n == 0 {
		if err := al.Free(ref); err != nil {
			return 0, nil, err
		}
		return 0, nil, nil
	}

	data := al.a.Bytes()
	bp := uint32(ref)
	if int(bp) < format.WordSize+format.WordSize || int(bp) > len(data)-format.WordSize {
		return 0, nil, ErrBadRef
	}
	old := block{data: data, bp: bp}
	oldSize := old.size()
	if oldSize < format.MinBlockSize || int(bp+oldSize) > len(data) {
		return 0, nil, ErrBadRef
	}

	newRef, payload, err := al.Alloc(n)
	if err != nil {
		return 0, nil, err
	}

	// The arena base is stable across growth, so the old payload is still
	// addressable through the pre-Alloc slice.
	copyN := oldSize - format.Overhead
	if n < copyN {
		copyN = n
	}
	copy(payload[:copyN], data[bp:bp+copyN])

	if err := al.Free(ref); err != nil {
		return 0, nil, err
	}
	return newRef, payload, nil
}

// findFit locates a free block of at least asize bytes using next-fit:
// scan forward from the rover to the epilogue, then wrap and scan from the
// heap start up to the original rover position. The rover tracks the scan
// so the next search resumes where this one left off.
func (al *Allocator) findFit(asize uint32) (block, bool) {
	data := al.a.Bytes()
	start := al.rover

	for b := (block{data: data, bp: start}); b.size() > 0; b = b.next() {
		al.rover = b.bp
		if !b.allocated() && b.size() >= asize {
			return b, true
		}
	}

	for b := (block{data: data, bp: al.heapStart}); b.bp < start; b = b.next() {
		al.rover = b.bp
		if !b.allocated() && b.size() >= asize {
			return b, true
		}
	}

	return block{}, false
}

// place carves asize bytes out of free block b. If the remainder can hold a
// legal block it is split off as a new free block; otherwise the whole block
// is consumed and the extra bytes become internal fragmentation. A rover
// sitting on the consumed block is advanced past it.
func (al *Allocator) place(b block, asize uint32) {
	csize := b.size()

	if csize-asize >= format.MinBlockSize {
		b.setTags(asize, true)
		b.next().setTags(csize-asize, false)
		al.stats.SplitCount++
	} else {
		b.setTags(csize, true)
	}

	if al.rover == b.bp {
		al.rover = b.next().bp
	}
}

// coalesce merges block b with its free neighbors and returns the merged
// block. The four cases are mutually exclusive and each inspects exactly
// one predecessor footer and one successor header. If the rover ends up
// strictly inside the merged span it is reset to the merged block's start
// so it can never point mid-block.
func (al *Allocator) coalesce(b block) block {
	prevAlloc := format.IsAllocated(b.prevFooter())
	nextAlloc := b.next().allocated()
	size := b.size()

	switch {
	case prevAlloc && nextAlloc:
		// Both neighbors allocated: nothing to merge.

	case prevAlloc && !nextAlloc:
		size += b.next().size()
		b.setTags(size, false)
		al.stats.CoalesceForward++

	case !prevAlloc && nextAlloc:
		size += b.prev().size()
		b = b.prev()
		b.setTags(size, false)
		al.stats.CoalesceBackward++

	default:
		size += b.prev().size() + b.next().size()
		b = b.prev()
		b.setTags(size, false)
		al.stats.CoalesceBoth++
	}

	if al.rover > b.bp && al.rover < b.bp+size {
		al.rover = b.bp
	}
	return b
}
