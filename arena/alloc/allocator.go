package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/internal/format"
)

// Allocator manages blocks inside a single arena. All mutable state lives
// here: the arena handle, the heap's first block, and the next-fit rover.
//
// An Allocator is bound to its arena for the life of the session. Creating
// a fresh Allocator over a fresh arena is the only reset.
type Allocator struct {
	a *arena.Arena

	// heapStart is the payload offset of the prologue block. Heap walks
	// (fit search wrap-around, consistency checks) begin here.
	heapStart uint32

	// rover is the next-fit scan cursor: the payload offset of the block
	// where the next fit search resumes. Mutated by every search, by
	// placement when it lands on the consumed block, and by coalescing
	// when the pointed-at block is absorbed.
	rover uint32

	stats Stats
}

// New bootstraps an allocator over an empty arena: it lays down the padding
// word, prologue, and epilogue sentinels, then seeds the heap with one
// chunk of free space. Returns ErrOutOfMemory if the arena cannot supply
// the initial bytes; the allocator is unusable in that case.
func New(a *arena.Arena) (*Allocator, error) {
	base, err := a.Sbrk(4 * format.WordSize)
	if err != nil {
		return nil, fmt.Errorf("alloc: bootstrap: %w", ErrOutOfMemory)
	}

	data := a.Bytes()
	format.PutU32(data, base, 0) // alignment padding
	format.PutU32(data, base+1*format.WordSize, format.Pack(format.DoublewordSize, true)) // prologue header
	format.PutU32(data, base+2*format.WordSize, format.Pack(format.DoublewordSize, true)) // prologue footer
	format.PutU32(data, base+3*format.WordSize, format.Pack(0, true))                     // epilogue header

	al := &Allocator{
		a:         a,
		heapStart: uint32(base + 2*format.WordSize),
	}
	al.rover = al.heapStart

	if _, err := al.extend(format.ChunkSize / format.WordSize); err != nil {
		return nil, err
	}
	return al, nil
}

// extend grows the arena by the given number of words, lays a free block
// over the new span, relocates the epilogue past it, and coalesces so that
// growth abutting a trailing free block merges immediately. The word count
// is rounded up to even to keep the arena length doubleword-aligned.
func (al *Allocator) extend(words uint32) (block, error) {
	words = format.AlignWords(words)
	size := words * format.WordSize

	old, err := al.a.Sbrk(int(size))
	if err != nil {
		return block{}, fmt.Errorf("alloc: extend by %d words: %w", words, ErrOutOfMemory)
	}
	al.stats.GrowCalls++
	al.stats.GrowBytes += int64(size)

	// The old break is where the previous epilogue's payload would begin,
	// so the new free block's tags overwrite the old epilogue header.
	data := al.a.Bytes()
	bp := block{data: data, bp: uint32(old)}
	bp.setTags(size, false)
	format.PutU32(data, int(bp.bp+size)-format.WordSize, format.Pack(0, true)) // new epilogue

	return al.coalesce(bp), nil
}

// Arena returns the arena this allocator manages.
func (al *Allocator) Arena() *arena.Arena { return al.a }
