// Package format houses the boundary-tag word codec for the heap layout.
// The goal is to keep the tag encoding focused, allocation-free, and
// independent from the allocator so higher-level packages can reason about
// blocks without duplicating bit arithmetic.
package format

const (
	// WordSize is the size of a single tag word in bytes. Every block begins
	// and ends with one word encoding (size, allocated-bit).
	WordSize = 4

	// DoublewordSize is the required alignment of block payloads. All block
	// sizes are multiples of this, so the low three bits of a tag are free
	// for flags.
	DoublewordSize = 8

	// Overhead is the number of bookkeeping bytes carried by every block:
	// one header word plus one footer word.
	Overhead = 2 * WordSize

	// MinBlockSize is the smallest legal block: header + footer + one
	// doubleword of payload, rounded to doubleword alignment.
	MinBlockSize = 2 * DoublewordSize

	// ChunkSize is the default growth quantum. The arena is extended by at
	// least this many bytes whenever a fit cannot be found.
	ChunkSize = 4096

	// AllocatedBit marks a block as in use. Only bit 0 of a tag is used;
	// bits 1-2 remain zero.
	AllocatedBit = 0x1

	// AlignMask is the bitmask used for doubleword alignment (DoublewordSize - 1).
	AlignMask = DoublewordSize - 1
)

// SizeMask extracts the size field from a tag word.
const SizeMask = ^uint32(AlignMask)
