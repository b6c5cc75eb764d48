package format

import "encoding/binary"

// Tag word encoding/decoding for block headers and footers.
//
// A tag packs a block size and an allocated flag into one little-endian
// uint32. Sizes are always doubleword multiples, so the flag occupies bit 0
// without ambiguity.
//
// Implementation: Uses encoding/binary.LittleEndian. Modern Go compilers
// inline and optimize these calls extremely well; unsafe variants provide
// no measurable benefit.

// Pack combines a block size and an allocated flag into a tag word.
func Pack(size uint32, allocated bool) uint32 {
	if allocated {
		return size | AllocatedBit
	}
	return size
}

// SizeOf returns the size field of a tag word.
func SizeOf(word uint32) uint32 {
	return word & SizeMask
}

// IsAllocated reports whether a tag word has the allocated bit set.
func IsAllocated(word uint32) bool {
	return word&AllocatedBit != 0
}

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}
