package format

// Alignment utilities for the heap layout. Block sizes and payload addresses
// must be doubleword (8-byte) aligned; arena growth is measured in words and
// must preserve the doubleword alignment of the arena's total length.

// AlignDouble returns n aligned up to the next doubleword (8-byte) boundary.
//
// Example:
//
//	AlignDouble(1)  = 8
//	AlignDouble(8)  = 8
//	AlignDouble(9)  = 16
func AlignDouble(n uint32) uint32 {
	return (n + AlignMask) & ^uint32(AlignMask)
}

// AlignWords rounds a word count up to an even number of words, so that a
// growth request never leaves the arena length at an odd word multiple.
//
// Example:
//
//	AlignWords(1023) = 1024
//	AlignWords(1024) = 1024
func AlignWords(words uint32) uint32 {
	return (words + 1) & ^uint32(1)
}

// AdjustedSize converts a requested payload byte count into a block size:
// the smallest doubleword multiple that holds the payload plus header and
// footer, with an absolute floor of MinBlockSize.
func AdjustedSize(n uint32) uint32 {
	if n <= DoublewordSize {
		return MinBlockSize
	}
	return AlignDouble(n + Overhead)
}
