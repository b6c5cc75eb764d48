package alloc

// Ref is a block reference: the uint32 offset of the block's payload from
// the arena base. The zero Ref is the null reference; no real payload can
// start at offset 0 because the heap begins with the padding word and
// prologue sentinel.
type Ref = uint32

// maxRequest bounds a single allocation request so the adjusted block size
// cannot overflow a tag word.
const maxRequest = 1<<31 - 1
