package alloc

import "github.com/joshuapare/heapkit/internal/format"

// block is a raw view over one block in the arena, addressed by its payload
// offset. All boundary-tag arithmetic is centralized here; nothing else in
// the package computes header, footer, or neighbor offsets.
type block struct {
	data []byte
	bp   uint32 // payload offset from arena base
}

// header returns the block's header word, one word before the payload.
func (b block) header() uint32 {
	return format.ReadU32(b.data, int(b.bp)-format.WordSize)
}

// headerOff returns the absolute offset of the header word.
func (b block) headerOff() int {
	return int(b.bp) - format.WordSize
}

// size returns the block size from the header: header + payload + footer.
func (b block) size() uint32 {
	return format.SizeOf(b.header())
}

// allocated reports the header's allocated bit.
func (b block) allocated() bool {
	return format.IsAllocated(b.header())
}

// footer returns the block's footer word, the last word of the block.
func (b block) footer() uint32 {
	return format.ReadU32(b.data, int(b.bp+b.size())-format.Overhead)
}

// setTags writes matching header and footer words for the given size and
// allocated flag.
func (b block) setTags(size uint32, allocated bool) {
	word := format.Pack(size, allocated)
	format.PutU32(b.data, int(b.bp)-format.WordSize, word)
	format.PutU32(b.data, int(b.bp+size)-format.Overhead, word)
}

// next returns the view of the block's successor.
func (b block) next() block {
	return block{data: b.data, bp: b.bp + b.size()}
}

// prevFooter returns the predecessor's footer word, which sits immediately
// before this block's header. Reading the predecessor's size from its
// footer rather than its header is the crux of boundary-tag coalescing:
// no backward list walk is ever needed.
func (b block) prevFooter() uint32 {
	return format.ReadU32(b.data, int(b.bp)-format.Overhead)
}

// prev returns the view of the block's predecessor, located via prevFooter.
func (b block) prev() block {
	return block{data: b.data, bp: b.bp - format.SizeOf(b.prevFooter())}
}
