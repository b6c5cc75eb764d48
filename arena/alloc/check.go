package alloc

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/internal/format"
)

// CheckHeap walks the block chain from the prologue to the epilogue and
// returns a diagnostic string for every consistency violation found. It is
// a diagnostic, not a gate: the walk does not stop at the first violation,
// and an empty result means the heap is consistent.
//
// Checks performed:
//   - prologue has size one doubleword and is allocated
//   - every block's payload offset is doubleword-aligned
//   - every block's header word equals its footer word
//   - epilogue has size zero and is allocated
//
// The walk uses header sizes only and has no side effects. If a corrupt
// size makes further walking unsafe (zero-size mid-heap, or a block running
// past the arena end), the walk stops after reporting it.
//
// With verbose set, a description of every block is printed to stderr in
// address order.
func (al *Allocator) CheckHeap(verbose bool) []string {
	var issues []string
	data := al.a.Bytes()

	if verbose {
		fmt.Fprintf(os.Stderr, "heap (start=0x%X, size=%d):\n", al.heapStart, len(data))
	}

	pro := block{data: data, bp: al.heapStart}
	if pro.size() != format.DoublewordSize || !pro.allocated() {
		issues = append(issues, fmt.Sprintf(
			"bad prologue at 0x%X: size=%d allocated=%v",
			pro.headerOff(), pro.size(), pro.allocated()))
	}

	b := pro
	for b.size() > 0 {
		// Bound the block before touching its footer. The epilogue's payload
		// offset is exactly the arena length, so a successor is walkable as
		// long as its end stays within the arena.
		next := b.bp + b.size()
		if int(next) > len(data) {
			issues = append(issues, fmt.Sprintf(
				"block at 0x%X runs past arena end (size=%d)", b.bp, b.size()))
			return issues
		}

		if verbose {
			printBlock(b)
		}
		issues = append(issues, checkBlock(b)...)
		b = block{data: data, bp: next}
	}

	if verbose {
		printBlock(b)
	}
	if !b.allocated() || int(b.bp) != len(data) {
		issues = append(issues, fmt.Sprintf(
			"bad epilogue at 0x%X: size=%d allocated=%v",
			b.headerOff(), b.size(), b.allocated()))
	}

	return issues
}

// checkBlock verifies the per-block invariants: alignment and matching tags.
func checkBlock(b block) []string {
	var issues []string

	if b.bp%format.DoublewordSize != 0 {
		issues = append(issues, fmt.Sprintf(
			"block at 0x%X is not doubleword aligned", b.bp))
	}
	if b.header() != b.footer() {
		issues = append(issues, fmt.Sprintf(
			"block at 0x%X: header 0x%X does not match footer 0x%X",
			b.bp, b.header(), b.footer()))
	}
	return issues
}

// printBlock writes a one-line description of a block to stderr.
func printBlock(b block) {
	hsize := b.size()
	if hsize == 0 {
		fmt.Fprintf(os.Stderr, "0x%X: epilogue\n", b.bp)
		return
	}
	flag := func(allocated bool) byte {
		if allocated {
			return 'a'
		}
		return 'f'
	}
	fmt.Fprintf(os.Stderr, "0x%X: header [%d:%c] footer [%d:%c]\n",
		b.bp,
		hsize, flag(b.allocated()),
		format.SizeOf(b.footer()), flag(format.IsAllocated(b.footer())))
}
