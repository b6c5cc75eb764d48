// Package membrk provides the growable-memory primitive backing the arena:
// a single contiguous reservation with a break pointer, in the style of
// sbrk. The reservation never moves and never shrinks, so every extension
// returns bytes immediately following the previous break.
package membrk

import (
	"errors"
	"fmt"
)

// DefaultLimit is the reservation size used when the caller does not supply
// one. Only the break prefix is ever touched, so a generous reservation
// costs address space, not resident memory.
const DefaultLimit = 256 << 20

// ErrLimit is returned by Sbrk when extending would exceed the reservation.
var ErrLimit = errors.New("membrk: reservation limit reached")

// Region is a contiguous byte reservation with a break pointer. The bytes
// in [0, Brk()) are live; Sbrk moves the break forward, never backward.
type Region struct {
	buf     []byte
	brk     int
	release func() error
}

// Reserve acquires a region of at most limit bytes. A non-positive limit
// selects DefaultLimit. The backing memory is platform-specific: anonymous
// mmap on unix, a byte slice elsewhere.
func Reserve(limit int) (*Region, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	buf, release, err := reserve(limit)
	if err != nil {
		return nil, err
	}
	return &Region{buf: buf, release: release}, nil
}

// Sbrk extends the live prefix by n bytes and returns the previous break,
// which is the offset of the first new byte. Returns ErrLimit when the
// reservation cannot supply n more bytes. Negative increments are rejected;
// the region only grows.
func (r *Region) Sbrk(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("membrk: negative increment %d", n)
	}
	if r.brk+n > len(r.buf) {
		return 0, ErrLimit
	}
	old := r.brk
	r.brk += n
	return old, nil
}

// Bytes returns the live prefix [0, Brk()). The underlying array is stable
// across Sbrk calls; only the returned length changes.
func (r *Region) Bytes() []byte { return r.buf[:r.brk] }

// Brk returns the current break offset.
func (r *Region) Brk() int { return r.brk }

// Cap returns the total reservation size.
func (r *Region) Cap() int { return len(r.buf) }

// Close releases the reservation. The region must not be used afterwards.
func (r *Region) Close() error {
	if r.release == nil {
		return nil
	}
	release := r.release
	r.release = nil
	r.buf = nil
	r.brk = 0
	return release()
}
