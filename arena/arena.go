// Package arena owns the contiguous memory region that the allocator
// manages. It is a thin facade over the growable-memory primitive: the
// allocator consumes exactly one growth operation and two accessors, and
// the arena guarantees that grown bytes always follow the previous end.
package arena

import "github.com/joshuapare/heapkit/internal/membrk"

// Arena is a contiguous, growable memory region with a fixed base address.
// It only ever grows; memory is returned to the platform when the arena is
// closed, never earlier.
type Arena struct {
	r *membrk.Region
}

// Option configures an Arena.
type Option func(*config)

type config struct {
	limit int
}

// WithLimit caps the arena's total size at n bytes. Growth past the cap
// fails with membrk.ErrLimit. Zero or negative selects the default.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// New reserves an arena. The arena starts empty; the allocator drives all
// growth through Sbrk.
func New(opts ...Option) (*Arena, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	r, err := membrk.Reserve(cfg.limit)
	if err != nil {
		return nil, err
	}
	return &Arena{r: r}, nil
}

// Bytes returns the live arena bytes. The underlying array is stable across
// growth; callers should still re-fetch after Sbrk to see the new length.
func (a *Arena) Bytes() []byte { return a.r.Bytes() }

// Size returns the current arena length in bytes.
func (a *Arena) Size() int { return a.r.Brk() }

// Cap returns the maximum size the arena may grow to.
func (a *Arena) Cap() int { return a.r.Cap() }

// Sbrk grows the arena by n bytes and returns the offset of the first new
// byte. The new bytes immediately follow the previous end.
func (a *Arena) Sbrk(n int) (int, error) {
	return a.r.Sbrk(n)
}

// Close releases the underlying reservation.
func (a *Arena) Close() error { return a.r.Close() }
