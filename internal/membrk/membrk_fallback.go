//go:build !unix

package membrk

// reserve allocates the full reservation as a byte slice when mmap is not
// available. The slice is created once and never reallocated, preserving
// the fixed-base contract.
func reserve(limit int) ([]byte, func() error, error) {
	return make([]byte, limit), func() error { return nil }, nil
}
