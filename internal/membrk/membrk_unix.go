//go:build unix

package membrk

import (
	"errors"

	"golang.org/x/sys/unix"
)

// reserve maps an anonymous private region so the arena's base address is
// fixed for the life of the reservation.
func reserve(limit int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, limit,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
