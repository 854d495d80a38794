// Package mem provides memory size units, the allocator interface used by
// drivers that need scratch buffers and bulk byte helpers.
package mem

// Size represents a memory block size in bytes.
type Size uint64

// Common memory block sizes.
const (
	Byte Size = 1
	Kb        = 1024 * Byte
	Mb        = 1024 * Kb
)
