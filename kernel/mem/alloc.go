package mem

import (
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/sync"
)

// ErrOutOfMemory is returned when an allocation request cannot be served.
var ErrOutOfMemory = &kernel.Error{Module: "mem", Message: "out of memory"}

// Allocator hands out byte buffers. Buffers must be returned with Free once
// the caller is done with them.
type Allocator interface {
	Alloc(size Size) ([]byte, *kernel.Error)
	Free(buf []byte)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(size Size) ([]byte, *kernel.Error) {
	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) {}

// Heap is the default allocator backed by the Go heap.
var Heap Allocator = heapAllocator{}

// BudgetAllocator serves allocations from a parent allocator while keeping
// the total number of outstanding bytes under a fixed limit.
type BudgetAllocator struct {
	lock   sync.Spinlock
	parent Allocator
	limit  Size
	inUse  Size
}

// NewBudgetAllocator returns an allocator that fails with ErrOutOfMemory
// once more than limit bytes are outstanding.
func NewBudgetAllocator(limit Size) *BudgetAllocator {
	return &BudgetAllocator{parent: Heap, limit: limit}
}

// Alloc implements Allocator.
func (a *BudgetAllocator) Alloc(size Size) ([]byte, *kernel.Error) {
	a.lock.Acquire()
	defer a.lock.Release()

	if a.inUse+size > a.limit {
		return nil, ErrOutOfMemory
	}

	buf, err := a.parent.Alloc(size)
	if err != nil {
		return nil, err
	}

	a.inUse += size
	return buf, nil
}

// Free implements Allocator.
func (a *BudgetAllocator) Free(buf []byte) {
	a.lock.Acquire()
	defer a.lock.Release()

	size := Size(len(buf))
	if size > a.inUse {
		size = a.inUse
	}
	a.inUse -= size
	a.parent.Free(buf)
}

// InUse returns the number of outstanding bytes.
func (a *BudgetAllocator) InUse() Size {
	a.lock.Acquire()
	defer a.lock.Release()
	return a.inUse
}
