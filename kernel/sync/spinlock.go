// Package sync provides the spinlock used to serialise multi-step hardware
// register sequences.
package sync

import "sync/atomic"

// yieldFn is invoked between failed acquisition attempts. It stays nil until
// the scheduler can hand the CPU to another task.
var yieldFn func()

// Spinlock is a lock where waiters busy-wait until it becomes available.
// The zero value is an unlocked spinlock.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock is held by the caller. Re-acquiring a lock
// the caller already holds deadlocks.
func (l *Spinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		if yieldFn != nil {
			yieldFn()
		}
	}
}

// TryToAcquire attempts to take the lock without blocking and reports
// whether it succeeded.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.CompareAndSwapUint32(&l.state, 0, 1)
}

// Release frees the lock. Releasing a free lock has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
