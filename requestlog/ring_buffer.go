package requestlog

import "sync"

// RingBuffer is a fixed-size, thread-safe buffer that overwrites its oldest
// entry once full.
type RingBuffer[T any] struct {
	entries []T
	next    uint64
	count   uint64
	mu      sync.RWMutex
}

// NewRingBuffer creates a ring buffer holding at most capacity entries.
func NewRingBuffer[T any](capacity uint64) *RingBuffer[T] {
	if capacity == 0 {
		panic("requestlog: ring buffer capacity must be greater than 0")
	}

	return &RingBuffer[T]{
		entries: make([]T, capacity),
	}
}

// Add appends an entry, dropping the oldest one if the buffer is full.
func (rb *RingBuffer[T]) Add(entry T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries[rb.next%uint64(len(rb.entries))] = entry
	rb.next++
	if rb.count < uint64(len(rb.entries)) {
		rb.count++
	}
}

// Last returns up to n of the most recent entries, oldest first.
func (rb *RingBuffer[T]) Last(n uint64) []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	n = min(n, rb.count)
	result := make([]T, n)
	capacity := uint64(len(rb.entries))
	start := rb.next - n
	for i := range n {
		result[i] = rb.entries[(start+i)%capacity]
	}

	return result
}

// Reset drops all entries.
func (rb *RingBuffer[T]) Reset() {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	clear(rb.entries)
	rb.next = 0
	rb.count = 0
}

// Len returns the number of entries currently held.
func (rb *RingBuffer[T]) Len() uint64 {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

// Cap returns the maximum number of entries.
func (rb *RingBuffer[T]) Cap() uint64 {
	return uint64(len(rb.entries))
}
