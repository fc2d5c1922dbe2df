// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import "unsafe"

// MPMCPtr is a bounded multi-producer multi-consumer lock-free FIFO queue
// of unsafe.Pointer payloads.
//
// MPMCPtr is a thin unsafe.Pointer facade over [MPMC]: the stamped-slot
// CAS protocol only ever needs to move one pointer-sized word, so a
// pointer payload reuses the same ring and the same algorithm verbatim.
//
// MPMCPtr enables zero-copy pointer handoff between goroutines: the
// producer transfers ownership of the pointee to the consumer by
// enqueueing its address, and must not touch it afterward.
type MPMCPtr struct {
	core *MPMC
}

// NewPtr creates a bounded MPMCPtr queue with the given depth.
//
// Returns [ErrInvalidDepth] if depth < 1, or [ErrAllocationFailed] if the
// backing slot array cannot be allocated.
func NewPtr(depth int) (*MPMCPtr, error) {
	core, err := New(depth)
	if err != nil {
		return nil, err
	}
	return &MPMCPtr{core: core}, nil
}

// Close releases the queue's backing storage. See [MPMC.Close].
func (q *MPMCPtr) Close() {
	q.core.Close()
}

// Cap returns the queue's fixed capacity.
func (q *MPMCPtr) Cap() int {
	return q.core.Cap()
}

// Enqueue appends elem to the tail of the queue. elem must not be nil.
// Returns [ErrQueueFull] if the queue is full.
func (q *MPMCPtr) Enqueue(elem unsafe.Pointer) error {
	if elem == nil {
		panic("lfq: cannot enqueue a nil pointer")
	}
	return q.core.Enqueue(uintptr(elem))
}

// Dequeue removes and returns the head pointer.
// Returns (nil, [ErrWouldBlock]) if the queue is empty.
func (q *MPMCPtr) Dequeue() (unsafe.Pointer, error) {
	payload, err := q.core.Dequeue()
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(payload), nil
}

// QueueGeneric is a bounded multi-producer multi-consumer lock-free FIFO
// queue of pointers to T.
//
// QueueGeneric wraps [MPMCPtr], converting between *T and unsafe.Pointer
// at the boundary. It never copies a T by value: the double-wide slot
// CAS the algorithm relies on can only carry one pointer-sized payload
// word alongside its stamp, so the caller's T is allocated and owned by
// the caller exactly as the opaque-payload contract requires — the
// queue only ever moves its address.
type QueueGeneric[T any] struct {
	core *MPMCPtr
}

// NewQueue creates a bounded QueueGeneric[T] queue with the given depth.
//
// Returns [ErrInvalidDepth] if depth < 1, or [ErrAllocationFailed] if the
// backing slot array cannot be allocated.
func NewQueue[T any](depth int) (*QueueGeneric[T], error) {
	core, err := NewPtr(depth)
	if err != nil {
		return nil, err
	}
	return &QueueGeneric[T]{core: core}, nil
}

// Close releases the queue's backing storage. See [MPMC.Close].
func (q *QueueGeneric[T]) Close() {
	q.core.Close()
}

// Cap returns the queue's fixed capacity.
func (q *QueueGeneric[T]) Cap() int {
	return q.core.Cap()
}

// Enqueue appends elem to the tail of the queue. elem must not be nil.
// Returns [ErrQueueFull] if the queue is full.
func (q *QueueGeneric[T]) Enqueue(elem *T) error {
	return q.core.Enqueue(unsafe.Pointer(elem))
}

// Dequeue removes and returns the head pointer.
// Returns (nil, [ErrWouldBlock]) if the queue is empty.
func (q *QueueGeneric[T]) Dequeue() (*T, error) {
	ptr, err := q.core.Dequeue()
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}
