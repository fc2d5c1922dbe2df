// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import "unsafe"

// Queue is the combined producer-consumer interface for a FIFO queue of
// pointers to T.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both
// operations return [ErrWouldBlock] when they cannot proceed (queue full
// or empty).
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// Example:
//
//	q, _ := lfq.NewQueue[Request](1024)
//
//	req := &Request{ID: 42}
//	if err := q.Enqueue(req); err != nil {
//	    // Handle full queue
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing pointers to T.
//
// The queue stores the pointer's address as a uintptr, never the
// pointed-to value, so it does not keep the pointee reachable; allocation
// and lifetime of the pointee stay with the caller. The caller must not
// mutate it until a consumer dequeues it.
type Producer[T any] interface {
	// Enqueue adds elem to the queue (non-blocking).
	// Returns nil on success, ErrQueueFull if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing pointers to T.
type Consumer[T any] interface {
	// Dequeue removes and returns a pointer from the queue (non-blocking).
	// Returns (nil, ErrWouldBlock) if the queue is empty.
	Dequeue() (*T, error)
}

// QueueIndirect is the combined interface for uintptr-payload queues.
//
// QueueIndirect passes indices or handles instead of full objects. This is
// useful for buffer pools, object pools, or any index-based data structure.
//
// Example (buffer pool):
//
//	pool := make([][]byte, 1024)
//	freeList, _ := lfq.New(1024)
//
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    freeList.Enqueue(uintptr(i) + 1) // +1: 0 is the Absent sentinel
//	}
//
//	idx, _ := freeList.Dequeue()
//	buf := pool[idx-1]
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect
	Cap() int
}

// ProducerIndirect enqueues uintptr values (non-blocking).
type ProducerIndirect interface {
	// Enqueue adds an element to the queue. elem must not equal [Absent].
	// Returns ErrQueueFull immediately if the queue is full.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns an element from the queue.
	// Returns ([Absent], ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer-payload queues.
//
// QueuePtr passes pointers directly without copying, enabling zero-copy
// transfer of objects between goroutines.
//
// Ownership semantics: the producer transfers ownership to the consumer.
// After enqueueing, the producer must not access the object.
//
// Example:
//
//	q, _ := lfq.NewPtr(1024)
//
//	msg := &Message{Data: largePayload}
//	q.Enqueue(unsafe.Pointer(msg))
//	// msg ownership transferred - do not use msg after this
//
//	ptr, _ := q.Dequeue()
//	msg := (*Message)(ptr)
//	// msg is now owned by the consumer
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr
	Cap() int
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
type ProducerPtr interface {
	// Enqueue adds an element to the queue. elem must not be nil.
	// Returns ErrQueueFull immediately if the queue is full.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (nil, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (unsafe.Pointer, error)
}
