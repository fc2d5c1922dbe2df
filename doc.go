// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfq provides a bounded, lock-free, multi-producer
// multi-consumer FIFO queue of opaque pointer-sized payloads.
//
// # Algorithm
//
// A fixed-size ring of slots is indexed by two monotonically advancing
// cursors, rear (producer) and front (consumer). Each slot holds a
// (payload, stamp) pair updated through one double-wide compare-and-swap;
// the stamp increments on every successful transition and is the
// algorithm's sole ABA guard. Enqueue and Dequeue snapshot a cursor,
// re-read it to detect a concurrent move, and on an apparent full/empty
// condition re-check the opposite cursor's slot: if that slot shows the
// opposite cursor has fallen behind a change it already committed, the
// caller helps advance it and retries, rather than reporting a false
// full or empty result.
//
// Enqueue and Dequeue never block and never allocate. CAS contention is
// retried inside the call with a short spin; the caller only sees
// [ErrQueueFull] when the queue is full or [ErrWouldBlock] when it is
// empty, and neither call waits for space or data.
//
// # Quick Start
//
//	q, err := lfq.New(1024) // uintptr payloads
//
//	if err := q.Enqueue(handle); err != nil {
//	    // queue is full
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    use(elem)
//	}
//
// # Payload Façades
//
// One algorithm, three payload shapes, chosen by constructor:
//
//	lfq.New(depth)         -> *MPMC             uintptr payloads (handles, indices)
//	lfq.NewPtr(depth)      -> *MPMCPtr          unsafe.Pointer payloads (zero-copy)
//	lfq.NewQueue[T](depth) -> *QueueGeneric[T]  *T payloads
//
// MPMCPtr and QueueGeneric[T] are thin wrappers over MPMC: the protocol's
// double-wide slot CAS only ever carries one pointer-sized payload word,
// so every façade shares the same ring and the same enqueue/dequeue code.
// There is no value-copying variant — the queue moves an opaque
// pointer-sized payload and never inspects or frees it; allocation and
// lifetime of whatever it points to remain the caller's responsibility.
//
// A fluent [Builder] is also available for call sites that want to defer
// the façade choice:
//
//	q, err := lfq.Build[Request](lfq.NewBuilder(4096))
//	idx, err := lfq.NewBuilder(8192).BuildIndirect()
//	ptr, err := lfq.NewBuilder(1024).BuildPtr()
//
// # Example: Worker Pool
//
//	q, _ := lfq.NewQueue[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            job, err := q.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            job.Run()
//	        }
//	    }()
//	}
//
//	func Submit(j *Job) error {
//	    return q.Enqueue(j)
//	}
//
// # Error Handling
//
// Enqueue returns [ErrQueueFull] when, at some point during the call, the
// queue held Cap() payloads. Dequeue returns [ErrWouldBlock] when the
// queue was empty. Both names alias the same sentinel, sourced from
// [code.hybscloud.com/iox] for ecosystem consistency — they are control
// flow signals, not failures, and errors.Is treats them identically:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(payload)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !lfq.IsWouldBlock(err) {
//	        return err // unexpected error
//	    }
//	    backoff.Wait()
//	}
//
// Construction can fail two ways: [ErrInvalidDepth] if depth < 1, and
// [ErrAllocationFailed] if the backing ring could not be allocated.
// Neither occurs on the hot path.
//
// # Capacity and Length
//
// Capacity is fixed at construction and never rounds up — unlike some
// lock-free ring buffers, this algorithm indexes slots with plain modulo,
// so depth need not be a power of two.
//
// Length is intentionally not provided: an accurate count in a lock-free
// algorithm requires expensive cross-core synchronization the algorithm
// otherwise avoids entirely. Track counts in application logic if needed.
//
// # Thread Safety
//
// Any number of goroutines may call Enqueue and any number may call
// Dequeue concurrently on the same queue once construction has returned.
// Close must not be called concurrently with Enqueue or Dequeue, and the
// queue must not be used afterward.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm
// verification: it tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire-release orderings on
// separate variables. This queue's helping protocol establishes such a
// relationship between rear, front and each slot's stamp; the race
// detector may report false positives on stress tests that exercise it
// concurrently. Tests incompatible with race detection check
// [RaceEnabled] and call t.Skip rather than run under -race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the double-wide atomic slot and the
// cursor atomics with explicit memory ordering, and
// [code.hybscloud.com/spin] for CPU pause instructions during CAS
// contention.
package lfq
