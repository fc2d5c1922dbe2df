// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(payload)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if lfq.IsWouldBlock(err) {
//	        backoff.Wait()  // Adaptive backpressure
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrQueueFull is the spec-facing name for the signal Enqueue returns
// when, at some point during the call, the queue held Cap() payloads.
// It is the same sentinel as [ErrWouldBlock] — [errors.Is] treats both
// names identically — kept distinct only so call sites read naturally
// for their direction (full vs. empty).
var ErrQueueFull = ErrWouldBlock

// ErrInvalidDepth is returned by New, NewPtr and NewQueue when depth < 1.
//
// The C source this package is derived from accepts depth==0 syntactically
// and then divides by zero on the first Enqueue or Dequeue. This package
// rejects the condition at construction instead.
var ErrInvalidDepth = errors.New("lfq: depth must be >= 1")

// ErrAllocationFailed is returned by New, NewPtr and NewQueue when the
// backing slot array cannot be allocated.
//
// The Go runtime does not report allocation failure as an error value;
// construction recovers a panic from the underlying allocation and
// surfaces it as this error, preserving the create() -> Queue |
// AllocationFailed contract.
var ErrAllocationFailed = errors.New("lfq: allocation failed")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
