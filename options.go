// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Builder creates queues with fluent configuration.
//
// Builder exists for call sites that want to pick a payload façade
// (uintptr, unsafe.Pointer, or *T) without reaching for the type-specific
// constructor by name. There is exactly one queue algorithm in this
// package, so Builder only carries depth.
//
// Example:
//
//	q, err := lfq.Build[Request](lfq.NewBuilder(4096))
//	idx, err := lfq.NewBuilder(8192).BuildIndirect()
//	ptr, err := lfq.NewBuilder(1024).BuildPtr()
type Builder struct {
	depth int
}

// NewBuilder creates a queue builder with the given depth.
//
// The depth is validated by the eventual Build call, not here, so that
// construction failure is reported uniformly through the same
// ([ErrInvalidDepth], [ErrAllocationFailed]) channel as the direct
// constructors.
func NewBuilder(depth int) *Builder {
	return &Builder{depth: depth}
}

// Build creates a QueueGeneric[T] (*T payloads).
func Build[T any](b *Builder) (*QueueGeneric[T], error) {
	return NewQueue[T](b.depth)
}

// BuildIndirect creates an MPMC (uintptr payloads).
func (b *Builder) BuildIndirect() (*MPMC, error) {
	return New(b.depth)
}

// BuildPtr creates an MPMCPtr (unsafe.Pointer payloads).
func (b *Builder) BuildPtr() (*MPMCPtr, error) {
	return NewPtr(b.depth)
}

// pad is cache line padding to prevent false sharing between the hot
// rear/front cursors and between the header and the slot array.
type pad [64]byte

// padShort is padding to fill a cache line after an mpmcSlot's 16-byte
// (payload, stamp) entry.
type padShort [64 - 16]byte
