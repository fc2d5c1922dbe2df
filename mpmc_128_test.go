// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"testing"
	"unsafe"

	"github.com/jbenoist/lockfree-queue"
)

func TestMPMCPtrEnqueueDequeue(t *testing.T) {
	q, err := lfq.NewPtr(4)
	if err != nil {
		t.Fatalf("NewPtr: %v", err)
	}
	values := []int{10, 20, 30}
	for i := range values {
		if err := q.Enqueue(unsafe.Pointer(&values[i])); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	for i := range values {
		ptr, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		got := *(*int)(ptr)
		if got != values[i] {
			t.Fatalf("Dequeue order: got %d, want %d", got, values[i])
		}
	}
}

func TestMPMCPtrRejectsNil(t *testing.T) {
	q, err := lfq.NewPtr(4)
	if err != nil {
		t.Fatalf("NewPtr: %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Enqueue(nil) did not panic")
		}
	}()
	_ = q.Enqueue(nil)
}

type testJob struct {
	ID int
}

func TestQueueGenericEnqueueDequeue(t *testing.T) {
	q, err := lfq.NewQueue[testJob](4)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	jobs := []*testJob{{ID: 1}, {ID: 2}, {ID: 3}}
	for _, j := range jobs {
		if err := q.Enqueue(j); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	for _, want := range jobs {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != want {
			t.Fatalf("Dequeue order: got %v, want %v", got, want)
		}
	}
}

func TestQueueGenericEmptyAndFull(t *testing.T) {
	q, err := lfq.NewQueue[testJob](2)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	if _, err := q.Dequeue(); !lfq.IsWouldBlock(err) {
		t.Fatalf("Dequeue on empty: err=%v, want ErrWouldBlock", err)
	}
	a, b := &testJob{ID: 1}, &testJob{ID: 2}
	if err := q.Enqueue(a); err != nil {
		t.Fatalf("Enqueue(a): %v", err)
	}
	if err := q.Enqueue(b); err != nil {
		t.Fatalf("Enqueue(b): %v", err)
	}
	if err := q.Enqueue(&testJob{ID: 3}); err != lfq.ErrQueueFull {
		t.Fatalf("Enqueue on full: err=%v, want ErrQueueFull", err)
	}
}

func TestBuilderFacades(t *testing.T) {
	if _, err := lfq.NewBuilder(4).BuildIndirect(); err != nil {
		t.Fatalf("BuildIndirect: %v", err)
	}
	if _, err := lfq.NewBuilder(4).BuildPtr(); err != nil {
		t.Fatalf("BuildPtr: %v", err)
	}
	if _, err := lfq.Build[testJob](lfq.NewBuilder(4)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := lfq.NewBuilder(0).BuildIndirect(); err != lfq.ErrInvalidDepth {
		t.Fatalf("BuildIndirect with depth 0: err=%v, want ErrInvalidDepth", err)
	}
}
