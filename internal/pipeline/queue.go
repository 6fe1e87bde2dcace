// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements the bounded-channel producer/consumer
// coordinator, components E and F of the consensus pipeline
// (spec.md §4.E, §4.F): one reader, N consensus workers, one writer,
// wired together through two fixed-capacity queues using the
// sentinel shutdown protocol the original C++ driver's
// Reader/Consensus/Writer classes use over its BoundedBuffer
// (original_source/src/cpp/main.cpp, BoundedBuffer.hpp), transliterated
// to goroutines and channels the way IrdiZ-pgfp/align.
// ParallelSmithWaterman fans work out over a WaitGroup.
package pipeline

// Queue is a FIFO of fixed capacity: Push blocks when full, Pop
// blocks when empty, and there is no close operation — shutdown is
// exclusively via in-band sentinel values (spec.md §4.E).
type Queue[T any] struct {
	ch chan T
}

// NewQueue returns a Queue with room for capacity in-flight values.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Push adds v to the queue, blocking if it is full.
func (q *Queue[T]) Push(v T) { q.ch <- v }

// Pop removes and returns the oldest value, blocking if the queue is
// empty.
func (q *Queue[T]) Pop() T { return <-q.ch }
