// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package queue provides the unbounded FIFO used for the twoq integer
// queues and the string pool.
package queue

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Queue is an unbounded first-in first-out sequence.
type Queue[T any] struct {
	Data []T
}

// Push appends a value to the back of the queue.
func (q *Queue[T]) Push(value T) {
	q.Data = append(q.Data, value)
}

// Append appends all values, in order, to the back of the queue.
func (q *Queue[T]) Append(values ...T) {
	q.Data = append(q.Data, values...)
}

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() (value T, ok bool) {
	value, ok = q.Peek()
	if ok {
		var zero T
		q.Data[0] = zero
		q.Data = q.Data[1:]
	}
	return
}

// Peek returns the front of the queue without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue[T]) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue[T]) Len() int {
	return len(q.Data)
}

// Clear empties the queue.
func (q *Queue[T]) Clear() {
	q.Data = nil
}

// All iterates from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return slices.Values(q.Data)
}

// Values returns a copy of the queue contents, front first.
func (q *Queue[T]) Values() []T {
	return slices.Clone(q.Data)
}

// String formats the queue as "[a, b, c]".
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n, value := range q.Data {
		if n > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, value)
	}
	sb.WriteByte(']')
	return sb.String()
}
