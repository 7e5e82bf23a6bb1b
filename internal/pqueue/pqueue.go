// Package pqueue provides a generic binary min-heap whose ordering is
// supplied by a comparator rather than by the element type.
//
// The queue is built on container/heap. Elements are compared only through
// the less function passed to New, so the same element type can be ordered
// differently by different callers (A* orders arena indices by f-cost,
// Dijkstra orders them by distance).
//
// Complexity:
//
//   - Push, Pop: O(log N)
//   - Peek, Len: O(1)
//
// A Queue is not safe for concurrent use.
package pqueue

import "container/heap"

// Less reports whether a must be popped before b.
type Less[T any] func(a, b T) bool

// Queue is a min-heap of T ordered by a Less comparator.
type Queue[T any] struct {
	h store[T]
}

// New returns an empty queue ordered by less. capacity is a hint.
func New[T any](less Less[T], capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{h: store[T]{items: make([]T, 0, capacity), less: less}}
	heap.Init(&q.h)

	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Push inserts x.
func (q *Queue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the smallest element.
// ok is false when the queue is empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}

	return heap.Pop(&q.h).(T), true
}

// Peek returns the smallest element without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}

	return q.h.items[0], true
}

// store adapts a slice and comparator to heap.Interface.
type store[T any] struct {
	items []T
	less  Less[T]
}

func (s store[T]) Len() int           { return len(s.items) }
func (s store[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s store[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *store[T]) Push(x any) { s.items = append(s.items, x.(T)) }

func (s *store[T]) Pop() any {
	old := s.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // release reference held by the backing array
	s.items = old[:n-1]

	return item
}
