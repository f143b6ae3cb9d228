package collections

import (
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// Queue is a bounded FIFO queue layered on BoundedList.
type Queue[T any] struct {
	list *BoundedList[T]
}

// NewQueue constructs an empty queue with the given capacity.
func NewQueue[T any](capacity int, equal EqualFunc[T]) (*Queue[T], error) {
	list, err := NewBoundedList(capacity, equal)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{list: list}, nil
}

// Enqueue appends value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) error {
	if q.list.Size() >= q.list.Capacity() {
		return appErrors.Clone(appErrors.ErrCapacityExceeded, "queue is full")
	}
	return q.list.Append(value)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, appErrors.Clone(appErrors.ErrNotFound, "queue is empty")
	}
	return q.list.Remove(0)
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, appErrors.Clone(appErrors.ErrNotFound, "queue is empty")
	}
	return q.list.Get(0)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.Size() == 0
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.list.Size()
}

// Capacity returns the maximum number of queued elements.
func (q *Queue[T]) Capacity() int {
	return q.list.Capacity()
}

// SetCapacity changes the queue capacity; it cannot drop below Size.
func (q *Queue[T]) SetCapacity(capacity int) error {
	return q.list.SetCapacity(capacity)
}

// Contains reports whether value is queued.
func (q *Queue[T]) Contains(value T) bool {
	return q.list.Contains(value)
}

// Values returns the queued elements front to back.
func (q *Queue[T]) Values() []T {
	return q.list.Values()
}
