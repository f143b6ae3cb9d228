package collections

import (
	"fmt"
	"reflect"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

// EqualFunc reports whether two elements are the same for duplicate checks.
type EqualFunc[T any] func(a, b T) bool

// BoundedList is an ordered, slice-backed sequence with a maximum capacity.
// Nil and duplicate elements are rejected.
type BoundedList[T any] struct {
	items    []T
	capacity int
	equal    EqualFunc[T]
}

// NewBoundedList constructs an empty list able to hold capacity elements.
func NewBoundedList[T any](capacity int, equal EqualFunc[T]) (*BoundedList[T], error) {
	if capacity < 0 {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "capacity cannot be negative")
	}
	if equal == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "equality function is required")
	}
	return &BoundedList[T]{items: make([]T, 0, capacity), capacity: capacity, equal: equal}, nil
}

// NewComparableList constructs a list whose elements are compared with ==.
func NewComparableList[T comparable](capacity int) (*BoundedList[T], error) {
	return NewBoundedList(capacity, func(a, b T) bool { return a == b })
}

// Size returns the number of stored elements.
func (l *BoundedList[T]) Size() int {
	return len(l.items)
}

// Capacity returns the maximum number of elements.
func (l *BoundedList[T]) Capacity() int {
	return l.capacity
}

// SetCapacity changes the maximum size. It never drops below the current size.
func (l *BoundedList[T]) SetCapacity(capacity int) error {
	if capacity < 0 || capacity < len(l.items) {
		return appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("invalid capacity %d for list of size %d", capacity, len(l.items)))
	}
	l.capacity = capacity
	return nil
}

// Add inserts value at index, shifting later elements right.
func (l *BoundedList[T]) Add(index int, value T) error {
	if len(l.items) >= l.capacity {
		return appErrors.Clone(appErrors.ErrCapacityExceeded, "list is at max capacity")
	}
	if index < 0 || index > len(l.items) {
		return indexError(index, len(l.items))
	}
	if err := l.checkValue(value); err != nil {
		return err
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = value
	return nil
}

// Append adds value at the end of the list.
func (l *BoundedList[T]) Append(value T) error {
	return l.Add(len(l.items), value)
}

// Get returns the element at index.
func (l *BoundedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, indexError(index, len(l.items))
	}
	return l.items[index], nil
}

// Set replaces the element at index and returns the previous one.
func (l *BoundedList[T]) Set(index int, value T) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	if err := l.checkValue(value); err != nil {
		return zero, err
	}
	previous := l.items[index]
	l.items[index] = value
	return previous, nil
}

// Remove deletes the element at index, shifting later elements left.
func (l *BoundedList[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	removed := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return removed, nil
}

// IndexOf returns the position of value or -1.
func (l *BoundedList[T]) IndexOf(value T) int {
	for i, item := range l.items {
		if l.equal(item, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether value is stored in the list.
func (l *BoundedList[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// Values returns a copy of the elements in order.
func (l *BoundedList[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// checkValue rejects nil values and values equal to any stored element,
// including the one a Set would replace.
func (l *BoundedList[T]) checkValue(value T) error {
	if isNil(value) {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "nil elements cannot be added to list")
	}
	for _, item := range l.items {
		if l.equal(item, value) {
			return appErrors.Clone(appErrors.ErrDuplicate, "duplicates not allowed in list")
		}
	}
	return nil
}

func indexError(index, size int) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("index %d out of range for size %d", index, size))
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
