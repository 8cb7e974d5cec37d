package pqueue

import "fmt"

var _ PriorityQueue[int] = (*Array[int])(nil)

// Array is an unordered priority queue: O(1) Insert, O(n) FindMax/ExtractMax.
// It is the baseline the Heap is measured against.
type Array[T comparable] struct {
	store[T]
}

// NewArray creates an array queue with the given initial capacity (at least 10).
func NewArray[T comparable](capacity int) *Array[T] {
	return &Array[T]{store: newStore[T](capacity)}
}

// maxIndex scans for the dominating entry. The store must not be empty.
func (a *Array[T]) maxIndex() int {
	best := 0
	for i := 1; i < a.size; i++ {
		if a.data[i].Dominates(a.data[best]) {
			best = i
		}
	}
	return best
}

// Insert appends value without reordering.
func (a *Array[T]) Insert(value T, priority int) {
	a.push(value, priority)
}

// ExtractMax removes and returns the dominating entry, filling its slot with the last one.
func (a *Array[T]) ExtractMax() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	idx := a.maxIndex()
	top := a.data[idx].Value
	a.removeAt(idx)
	a.shrink()
	return top, nil
}

// FindMax returns the dominating value.
func (a *Array[T]) FindMax() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return a.data[a.maxIndex()].Value, nil
}

// GetPriority returns the priority of the first entry holding value.
func (a *Array[T]) GetPriority(value T) (int, error) {
	idx, err := a.lookup(value)
	if err != nil {
		return 0, err
	}
	return a.data[idx].Priority, nil
}

// ModifyKey overwrites the priority of value.
func (a *Array[T]) ModifyKey(value T, newPriority int) error {
	idx, err := a.lookup(value)
	if err != nil {
		return err
	}
	a.data[idx].Priority = newPriority
	return nil
}

// IncreaseKey raises the priority of value.
func (a *Array[T]) IncreaseKey(value T, newPriority int) error {
	idx, err := a.lookup(value)
	if err != nil {
		return err
	}
	if cur := a.data[idx].Priority; newPriority <= cur {
		return fmt.Errorf("%w: new priority %d must be greater than %d", ErrInvalidPriority, newPriority, cur)
	}
	a.data[idx].Priority = newPriority
	return nil
}

// DecreaseKey lowers the priority of value.
func (a *Array[T]) DecreaseKey(value T, newPriority int) error {
	idx, err := a.lookup(value)
	if err != nil {
		return err
	}
	if cur := a.data[idx].Priority; newPriority >= cur {
		return fmt.Errorf("%w: new priority %d must be less than %d", ErrInvalidPriority, newPriority, cur)
	}
	a.data[idx].Priority = newPriority
	return nil
}

func (a *Array[T]) Size() int     { return a.size }
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }
func (a *Array[T]) Clear()        { a.reset() }
func (a *Array[T]) Capacity() int { return len(a.data) }

// Entries returns the stored entries in insertion-slot order.
func (a *Array[T]) Entries() []Entry[T] { return a.entries() }

// Clone returns an independent deep copy.
func (a *Array[T]) Clone() PriorityQueue[T] {
	return &Array[T]{store: a.clone()}
}
