package pqueue

import "fmt"

var _ PriorityQueue[int] = (*Heap[int])(nil)

// Heap is a binary max-heap priority queue.
// Insert and ExtractMax are O(log n); value lookups are O(n).
type Heap[T comparable] struct {
	store[T]
}

// NewHeap creates a heap with the given initial capacity (at least 10).
func NewHeap[T comparable](capacity int) *Heap[T] {
	return &Heap[T]{store: newStore[T](capacity)}
}

// up moves the entry at i toward the root while it dominates its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.data[i].Dominates(h.data[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the entry at i toward the leaves while a child dominates it.
func (h *Heap[T]) down(i int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < h.size && h.data[left].Dominates(h.data[largest]) {
			largest = left
		}
		if right < h.size && h.data[right].Dominates(h.data[largest]) {
			largest = right
		}

		if largest == i {
			return
		}

		h.swap(i, largest)
		i = largest
	}
}

// Insert adds value and restores the heap order.
func (h *Heap[T]) Insert(value T, priority int) {
	h.up(h.push(value, priority))
}

// ExtractMax removes and returns the root.
func (h *Heap[T]) ExtractMax() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	top := h.data[0].Value
	h.removeAt(0)
	if h.size > 0 {
		h.down(0)
	}
	h.shrink()
	return top, nil
}

// FindMax returns the root value.
func (h *Heap[T]) FindMax() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return h.data[0].Value, nil
}

// GetPriority returns the priority of the first entry holding value.
func (h *Heap[T]) GetPriority(value T) (int, error) {
	idx, err := h.lookup(value)
	if err != nil {
		return 0, err
	}
	return h.data[idx].Priority, nil
}

// ModifyKey sets the priority of value and sifts in whichever direction it moved.
func (h *Heap[T]) ModifyKey(value T, newPriority int) error {
	idx, err := h.lookup(value)
	if err != nil {
		return err
	}

	old := h.data[idx].Priority
	h.data[idx].Priority = newPriority
	switch {
	case newPriority > old:
		h.up(idx)
	case newPriority < old:
		h.down(idx)
	}
	return nil
}

// IncreaseKey raises the priority of value and sifts it up.
func (h *Heap[T]) IncreaseKey(value T, newPriority int) error {
	idx, err := h.lookup(value)
	if err != nil {
		return err
	}
	if cur := h.data[idx].Priority; newPriority <= cur {
		return fmt.Errorf("%w: new priority %d must be greater than %d", ErrInvalidPriority, newPriority, cur)
	}

	h.data[idx].Priority = newPriority
	h.up(idx)
	return nil
}

// DecreaseKey lowers the priority of value and sifts it down.
func (h *Heap[T]) DecreaseKey(value T, newPriority int) error {
	idx, err := h.lookup(value)
	if err != nil {
		return err
	}
	if cur := h.data[idx].Priority; newPriority >= cur {
		return fmt.Errorf("%w: new priority %d must be less than %d", ErrInvalidPriority, newPriority, cur)
	}

	h.data[idx].Priority = newPriority
	h.down(idx)
	return nil
}

// Size returns the number of stored entries.
func (h *Heap[T]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Clear empties the heap and truncates storage to the floor capacity.
func (h *Heap[T]) Clear() { h.reset() }

// Capacity returns the length of the backing array.
func (h *Heap[T]) Capacity() int { return len(h.data) }

// Entries returns the stored entries in heap-array order.
func (h *Heap[T]) Entries() []Entry[T] { return h.entries() }

// Clone returns an independent deep copy.
func (h *Heap[T]) Clone() PriorityQueue[T] {
	return &Heap[T]{store: h.clone()}
}
