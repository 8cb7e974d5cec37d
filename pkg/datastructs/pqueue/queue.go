package pqueue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyQueue is returned when peeking or extracting from an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrElementNotFound is returned when no stored entry holds the requested value.
	ErrElementNotFound = errors.New("element not found")

	// ErrInvalidPriority is returned when IncreaseKey/DecreaseKey move the priority the wrong way.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrUnknownKind is returned by New and ParseKind for an unsupported backend.
	ErrUnknownKind = errors.New("unknown queue kind")
)

// PriorityQueue is a max-priority queue with FIFO ordering among equal priorities.
// Implementations are NOT thread-safe.
type PriorityQueue[T comparable] interface {
	// Insert stores value with the given priority.
	Insert(value T, priority int)

	// ExtractMax removes and returns the value with the highest priority.
	ExtractMax() (T, error)

	// FindMax returns the value with the highest priority without removing it.
	FindMax() (T, error)

	// GetPriority returns the current priority of value.
	GetPriority(value T) (int, error)

	// ModifyKey sets the priority of value, in either direction.
	ModifyKey(value T, newPriority int) error

	// IncreaseKey raises the priority of value. newPriority must be greater than the current one.
	IncreaseKey(value T, newPriority int) error

	// DecreaseKey lowers the priority of value. newPriority must be less than the current one.
	DecreaseKey(value T, newPriority int) error

	Size() int
	IsEmpty() bool

	// Clear removes every entry and releases surplus storage.
	Clear()

	// Capacity returns the physical size of the backing array.
	Capacity() int

	// Entries returns a copy of the stored entries in storage order.
	Entries() []Entry[T]

	// Clone returns a deep copy that shares no storage with the receiver.
	Clone() PriorityQueue[T]
}

// Entry is a stored value together with its priority and insertion sequence.
type Entry[T comparable] struct {
	Priority int
	Value    T
	Sequence uint64
}

// Dominates reports whether e is ordered before o:
// higher priority first, earlier insertion among equals.
func (e Entry[T]) Dominates(o Entry[T]) bool {
	if e.Priority != o.Priority {
		return e.Priority > o.Priority
	}
	return e.Sequence < o.Sequence
}

// Kind names a backing strategy.
type Kind string

const (
	KindHeap  Kind = "heap"
	KindArray Kind = "array"
)

// Kinds returns every supported backend.
func Kinds() []Kind {
	return []Kind{KindHeap, KindArray}
}

// ParseKind converts a backend name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHeap, KindArray:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New creates a queue of the given kind. Capacities below the floor are raised to it.
func New[T comparable](kind Kind, capacity int) (PriorityQueue[T], error) {
	switch kind {
	case KindHeap:
		return NewHeap[T](capacity), nil
	case KindArray:
		return NewArray[T](capacity), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func notFound[T comparable](value T) error {
	return fmt.Errorf("%w: %v", ErrElementNotFound, value)
}
