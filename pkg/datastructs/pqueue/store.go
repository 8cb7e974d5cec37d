package pqueue

// store is an explicit-capacity entry array shared by both engines.
// len(data) is the capacity; only data[:size] holds live entries.
type store[T comparable] struct {
	data []Entry[T]
	size int
	seq  uint64 // next insertion sequence, never reset by clear
}

func newStore[T comparable](capacity int) store[T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return store[T]{data: make([]Entry[T], capacity)}
}

// resize reallocates the backing array, copying live entries.
func (s *store[T]) resize(capacity int) {
	data := make([]Entry[T], capacity)
	copy(data, s.data[:s.size])
	s.data = data
}

// grow makes room for one more entry.
func (s *store[T]) grow() {
	if s.size == len(s.data) {
		s.resize(len(s.data) * growFactor)
	}
}

// shrink halves the capacity when at most a quarter of it is used.
func (s *store[T]) shrink() {
	capacity := len(s.data)
	if capacity <= minCapacity || s.size > capacity/shrinkRatio {
		return
	}
	s.resize(max(capacity/2, minCapacity))
}

// push appends a new entry and returns its index.
func (s *store[T]) push(value T, priority int) int {
	s.grow()
	idx := s.size
	s.data[idx] = Entry[T]{Priority: priority, Value: value, Sequence: s.seq}
	s.seq++
	s.size++
	return idx
}

// removeAt moves the last live entry into idx and drops the tail slot.
func (s *store[T]) removeAt(idx int) {
	last := s.size - 1
	s.data[idx] = s.data[last]
	s.data[last] = Entry[T]{} // release the value for GC
	s.size--
}

func (s *store[T]) swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

// indexOf returns the first live index holding value, or -1.
func (s *store[T]) indexOf(value T) int {
	for i := 0; i < s.size; i++ {
		if s.data[i].Value == value {
			return i
		}
	}
	return -1
}

// lookup is indexOf that reports a missing value as ErrElementNotFound.
func (s *store[T]) lookup(value T) (int, error) {
	idx := s.indexOf(value)
	if idx < 0 {
		return -1, notFound(value)
	}
	return idx, nil
}

// reset drops every entry and truncates storage back to the floor.
func (s *store[T]) reset() {
	clear(s.data[:s.size])
	s.size = 0
	if len(s.data) > minCapacity {
		s.data = make([]Entry[T], minCapacity)
	}
}

// clone returns a copy with its own backing array of the same capacity.
func (s *store[T]) clone() store[T] {
	data := make([]Entry[T], len(s.data))
	copy(data, s.data[:s.size])
	return store[T]{data: data, size: s.size, seq: s.seq}
}

func (s *store[T]) entries() []Entry[T] {
	out := make([]Entry[T], s.size)
	copy(out, s.data[:s.size])
	return out
}
