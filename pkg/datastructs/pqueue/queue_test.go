package pqueue

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// Interface compliance check
var (
	_ PriorityQueue[string] = (*Heap[string])(nil)
	_ PriorityQueue[string] = (*Array[string])(nil)
)

// =============================================================================
// Implementation Registry
// =============================================================================

type factory func(capacity int) PriorityQueue[string]

var implementations = map[string]factory{
	"Heap":  func(capacity int) PriorityQueue[string] { return NewHeap[string](capacity) },
	"Array": func(capacity int) PriorityQueue[string] { return NewArray[string](capacity) },
}

// forEach runs fn as a subtest for every registered implementation.
func forEach(t *testing.T, fn func(t *testing.T, newQueue factory)) {
	t.Helper()
	for name, newQueue := range implementations {
		t.Run(name, func(t *testing.T) {
			fn(t, newQueue)
		})
	}
}

// drain extracts every value in order.
func drain(t *testing.T, q PriorityQueue[string]) []string {
	t.Helper()
	var out []string
	for !q.IsEmpty() {
		v, err := q.ExtractMax()
		if err != nil {
			t.Fatalf("ExtractMax() error = %v", err)
		}
		out = append(out, v)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// Entry / Kind
// =============================================================================

func TestEntry_Dominates(t *testing.T) {
	tests := []struct {
		name string
		a, b Entry[string]
		want bool
	}{
		{"higher_priority", Entry[string]{Priority: 5, Sequence: 9}, Entry[string]{Priority: 4, Sequence: 0}, true},
		{"lower_priority", Entry[string]{Priority: 3, Sequence: 0}, Entry[string]{Priority: 4, Sequence: 9}, false},
		{"equal_priority_earlier", Entry[string]{Priority: 5, Sequence: 1}, Entry[string]{Priority: 5, Sequence: 2}, true},
		{"equal_priority_later", Entry[string]{Priority: 5, Sequence: 2}, Entry[string]{Priority: 5, Sequence: 1}, false},
		{"identical", Entry[string]{Priority: 5, Sequence: 1}, Entry[string]{Priority: 5, Sequence: 1}, false},
		{"negative_priorities", Entry[string]{Priority: -1}, Entry[string]{Priority: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dominates(tt.b); got != tt.want {
				t.Errorf("Dominates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr error
	}{
		{"heap", "heap", KindHeap, nil},
		{"array", "array", KindArray, nil},
		{"mixed_case_with_spaces", "  HeAp ", KindHeap, nil},
		{"unknown", "skiplist", "", ErrUnknownKind},
		{"empty", "", "", ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseKind(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			q, err := New[int](kind, 0)
			if err != nil {
				t.Fatalf("New(%q) error = %v", kind, err)
			}
			if !q.IsEmpty() {
				t.Error("new queue should be empty")
			}
		})
	}

	t.Run("unknown_kind", func(t *testing.T) {
		q, err := New[int](Kind("tree"), 0)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("New(tree) error = %v, want %v", err, ErrUnknownKind)
		}
		if q != nil {
			t.Error("New(tree) returned non-nil queue")
		}
	})

	t.Run("concrete_types", func(t *testing.T) {
		h, _ := New[int](KindHeap, 0)
		if _, ok := h.(*Heap[int]); !ok {
			t.Errorf("New(heap) = %T, want *Heap[int]", h)
		}
		a, _ := New[int](KindArray, 0)
		if _, ok := a.(*Array[int]); !ok {
			t.Errorf("New(array) = %T, want *Array[int]", a)
		}
	})
}

// =============================================================================
// Contract: ordering
// =============================================================================

func TestQueue_Scenario(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		q := newQueue(0)
		q.Insert("a", 10)
		q.Insert("b", 20)
		q.Insert("c", 20)

		if got, err := q.FindMax(); err != nil || got != "b" {
			t.Fatalf("FindMax() = %q, %v; want b, nil", got, err)
		}
		if got := drain(t, q); !equalStrings(got, []string{"b", "c", "a"}) {
			t.Errorf("drain = %v, want [b c a]", got)
		}
		if !q.IsEmpty() {
			t.Error("IsEmpty() = false after draining")
		}
	})
}

func TestQueue_FIFOTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		prios  []int
		want   []string
	}{
		{"two_equal", []string{"a", "b"}, []int{5, 5}, []string{"a", "b"}},
		{"all_equal", []string{"a", "b", "c", "d", "e"}, []int{1, 1, 1, 1, 1}, []string{"a", "b", "c", "d", "e"}},
		{"interleaved", []string{"a", "x", "b", "y", "c"}, []int{1, 9, 1, 9, 1}, []string{"x", "y", "a", "b", "c"}},
		{"negative", []string{"a", "b", "c"}, []int{-3, -1, -3}, []string{"b", "a", "c"}},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(0)
				for i, v := range tt.values {
					q.Insert(v, tt.prios[i])
				}
				if got := drain(t, q); !equalStrings(got, tt.want) {
					t.Errorf("drain = %v, want %v", got, tt.want)
				}
			})
		}
	})
}

func TestQueue_RoundTripRandom(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		rng := rand.New(rand.NewPCG(1, 2))
		q := newQueue(0)
		ref := make(map[string]Entry[string])

		for i := 0; i < 500; i++ {
			v := string(rune('A'+i%26)) + string(rune('0'+i/26%10)) + string(rune('a'+i/260))
			p := rng.IntN(20)
			q.Insert(v, p)
			ref[v] = Entry[string]{Priority: p, Value: v, Sequence: uint64(i)}
		}

		var prev *Entry[string]
		for !q.IsEmpty() {
			v, err := q.ExtractMax()
			if err != nil {
				t.Fatalf("ExtractMax() error = %v", err)
			}
			cur := ref[v]
			if prev != nil && !prev.Dominates(cur) {
				t.Fatalf("order violated: %+v extracted before %+v", *prev, cur)
			}
			prev = &cur
		}
	})
}

// =============================================================================
// Contract: size accounting
// =============================================================================

func TestQueue_SizeAccounting(t *testing.T) {
	tests := []struct {
		name     string
		inserts  int
		extracts int
	}{
		{"empty", 0, 0},
		{"inserts_only", 7, 0},
		{"partial_drain", 25, 10},
		{"full_drain", 12, 12},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(0)
				for i := 0; i < tt.inserts; i++ {
					q.Insert(string(rune('a'+i%26))+string(rune('0'+i/26)), i%4)
				}
				for i := 0; i < tt.extracts; i++ {
					if _, err := q.ExtractMax(); err != nil {
						t.Fatalf("ExtractMax() error = %v", err)
					}
				}
				want := tt.inserts - tt.extracts
				if got := q.Size(); got != want {
					t.Errorf("Size() = %d, want %d", got, want)
				}
				if got := q.IsEmpty(); got != (want == 0) {
					t.Errorf("IsEmpty() = %v, want %v", got, want == 0)
				}
				if q.Size() > q.Capacity() {
					t.Errorf("Size() %d exceeds Capacity() %d", q.Size(), q.Capacity())
				}
			})
		}
	})
}

// =============================================================================
// Contract: errors
// =============================================================================

func TestQueue_EmptyErrors(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		q := newQueue(0)

		if v, err := q.ExtractMax(); !errors.Is(err, ErrEmptyQueue) || v != "" {
			t.Errorf("ExtractMax() = %q, %v; want \"\", %v", v, err, ErrEmptyQueue)
		}
		if v, err := q.FindMax(); !errors.Is(err, ErrEmptyQueue) || v != "" {
			t.Errorf("FindMax() = %q, %v; want \"\", %v", v, err, ErrEmptyQueue)
		}

		q.Insert("a", 1)
		_, _ = q.ExtractMax()
		if _, err := q.ExtractMax(); !errors.Is(err, ErrEmptyQueue) {
			t.Errorf("ExtractMax() after drain error = %v, want %v", err, ErrEmptyQueue)
		}
	})
}

func TestQueue_NotFoundErrors(t *testing.T) {
	ops := []struct {
		name string
		call func(q PriorityQueue[string]) error
	}{
		{"GetPriority", func(q PriorityQueue[string]) error { _, err := q.GetPriority("missing"); return err }},
		{"ModifyKey", func(q PriorityQueue[string]) error { return q.ModifyKey("missing", 1) }},
		{"IncreaseKey", func(q PriorityQueue[string]) error { return q.IncreaseKey("missing", 100) }},
		{"DecreaseKey", func(q PriorityQueue[string]) error { return q.DecreaseKey("missing", -100) }},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, op := range ops {
			t.Run(op.name, func(t *testing.T) {
				q := newQueue(0)
				q.Insert("a", 1)
				q.Insert("b", 2)
				before := q.Entries()

				if err := op.call(q); !errors.Is(err, ErrElementNotFound) {
					t.Fatalf("%s error = %v, want %v", op.name, err, ErrElementNotFound)
				}
				if after := q.Entries(); !equalEntries(before, after) {
					t.Errorf("queue mutated by failed %s: %v -> %v", op.name, before, after)
				}
			})
		}
	})
}

func TestQueue_InvalidPriority(t *testing.T) {
	tests := []struct {
		name    string
		call    func(q PriorityQueue[string]) error
		wantErr error
	}{
		{"increase_equal", func(q PriorityQueue[string]) error { return q.IncreaseKey("x", 10) }, ErrInvalidPriority},
		{"increase_lower", func(q PriorityQueue[string]) error { return q.IncreaseKey("x", 9) }, ErrInvalidPriority},
		{"increase_higher", func(q PriorityQueue[string]) error { return q.IncreaseKey("x", 11) }, nil},
		{"decrease_equal", func(q PriorityQueue[string]) error { return q.DecreaseKey("x", 10) }, ErrInvalidPriority},
		{"decrease_higher", func(q PriorityQueue[string]) error { return q.DecreaseKey("x", 11) }, ErrInvalidPriority},
		{"decrease_lower", func(q PriorityQueue[string]) error { return q.DecreaseKey("x", 9) }, nil},
		{"modify_equal", func(q PriorityQueue[string]) error { return q.ModifyKey("x", 10) }, nil},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(0)
				q.Insert("y", 20)
				q.Insert("x", 10)
				before := q.Entries()

				err := tt.call(q)
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if tt.wantErr != nil && !equalEntries(before, q.Entries()) {
					t.Error("queue mutated by failed call")
				}
			})
		}
	})
}

// =============================================================================
// Contract: key modification
// =============================================================================

func TestQueue_KeyScenario(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		q := newQueue(0)
		q.Insert("a", 30)
		q.Insert("b", 40)
		q.Insert("x", 10)

		if err := q.IncreaseKey("x", 50); err != nil {
			t.Fatalf("IncreaseKey(x, 50) error = %v", err)
		}
		if got, _ := q.FindMax(); got != "x" {
			t.Errorf("FindMax() after IncreaseKey = %q, want x", got)
		}
		if err := q.DecreaseKey("x", 5); err != nil {
			t.Fatalf("DecreaseKey(x, 5) error = %v", err)
		}
		if got, _ := q.FindMax(); got != "b" {
			t.Errorf("FindMax() after DecreaseKey = %q, want b", got)
		}
		if err := q.IncreaseKey("x", 3); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("IncreaseKey(x, 3) error = %v, want %v", err, ErrInvalidPriority)
		}
		if p, _ := q.GetPriority("x"); p != 5 {
			t.Errorf("GetPriority(x) = %d, want 5", p)
		}
		if got := drain(t, q); !equalStrings(got, []string{"b", "a", "x"}) {
			t.Errorf("drain = %v, want [b a x]", got)
		}
	})
}

func TestQueue_ModifyKey(t *testing.T) {
	tests := []struct {
		name   string
		target string
		prio   int
		want   []string
	}{
		{"raise_to_top", "c", 100, []string{"c", "a", "b"}},
		{"lower_to_bottom", "a", -1, []string{"b", "c", "a"}},
		{"unchanged", "b", 20, []string{"a", "b", "c"}},
		{"tie_keeps_fifo", "c", 30, []string{"a", "c", "b"}},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(0)
				q.Insert("a", 30)
				q.Insert("b", 20)
				q.Insert("c", 10)

				if err := q.ModifyKey(tt.target, tt.prio); err != nil {
					t.Fatalf("ModifyKey() error = %v", err)
				}
				if p, _ := q.GetPriority(tt.target); p != tt.prio {
					t.Errorf("GetPriority() = %d, want %d", p, tt.prio)
				}
				if got := drain(t, q); !equalStrings(got, tt.want) {
					t.Errorf("drain = %v, want %v", got, tt.want)
				}
			})
		}
	})
}

func TestQueue_DuplicateValuesFirstMatch(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		q := newQueue(0)
		q.Insert("dup", 1)
		q.Insert("dup", 1)

		if err := q.ModifyKey("dup", 7); err != nil {
			t.Fatalf("ModifyKey() error = %v", err)
		}
		entries := q.Entries()
		var modified int
		for _, e := range entries {
			if e.Priority == 7 {
				modified++
			}
		}
		if modified != 1 {
			t.Errorf("ModifyKey touched %d entries, want 1", modified)
		}
		if q.Size() != 2 {
			t.Errorf("Size() = %d, want 2", q.Size())
		}
	})
}

// =============================================================================
// Contract: Clear / Clone
// =============================================================================

func TestQueue_Clear(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		q := newQueue(0)
		for i := 0; i < 100; i++ {
			q.Insert(string(rune('a'+i%26)), i)
		}
		q.Clear()

		if !q.IsEmpty() || q.Size() != 0 {
			t.Fatalf("after Clear: Size() = %d, IsEmpty() = %v", q.Size(), q.IsEmpty())
		}
		if q.Capacity() != minCapacity {
			t.Errorf("Capacity() after Clear = %d, want %d", q.Capacity(), minCapacity)
		}
		if _, err := q.FindMax(); !errors.Is(err, ErrEmptyQueue) {
			t.Errorf("FindMax() after Clear error = %v", err)
		}

		// Sequence keeps counting: new equal-priority entries stay FIFO.
		q.Insert("p", 1)
		q.Insert("q", 1)
		entries := q.Entries()
		if entries[0].Sequence < 100 {
			t.Errorf("Sequence after Clear = %d, want >= 100", entries[0].Sequence)
		}
		if got := drain(t, q); !equalStrings(got, []string{"p", "q"}) {
			t.Errorf("drain = %v, want [p q]", got)
		}
	})
}

func TestQueue_CloneIndependent(t *testing.T) {
	forEach(t, func(t *testing.T, newQueue factory) {
		base := newQueue(0)
		for i, v := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
			base.Insert(v, i%3)
		}
		before := base.Entries()
		baseCap := base.Capacity()

		cp := base.Clone()
		if cp.Capacity() != baseCap || cp.Size() != base.Size() {
			t.Fatalf("Clone() cap/size = %d/%d, want %d/%d", cp.Capacity(), cp.Size(), baseCap, base.Size())
		}

		cp.Insert("z", 99)
		_, _ = cp.ExtractMax()
		_ = cp.ModifyKey("a", 50)
		drain(t, cp)
		cp.Clear()

		if !equalEntries(before, base.Entries()) {
			t.Error("mutating the clone changed the original")
		}
		if base.Capacity() != baseCap {
			t.Errorf("original Capacity() = %d, want %d", base.Capacity(), baseCap)
		}

		// The clone continues the original sequence.
		cp2 := base.Clone()
		cp2.Insert("late", 0)
		base.Insert("late", 0)
		e1, e2 := cp2.Entries(), base.Entries()
		if e1[len(e1)-1].Sequence != e2[len(e2)-1].Sequence {
			t.Error("clone does not carry the insert counter")
		}
	})
}

// =============================================================================
// Storage policy
// =============================================================================

func TestQueue_CapacityPolicy(t *testing.T) {
	tests := []struct {
		name        string
		initial     int
		wantInitial int
	}{
		{"zero_uses_floor", 0, minCapacity},
		{"negative_uses_floor", -5, minCapacity},
		{"below_floor", 3, minCapacity},
		{"exact_floor", 10, 10},
		{"above_floor", 64, 64},
	}

	forEach(t, func(t *testing.T, newQueue factory) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(tt.initial)
				if got := q.Capacity(); got != tt.wantInitial {
					t.Errorf("Capacity() = %d, want %d", got, tt.wantInitial)
				}
			})
		}

		t.Run("grow_doubles_when_full", func(t *testing.T) {
			q := newQueue(0)
			for i := 0; i < 10; i++ {
				q.Insert("v", i)
			}
			if q.Capacity() != 10 {
				t.Fatalf("Capacity() at full = %d, want 10", q.Capacity())
			}
			q.Insert("v", 10)
			if q.Capacity() != 20 {
				t.Errorf("Capacity() after overflow = %d, want 20", q.Capacity())
			}
			for i := 11; i < 41; i++ {
				q.Insert("v", i)
			}
			if q.Capacity() != 80 {
				t.Errorf("Capacity() for 41 entries = %d, want 80", q.Capacity())
			}
		})

		t.Run("shrink_halves_at_quarter", func(t *testing.T) {
			q := newQueue(0)
			for i := 0; i < 41; i++ {
				q.Insert("v", i)
			}
			// 80 -> 40 once size reaches 20.
			for q.Size() > 21 {
				_, _ = q.ExtractMax()
			}
			if q.Capacity() != 80 {
				t.Fatalf("Capacity() at size 21 = %d, want 80", q.Capacity())
			}
			_, _ = q.ExtractMax()
			if q.Capacity() != 40 {
				t.Errorf("Capacity() at size 20 = %d, want 40", q.Capacity())
			}
			for !q.IsEmpty() {
				_, _ = q.ExtractMax()
				if q.Capacity() < minCapacity {
					t.Fatalf("Capacity() = %d fell below floor", q.Capacity())
				}
				if q.Size() > q.Capacity() {
					t.Fatalf("Size() %d > Capacity() %d", q.Size(), q.Capacity())
				}
			}
			if q.Capacity() != minCapacity {
				t.Errorf("Capacity() when drained = %d, want %d", q.Capacity(), minCapacity)
			}
		})

		t.Run("shrink_clamps_to_floor", func(t *testing.T) {
			q := newQueue(16)
			for i := 0; i < 5; i++ {
				q.Insert("v", i)
			}
			_, _ = q.ExtractMax()
			if q.Capacity() != minCapacity {
				t.Errorf("Capacity() = %d, want %d", q.Capacity(), minCapacity)
			}
		})
	})
}

func equalEntries(a, b []Entry[string]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
