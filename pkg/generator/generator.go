// Package generator produces reproducible random queue contents.
package generator

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

var (
	ErrInvalidRange = errors.New("min priority is greater than max priority")
	ErrInvalidSize  = errors.New("size must not be negative")
)

// NewRand returns a PCG-backed generator. Equal seeds yield equal sequences.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fill clears q and inserts the values 0..size-1, each with a priority drawn
// uniformly from [minPriority, maxPriority].
func Fill(q pqueue.PriorityQueue[int], size, minPriority, maxPriority int, rng *rand.Rand) error {
	if size < 0 {
		return errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	if minPriority > maxPriority {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d]", minPriority, maxPriority)
	}

	q.Clear()
	for i := 0; i < size; i++ {
		q.Insert(i, between(minPriority, maxPriority, rng))
	}
	return nil
}

// between draws uniformly from [lo, hi], lo <= hi. The width is computed in
// uint64 so that ranges wider than math.MaxInt64 do not overflow.
func between(lo, hi int, rng *rand.Rand) int {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int(rng.Uint64())
	}
	return lo + int(rng.Uint64N(span))
}

// Dataset holds precomputed benchmark inputs shared by every backend.
type Dataset struct {
	Values     []int
	Priorities []int
	// ModifyTargets are values passed to ModifyKey, with NewPriorities as their new keys.
	ModifyTargets []int
	NewPriorities []int
}

// NewDataset draws maxSize values (0..maxSize-1) with priorities in
// [0, maxPriority) and modifySample ModifyKey targets among them. A zero
// modifySample defaults to maxSize/10, at least 1 when maxSize > 0.
func NewDataset(maxSize, maxPriority int, seed uint64, modifySample int) (*Dataset, error) {
	if maxSize < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", maxSize)
	}
	if maxPriority <= 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "[0, %d)", maxPriority)
	}
	if modifySample <= 0 {
		modifySample = max(maxSize/10, 1)
	}
	if maxSize == 0 {
		modifySample = 0
	}

	rng := NewRand(seed)
	ds := &Dataset{
		Values:        make([]int, maxSize),
		Priorities:    make([]int, maxSize),
		ModifyTargets: make([]int, modifySample),
		NewPriorities: make([]int, modifySample),
	}
	for i := range maxSize {
		ds.Values[i] = i
		ds.Priorities[i] = rng.IntN(maxPriority)
	}
	for i := range modifySample {
		ds.ModifyTargets[i] = rng.IntN(maxSize)
		ds.NewPriorities[i] = rng.IntN(maxPriority)
	}
	return ds, nil
}

// Populate inserts the first n dataset pairs into q. q keeps its capacity, so
// a queue allocated for n+1 entries is never full afterwards.
func (d *Dataset) Populate(q pqueue.PriorityQueue[int], n int) {
	n = min(n, len(d.Values))
	for i := 0; i < n; i++ {
		q.Insert(d.Values[i], d.Priorities[i])
	}
}

// Targets returns the ModifyKey targets that fall within the first n values.
func (d *Dataset) Targets(n int) (values, priorities []int) {
	for i, v := range d.ModifyTargets {
		if v < n {
			values = append(values, v)
			priorities = append(priorities, d.NewPriorities[i])
		}
	}
	return values, priorities
}
