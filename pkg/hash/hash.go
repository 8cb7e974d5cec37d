package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

// Key lists the value types Entries can fingerprint.
type Key interface {
	int | int32 | int64 | uint | uint32 | uint64 | string
}

// Entries returns a 64-bit xxhash fingerprint of entries.
// Storage order, priority, value and sequence all contribute, so any
// structural change to a queue changes its fingerprint.
func Entries[K Key](entries []pqueue.Entry[K]) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 24)
	for _, e := range entries {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(e.Priority))
		buf = binary.LittleEndian.AppendUint64(buf, e.Sequence)
		buf = appendKey(buf, e.Value)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// Queue fingerprints the current contents of q.
func Queue[K Key](q pqueue.PriorityQueue[K]) uint64 {
	return Entries(q.Entries())
}

func appendKey[K Key](buf []byte, key K) []byte {
	switch k := any(key).(type) {
	case string:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(k)))
		return append(buf, k...)
	case int:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int32:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint32:
		return binary.LittleEndian.AppendUint64(buf, uint64(k))
	case uint64:
		return binary.LittleEndian.AppendUint64(buf, k)
	default:
		panic("Key type not supported")
	}
}
