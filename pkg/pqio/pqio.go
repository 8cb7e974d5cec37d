// Package pqio reads and writes priority queues as a stream of
// whitespace-separated "value priority" integer pairs.
package pqio

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

// ErrMalformed is returned when the stream holds a non-integer token or an unpaired value.
var ErrMalformed = errors.New("malformed pair stream")

// Load empties q, then inserts every pair read from r.
// Pairs read before a malformed token stay in q. It returns the number of pairs inserted.
func Load(r io.Reader, q pqueue.PriorityQueue[int]) (int, error) {
	for !q.IsEmpty() {
		if _, err := q.ExtractMax(); err != nil {
			return 0, errors.Wrap(err, "failed to drain queue")
		}
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		count   int
		token   int
		pending *int
	)
	for sc.Scan() {
		token++
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return count, errors.Wrapf(ErrMalformed, "token %d: %q is not an integer", token, sc.Text())
		}
		if pending == nil {
			pending = &n
			continue
		}
		q.Insert(*pending, n)
		pending = nil
		count++
	}
	if err := sc.Err(); err != nil {
		return count, errors.Wrap(err, "failed to read pairs")
	}
	if pending != nil {
		return count, errors.Wrapf(ErrMalformed, "value %d has no priority", *pending)
	}
	return count, nil
}

// Save writes the pairs of q in extraction order (highest priority first,
// earliest insertion among equals). q is left untouched. It returns the number
// of pairs written.
func Save(w io.Writer, q pqueue.PriorityQueue[int]) (int, error) {
	entries := q.Entries()
	slices.SortFunc(entries, func(a, b pqueue.Entry[int]) int {
		switch {
		case a.Dominates(b):
			return -1
		case b.Dominates(a):
			return 1
		default:
			return 0
		}
	})

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i, e := range entries {
		buf = strconv.AppendInt(buf[:0], int64(e.Value), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.Priority), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return i, errors.Wrap(err, "failed to write pair")
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, errors.Wrap(err, "failed to flush pairs")
	}
	return len(entries), nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, q pqueue.PriorityQueue[int]) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	n, err := Load(f, q)
	if err != nil {
		return n, errors.Wrapf(err, "failed to load %s", path)
	}
	return n, nil
}

// SaveFile creates (or truncates) path and calls Save.
func SaveFile(path string, q pqueue.PriorityQueue[int]) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	n, err = Save(f, q)
	if err != nil {
		return n, errors.Wrapf(err, "failed to save %s", path)
	}
	return n, nil
}
