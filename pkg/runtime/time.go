// Package runtime exposes the Go runtime's monotonic clock for timing single queue operations.
package runtime

import (
	_ "unsafe" // for go:linkname
)

// NanoTime returns the current time in nanoseconds from a monotonic clock.
//
//go:linkname NanoTime runtime.nanotime
func NanoTime() int64

// Elapsed returns the nanoseconds passed since start, a previous NanoTime reading.
func Elapsed(start int64) int64 {
	return NanoTime() - start
}

// Measure runs fn once and returns how long it took in nanoseconds.
func Measure(fn func()) int64 {
	start := NanoTime()
	fn()
	return NanoTime() - start
}
