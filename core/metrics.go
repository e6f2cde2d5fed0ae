package core

import (
	"runtime"
	"time"
)

// Tracker samples a monotonic clock and the heap allocator around one
// strategy invocation. Every strategy starts a Tracker before its main
// loop and finalizes the Result with it on every exit path, success or
// failure.
//
// PeakMemory is derived from runtime.MemStats.TotalAlloc, so it reports
// the bytes allocated on the heap during the invocation. That is the
// portable Go equivalent of a peak-allocation tracer: it bounds the
// search's transient footprint without pausing the collector.
type Tracker struct {
	start      time.Time
	startAlloc uint64
}

// StartTracker samples the clock and allocator and returns a running
// Tracker.
func StartTracker() *Tracker {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &Tracker{start: time.Now(), startAlloc: ms.TotalAlloc}
}

// Elapsed returns the wall-clock duration since StartTracker.
func (t *Tracker) Elapsed() time.Duration { return time.Since(t.start) }

// AllocatedBytes returns the heap bytes allocated since StartTracker.
func (t *Tracker) AllocatedBytes() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.TotalAlloc < t.startAlloc {
		return 0
	}

	return ms.TotalAlloc - t.startAlloc
}

// Finish stamps Runtime and PeakMemory onto res and returns it.
func Finish[S comparable](t *Tracker, res *Result[S]) *Result[S] {
	res.Runtime = t.Elapsed()
	res.PeakMemory = t.AllocatedBytes()

	return res
}
