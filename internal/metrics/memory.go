// Package metrics reads runtime memory statistics. The stream pipeline
// reports them in verbose mode: the int64/uint64 formatting path is
// allocation-free, the arbitrary-precision path is not, and the
// allocation delta across a run makes the difference visible.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	TotalAlloc  uint64 // cumulative bytes allocated
	HeapObjects uint64 // number of allocated heap objects
	NumGC       uint32 // number of completed GC cycles
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}

// AllocDelta returns the bytes allocated since prev. TotalAlloc is
// monotonic, so the difference is meaningful across a run.
func (s MemorySnapshot) AllocDelta(prev MemorySnapshot) uint64 {
	return s.TotalAlloc - prev.TotalAlloc
}

// GCDelta returns the garbage collection cycles completed since prev.
func (s MemorySnapshot) GCDelta(prev MemorySnapshot) uint32 {
	return s.NumGC - prev.NumGC
}
