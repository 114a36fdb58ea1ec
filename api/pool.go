// File: api/pool.go
// Author: huseyink
//
// Pooling contract for reusable ring buffers.

package api

// RingPool hands out empty rings of one fixed capacity and recycles
// them for reuse.
type RingPool interface {
	// Get returns an empty ring, reusing a recycled one when available.
	Get() (Ring, error)

	// Put recycles a ring obtained from Get. The ring must not be used
	// afterwards.
	Put(r Ring)

	// Stats exposes allocation and reuse counters.
	Stats() RingStats
}

// RingStats aggregates allocation/reuse counters for a RingPool.
type RingStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
