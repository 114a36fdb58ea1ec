// Package pool
// Author: huseyink
//
// Reuse pool for fixed-capacity ring buffers. Rings are handed out
// reset and recycled through a bounded free list; storage comes from
// the platform allocator, which returns page-aligned mappings on Linux
// so rings can serve as DMA staging regions.
// See ringpool.go, storage_linux.go, storage_stub.go.
package pool
