// Package ringbuf
// Author: huseyink
//
// Fixed-capacity single-producer/single-consumer byte ring buffer for
// interrupt-driven and resource-constrained environments.
// Storage is allocated once and never resized; every operation is
// non-blocking and reports failure instead of waiting when the buffer
// is full or empty. The zero-copy block interface in linear.go exposes
// contiguous storage segments for DMA-style transfers.
// See ringbuf.go, linear.go, locker.go for implementation details.
package ringbuf
