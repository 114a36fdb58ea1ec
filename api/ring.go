// Package api
// Author: huseyink
//
// Contracts for the fixed-capacity single-producer/single-consumer
// byte ring buffer and its zero-copy block interface.

package api

// ByteRing is the non-blocking byte FIFO contract. Every operation
// returns immediately with a definite outcome; nothing ever waits.
type ByteRing interface {
	// Put stores one byte, returns false if full.
	Put(b byte) bool
	// Get removes and returns the oldest byte; ok is false if empty.
	Get() (byte, bool)
	// Peek returns the next byte to be consumed without removing it.
	Peek() (byte, bool)
	// Write stores bytes from p in order until the buffer fills;
	// returns the number actually stored.
	Write(p []byte) int
	// Read fills p in write order until p is full or the buffer
	// drains; returns the number actually retrieved.
	Read(p []byte) int
	// Len returns the number of occupied bytes.
	Len() int
	// Cap returns the fixed storage capacity.
	Cap() int
	// Free returns the number of writable slots.
	Free() int
	// IsEmpty reports whether no bytes are stored.
	IsEmpty() bool
	// IsFull reports whether Len() == Cap().
	IsFull() bool
	// Reset returns the buffer to the empty state.
	Reset()
}

// Ring combines the FIFO and zero-copy block contracts.
type Ring interface {
	ByteRing
	BlockBuffer
}
