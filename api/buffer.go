// Package api
// Author: huseyink
//
// Zero-copy block access for DMA and bulk-copy transfers.
//
// The ring storage wraps, so a logically contiguous region may be
// split into two physical segments. Block operations expose only the
// first, non-wrapping segment; the caller commits it and queries
// again to reach bytes beyond the wrap point.

package api

// BlockBuffer is the zero-copy linear block contract. Callers operate
// directly on the returned views and finalize each transfer with the
// matching commit call instead of copying through Put/Get.
type BlockBuffer interface {
	// WriteBlock returns a view of the contiguous free segment at the
	// write position, or nil if the buffer is full.
	WriteBlock() []byte

	// WriteBlockLen returns the number of bytes writable at the block
	// start without wrapping. May under-report total free space when
	// the free region spans the wrap point.
	WriteBlockLen() int

	// CommitWrite finalizes n bytes written directly into WriteBlock.
	// Fails without mutation if n exceeds WriteBlockLen.
	CommitWrite(n int) bool

	// ReadBlock returns a view of the contiguous occupied segment at
	// the read position, or nil if the buffer is empty.
	ReadBlock() []byte

	// ReadBlockLen returns the number of bytes readable at the block
	// start without wrapping.
	ReadBlockLen() int

	// CommitRead consumes n bytes read directly from ReadBlock.
	// Fails without mutation if n exceeds ReadBlockLen.
	CommitRead(n int) bool
}
