// File: ringbuf/linear.go
// Author: huseyink
// License: Apache-2.0
//
// Zero-copy linear block interface. Because the storage wraps, a
// logically contiguous free or occupied region may be split into two
// physical segments; these operations expose only the first,
// non-wrapping segment. The caller commits it and queries again to
// reach the remainder beyond the wrap point.
//
// Commits are the only way to apply a transfer performed outside the
// Put/Get path, e.g. a DMA engine writing directly into the storage.

package ringbuf

// WriteBlock returns a view of the contiguous free segment starting at
// the write position, or nil if the buffer is full. The caller may
// fill it directly and must then CommitWrite the bytes used.
func (r *RingBuffer) WriteBlock() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.writeBlockLenLocked()
	if n == 0 {
		return nil
	}
	return r.storage[r.head : r.head+n]
}

// WriteBlockLen returns the number of bytes writable at the block
// start without wrapping: zero when full, otherwise bounded by the
// unread region or by the physical end of storage. It may under-report
// total free space when the free region spans the wrap point.
func (r *RingBuffer) WriteBlockLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeBlockLenLocked()
}

func (r *RingBuffer) writeBlockLenLocked() int {
	if r.full {
		return 0
	}
	if r.tail > r.head {
		return r.tail - r.head
	}
	return len(r.storage) - r.head
}

// CommitWrite finalizes n bytes written directly into WriteBlock,
// advancing the write position. Fails without mutation if n is
// negative or exceeds WriteBlockLen. Committing zero is a legal no-op.
func (r *RingBuffer) CommitWrite(n int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 0 || n > r.writeBlockLenLocked() {
		return false
	}
	if n == 0 {
		return true
	}
	r.head = (r.head + n) % len(r.storage)
	r.full = r.head == r.tail
	return true
}

// ReadBlock returns a view of the contiguous occupied segment starting
// at the read position, or nil if the buffer is empty. The caller may
// consume it directly and must then CommitRead the bytes taken.
func (r *RingBuffer) ReadBlock() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.readBlockLenLocked()
	if n == 0 {
		return nil
	}
	return r.storage[r.tail : r.tail+n]
}

// ReadBlockLen returns the number of bytes readable at the block start
// without wrapping: zero when empty, otherwise bounded by the write
// position or by the physical end of storage.
func (r *RingBuffer) ReadBlockLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readBlockLenLocked()
}

func (r *RingBuffer) readBlockLenLocked() int {
	if r.isEmptyLocked() {
		return 0
	}
	if r.head > r.tail {
		return r.head - r.tail
	}
	return len(r.storage) - r.tail
}

// CommitRead consumes n bytes read directly from ReadBlock, advancing
// the read position. Fails without mutation if n is negative or
// exceeds ReadBlockLen. Committing zero is a legal no-op.
func (r *RingBuffer) CommitRead(n int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 0 || n > r.readBlockLenLocked() {
		return false
	}
	if n == 0 {
		return true
	}
	r.tail = (r.tail + n) % len(r.storage)
	r.full = false
	return true
}
