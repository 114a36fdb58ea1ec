// File: ringbuf/ringbuf.go
// Author: huseyink
// License: Apache-2.0
//
// Fixed-capacity circular byte store. head is the next write position,
// tail the next read position; the explicit full flag resolves the
// head == tail ambiguity between empty and full.

package ringbuf

import (
	"sync"

	"github.com/huseyink/ring-buffer/api"
)

// DefaultCapacity matches the classic static allocation size for
// UART-style byte streams.
const DefaultCapacity = 256

// Ensure compile-time interface compliance.
var _ api.Ring = (*RingBuffer)(nil)

// RingBuffer is a fixed-capacity SPSC byte ring buffer. One producer
// may call Put/Write/CommitWrite while one consumer calls
// Get/Read/Peek/CommitRead; the injected locker only guards the
// cross-inspection of both indices, it does not make the buffer safe
// for multiple producers or multiple consumers.
type RingBuffer struct {
	storage []byte
	head    int
	tail    int
	full    bool
	mu      sync.Locker
}

// New allocates a ring buffer of the given capacity.
// Panics if capacity is not positive.
func New(capacity int) *RingBuffer {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	r, _ := FromSlice(make([]byte, capacity))
	return r
}

// FromSlice builds a ring buffer over caller-owned storage, e.g. a
// page-aligned or device-visible region, so the zero-copy commit path
// can target memory the hardware already knows about. The ring takes
// exclusive ownership of the slice contents; capacity is len(storage).
func FromSlice(storage []byte) (*RingBuffer, error) {
	if len(storage) == 0 {
		return nil, api.ErrStorageSize
	}
	return &RingBuffer{
		storage: storage,
		mu:      nopLocker{},
	}, nil
}

// SetLocker installs the critical-section capability bracketing every
// state-touching operation, e.g. a *sync.Mutex. Passing nil removes
// synchronization. Must not be called while operations are in flight.
func (r *RingBuffer) SetLocker(l sync.Locker) {
	if l == nil {
		l = nopLocker{}
	}
	r.mu = l
}

// SetLockHooks keeps the classic begin/end registration shape: lock
// and unlock run around every operation. Passing nil for both removes
// synchronization.
func (r *RingBuffer) SetLockHooks(lock, unlock func()) {
	if lock == nil && unlock == nil {
		r.mu = nopLocker{}
		return
	}
	r.mu = HookLocker{LockFn: lock, UnlockFn: unlock}
}

// Reset returns the buffer to the empty state. Stored bytes are not
// erased, only the indices and the full flag.
func (r *RingBuffer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.tail = 0
	r.full = false
}

// IsEmpty reports whether no bytes are stored.
func (r *RingBuffer) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isEmptyLocked()
}

func (r *RingBuffer) isEmptyLocked() bool {
	return !r.full && r.head == r.tail
}

// IsFull reports whether the buffer holds exactly Cap() bytes.
func (r *RingBuffer) IsFull() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.full
}

// Cap returns the fixed storage capacity. Immutable, so no locking.
func (r *RingBuffer) Cap() int {
	return len(r.storage)
}

// Len returns the number of occupied bytes.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lenLocked()
}

func (r *RingBuffer) lenLocked() int {
	if r.full {
		return len(r.storage)
	}
	if r.head >= r.tail {
		return r.head - r.tail
	}
	return len(r.storage) - (r.tail - r.head)
}

// Free returns the number of writable slots. Exactly zero when full.
func (r *RingBuffer) Free() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.storage) - r.lenLocked()
}

// Put stores one byte; returns false without mutation if full.
func (r *RingBuffer) Put(b byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putLocked(b)
}

func (r *RingBuffer) putLocked(b byte) bool {
	if r.full {
		return false
	}
	r.storage[r.head] = b
	r.head = (r.head + 1) % len(r.storage)
	// Wrapping into tail means the buffer just became full.
	r.full = r.head == r.tail
	return true
}

// Get removes and returns the oldest byte; ok is false if empty.
func (r *RingBuffer) Get() (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked()
}

func (r *RingBuffer) getLocked() (byte, bool) {
	if r.isEmptyLocked() {
		return 0, false
	}
	b := r.storage[r.tail]
	r.tail = (r.tail + 1) % len(r.storage)
	// Removing any byte guarantees the buffer is not full.
	r.full = false
	return b, true
}

// Peek returns the next byte to be consumed without removing it.
func (r *RingBuffer) Peek() (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isEmptyLocked() {
		return 0, false
	}
	return r.storage[r.tail], true
}

// Write stores bytes from p in order, stopping when the buffer fills,
// and returns the number actually stored. A short count reports
// truncation; no error is raised for partial transfer. The whole
// operation runs in one critical section.
func (r *RingBuffer) Write(p []byte) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for ; n < len(p); n++ {
		if !r.putLocked(p[n]) {
			break
		}
	}
	return n
}

// Read fills p with stored bytes in original write order, stopping
// when p is full or the buffer drains, and returns the number actually
// retrieved. The whole operation runs in one critical section.
func (r *RingBuffer) Read(p []byte) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for ; n < len(p); n++ {
		b, ok := r.getLocked()
		if !ok {
			break
		}
		p[n] = b
	}
	return n
}
