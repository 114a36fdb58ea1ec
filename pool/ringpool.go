// File: pool/ringpool.go
// Author: huseyink
// License: Apache-2.0
//
// Bounded reuse pool for ring buffers of one fixed capacity.

package pool

import (
	"sync"

	"github.com/huseyink/ring-buffer/api"
	"github.com/huseyink/ring-buffer/ringbuf"
)

// Ensure compile-time interface compliance.
var _ api.RingPool = (*RingPool)(nil)

// RingPool recycles ring buffers of one fixed capacity. Idle rings
// sit in a bounded free list; rings beyond the limit have their
// storage returned to the allocator.
type RingPool struct {
	capacity int
	free     chan *ringbuf.RingBuffer

	mu      sync.Mutex
	closed  bool
	storage map[*ringbuf.RingBuffer][]byte
	stats   api.RingStats
}

// NewRingPool creates a pool of rings with the given capacity, keeping
// at most maxIdle recycled rings around.
func NewRingPool(capacity, maxIdle int) (*RingPool, error) {
	if capacity <= 0 {
		return nil, api.ErrStorageSize
	}
	if maxIdle < 0 {
		maxIdle = 0
	}
	return &RingPool{
		capacity: capacity,
		free:     make(chan *ringbuf.RingBuffer, maxIdle),
		storage:  make(map[*ringbuf.RingBuffer][]byte),
	}, nil
}

// Get returns an empty ring, reusing a recycled one when available.
func (p *RingPool) Get() (api.Ring, error) {
	select {
	case r := <-p.free:
		r.Reset()
		p.mu.Lock()
		p.stats.InUse++
		p.mu.Unlock()
		return r, nil
	default:
	}

	buf, err := allocStorage(p.capacity)
	if err != nil {
		return nil, err
	}
	r, err := ringbuf.FromSlice(buf)
	if err != nil {
		releaseStorage(buf)
		return nil, err
	}
	p.mu.Lock()
	p.storage[r] = buf
	p.stats.TotalAlloc++
	p.stats.InUse++
	p.mu.Unlock()
	return r, nil
}

// Put recycles a ring obtained from Get. The ring must not be used
// afterwards. Rings not owned by this pool are ignored.
func (p *RingPool) Put(r api.Ring) {
	rb, ok := r.(*ringbuf.RingBuffer)
	if !ok {
		return
	}
	p.mu.Lock()
	_, owned := p.storage[rb]
	closed := p.closed
	if owned {
		p.stats.InUse--
	}
	p.mu.Unlock()
	if !owned {
		return
	}
	if !closed {
		select {
		case p.free <- rb:
			return
		default:
		}
	}
	p.release(rb)
}

// Stats returns a snapshot of the allocation counters.
func (p *RingPool) Stats() api.RingStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Close releases every idle ring's storage and stops the free list
// from accepting recycled rings; later Put calls release immediately.
func (p *RingPool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	for {
		select {
		case rb := <-p.free:
			p.release(rb)
		default:
			return
		}
	}
}

func (p *RingPool) release(rb *ringbuf.RingBuffer) {
	p.mu.Lock()
	buf := p.storage[rb]
	delete(p.storage, rb)
	p.stats.TotalFree++
	p.mu.Unlock()
	releaseStorage(buf)
}
