// File: ringbuf/stream.go
// Author: huseyink
//
// Adapts a RingBuffer to io.Reader/io.Writer while keeping the
// buffer's non-blocking semantics.

package ringbuf

import (
	"io"

	"github.com/huseyink/ring-buffer/api"
)

// Ensure compile-time interface compliance.
var _ io.ReadWriter = (*Stream)(nil)

// Stream wraps a RingBuffer behind the stdlib io interfaces. It never
// blocks: a full ring surfaces api.ErrFull, a drained ring surfaces
// api.ErrEmpty, in both cases alongside the short count.
type Stream struct {
	ring *RingBuffer
}

// NewStream wraps an existing ring. The same SPSC contract applies:
// one writer, one reader.
func NewStream(r *RingBuffer) *Stream {
	return &Stream{ring: r}
}

// Write stores as much of p as fits. A short write reports api.ErrFull.
func (s *Stream) Write(p []byte) (int, error) {
	n := s.ring.Write(p)
	if n < len(p) {
		return n, api.ErrFull
	}
	return n, nil
}

// Read retrieves up to len(p) buffered bytes. An empty ring reports
// api.ErrEmpty rather than io.EOF, since a producer may still add
// data later.
func (s *Stream) Read(p []byte) (int, error) {
	n := s.ring.Read(p)
	if n == 0 && len(p) > 0 {
		return 0, api.ErrEmpty
	}
	return n, nil
}
