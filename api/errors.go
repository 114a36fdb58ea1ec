// Package api
// Author: huseyink
//
// Common error values shared by the ring-buffer packages.

package api

import "errors"

// The core ByteRing operations report success as booleans so the hot
// path stays allocation-free; these sentinels are used by the layers
// above it (pool construction, stream adapter).
var (
	ErrFull        = errors.New("ring buffer full")
	ErrEmpty       = errors.New("ring buffer empty")
	ErrStorageSize = errors.New("storage size must be positive")
)
