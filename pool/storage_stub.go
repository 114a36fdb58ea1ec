//go:build !linux
// +build !linux

// File: pool/storage_stub.go
// Author: huseyink
//
// Fallback storage allocator for platforms without the mmap path.

package pool

func allocStorage(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func releaseStorage(buf []byte) {
	// GC handles heap-allocated storage.
}
