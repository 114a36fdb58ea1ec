//go:build linux
// +build linux

// File: pool/storage_linux.go
// Author: huseyink
//
// Linux storage allocator. Ring storage comes from anonymous private
// mappings, so it is page-aligned and outside the Go heap — suitable
// as a staging region for device transfer setups.

package pool

import "golang.org/x/sys/unix"

// allocStorage maps an anonymous page-aligned region of size bytes.
func allocStorage(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

// releaseStorage returns a mapping obtained from allocStorage to the OS.
func releaseStorage(buf []byte) {
	if buf == nil {
		return
	}
	_ = unix.Munmap(buf)
}
