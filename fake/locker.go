// Package fake
// Author: huseyink
//
// Test doubles for the ring-buffer packages.

package fake

import (
	"sync"
	"sync/atomic"
)

// Ensure compile-time interface compliance.
var _ sync.Locker = (*CountingLocker)(nil)

// CountingLocker records critical-section entries and exits. Useful
// for asserting that every buffer operation brackets its work and
// releases the section on failure paths.
type CountingLocker struct {
	Locks   atomic.Int64
	Unlocks atomic.Int64
}

func (l *CountingLocker) Lock()   { l.Locks.Add(1) }
func (l *CountingLocker) Unlock() { l.Unlocks.Add(1) }

// Balanced reports whether every Lock has a matching Unlock.
func (l *CountingLocker) Balanced() bool {
	return l.Locks.Load() == l.Unlocks.Load()
}
