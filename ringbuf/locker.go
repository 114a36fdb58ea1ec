// File: ringbuf/locker.go
// Author: huseyink
//
// Critical-section hook plumbing. The buffer performs no
// synchronization of its own; callers inject a locker fitting their
// environment (a mutex, or interrupt disable/enable on bare metal).

package ringbuf

// nopLocker is installed when no hooks are registered.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// HookLocker adapts a begin/end callable pair onto sync.Locker, e.g.
// disable/enable IRQ. Either callable may be nil.
type HookLocker struct {
	LockFn   func()
	UnlockFn func()
}

func (h HookLocker) Lock() {
	if h.LockFn != nil {
		h.LockFn()
	}
}

func (h HookLocker) Unlock() {
	if h.UnlockFn != nil {
		h.UnlockFn()
	}
}
