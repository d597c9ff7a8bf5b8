package console

import "sync"

// NoLock is a sync.Locker that does nothing. Use it for handlers that are
// only ever called from a single goroutine.
var NoLock sync.Locker = nullMutex{}

type nullMutex struct{}

func (nullMutex) Lock()   {}
func (nullMutex) Unlock() {}

// Lockable is implemented by devices that own the lock serializing their
// output. Handlers created without an explicit lock use it, so every
// handler writing to the same device shares one lock.
type Lockable interface {
	Locker() sync.Locker
}

// LockerFor returns dev's own lock, or a new mutex when dev has none.
func LockerFor(dev Device) sync.Locker {
	if l, ok := dev.(Lockable); ok && dev.Valid() {
		if lock := l.Locker(); lock != nil {
			return lock
		}
	}
	return &sync.Mutex{}
}
