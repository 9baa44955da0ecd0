package dbx

import "sync"

// RWLocker is the part of sync.RWMutex the in-memory repositories use.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NopLocker is handed to in-memory repositories running inside a
// transaction whose caller already holds the write lock.
type NopLocker struct{}

func (NopLocker) Lock()    {}
func (NopLocker) Unlock()  {}
func (NopLocker) RLock()   {}
func (NopLocker) RUnlock() {}

var _ RWLocker = (*sync.RWMutex)(nil)
var _ RWLocker = NopLocker{}
