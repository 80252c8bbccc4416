package service

import "sync"

// keyedMutex serializes work per key. The submission pipeline locks per pair
// id and the invitation accept path locks per invitation id, so unrelated
// entities never contend.
//
// Entries are never evicted; the key space is bounded by the number of pairs
// and invitations, which is small for this service.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
