package workshop

import "sync"

// clientLocks serializes aggregate recomputation per client id; different
// clients recompute in parallel. Entries are never evicted, the map is
// bounded by the number of clients.
type clientLocks struct {
	locks sync.Map
}

func (l *clientLocks) lock(clientID uint) func() {
	v, _ := l.locks.LoadOrStore(clientID, &sync.Mutex{})
	mu, _ := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
