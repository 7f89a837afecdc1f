package locker

import "sync"

// PairLocker serializes ledger mutations per exchange pair inside a single
// process. Pairs are never deleted, so entries are kept for the process
// lifetime. Cross-process deployments would need a database-level lock
// instead.
type PairLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewPairLocker() *PairLocker {
	return &PairLocker{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock blocks until the pair's mutex is held.
func (l *PairLocker) Lock(pairID int64) {
	l.pairMutex(pairID).Lock()
}

func (l *PairLocker) Unlock(pairID int64) {
	l.pairMutex(pairID).Unlock()
}

func (l *PairLocker) pairMutex(pairID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[pairID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[pairID] = m
	}
	return m
}
