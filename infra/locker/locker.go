// locker/locker.go
package locker

import "sync"

type Locker struct {
	mu           sync.Mutex
	inProcessMap map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[int64]bool),
	}
}

// MarkAsProcessing adds an assignment ID to the in-memory map.
func (l *Locker) MarkAsProcessing(assignmentID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inProcessMap[assignmentID] = true
}

// IsProcessing checks if an assignment ID is already being processed.
func (l *Locker) IsProcessing(assignmentID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inProcessMap[assignmentID]
}

func (l *Locker) Unlock(assignmentID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, assignmentID)
}
