package locker

import "sync"

// Locker prevents two goroutines from working the same key at once. Batch
// processing keys on the file-set signature, the cron workers on job names.
type Locker struct {
	mu           sync.Mutex
	inProcessMap map[string]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[string]bool),
	}
}

// TryAcquire marks the key as in-process. Returns false when someone else
// already holds it.
func (l *Locker) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcessMap[key] {
		return false
	}
	l.inProcessMap[key] = true
	return true
}

// IsProcessing checks if a key is currently held.
func (l *Locker) IsProcessing(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inProcessMap[key]
}

func (l *Locker) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, key)
}
