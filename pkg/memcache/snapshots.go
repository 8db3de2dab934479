package mem

import (
	"sync"
	"time"
)

// SnapshotStore caches computed values for a short TTL. The dashboard
// service parks its aggregate counts here between recomputes.
type SnapshotStore interface {
	Set(key string, value interface{}, ttl time.Duration)

	// Get returns the cached value if present and not expired.
	Get(key string) (interface{}, bool)

	Invalidate(key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type Snapshots struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSnapshots() *Snapshots {
	return &Snapshots{
		data: make(map[string]entry),
	}
}

func (s *Snapshots) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Snapshots) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (s *Snapshots) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
