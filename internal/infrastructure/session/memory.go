package session

import (
	"context"
	"sync"
	"time"

	"github.com/shoplens/backend/internal/domain"
)

// DefaultCleanupInterval is how often expired panels are evicted
const DefaultCleanupInterval = 5 * time.Minute

// entry represents a single panel in the store with expiration
type entry struct {
	Panel      *domain.Panel
	Expiration time.Time
}

// MemoryStore is a thread-safe in-memory panel store with TTL support.
// Panels live only as long as the browser session that owns them.
type MemoryStore struct {
	data  map[string]entry
	mutex sync.RWMutex
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryStore creates a store and starts its cleanup goroutine.
// interval <= 0 uses DefaultCleanupInterval.
func NewMemoryStore(interval time.Duration) *MemoryStore {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}

	store := &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
		stop: make(chan struct{}),
	}

	go store.cleanupLoop(interval)

	return store
}

// Get retrieves a live panel
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Panel, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[sessionID]
	if !exists || s.now().After(item.Expiration) {
		return nil, domain.ErrSessionNotFound
	}

	return item.Panel, nil
}

// Set stores a panel and resets its TTL
func (s *MemoryStore) Set(ctx context.Context, sessionID string, panel *domain.Panel, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[sessionID] = entry{
		Panel:      panel,
		Expiration: s.now().Add(ttl),
	}

	return nil
}

// Delete removes a panel
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, sessionID)
	return nil
}

// Close stops the cleanup goroutine
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

// removeExpired evicts expired panels. Panels with a request in flight are
// kept so the settle step always has somewhere to land.
func (s *MemoryStore) removeExpired() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	now := s.now()
	for key, item := range s.data {
		if now.After(item.Expiration) && !item.Panel.Loading() {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

// Size returns the current number of panels in the store (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
