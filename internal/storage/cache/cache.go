package cache

import (
	"sync"

	"github.com/druvus/vocabulator/internal/service"
)

// Cache holds in-flight quiz sessions keyed by owner. Sessions are
// in-memory state between answers and are never persisted until they
// finish, so the cache is the single place a running quiz lives.
type Cache struct {
	mu       sync.Mutex
	sessions map[string]*service.Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]*service.Session),
	}
}

func (c *Cache) SetSession(owner string, s *service.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[owner] = s
}

func (c *Cache) GetSession(owner string) (*service.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[owner]
	return s, exists
}

func (c *Cache) DeleteSession(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, owner)
}
