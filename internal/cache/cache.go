// Package cache provides a concurrency-safe string interner shared by the
// sequential and threaded frame parsers.
package cache

import "sync"

// Cache deduplicates repeated strings encountered while building an AST
// from parsed OBO text; the frame parsers intern whole clause lines. Reads vastly
// outnumber writes, so a single RWMutex is sufficient; workers in the
// threaded parser all share one Cache through a pointer.
type Cache struct {
	mu   sync.RWMutex
	pool map[string]string
}

// New returns an empty Cache ready for concurrent use.
func New() *Cache {
	return &Cache{pool: make(map[string]string, 64)}
}

// Intern returns the canonical stored copy of s, storing s itself the
// first time it is seen.
func (c *Cache) Intern(s string) string {
	c.mu.RLock()
	if v, ok := c.pool[s]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.pool[s]; ok {
		return v
	}
	c.pool[s] = s
	return s
}

// Len reports the number of distinct strings interned so far.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pool)
}
