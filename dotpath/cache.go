package dotpath

import "sync"

// Cache memoizes resolved paths. It has no eviction policy and no size bound;
// entries live until deleted or cleared.
//
// The zero value is an empty cache ready to use. A Cache is safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get returns the value cached for path and whether an entry exists. A nil
// value with ok == true is a cached nil, not a miss.
func (c *Cache) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[path]
	return v, ok
}

// Put stores value under path, replacing any previous entry.
func (c *Cache) Put(path string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]any)
	}
	c.entries[path] = value
}

// Delete removes the entries for the given paths. Missing paths are ignored.
func (c *Cache) Delete(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range paths {
		delete(c.entries, p)
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
