package chain

import "sync"

// cacheKey identifies one memoised expansion.
type cacheKey struct {
	segment string
	depth   int
}

// Cache memoises expanded lengths by segment and remaining depth. Entries are
// never overwritten with a different value, so concurrent callers that race
// on the same key store the same result.
type Cache struct {
	mu      sync.Mutex
	lengths map[cacheKey]int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{lengths: make(map[cacheKey]int)}
}

// Get returns the cached length of segment expanded depth times.
func (c *Cache) Get(segment string, depth int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.lengths[cacheKey{segment, depth}]
	return n, ok
}

// Put records the length of segment expanded depth times.
func (c *Cache) Put(segment string, depth, length int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lengths[cacheKey{segment, depth}] = length
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lengths)
}
