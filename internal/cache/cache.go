package cache

// Cache maps keys to values created on first use and never evicts.
//
// Cache is owned by a single builder and is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	entries map[K]V
	hits    int
	misses  int
}

// Stats holds cache statistics.
type Stats struct {
	Len    int // Number of entries
	Hits   int // Lookups answered from the cache
	Misses int // Lookups that created an entry
}

// New creates an empty cache sized for about hint entries.
func New[K comparable, V any](hint int) *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V, hint)}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCreate returns the cached value for key, or calls create and stores
// its result. A failing create stores nothing and its error is returned.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, nil
	}

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.misses++
	c.entries[key] = v
	return v, nil
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Len: len(c.entries), Hits: c.hits, Misses: c.misses}
}
