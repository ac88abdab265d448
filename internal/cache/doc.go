// Package cache provides the generic lookup table used to deduplicate
// vertices while building buffers.
//
// A vertex builder keys the cache by the attribute indices of a vertex
// reference and stores the vertex buffer slot it was written to:
//
//	c := cache.New[[2]int, uint16](len(refs))
//	idx, err := c.GetOrCreate(key, func() (uint16, error) {
//		return appendVertex(key)
//	})
//
// The first lookup of a key calls create; later lookups return the stored
// slot, so every distinct key is materialized once.
package cache
