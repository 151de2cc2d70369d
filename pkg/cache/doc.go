// Package cache provides a bounded, goroutine-safe LRU map.
//
// LRUCache holds per-profile state such as wizard instances, fetched user
// lists and toast broadcasters. When capacity is exceeded the least recently
// used entry is dropped and the evict callback, if any, runs with the cache
// lock held, so callbacks must not call back into the same cache.
//
//	c := cache.NewLRUCache[string, *Thing](128)
//	c.SetEvictCallback(func(_ string, t *Thing) { t.Close() })
//	thing := c.GetOrCreate("p-1", func() *Thing { return newThing() })
package cache
