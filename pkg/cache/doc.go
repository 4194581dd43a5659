// Package cache provides a generic, thread-safe LRU cache with optional idle
// expiry.
//
// When the cache is full the least recently used item is evicted. With
// SetIdleTTL, items untouched for longer than the TTL are dropped on the next
// Get or by Sweep. Every removal, including Remove and Clear, runs the
// eviction callback so values holding resources can release them:
//
//	sessions := cache.NewLRUCache[string, *Session](1024)
//	sessions.SetIdleTTL(30 * time.Minute)
//	sessions.SetEvictCallback(func(_ string, s *Session) {
//		s.Close()
//	})
//
// The callback runs with the cache lock held and must not call back into the
// cache.
package cache
