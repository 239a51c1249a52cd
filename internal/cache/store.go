// Package cache memoizes icon lookups and parsed themes in memory.
package cache

import "github.com/erni27/imcache"

// Store is a concurrent in-memory map with no expiry.
type Store[K comparable, V any] struct {
	c *imcache.Cache[K, V]
}

// NewStore returns an empty Store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{c: imcache.New[K, V]()}
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	return s.c.Get(key)
}

func (s *Store[K, V]) Set(key K, val V) {
	s.c.Set(key, val, imcache.WithNoExpiration())
}

func (s *Store[K, V]) Remove(key K) {
	s.c.Remove(key)
}

// Clear drops every entry.
func (s *Store[K, V]) Clear() {
	s.c.RemoveAll()
}

func (s *Store[K, V]) Len() int {
	return s.c.Len()
}
