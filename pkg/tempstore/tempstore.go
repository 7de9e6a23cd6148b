// Package tempstore keeps short-lived values such as pending registrations and
// password reset codes, keyed by lower-cased e-mail.
package tempstore

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

type Store[T any] struct {
	items *cache.Cache
}

// New creates a store whose entries expire after ttl. Expired entries are
// purged every cleanupInterval.
func New[T any](ttl, cleanupInterval time.Duration) *Store[T] {
	return &Store[T]{
		items: cache.New(ttl, cleanupInterval),
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Put stores v under key, replacing any previous value and restarting its ttl.
func (s *Store[T]) Put(key string, v T) {
	s.items.SetDefault(normalizeKey(key), v)
}

func (s *Store[T]) Get(key string) (T, bool) {
	var zero T
	raw, ok := s.items.Get(normalizeKey(key))
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func (s *Store[T]) Delete(key string) {
	s.items.Delete(normalizeKey(key))
}

func (s *Store[T]) Len() int {
	return s.items.ItemCount()
}
