// Package syncdict layers concurrent access on top of dictionaries that are
// only safe for one caller at a time.
package syncdict

import (
	"sync"

	"dictionary/dict"
)

// Locked guards an entire Dictionary with a single reader/writer lock.
type Locked[K any, V any] struct {
	mu    *sync.RWMutex
	inner dict.Dictionary[K, V]
}

var _ dict.Dictionary[int, int] = (*Locked[int, int])(nil)

func NewLocked[K any, V any](inner dict.Dictionary[K, V]) *Locked[K, V] {
	return &Locked[K, V]{mu: new(sync.RWMutex), inner: inner}
}

// Get takes only the read lock, so inner.Get must not mutate.
func (l *Locked[K, V]) Get(key K) (V, error) {
	l.mu.RLock()
	v, err := l.inner.Get(key)
	l.mu.RUnlock()
	return v, err
}

func (l *Locked[K, V]) Set(key K, value V) {
	l.mu.Lock()
	l.inner.Set(key, value)
	l.mu.Unlock()
}

func (l *Locked[K, V]) IsSet(key K) bool {
	l.mu.RLock()
	ok := l.inner.IsSet(key)
	l.mu.RUnlock()
	return ok
}
