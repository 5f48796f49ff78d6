package syncdict

import (
	"sync"

	"dictionary/dict"
)

type atomicPtr[K comparable, V any] struct {
	mu  *sync.Mutex
	val *dict.HashDict[K, V]
}

func newAtomicPtr[K comparable, V any](d *dict.HashDict[K, V]) *atomicPtr[K, V] {
	return &atomicPtr[K, V]{mu: new(sync.Mutex), val: d}
}

func (a *atomicPtr[K, V]) load() *dict.HashDict[K, V] {
	a.mu.Lock()
	val := a.val
	a.mu.Unlock()
	return val
}

func (a *atomicPtr[K, V]) store(d *dict.HashDict[K, V]) {
	a.mu.Lock()
	a.val = d
	a.mu.Unlock()
}

// CopyOnWrite is a Dictionary that supports concurrent reads by cloning the
// whole HashDict on every write.
//
// Readers only contend with writers on the pointer swap. Each Set copies every
// entry.
//
// Modeled on DeepCopyMap in Go's [map_reference_test.go].
//
// [map_reference_test.go]: https://cs.opensource.google/go/go/+/refs/tags/go1.22.5:src/sync/map_reference_test.go
type CopyOnWrite[K comparable, V any] struct {
	clean *atomicPtr[K, V]
	mu    *sync.Mutex
}

var _ dict.Dictionary[int, int] = (*CopyOnWrite[int, int])(nil)

func NewCopyOnWrite[K comparable, V any]() *CopyOnWrite[K, V] {
	return &CopyOnWrite[K, V]{
		clean: newAtomicPtr(dict.NewHashDict[K, V]()),
		mu:    new(sync.Mutex),
	}
}

func (c *CopyOnWrite[K, V]) Get(key K) (V, error) {
	return c.clean.load().Get(key)
}

func (c *CopyOnWrite[K, V]) IsSet(key K) bool {
	return c.clean.load().IsSet(key)
}

// Snapshot returns the current contents. The result must not be modified.
func (c *CopyOnWrite[K, V]) Snapshot() *dict.HashDict[K, V] {
	return c.clean.load()
}

func (c *CopyOnWrite[K, V]) Set(key K, value V) {
	c.mu.Lock()
	dirty := c.clean.load().Clone()
	dirty.Set(key, value)
	c.clean.store(dirty)
	c.mu.Unlock()
}
