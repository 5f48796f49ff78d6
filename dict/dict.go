package dict

import (
	"errors"
	"fmt"
)

// Dictionary is a mapping from keys to values with an explicit miss error.
//
// Get returns a [NotFoundError] for keys that were never Set. IsSet(k) is true
// exactly when Get(k) would succeed.
type Dictionary[K any, V any] interface {
	Get(key K) (V, error)
	Set(key K, value V)
	IsSet(key K) bool
}

// ErrNotFound matches any [NotFoundError] with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned by Get when the key has no entry.
type NotFoundError[K any] struct {
	key K
}

func NewNotFoundError[K any](key K) NotFoundError[K] {
	return NotFoundError[K]{key: key}
}

// Key returns the key that was looked up.
func (e NotFoundError[K]) Key() K {
	return e.key
}

func (e NotFoundError[K]) Error() string {
	return fmt.Sprintf("key %v not found", e.key)
}

func (e NotFoundError[K]) Is(target error) bool {
	return target == ErrNotFound
}

// HashDict implements Dictionary using a Go map. It is not safe for concurrent
// use; see package syncdict for that.
type HashDict[K comparable, V any] struct {
	m map[K]V
}

var _ Dictionary[int, int] = (*HashDict[int, int])(nil)

func NewHashDict[K comparable, V any]() *HashDict[K, V] {
	return &HashDict[K, V]{m: make(map[K]V)}
}

func (d *HashDict[K, V]) Get(key K) (V, error) {
	v, ok := d.m[key]
	if !ok {
		var zero V
		return zero, NewNotFoundError(key)
	}
	return v, nil
}

func (d *HashDict[K, V]) Set(key K, value V) {
	d.m[key] = value
}

func (d *HashDict[K, V]) IsSet(key K) bool {
	_, ok := d.m[key]
	return ok
}

// Lookup is Get without the error allocation on a miss.
func (d *HashDict[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.m[key]
	return v, ok
}

func (d *HashDict[K, V]) Len() int {
	return len(d.m)
}

// Clone returns an independent copy; values are copied shallowly.
func (d *HashDict[K, V]) Clone() *HashDict[K, V] {
	clone := make(map[K]V, len(d.m)+1)
	for k, v := range d.m {
		clone[k] = v
	}
	return &HashDict[K, V]{m: clone}
}
