package memoize

import (
	"errors"

	"github.com/goose-lang/primitive"

	"dictionary/dict"
)

// Memoize caches the results of f in a dictionary.
type Memoize[K comparable, V any] struct {
	f       func(K) V
	results dict.Dictionary[K, V]
}

func NewMemoize[K comparable, V any](f func(K) V) Memoize[K, V] {
	return NewMemoizeWith[K, V](dict.NewHashDict[K, V](), f)
}

// NewMemoizeWith caches into results, which may already hold entries; those
// are trusted to be f's outputs.
func NewMemoizeWith[K comparable, V any](results dict.Dictionary[K, V], f func(K) V) Memoize[K, V] {
	return Memoize[K, V]{
		f:       f,
		results: results,
	}
}

func (m Memoize[K, V]) Call(x K) V {
	cached, err := m.results.Get(x)
	if err == nil {
		return cached
	}
	if !errors.Is(err, dict.ErrNotFound) {
		panic(err)
	}
	y := m.f(x)
	m.results.Set(x, y)
	primitive.Assert(m.results.IsSet(x))
	return y
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize[K comparable, V any] struct {
	f func(K) V
}

func NewMockMemoize[K comparable, V any](f func(K) V) *MockMemoize[K, V] {
	return &MockMemoize[K, V]{f: f}
}

func (m *MockMemoize[K, V]) Call(x K) V {
	return m.f(x)
}
