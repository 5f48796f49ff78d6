// Package logdict wraps a Dictionary with debug logging of writes and misses.
package logdict

import (
	"github.com/sirupsen/logrus"

	"dictionary/dict"
	"dictionary/logger"
)

type Logged[K any, V any] struct {
	inner dict.Dictionary[K, V]
	log   logrus.FieldLogger
}

var _ dict.Dictionary[int, int] = (*Logged[int, int])(nil)

// New wraps inner. A nil log uses logger.Default().
func New[K any, V any](inner dict.Dictionary[K, V], log logrus.FieldLogger) *Logged[K, V] {
	if log == nil {
		log = logger.Default()
	}
	return &Logged[K, V]{inner: inner, log: log}
}

func (l *Logged[K, V]) Get(key K) (V, error) {
	v, err := l.inner.Get(key)
	if err != nil {
		l.log.WithField("key", key).WithError(err).Debug("dictionary miss")
	}
	return v, err
}

func (l *Logged[K, V]) Set(key K, value V) {
	l.inner.Set(key, value)
	l.log.WithField("key", key).Debug("dictionary set")
}

func (l *Logged[K, V]) IsSet(key K) bool {
	return l.inner.IsSet(key)
}
