package singleton

import "sync"

// Lazy holds a value that is built on first access.
type Lazy[T any] struct {
	get func() T
}

// NewLazy is a factory method for Lazy.
//
// build runs at most once, on the first call to Get. If build panics, every call to Get panics with the same value.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{get: sync.OnceValue(build)}
}

// Get returns the value, building it first if this is the first call.
func (l *Lazy[T]) Get() T {
	return l.get()
}
