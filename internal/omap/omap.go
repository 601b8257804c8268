// Package omap provides the insertion-ordered, key-unique map primitive the
// filter collection composes over.
//
// It intentionally exposes plain mapping semantics only (set/get/delete and
// ordered iteration); value-list invariants live in the filters package.
package omap

import (
	"iter"
	"slices"
)

// Map is an insertion-ordered map with unique keys.
//
// Setting an existing key updates its value in place and keeps its original
// position. Deleting and re-setting a key moves it to the end.
//
// Map is not safe for concurrent use, and mutating it while iterating is
// undefined; callers own both hazards.
type Map[K comparable, V any] struct {
	m     map[K]V
	order []K
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Set stores value under key, appending the key to the iteration order if it
// is new.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.m[key]; !ok {
		m.order = append(m.order, key)
	}
	m.m[key] = value
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.m[key]
	return ok
}

// Delete removes key, preserving the relative order of the remaining keys.
// It reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.m[key]; !ok {
		return false
	}
	delete(m.m, key)

	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}

	return true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.m)
	m.order = m.order[:0]
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.m)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// All iterates entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}
