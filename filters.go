package filters

import (
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/filters/internal/omap"
	"github.com/hupe1980/filters/params"
)

// Entry is one (key, value list) pair, used for construction and the bulk
// operations.
type Entry[K ~string, V Scalar] struct {
	Key    K
	Values []V
}

// Filters is an insertion-ordered mapping from filter keys to deduplicated
// value lists, built for UI filter state that round-trips to URL query
// parameters.
//
// Invariants, maintained by every mutator:
//   - keys are unique;
//   - values within one key's list are unique under ==, first-occurrence
//     order preserved;
//   - a present key always has a non-empty value list; removing the last
//     value deletes the key.
//
// Filters is not safe for concurrent use; callers sharing an instance across
// goroutines must synchronize externally. Mutating the collection while
// iterating it is undefined.
type Filters[K ~string, V Scalar] struct {
	entries *omap.Map[K, []V]
	opts    options
}

// New creates an empty collection.
func New[K ~string, V Scalar](optFns ...Option) *Filters[K, V] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Filters[K, V]{
		entries: omap.New[K, []V](),
		opts:    opts,
	}
}

// NewFromEntries creates a collection hydrated from an ordered sequence of
// entries. A repeated key overwrites the earlier one (mapping-constructor
// shadowing, not append); use AppendBulk for accumulation.
func NewFromEntries[K ~string, V Scalar](entries []Entry[K, V], optFns ...Option) *Filters[K, V] {
	f := New[K, V](optFns...)
	for _, e := range entries {
		f.Set(e.Key, e.Values...)
	}
	return f
}

// Set replaces the value list stored under key, deduplicating the given
// values in first-occurrence order. Setting zero values deletes the key:
// a present key always has a non-empty list.
func (f *Filters[K, V]) Set(key K, values ...V) {
	list := dedup(values)
	if len(list) == 0 {
		f.entries.Delete(key)
		return
	}
	f.entries.Set(key, list)
}

// Get returns a copy of the value list stored under key. The second result
// is false if the key is absent.
func (f *Filters[K, V]) Get(key K) ([]V, bool) {
	list, ok := f.entries.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Has reports whether key is present.
func (f *Filters[K, V]) Has(key K) bool {
	return f.entries.Has(key)
}

// Delete removes key and its value list, reporting whether it was present.
func (f *Filters[K, V]) Delete(key K) bool {
	return f.entries.Delete(key)
}

// Clear removes all keys.
func (f *Filters[K, V]) Clear() {
	f.entries.Clear()
}

// Len returns the number of keys. See Total for the number of values.
func (f *Filters[K, V]) Len() int {
	return f.entries.Len()
}

// Keys returns a copy of the keys in insertion order.
func (f *Filters[K, V]) Keys() []K {
	return f.entries.Keys()
}

// All iterates (key, value list) pairs in insertion order. The yielded
// slices are the collection's own and must be treated as read-only.
func (f *Filters[K, V]) All() iter.Seq2[K, []V] {
	return f.entries.All()
}

// ValueLists iterates the value lists in key insertion order. The yielded
// slices must be treated as read-only.
func (f *Filters[K, V]) ValueLists() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for _, list := range f.entries.All() {
			if !yield(list) {
				return
			}
		}
	}
}

// Append ensures key exists and appends each given value in argument order,
// skipping values already present in the key's list (ordered set-union).
// Appending a duplicate is a defined no-op, not an error.
//
// Appending zero values leaves the collection unchanged: a key may not exist
// with an empty list.
func (f *Filters[K, V]) Append(key K, values ...V) {
	if len(values) == 0 {
		return
	}

	list, _ := f.entries.Get(key)
	grown := false
	for _, v := range values {
		if slices.Contains(list, v) {
			continue
		}
		list = append(list, v)
		grown = true
	}

	if grown {
		f.entries.Set(key, list)
	}

	f.opts.logger.WithKey(string(key)).Debug("append", "values", len(values))
}

// AppendBulk applies Append once per entry, in sequence order. Entries may
// repeat keys; repeats accumulate.
func (f *Filters[K, V]) AppendBulk(entries []Entry[K, V]) {
	for _, e := range entries {
		f.Append(e.Key, e.Values...)
	}
}

// Remove deletes each given value from the key's list; values not present
// are ignored, and an absent key is a no-op. When the last value is removed
// the key itself is deleted.
func (f *Filters[K, V]) Remove(key K, values ...V) {
	list, ok := f.entries.Get(key)
	if !ok || len(values) == 0 {
		return
	}

	kept := slices.DeleteFunc(slices.Clone(list), func(v V) bool {
		return slices.Contains(values, v)
	})

	if len(kept) == 0 {
		f.entries.Delete(key)
	} else if len(kept) != len(list) {
		f.entries.Set(key, kept)
	}

	f.opts.logger.WithKey(string(key)).Debug("remove", "values", len(values))
}

// RemoveBulk applies Remove once per entry, in sequence order.
func (f *Filters[K, V]) RemoveBulk(entries []Entry[K, V]) {
	for _, e := range entries {
		f.Remove(e.Key, e.Values...)
	}
}

// LastValue returns the final element of the key's value list in insertion
// order. The second result is false if the key is absent or, defensively,
// if its list is empty (the invariant forbids the latter).
func (f *Filters[K, V]) LastValue(key K) (V, bool) {
	list, ok := f.entries.Get(key)
	if !ok || len(list) == 0 {
		var zero V
		return zero, false
	}
	return list[len(list)-1], true
}

// HasSome reports whether key exists and at least one of the given values is
// present in its list.
func (f *Filters[K, V]) HasSome(key K, values ...V) bool {
	list, ok := f.entries.Get(key)
	if !ok {
		return false
	}
	for _, v := range values {
		if slices.Contains(list, v) {
			return true
		}
	}
	return false
}

// HasEach reports whether key exists and every given value is present in its
// list. With zero values it reports bare key presence: an empty requirement
// set is vacuously satisfied, so a present key yields true and an absent key
// false.
func (f *Filters[K, V]) HasEach(key K, values ...V) bool {
	list, ok := f.entries.Get(key)
	if !ok {
		return false
	}
	for _, v := range values {
		if !slices.Contains(list, v) {
			return false
		}
	}
	return true
}

// Total returns the number of values across all keys; 0 when empty.
func (f *Filters[K, V]) Total() int {
	total := 0
	for _, list := range f.entries.All() {
		total += len(list)
	}
	return total
}

// Map returns the plain-object projection: a map whose keys are the
// collection's keys and whose values are shallow copies of the value lists.
// Go maps are unordered; use Entries or All when key order matters.
func (f *Filters[K, V]) Map() map[K][]V {
	m := make(map[K][]V, f.entries.Len())
	for k, list := range f.entries.All() {
		m[k] = slices.Clone(list)
	}
	return m
}

// Entries returns the ordered (key, value list) projection with copied
// lists. NewFromEntries(f.Entries()) reconstructs an equivalent collection.
func (f *Filters[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, f.entries.Len())
	for k, list := range f.entries.All() {
		entries = append(entries, Entry[K, V]{Key: k, Values: slices.Clone(list)})
	}
	return entries
}

// Clone returns an independent copy carrying the same options.
func (f *Filters[K, V]) Clone() *Filters[K, V] {
	c := &Filters[K, V]{
		entries: omap.New[K, []V](),
		opts:    f.opts,
	}
	for k, list := range f.entries.All() {
		c.entries.Set(k, slices.Clone(list))
	}
	return c
}

// Params returns an ordered parameter set built from the collection alone:
// one parameter per key, in insertion order, with the value list flattened
// by the configured delimiter. Contrast with QueryString, which merges
// against a caller-supplied external set.
func (f *Filters[K, V]) Params() *params.Params {
	p := params.New()
	for k, list := range f.entries.All() {
		p.Add(string(k), f.flatten(list))
	}
	return p
}

// QueryString merges the collection into an existing ordered parameter set
// and serializes the result as an escaped query string without a leading "?".
//
// The external set's key order is preserved. For every external key also
// present in the collection, the collection's flattened value replaces the
// external one (a key repeated externally collapses to its first
// occurrence); external-only keys pass through unchanged. Collection keys
// absent from the external set are appended after it, in collection order.
// Keys are unioned; values are always sourced from the collection when a key
// exists in both.
//
// external may be nil. An empty merged set yields "".
func (f *Filters[K, V]) QueryString(external *params.Params) string {
	merged := params.New()
	replaced := make(map[K]struct{})

	if external != nil {
		for key, value := range external.All() {
			k := K(key)
			list, ok := f.entries.Get(k)
			if !ok {
				merged.Add(key, value)
				continue
			}
			if _, done := replaced[k]; done {
				continue
			}
			merged.Add(key, f.flatten(list))
			replaced[k] = struct{}{}
		}
	}

	for k, list := range f.entries.All() {
		if _, done := replaced[k]; done {
			continue
		}
		merged.Add(string(k), f.flatten(list))
	}

	f.opts.logger.Debug("query string", "keys", merged.Len())

	return merged.Encode()
}

func (f *Filters[K, V]) flatten(list []V) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = formatScalar(v)
	}
	return strings.Join(parts, f.opts.delimiter)
}

// dedup returns values with duplicates dropped, first occurrence wins.
func dedup[V Scalar](values []V) []V {
	list := make([]V, 0, len(values))
	for _, v := range values {
		if !slices.Contains(list, v) {
			list = append(list, v)
		}
	}
	return list
}
