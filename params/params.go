// Package params provides an insertion-ordered URL query parameter set.
//
// net/url.Values is backed by a plain map and loses the order parameters
// appear in, which makes it unusable for query-string reconciliation where
// the existing parameter order must survive. Params keeps every (key, value)
// pair in the order it was added, with multimap append semantics matching
// the usual URL search parameter abstraction.
package params

import (
	"iter"
	"net/url"
	"strings"
)

type entry struct {
	key   string
	value string
}

// Params is an ordered string-keyed parameter set.
//
// Not safe for concurrent use; mutating while iterating is undefined.
type Params struct {
	entries []entry
}

// New creates an empty Params.
func New() *Params {
	return &Params{}
}

// Parse decodes a query string ("a=1&b=2", with or without a leading "?")
// into an ordered Params. Empty segments are skipped. A segment without "="
// becomes a key with an empty value.
//
// Unlike url.ParseQuery, order is preserved. Like url.ParseQuery, the first
// decoding error is returned alongside the successfully parsed pairs.
func Parse(query string) (*Params, error) {
	query = strings.TrimPrefix(query, "?")

	p := New()

	var firstErr error
	for seg := range strings.SplitSeq(query, "&") {
		if seg == "" {
			continue
		}
		key, value, _ := strings.Cut(seg, "=")

		key, err := url.QueryUnescape(key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		p.Add(key, value)
	}

	return p, firstErr
}

// Add appends a (key, value) pair, keeping any existing pairs for the key.
func (p *Params) Add(key, value string) {
	p.entries = append(p.entries, entry{key: key, value: value})
}

// Set replaces the value for key, keeping the position of its first
// occurrence and dropping any later duplicates. If the key is absent, the
// pair is appended.
func (p *Params) Set(key, value string) {
	out := p.entries[:0]
	found := false
	for _, e := range p.entries {
		if e.key != key {
			out = append(out, e)
			continue
		}
		if !found {
			e.value = value
			out = append(out, e)
			found = true
		}
	}
	p.entries = out

	if !found {
		p.Add(key, value)
	}
}

// Get returns the first value for key.
func (p *Params) Get(key string) (string, bool) {
	for _, e := range p.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// GetAll returns every value for key, in order.
func (p *Params) GetAll(key string) []string {
	var values []string
	for _, e := range p.entries {
		if e.key == key {
			values = append(values, e.value)
		}
	}
	return values
}

// Has reports whether key occurs at least once.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes every pair for key, reporting whether any were present.
func (p *Params) Delete(key string) bool {
	out := p.entries[:0]
	found := false
	for _, e := range p.entries {
		if e.key == key {
			found = true
			continue
		}
		out = append(out, e)
	}
	p.entries = out
	return found
}

// Len returns the number of (key, value) pairs, counting duplicates.
func (p *Params) Len() int {
	return len(p.entries)
}

// Keys returns every key in pair order, including duplicates.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates (key, value) pairs in order.
func (p *Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range p.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	c := New()
	c.entries = append(c.entries, p.entries...)
	return c
}

// Encode serializes the pairs into an escaped query string without a leading
// "?", in insertion order. An empty set encodes to "".
func (p *Params) Encode() string {
	if len(p.entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(e.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(e.value))
	}
	return sb.String()
}

// String implements fmt.Stringer and is equivalent to Encode.
func (p *Params) String() string {
	return p.Encode()
}
