// Package filters provides an ordered, deduplicated filter-state collection
// that round-trips to URL query parameters.
//
// Each key maps to an ordered, duplicate-free list of scalar values (text,
// numbers, booleans). The collection is built for UI-adjacent state such as
// search and filter panels, where the selected values must merge back into
// an existing query string without disturbing the order of parameters the
// page already carries.
//
// # Quick Start
//
//	f := filters.New[string, string]()
//	f.Append("color", "red", "blue")
//	f.Append("color", "red") // duplicate, no-op
//	f.Append("size", "xl")
//
//	f.Total() // 3
//	f.Params().Encode() // "color=red%2Cblue&size=xl"
//
// # Query-String Reconciliation
//
// QueryString merges the collection into an existing ordered parameter set.
// External key order is preserved, the collection's values win for keys
// present in both, and collection-only keys are appended:
//
//	ext, _ := params.Parse("?page=2&color=green")
//	f.QueryString(ext) // "page=2&color=red%2Cblue&size=xl"
//
// # Serialization
//
// Serialize and Deserialize round-trip the collection through a pluggable
// text codec (JSON by default, YAML available), preserving key order and
// value order exactly:
//
//	data, _ := f.Serialize()
//	g, _ := filters.Deserialize[string, string](data)
//
// # Concurrency
//
// A collection is a plain in-memory value: single-threaded, synchronous, no
// internal locking. Callers sharing one instance across goroutines must
// synchronize externally, and mutating a collection while iterating it is
// undefined.
package filters
