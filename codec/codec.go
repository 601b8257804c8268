// Package codec centralizes the text encodings used by the filters
// serialization boundary.
//
// A serialized collection records no codec name, so both sides of a
// round-trip must agree on the codec. Changing codecs is a breaking-change
// boundary for stored text.
package codec

// Codec encodes/decodes documents as text.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
