package filters

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialize encodes the collection with the configured codec as an ordered
// key to value-list document. Deserialize with the same codec reconstructs
// an equivalent collection: same keys, same value order.
func (f *Filters[K, V]) Serialize() ([]byte, error) {
	return f.opts.codec.Marshal(f)
}

// Deserialize decodes text produced by Serialize into a new collection. The
// options must name the codec the text was produced with (codec.Default
// otherwise).
//
// Decoding applies construction semantics: a repeated key overwrites the
// earlier one, values are deduplicated, and an empty value list drops its
// key. A value that does not fit the scalar type V is an *ErrScalarType; a
// document that is not a mapping of value lists is an *ErrDocumentShape.
func Deserialize[K ~string, V Scalar](data []byte, optFns ...Option) (*Filters[K, V], error) {
	f := New[K, V](optFns...)
	if err := f.opts.codec.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ensureInit makes the zero value usable as a decode target.
func (f *Filters[K, V]) ensureInit() {
	if f.entries == nil {
		*f = *New[K, V]()
	}
}

// MarshalJSON implements json.Marshaler, emitting a JSON object with keys in
// insertion order. encoding/json sorts map keys, so the object is assembled
// by hand.
func (f *Filters[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for k, list := range f.entries.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyJSON, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		listJSON, err := json.Marshal(list)
		if err != nil {
			return nil, err
		}
		buf.Write(listJSON)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving the document's key
// order via token-stream decoding.
func (f *Filters[K, V]) UnmarshalJSON(data []byte) error {
	f.ensureInit()

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return &ErrDocumentShape{Got: "malformed JSON", cause: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &ErrDocumentShape{Got: fmt.Sprintf("%v", tok)}
	}

	f.entries.Clear()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return &ErrDocumentShape{Got: "malformed JSON", cause: err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return &ErrDocumentShape{Got: fmt.Sprintf("non-string key %v", keyTok)}
		}

		var raw []any
		if err := dec.Decode(&raw); err != nil {
			return &ErrDocumentShape{Got: fmt.Sprintf("non-list value for key %q", key), cause: err}
		}

		values := make([]V, 0, len(raw))
		for _, x := range raw {
			v, err := scalarFromAny[V](x)
			if err != nil {
				return err
			}
			values = append(values, v)
		}

		f.Set(K(key), values...)
	}

	if _, err := dec.Token(); err != nil {
		return &ErrDocumentShape{Got: "malformed JSON", cause: err}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler. YAML mapping nodes keep their
// content order, so no hand-assembly is needed.
func (f *Filters[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for k, list := range f.entries.All() {
		keyNode := &yaml.Node{}
		keyNode.SetString(string(k))

		listNode := &yaml.Node{}
		if err := listNode.Encode(list); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, listNode)
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Filters[K, V]) UnmarshalYAML(value *yaml.Node) error {
	f.ensureInit()

	if value.Kind != yaml.MappingNode {
		return &ErrDocumentShape{Got: fmt.Sprintf("YAML node kind %d", value.Kind)}
	}

	f.entries.Clear()

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, listNode := value.Content[i], value.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return &ErrDocumentShape{Got: "non-scalar mapping key"}
		}

		var raw []any
		if err := listNode.Decode(&raw); err != nil {
			return &ErrDocumentShape{Got: fmt.Sprintf("non-list value for key %q", keyNode.Value), cause: err}
		}

		values := make([]V, 0, len(raw))
		for _, x := range raw {
			v, err := scalarFromAny[V](x)
			if err != nil {
				return err
			}
			values = append(values, v)
		}

		f.Set(K(keyNode.Value), values...)
	}

	return nil
}
