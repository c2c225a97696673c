// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the variant stored in a Value node.
type Kind int

const (
	// KindInvalid marks a zero Value; encoders reject it.
	KindInvalid Kind = iota
	// KindNull is the explicit null scalar.
	KindNull
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is an integer scalar.
	KindInt
	// KindFloat is a floating-point scalar.
	KindFloat
	// KindText is a text scalar.
	KindText
	// KindMapping is an ordered list of unique key/value pairs.
	KindMapping
	// KindSequence is an ordered list of values.
	KindSequence
)

// Value is one node of the generic document tree consumed by the encoders.
// Mapping entries keep insertion order; that order is the only ordering
// source in serialized output.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
	pairs   []Pair
	items   []Value
}

// Pair is one ordered key/value entry of a mapping Value.
type Pair struct {
	Key   string
	Value Value
}

// Null returns the explicit null scalar.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean scalar value.
func Bool(value bool) Value {
	return Value{kind: KindBool, boolean: value}
}

// Int returns an integer scalar value.
func Int(value int64) Value {
	return Value{kind: KindInt, integer: value}
}

// Float returns a floating-point scalar value.
func Float(value float64) Value {
	return Value{kind: KindFloat, float: value}
}

// Text returns a text scalar value.
func Text(value string) Value {
	return Value{kind: KindText, text: value}
}

// Sequence returns an ordered sequence value over the given items.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Mapping returns an ordered mapping value over the given pairs. Key
// uniqueness is a caller contract; encoders fail fast on violations.
func Mapping(pairs ...Pair) Value {
	return Value{kind: KindMapping, pairs: pairs}
}

// Field builds one mapping entry.
func Field(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// Kind reports the variant stored in this node.
func (v Value) Kind() Kind {
	return v.kind
}

// Pairs returns mapping entries in insertion order; nil for other kinds.
func (v Value) Pairs() []Pair {
	if v.kind != KindMapping {
		return nil
	}

	return v.pairs
}

// Items returns sequence elements in order; nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}

	return v.items
}

// MarshalJSON encodes the value tree as JSON while preserving mapping key
// insertion order. Standard library map marshaling would sort keys, so
// container bytes are assembled by hand.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.boolean)
	case KindInt:
		return json.Marshal(v.integer)
	case KindFloat:
		return json.Marshal(v.float)
	case KindText:
		return json.Marshal(v.text)
	case KindMapping:
		return marshalMappingJSON(v.pairs)
	case KindSequence:
		return marshalSequenceJSON(v.items)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidValue, v.kind)
	}
}

// marshalMappingJSON writes ordered mapping pairs as one JSON object.
func marshalMappingJSON(pairs []Pair) ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')

	seen := make(map[string]struct{}, len(pairs))
	for i, pair := range pairs {
		if _, ok := seen[pair.Key]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateMappingKey, pair.Key)
		}

		seen[pair.Key] = struct{}{}
		if i > 0 {
			out.WriteByte(',')
		}

		keyBytes, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}

		valueBytes, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}

		out.Write(keyBytes)
		out.WriteByte(':')
		out.Write(valueBytes)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// marshalSequenceJSON writes sequence items as one JSON array.
func marshalSequenceJSON(items []Value) ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('[')

	for i, item := range items {
		if i > 0 {
			out.WriteByte(',')
		}

		itemBytes, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}

		out.Write(itemBytes)
	}

	out.WriteByte(']')
	return out.Bytes(), nil
}

// EncodeJSON renders the value tree as indented JSON with ordered object keys
// and exactly one trailing newline. Structurally this is the same document
// EncodeYAML produces; no textual quoting rules apply here.
func EncodeJSON(root Value) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeJSON, err)
	}

	return append(data, '\n'), nil
}
