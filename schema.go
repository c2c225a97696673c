// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

// SchemaNode describes one field or payload alternative. Enum values are
// homogeneous: either EnumInts or EnumStrings is set, never both. Pattern is
// only meaningful on string-typed nodes.
type SchemaNode struct {
	// Type is the OpenAPI primitive type name; empty for const-only alternatives.
	Type string
	// Const pins the node to one exact string value.
	Const string
	// Description carries the documentation text for the field.
	Description string
	// EnumInts restricts the node to an ordered integer enumeration.
	EnumInts []int64
	// EnumStrings restricts the node to an ordered string enumeration.
	EnumStrings []string
	// Pattern is a regular expression constraint for string nodes.
	Pattern string
	// Examples holds illustrative values.
	Examples []string
	// JavaScriptType marks fields whose source data type was a callback.
	JavaScriptType string
}

// value converts the node into a mapping tree using one canonical key order:
// type, const, description, enum, pattern, examples, x-javascriptType.
func (node SchemaNode) value() Value {
	pairs := make([]Pair, 0, 8)

	if node.Type != "" {
		pairs = append(pairs, Field("type", Text(node.Type)))
	}

	if node.Const != "" {
		pairs = append(pairs, Field("const", Text(node.Const)))
	}

	if node.Description != "" {
		pairs = append(pairs, Field("description", Text(node.Description)))
	}

	if len(node.EnumInts) > 0 {
		items := make([]Value, 0, len(node.EnumInts))
		for _, item := range node.EnumInts {
			items = append(items, Int(item))
		}

		pairs = append(pairs, Field("enum", Sequence(items...)))
	} else if len(node.EnumStrings) > 0 {
		items := make([]Value, 0, len(node.EnumStrings))
		for _, item := range node.EnumStrings {
			items = append(items, Text(item))
		}

		pairs = append(pairs, Field("enum", Sequence(items...)))
	}

	if node.Pattern != "" {
		pairs = append(pairs, Field("pattern", Text(node.Pattern)))
	}

	if len(node.Examples) > 0 {
		items := make([]Value, 0, len(node.Examples))
		for _, item := range node.Examples {
			items = append(items, Text(item))
		}

		pairs = append(pairs, Field("examples", Sequence(items...)))
	}

	if node.JavaScriptType != "" {
		pairs = append(pairs, Field("x-javascriptType", Text(node.JavaScriptType)))
	}

	return Mapping(pairs...)
}
