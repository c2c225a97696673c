// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// VerifyEncoding parses emitted block-style YAML text back with a real YAML
// parser and walks it alongside the source tree. It guards the hand-rolled
// emitter: any quoting or nesting defect surfaces as ErrEncodingMismatch.
//
// Two representation tolerances apply, both inherent to the output format:
// an empty mapping or sequence serializes as a bare `key:` line and reparses
// as null, and literal block text reparses with a single trailing newline.
func VerifyEncoding(encoded string, root Value) error {
	var document yaml.Node
	if err := yaml.Unmarshal([]byte(encoded), &document); err != nil {
		return fmt.Errorf("%w: reparse: %w", ErrEncodingMismatch, err)
	}

	if len(document.Content) == 0 {
		if isEmptyContainer(root) || root.kind == KindNull {
			return nil
		}

		return fmt.Errorf("%w: reparsed document is empty", ErrEncodingMismatch)
	}

	return compareNode(document.Content[0], root, "$")
}

// compareNode checks one reparsed YAML node against one source tree node.
func compareNode(node *yaml.Node, value Value, path string) error {
	switch value.kind {
	case KindMapping:
		return compareMappingNode(node, value.pairs, path)
	case KindSequence:
		return compareSequenceNode(node, value.items, path)
	case KindNull, KindBool, KindInt, KindFloat, KindText:
		return compareScalarNode(node, value, path)
	default:
		return fmt.Errorf("%w: %s: source tree holds invalid node", ErrEncodingMismatch, path)
	}
}

// compareMappingNode checks reparsed mapping keys, order and children.
func compareMappingNode(node *yaml.Node, pairs []Pair, path string) error {
	if len(pairs) == 0 {
		return expectNullNode(node, path)
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s: expected mapping, reparsed %s", ErrEncodingMismatch, path, nodeKindName(node))
	}

	if len(node.Content) != 2*len(pairs) {
		return fmt.Errorf("%w: %s: expected %d entries, reparsed %d", ErrEncodingMismatch, path, len(pairs), len(node.Content)/2)
	}

	for i, pair := range pairs {
		keyNode := node.Content[2*i]
		if keyNode.Value != pair.Key {
			return fmt.Errorf("%w: %s: expected key %q at position %d, reparsed %q", ErrEncodingMismatch, path, pair.Key, i, keyNode.Value)
		}

		if err := compareNode(node.Content[2*i+1], pair.Value, path+"."+pair.Key); err != nil {
			return err
		}
	}

	return nil
}

// compareSequenceNode checks reparsed sequence length and items.
func compareSequenceNode(node *yaml.Node, items []Value, path string) error {
	if len(items) == 0 {
		return expectNullNode(node, path)
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: %s: expected sequence, reparsed %s", ErrEncodingMismatch, path, nodeKindName(node))
	}

	if len(node.Content) != len(items) {
		return fmt.Errorf("%w: %s: expected %d items, reparsed %d", ErrEncodingMismatch, path, len(items), len(node.Content))
	}

	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if err := compareNode(node.Content[i], item, itemPath); err != nil {
			return err
		}
	}

	return nil
}

// compareScalarNode checks one reparsed scalar against the source scalar.
func compareScalarNode(node *yaml.Node, value Value, path string) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: %s: expected scalar, reparsed %s", ErrEncodingMismatch, path, nodeKindName(node))
	}

	want := scalarComparisonText(value)
	got := node.Value
	if value.kind == KindText {
		// Literal blocks reparse with one trailing newline appended.
		want = strings.TrimRight(want, "\n")
		got = strings.TrimRight(got, "\n")
	}

	if got != want {
		return fmt.Errorf("%w: %s: expected scalar %q, reparsed %q", ErrEncodingMismatch, path, want, got)
	}

	return nil
}

// scalarComparisonText returns the canonical text a scalar must reparse to.
func scalarComparisonText(value Value) string {
	if value.kind == KindText {
		return value.text
	}

	return formatScalar(value)
}

// expectNullNode accepts the null scalar an empty container collapses into.
func expectNullNode(node *yaml.Node, path string) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}

	return fmt.Errorf("%w: %s: expected empty container as null, reparsed %s %q", ErrEncodingMismatch, path, nodeKindName(node), node.Value)
}

// isEmptyContainer reports whether value is a mapping or sequence with no entries.
func isEmptyContainer(value Value) bool {
	switch value.kind {
	case KindMapping:
		return len(value.pairs) == 0
	case KindSequence:
		return len(value.items) == 0
	default:
		return false
	}
}

// nodeKindName names a yaml node kind for mismatch diagnostics.
func nodeKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
