// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// safeKeyPattern matches mapping keys that may stay unquoted.
var safeKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// scalarUnsafeChars forces single-quoting when any of them appears in text.
const scalarUnsafeChars = ":#{}[],&*!|>%@`"

// reservedScalarWords are keywords that would change meaning when unquoted.
var reservedScalarWords = map[string]struct{}{
	"null":  {},
	"true":  {},
	"false": {},
	"yes":   {},
	"no":    {},
	"~":     {},
}

// EncodeYAML renders the value tree as block-style YAML text with two-space
// indentation per nesting level and exactly one trailing newline. Output for
// the same tree is byte-identical across calls; the only ordering source is
// mapping insertion order. Duplicate mapping keys and zero Value nodes are
// caller contract violations and fail fast.
func EncodeYAML(root Value) (string, error) {
	lines := make([]string, 0, 128)
	if err := appendValueLines(&lines, root, 0); err != nil {
		return "", err
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// appendValueLines writes the lines of one value at the given indent column.
func appendValueLines(lines *[]string, value Value, indent int) error {
	pad := strings.Repeat(" ", indent)

	switch value.kind {
	case KindMapping:
		return appendMappingLines(lines, value.pairs, pad, indent)
	case KindSequence:
		return appendSequenceLines(lines, value.items, pad, indent)
	case KindText:
		if strings.Contains(value.text, "\n") {
			*lines = append(*lines, pad+"|")
			appendLiteralBlock(lines, value.text, indent+2)
			return nil
		}

		*lines = append(*lines, pad+formatScalar(value))
		return nil
	case KindNull, KindBool, KindInt, KindFloat:
		*lines = append(*lines, pad+formatScalar(value))
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidValue, value.kind)
	}
}

// appendMappingLines writes ordered mapping pairs; container and multi-line
// children indent one level deeper than their key line.
func appendMappingLines(lines *[]string, pairs []Pair, pad string, indent int) error {
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		if _, ok := seen[pair.Key]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateMappingKey, pair.Key)
		}

		seen[pair.Key] = struct{}{}
		key := formatKey(pair.Key)
		child := pair.Value

		switch {
		case child.kind == KindMapping || child.kind == KindSequence:
			*lines = append(*lines, pad+key+":")
			if err := appendValueLines(lines, child, indent+2); err != nil {
				return err
			}
		case child.kind == KindText && strings.Contains(child.text, "\n"):
			*lines = append(*lines, pad+key+": |")
			appendLiteralBlock(lines, child.text, indent+2)
		case child.kind == KindInvalid || child.kind > KindSequence:
			return fmt.Errorf("%w: key %q", ErrInvalidValue, pair.Key)
		default:
			*lines = append(*lines, pad+key+": "+formatScalar(child))
		}
	}

	return nil
}

// appendSequenceLines writes sequence items with `-` markers at this indent.
func appendSequenceLines(lines *[]string, items []Value, pad string, indent int) error {
	for i, item := range items {
		switch {
		case item.kind == KindMapping || item.kind == KindSequence:
			*lines = append(*lines, pad+"-")
			if err := appendValueLines(lines, item, indent+2); err != nil {
				return err
			}
		case item.kind == KindText && strings.Contains(item.text, "\n"):
			*lines = append(*lines, pad+"- |")
			appendLiteralBlock(lines, item.text, indent+2)
		case item.kind == KindInvalid || item.kind > KindSequence:
			return fmt.Errorf("%w: sequence index %d", ErrInvalidValue, i)
		default:
			*lines = append(*lines, pad+"- "+formatScalar(item))
		}
	}

	return nil
}

// appendLiteralBlock writes multi-line text content verbatim under a `|`
// header. Content lines are never re-escaped; internal blank lines stay
// blank without indent padding.
func appendLiteralBlock(lines *[]string, text string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, line := range literalBlockLines(text) {
		if line == "" {
			*lines = append(*lines, "")
			continue
		}

		*lines = append(*lines, pad+line)
	}
}

// literalBlockLines splits text into content lines, dropping the empty tail
// produced by a trailing newline.
func literalBlockLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// formatScalar renders one scalar value into its exact single-line YAML form.
// Every scalar has a defined representation; this never fails. Multi-line
// text never reaches this function, the serializer routes it to literal
// blocks.
func formatScalar(value Value) string {
	switch value.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(value.boolean)
	case KindInt:
		return strconv.FormatInt(value.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(value.float, 'g', -1, 64)
	default:
		return formatTextScalar(value.text)
	}
}

// formatTextScalar quotes text only when the unquoted form would be ambiguous.
func formatTextScalar(text string) string {
	if text == "" {
		return "''"
	}

	if needsQuoting(text) {
		return quoteSingle(text)
	}

	return text
}

// needsQuoting reports whether unquoted text would change meaning in YAML.
func needsQuoting(text string) bool {
	if strings.TrimSpace(text) != text {
		return true
	}

	if strings.ContainsAny(text, scalarUnsafeChars) {
		return true
	}

	if _, ok := reservedScalarWords[strings.ToLower(text)]; ok {
		return true
	}

	return strings.HasPrefix(text, "-") ||
		strings.HasPrefix(text, "?") ||
		strings.HasPrefix(text, ":") ||
		strings.HasPrefix(text, " ")
}

// formatKey renders one mapping key; anything beyond ASCII letters, digits,
// underscore and hyphen forces the quoted form.
func formatKey(key string) string {
	if safeKeyPattern.MatchString(key) {
		return key
	}

	return quoteSingle(key)
}

// quoteSingle wraps text in single quotes, doubling embedded quotes.
func quoteSingle(text string) string {
	return "'" + strings.ReplaceAll(text, "'", "''") + "'"
}
