// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// remarksEnumPattern matches "<digits> - <text>" lines in remark cells.
	remarksEnumPattern = regexp.MustCompile(`^(\d+)\s*-\s+.+$`)
	// valueMapEnumPattern matches "<digits> => <text>" lines in value cells.
	valueMapEnumPattern = regexp.MustCompile(`^(\d+)\s*=>\s*.+$`)
)

// stringEnumMarkers gate the string enumeration guess; the second entry is a
// misspelling that appears verbatim on the source page.
var stringEnumMarkers = []string{"possible values", "possiible values"}

// enumFromRemarks collects leading integers from "<digits> - <text>" lines in
// file order. Repeated values stay repeated, mirroring the source page. Nil
// means no match, never an error.
func enumFromRemarks(remarks string) []int64 {
	return collectLineEnum(remarks, remarksEnumPattern)
}

// enumFromValueMap collects leading integers from "<digits> => <text>"
// association lines used by output parameter value tables. Nil means no
// match, never an error.
func enumFromValueMap(value string) []int64 {
	return collectLineEnum(value, valueMapEnumPattern)
}

// collectLineEnum scans trimmed lines with one digit-prefixed pattern.
func collectLineEnum(text string, pattern *regexp.Regexp) []int64 {
	if text == "" {
		return nil
	}

	var out []int64
	for _, line := range strings.Split(text, "\n") {
		match := pattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}

		parsed, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}

		out = append(out, parsed)
	}

	return out
}

// guessStringEnum extracts a string enumeration from a value cell gated on a
// "possible values" marker phrase. Marker lines and bare "format:" lines are
// dropped; for association lines only the text before "=>" is taken. Values
// deduplicate preserving first-seen order. Nil means no match.
func guessStringEnum(value string) []string {
	if value == "" || !containsStringEnumMarker(value) {
		return nil
	}

	lines := make([]string, 0, 8)
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	for len(lines) > 0 && containsStringEnumMarker(lines[0]) {
		lines = lines[1:]
	}

	out := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if strings.ToLower(line) == "format:" {
			continue
		}

		token := line
		if before, _, found := strings.Cut(line, "=>"); found {
			token = strings.TrimSpace(before)
		}

		if token == "" {
			continue
		}

		if _, ok := seen[token]; ok {
			continue
		}

		seen[token] = struct{}{}
		out = append(out, token)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// containsStringEnumMarker reports whether text carries a marker phrase.
func containsStringEnumMarker(text string) bool {
	low := strings.ToLower(text)
	for _, marker := range stringEnumMarkers {
		if strings.Contains(low, marker) {
			return true
		}
	}

	return false
}

// timestampSchema returns the fixed UTC ISO-8601 timestamp schema template.
func timestampSchema() SchemaNode {
	return SchemaNode{
		Type:        "string",
		Description: "UTC ISO-8601 timestamp (yyyy-MM-ddTHH:mm:ss)",
		Pattern:     `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`,
		Examples:    []string{"2025-12-13T09:56:03"},
	}
}

// dateSchema returns the fixed UTC ISO-8601 date schema template.
func dateSchema() SchemaNode {
	return SchemaNode{
		Type:        "string",
		Description: "UTC ISO-8601 date (yyyy-MM-dd)",
		Pattern:     `^\d{4}-\d{2}-\d{2}$`,
		Examples:    []string{"2025-12-13"},
	}
}
