// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeYAMLScalarQuoting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain", "plain text", "plain text"},
		{"empty", "", "''"},
		{"digits stay raw", "123", "123"},
		{"reserved null", "null", "'null'"},
		{"reserved yes mixed case", "Yes", "'Yes'"},
		{"reserved tilde", "~", "'~'"},
		{"colon", "key: value", "'key: value'"},
		{"hash", "a #comment", "'a #comment'"},
		{"percent", "5%", "'5%'"},
		{"backtick", "`code`", "'`code`'"},
		{"leading dash", "-flag", "'-flag'"},
		{"leading question", "?maybe", "'?maybe'"},
		{"leading space", " lead", "' lead'"},
		{"trailing space", "tail ", "'tail '"},
		{"embedded quote", "it's", "'it''s'"},
		{"dash inside", "0 - Payment", "0 - Payment"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := EncodeYAML(Mapping(Field("k", Text(tc.text))))
			if err != nil {
				t.Fatalf("EncodeYAML: %v", err)
			}

			want := "k: " + tc.want + "\n"
			if encoded != want {
				t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
			}
		})
	}
}

func TestEncodeYAMLKeyQuoting(t *testing.T) {
	t.Parallel()

	encoded, err := EncodeYAML(Mapping(
		Field("safe_key-1", Int(1)),
		Field("odd key", Int(2)),
		Field("$ref", Int(3)),
	))
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := "safe_key-1: 1\n'odd key': 2\n'$ref': 3\n"
	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLNestedIndentation(t *testing.T) {
	t.Parallel()

	root := Mapping(
		Field("a", Int(1)),
		Field("b", Mapping(
			Field("c", Int(2)),
			Field("d", Sequence(Int(1), Int(2))),
		)),
		Field("items", Sequence(Mapping(Field("name", Text("x"))))),
	)

	encoded, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := strings.Join([]string{
		"a: 1",
		"b:",
		"  c: 2",
		"  d:",
		"    - 1",
		"    - 2",
		"items:",
		"  -",
		"    name: x",
	}, "\n") + "\n"

	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLLiteralBlock(t *testing.T) {
	t.Parallel()

	root := Mapping(Field("text", Text("line one\n\nline two")))
	encoded, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := "text: |\n  line one\n\n  line two\n"
	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLLiteralBlockContentIsVerbatim(t *testing.T) {
	t.Parallel()

	// Quoting rules never apply inside literal blocks.
	root := Mapping(Field("code", Text("var x = { a: 1 };\nx.init();")))
	encoded, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := "code: |\n  var x = { a: 1 };\n  x.init();\n"
	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLEmptyContainers(t *testing.T) {
	t.Parallel()

	root := Mapping(
		Field("servers", Sequence()),
		Field("paths", Mapping()),
	)

	encoded, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := "servers:\npaths:\n"
	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLScalarKinds(t *testing.T) {
	t.Parallel()

	root := Mapping(
		Field("none", Null()),
		Field("flag", Bool(false)),
		Field("count", Int(-7)),
		Field("ratio", Float(0.5)),
	)

	encoded, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	want := "none: null\nflag: false\ncount: -7\nratio: 0.5\n"
	if encoded != want {
		t.Fatalf("EncodeYAML = %q, want %q", encoded, want)
	}
}

func TestEncodeYAMLIsDeterministic(t *testing.T) {
	t.Parallel()

	root := Mapping(
		Field("z", Text("last name, first key")),
		Field("a", Sequence(Text("x"), Int(1))),
	)

	first, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML first: %v", err)
	}

	second, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML second: %v", err)
	}

	if first != second {
		t.Fatalf("EncodeYAML is not deterministic:\n%s\n---\n%s", first, second)
	}

	if !strings.HasPrefix(first, "z:") {
		t.Fatalf("insertion order lost: %q", first)
	}
}

func TestEncodeYAMLDuplicateKeyFails(t *testing.T) {
	t.Parallel()

	_, err := EncodeYAML(Mapping(
		Field("k", Int(1)),
		Field("k", Int(2)),
	))
	if !errors.Is(err, ErrDuplicateMappingKey) {
		t.Fatalf("expected ErrDuplicateMappingKey, got %v", err)
	}
}

func TestEncodeYAMLZeroValueFails(t *testing.T) {
	t.Parallel()

	if _, err := EncodeYAML(Value{}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for zero root, got %v", err)
	}

	_, err := EncodeYAML(Mapping(Field("k", Value{})))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for zero child, got %v", err)
	}
}

func TestEncodeJSONPreservesKeyOrder(t *testing.T) {
	t.Parallel()

	data, err := EncodeJSON(Mapping(
		Field("zulu", Int(1)),
		Field("alpha", Int(2)),
		Field("mike", Int(3)),
	))
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	text := string(data)
	zulu := strings.Index(text, `"zulu"`)
	alpha := strings.Index(text, `"alpha"`)
	mike := strings.Index(text, `"mike"`)
	if zulu < 0 || alpha < 0 || mike < 0 {
		t.Fatalf("missing keys in output: %s", text)
	}

	if !(zulu < alpha && alpha < mike) {
		t.Fatalf("insertion order lost: %s", text)
	}

	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("missing trailing newline: %q", text)
	}
}

func TestEncodeJSONDuplicateKeyFails(t *testing.T) {
	t.Parallel()

	_, err := EncodeJSON(Mapping(
		Field("k", Int(1)),
		Field("k", Int(2)),
	))
	if !errors.Is(err, ErrDuplicateMappingKey) {
		t.Fatalf("expected ErrDuplicateMappingKey, got %v", err)
	}
}
