// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import "errors"

var (
	// ErrDuplicateMappingKey is returned when a mapping value carries the same key twice.
	ErrDuplicateMappingKey = errors.New("duplicate mapping key")
	// ErrInvalidValue is returned when a zero or unknown value node reaches an encoder.
	ErrInvalidValue = errors.New("invalid value node")
	// ErrEncodeJSON is returned when ordered JSON encoding fails.
	ErrEncodeJSON = errors.New("encode json document")
	// ErrDecodeExtract is returned when extraction snapshot JSON decoding fails.
	ErrDecodeExtract = errors.New("decode extraction snapshot")
	// ErrEncodingMismatch is returned when emitted YAML does not reparse into the source tree.
	ErrEncodingMismatch = errors.New("encoded document mismatch")
	// ErrGenerateExample is returned when example payload generation cannot read the schema tree.
	ErrGenerateExample = errors.New("generate example payload")
	// ErrReadBuiltinTemplate is returned when built-in markdown template loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseMarkdownTemplate is returned when markdown template parsing fails.
	ErrParseMarkdownTemplate = errors.New("parse markdown template")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
)
