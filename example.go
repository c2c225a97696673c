// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"fmt"
	"strings"
)

const (
	// ExampleModeAll builds an example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds an example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example payload property coverage.
type ExampleMode string

// initOptionsSchemaName is the component the example payload derives from.
const initOptionsSchemaName = "ZpPaymentInitOptions"

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]Value{
	"string":  Text("<string>"),
	"integer": Int(0),
	"number":  Float(0),
	"boolean": Bool(false),
}

// GenerateExample builds an example `$.zpPayment(options)` payload from the
// init options schema inside a document produced by BuildOpenAPI. Property
// values come from schema examples, enums and consts; fields without any of
// those fall back to type placeholders.
func GenerateExample(root Value, mode ExampleMode) (Value, error) {
	schema, err := initOptionsSchema(root)
	if err != nil {
		return Value{}, err
	}

	return exampleObject(schema, normalizeExampleMode(mode))
}

// normalizeExampleMode falls back to all-properties coverage.
func normalizeExampleMode(mode ExampleMode) ExampleMode {
	if ExampleMode(strings.ToLower(strings.TrimSpace(string(mode)))) == ExampleModeRequired {
		return ExampleModeRequired
	}

	return ExampleModeAll
}

// initOptionsSchema extracts the init options component schema from the
// document tree.
func initOptionsSchema(root Value) (Value, error) {
	components, ok := lookupField(root, "components")
	if !ok {
		return Value{}, fmt.Errorf("%w: document has no components", ErrGenerateExample)
	}

	schemas, ok := lookupField(components, "schemas")
	if !ok {
		return Value{}, fmt.Errorf("%w: document has no component schemas", ErrGenerateExample)
	}

	schema, ok := lookupField(schemas, initOptionsSchemaName)
	if !ok {
		return Value{}, fmt.Errorf("%w: missing %q schema", ErrGenerateExample, initOptionsSchemaName)
	}

	return schema, nil
}

// exampleObject builds one example mapping from an object schema.
func exampleObject(schema Value, mode ExampleMode) (Value, error) {
	properties, ok := lookupField(schema, "properties")
	if !ok {
		return Mapping(), nil
	}

	required := requiredNames(schema)
	pairs := make([]Pair, 0, len(properties.Pairs()))
	for _, property := range properties.Pairs() {
		if mode == ExampleModeRequired {
			if _, ok := required[property.Key]; !ok {
				continue
			}
		}

		value, err := exampleValue(property.Value, mode)
		if err != nil {
			return Value{}, fmt.Errorf("%w: property %q", err, property.Key)
		}

		pairs = append(pairs, Field(property.Key, value))
	}

	return Mapping(pairs...), nil
}

// exampleValue picks the example value for one property schema.
func exampleValue(schema Value, mode ExampleMode) (Value, error) {
	if schema.Kind() != KindMapping {
		return Value{}, fmt.Errorf("%w: property schema is not an object", ErrGenerateExample)
	}

	if constValue, ok := lookupField(schema, "const"); ok {
		return constValue, nil
	}

	if examples, ok := lookupField(schema, "examples"); ok {
		if items := examples.Items(); len(items) > 0 {
			return items[0], nil
		}
	}

	if enum, ok := lookupField(schema, "enum"); ok {
		if items := enum.Items(); len(items) > 0 {
			return items[0], nil
		}
	}

	typeName := ""
	if typeValue, ok := lookupField(schema, "type"); ok {
		typeName = typeValue.text
	}

	if typeName == "object" {
		return exampleObject(schema, mode)
	}

	if placeholder, ok := exampleScalarPlaceholders[typeName]; ok {
		return placeholder, nil
	}

	return Text("<string>"), nil
}

// requiredNames collects the schema required list into a lookup set.
func requiredNames(schema Value) map[string]struct{} {
	out := make(map[string]struct{}, 8)
	required, ok := lookupField(schema, "required")
	if !ok {
		return out
	}

	for _, item := range required.Items() {
		if item.Kind() == KindText {
			out[item.text] = struct{}{}
		}
	}

	return out
}

// lookupField finds one mapping entry by key.
func lookupField(value Value, key string) (Value, bool) {
	for _, pair := range value.Pairs() {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return Value{}, false
}
