// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"regexp"
	"strings"
)

// Documentation table column names as scraped from the source page.
const (
	columnFieldName   = "Field Name"
	columnDataType    = "Data Type"
	columnConditional = "Conditional"
	columnRemarks     = "Remarks"
	columnParameter   = "Parameter"
	columnValue       = "Value"
	columnErrorCode   = "Error Code"
	columnDescription = "Description"
)

const (
	timestampField      = "timestamp"
	timestampAliasField = "timeStamp"
	timestampAliasNote  = "Alias of `timestamp` (seen in code sample). Prefer `timestamp` where possible."

	initOptionsDescription  = "Options passed to `$.zpPayment(options)` (jQuery)."
	redirectResultLabel     = "Result payload returned for mode 0 and 2 (redirect/callback)."
	tokenisationResultLabel = "Result payload returned for mode 1 (tokenisation)."
	errorCodeDescription    = "Error codes returned by the plugin."

	// customerModeMarker in a remark cell triggers the mode 0/2 conditional rule.
	customerModeMarker = "required if mode is set to 0 or 2"
	// tokenisationLabelMarker routes a result table to the mode 1 schema group.
	tokenisationLabelMarker = "mode 1"
)

// inputFieldOverrides replace or adjust the generic type mapping for known
// field names. They run after the generic step so new overrides never touch
// the default path.
var inputFieldOverrides = map[string]func(prop SchemaNode, remarks string) SchemaNode{
	"mode": func(prop SchemaNode, _ string) SchemaNode {
		prop.Type = "integer"
		prop.EnumInts = []int64{0, 1, 2, 3}
		prop.EnumStrings = nil
		return prop
	},
	"displayMode": func(prop SchemaNode, _ string) SchemaNode {
		prop.Type = "integer"
		prop.EnumInts = []int64{0, 1}
		prop.EnumStrings = nil
		return prop
	},
	"overrideFeePayer": integerWithRemarksEnum,
	"userMode":         integerWithRemarksEnum,
	timestampField: func(SchemaNode, string) SchemaNode {
		return timestampSchema()
	},
	timestampAliasField: func(SchemaNode, string) SchemaNode {
		node := timestampSchema()
		node.Description = timestampAliasNote
		return node
	},
	"departureDate": func(SchemaNode, string) SchemaNode {
		return dateSchema()
	},
}

// integerWithRemarksEnum forces integer type and adopts the remark-line
// enumeration when one is present.
func integerWithRemarksEnum(prop SchemaNode, remarks string) SchemaNode {
	prop.Type = "integer"
	prop.EnumStrings = nil
	if values := enumFromRemarks(remarks); values != nil {
		prop.EnumInts = values
	}

	return prop
}

// inputFold is the pure accumulator for the input row reduction.
type inputFold struct {
	properties   []Pair
	required     []string
	aliasPresent bool
	customerRule bool
}

// buildInputSchema folds input parameter rows into the init options object
// schema. Unknown properties are a contract violation for callers, so
// additionalProperties is strict.
func buildInputSchema(rows []Row) Value {
	fold := inputFold{properties: make([]Pair, 0, len(rows))}
	for _, row := range rows {
		fold = foldInputRow(fold, row)
	}

	if !fold.aliasPresent && hasPropertyKey(fold.properties, timestampField) {
		alias := timestampSchema()
		alias.Description = timestampAliasNote
		fold.properties = setProperty(fold.properties, timestampAliasField, alias.value())
		fold.aliasPresent = true
	}

	pairs := make([]Pair, 0, 6)
	pairs = append(pairs,
		Field("type", Text("object")),
		Field("description", Text(initOptionsDescription)),
		Field("additionalProperties", Bool(false)),
		Field("properties", Mapping(fold.properties...)),
	)

	// The timestamp spellings are governed by the oneOf rule below, never by
	// the unconditional required list.
	required := make([]string, 0, len(fold.required))
	for _, name := range fold.required {
		if name == timestampField || name == timestampAliasField {
			continue
		}

		required = append(required, name)
	}

	if len(required) > 0 {
		pairs = append(pairs, Field("required", textSequence(required)))
	}

	rules := make([]Value, 0, 2)
	if fold.aliasPresent {
		rules = append(rules, timestampOneOfRule())
	}

	if fold.customerRule {
		rules = append(rules, customerModeRule())
	}

	if len(rules) > 0 {
		pairs = append(pairs, Field("allOf", Sequence(rules...)))
	}

	return Mapping(pairs...)
}

// foldInputRow folds one documentation row into the accumulator. Rows with a
// blank field name are skipped; missing cells count as absent data.
func foldInputRow(fold inputFold, row Row) inputFold {
	name := strings.TrimSpace(row[columnFieldName])
	if name == "" {
		return fold
	}

	rawType := row[columnDataType]
	if rawType == "" {
		rawType = "string"
	}

	remarks := row[columnRemarks]
	conditional := strings.ToLower(strings.TrimSpace(row[columnConditional]))

	prop := SchemaNode{Type: mapDataType(rawType)}
	if remarks != "" {
		prop.Description = remarks
	}

	if override, ok := inputFieldOverrides[name]; ok {
		prop = override(prop, remarks)
	}

	if name == timestampAliasField {
		fold.aliasPresent = true
	}

	if normalizeTypeText(rawType) == "function" {
		prop.Type = "string"
		prop.JavaScriptType = "function"
	}

	if conditional == "required" {
		fold.required = append(fold.required, name)
	}

	if strings.Contains(strings.ToLower(remarks), customerModeMarker) {
		fold.customerRule = true
	}

	fold.properties = setProperty(fold.properties, name, prop.value())
	return fold
}

// mapDataType maps documentation data type text to an OpenAPI primitive.
// Unmapped input always falls through to string; this never fails.
func mapDataType(dataType string) string {
	text := normalizeTypeText(dataType)
	switch {
	case strings.Contains(text, "boolean"):
		return "boolean"
	case text == "int" || text == "integer":
		return "integer"
	case text == "number" || text == "float" || text == "double" || text == "decimal":
		return "number"
	default:
		return "string"
	}
}

// normalizeTypeText lower-cases and collapses whitespace in type cells.
func normalizeTypeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// timestampOneOfRule requires one of the two timestamp spellings.
func timestampOneOfRule() Value {
	return Mapping(Field("oneOf", Sequence(
		Mapping(Field("required", Sequence(Text(timestampField)))),
		Mapping(Field("required", Sequence(Text(timestampAliasField)))),
	)))
}

// customerModeRule requires customer and amount fields when mode is 0 or 2.
// This is one hard-coded rule shape matching the source page wording, not a
// general rule engine.
func customerModeRule() Value {
	return Mapping(
		Field("if", Mapping(
			Field("properties", Mapping(
				Field("mode", Mapping(Field("enum", Sequence(Int(0), Int(2))))),
			)),
			Field("required", Sequence(Text("mode"))),
		)),
		Field("then", Mapping(
			Field("required", Sequence(
				Text("customerName"),
				Text("customerReference"),
				Text("paymentAmount"),
			)),
		)),
	)
}

// splitResultRows partitions result tables into the redirect/callback group
// and the tokenisation group using the table label.
func splitResultRows(tables []ResultTable) (redirect, tokenisation []Row) {
	for _, table := range tables {
		if strings.Contains(strings.ToLower(table.Label), tokenisationLabelMarker) {
			tokenisation = append(tokenisation, table.Rows...)
			continue
		}

		redirect = append(redirect, table.Rows...)
	}

	return redirect, tokenisation
}

// buildResultSchema folds result rows into one payload object schema.
// Unknown response fields are tolerated, so additionalProperties stays
// permissive.
func buildResultSchema(rows []Row, description string) Value {
	properties := make([]Pair, 0, len(rows))
	for _, row := range rows {
		param := strings.TrimSpace(row[columnParameter])
		if param == "" {
			continue
		}

		value := row[columnValue]
		node := SchemaNode{Type: "string"}
		if value != "" {
			node.Description = value
		}

		if enumInts := enumFromValueMap(value); enumInts != nil {
			node.Type = "integer"
			node.EnumInts = enumInts
		} else if enumStrings := guessStringEnum(value); enumStrings != nil {
			node.EnumStrings = enumStrings
		}

		switch strings.ToLower(param) {
		case "processingdate":
			node = dateTemplateNode(timestampSchema(), value)
		case "settlementdate":
			node = dateTemplateNode(dateSchema(), value)
		}

		properties = setProperty(properties, param, node.value())
	}

	return Mapping(
		Field("type", Text("object")),
		Field("description", Text(description)),
		Field("additionalProperties", Bool(true)),
		Field("properties", Mapping(properties...)),
	)
}

// dateTemplateNode applies a date template, keeping the row text as
// description when present.
func dateTemplateNode(template SchemaNode, value string) SchemaNode {
	if value != "" {
		template.Description = value
	}

	return template
}

// buildErrorCodeSchema folds error code rows into a string schema whose value
// must satisfy exactly one alternative. A `*` wildcard in the documented code
// becomes an escaped prefix pattern; plain codes become const alternatives.
func buildErrorCodeSchema(rows []Row) Value {
	alternatives := make([]Value, 0, len(rows))
	for _, row := range rows {
		code := strings.TrimSpace(row[columnErrorCode])
		if code == "" {
			continue
		}

		description := strings.TrimSpace(row[columnDescription])
		if strings.Contains(code, "*") {
			prefix := regexp.QuoteMeta(strings.ReplaceAll(code, "*", ""))
			alternatives = append(alternatives, SchemaNode{
				Type:        "string",
				Pattern:     "^" + prefix + ".*$",
				Description: description,
			}.value())
			continue
		}

		alternatives = append(alternatives, SchemaNode{
			Const:       code,
			Description: description,
		}.value())
	}

	return Mapping(
		Field("type", Text("string")),
		Field("description", Text(errorCodeDescription)),
		Field("oneOf", Sequence(alternatives...)),
	)
}

// setProperty appends a property pair or replaces an existing key in place,
// preserving first-seen position.
func setProperty(pairs []Pair, key string, value Value) []Pair {
	for i := range pairs {
		if pairs[i].Key == key {
			pairs[i].Value = value
			return pairs
		}
	}

	return append(pairs, Field(key, value))
}

// hasPropertyKey reports whether a property list already holds a key.
func hasPropertyKey(pairs []Pair, key string) bool {
	for _, pair := range pairs {
		if pair.Key == key {
			return true
		}
	}

	return false
}

// textSequence builds a sequence value over text items.
func textSequence(items []string) Value {
	out := make([]Value, 0, len(items))
	for _, item := range items {
		out = append(out, Text(item))
	}

	return Sequence(out...)
}
