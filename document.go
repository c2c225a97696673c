// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Row is one flat documentation table row: column name to cell text.
type Row map[string]string

// ResultTable is one return parameter table with its page label.
type ResultTable struct {
	Label string
	Rows  []Row
}

// AssetRef points at one plugin asset link from the code sample section.
type AssetRef struct {
	Href    string
	Display string
}

// CodeSample holds the page code sample block and its asset references.
type CodeSample struct {
	Code       string
	Stylesheet AssetRef
	Javascript AssetRef
	Notes      []string
}

// Metadata describes the extraction run the snapshot came from.
type Metadata struct {
	URL         string
	ExtractedAt string
	HTMLSHA256  string
}

// ExtractedDoc is the in-memory form of one extraction snapshot.
type ExtractedDoc struct {
	Metadata     Metadata
	CodeSample   CodeSample
	InputRows    []Row
	ResultTables []ResultTable
	ErrorRows    []Row
}

// ParseExtract decodes an extraction snapshot. Decoding is tolerant: missing
// or mistyped sections count as absent data, cell text is normalized for
// scrape artifacts and the fingerprint remark is replaced with the curated v5
// guidance. Only malformed JSON is an error.
func ParseExtract(data []byte) (ExtractedDoc, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ExtractedDoc{}, fmt.Errorf("%w: %w", ErrDecodeExtract, err)
	}

	meta := asMap(raw["metadata"])
	sections := asMap(raw["sections"])

	doc := ExtractedDoc{
		Metadata: Metadata{
			URL:         asString(meta["url"]),
			ExtractedAt: asString(meta["extracted_at"]),
			HTMLSHA256:  asString(meta["html_sha256"]),
		},
		CodeSample:   parseCodeSample(sections["code_sample"]),
		InputRows:    parseRows(asMap(sections["input_parameters"])["rows"]),
		ResultTables: parseResultTables(asMap(sections["return_parameters"])["tables"]),
		ErrorRows:    parseRows(asMap(sections["error_codes"])["rows"]),
	}

	return curateExtract(doc), nil
}

// parseCodeSample accepts the structured code sample object or, from older
// snapshots, a bare string.
func parseCodeSample(raw any) CodeSample {
	if text, ok := raw.(string); ok {
		return CodeSample{Code: cleanCode(text)}
	}

	section := asMap(raw)
	assets := asMap(section["assets"])

	sample := CodeSample{
		Code:       cleanCode(asString(section["code"])),
		Stylesheet: parseAssetRef(assets["stylesheet"]),
		Javascript: parseAssetRef(assets["javascript"]),
	}

	for _, note := range asSlice(section["notes"]) {
		if text := cleanProse(asString(note)); text != "" {
			sample.Notes = append(sample.Notes, text)
		}
	}

	return sample
}

// parseAssetRef decodes one asset link object.
func parseAssetRef(raw any) AssetRef {
	object := asMap(raw)
	return AssetRef{
		Href:    asString(object["href"]),
		Display: asString(object["display"]),
	}
}

// parseResultTables decodes labeled return parameter tables.
func parseResultTables(raw any) []ResultTable {
	items := asSlice(raw)
	out := make([]ResultTable, 0, len(items))
	for _, item := range items {
		table := asMap(item)
		if table == nil {
			continue
		}

		out = append(out, ResultTable{
			Label: asString(table["label"]),
			Rows:  parseRows(table["rows"]),
		})
	}

	return out
}

// parseRows decodes a row list, normalizing every cell and skipping
// non-object entries and non-string cells.
func parseRows(raw any) []Row {
	items := asSlice(raw)
	out := make([]Row, 0, len(items))
	for _, item := range items {
		object := asMap(item)
		if object == nil {
			continue
		}

		row := make(Row, len(object))
		for column, cell := range object {
			if text, ok := cell.(string); ok {
				row[column] = normalizeCellText(text)
			}
		}

		out = append(out, row)
	}

	return out
}

// BuildOpenAPI assembles the OpenAPI 3.1 schema container for one snapshot.
// The document deliberately carries empty servers and paths: it describes a
// browser plugin contract, not an HTTP API.
func BuildOpenAPI(doc ExtractedDoc) Value {
	extractedAt := doc.Metadata.ExtractedAt
	if extractedAt == "" {
		extractedAt = time.Now().UTC().Format("2006-01-02T15:04:05Z")
	}

	version, _, _ := strings.Cut(extractedAt, "T")
	redirectRows, tokenisationRows := splitResultRows(doc.ResultTables)

	return Mapping(
		Field("openapi", Text("3.1.0")),
		Field("info", Mapping(
			Field("title", Text("TravelPay / Zenith Payments - zpPayment JavaScript Plugin Schemas (v5)")),
			Field("version", Text(version)),
			Field("summary", Text("OpenAPI used as a schema container for the zpPayment JavaScript plugin (not an HTTP API).")),
			Field("description", Text(infoDescription(doc.Metadata))),
		)),
		Field("servers", Sequence()),
		Field("paths", Mapping()),
		Field("x-javascript-plugin", Mapping(
			Field("library", Text("jQuery")),
			Field("function", Text("$.zpPayment")),
			Field("initCall", Text("payment.init()")),
			Field("assets", Mapping(
				Field("stylesheet", assetValue(doc.CodeSample.Stylesheet)),
				Field("javascript", assetValue(doc.CodeSample.Javascript)),
			)),
			Field("codeSample", Text(doc.CodeSample.Code)),
		)),
		Field("components", Mapping(
			Field("schemas", Mapping(
				Field("ZpPaymentInitOptions", buildInputSchema(doc.InputRows)),
				Field("ZpPaymentResultMode0or2", buildResultSchema(redirectRows, redirectResultLabel)),
				Field("ZpPaymentResultMode1", buildResultSchema(tokenisationRows, tokenisationResultLabel)),
				Field("ZpPaymentResult", Mapping(
					Field("oneOf", Sequence(
						schemaRef("ZpPaymentResultMode0or2"),
						schemaRef("ZpPaymentResultMode1"),
					)),
				)),
				Field("ZpPaymentErrorCode", buildErrorCodeSchema(doc.ErrorRows)),
			)),
		)),
	)
}

// infoDescription renders the multi-line info description block.
func infoDescription(meta Metadata) string {
	return "This OpenAPI 3.1 document is intentionally not a server-side REST API specification.\n\n" +
		"It exists so OpenAPI-capable tooling can consume a single canonical spec describing:\n" +
		"- JavaScript plugin init options passed to `$.zpPayment(options)`\n" +
		"- Result payloads delivered via redirect URL query string and/or callbackUrl\n\n" +
		"Source page: " + meta.URL + "\n" +
		"HTML SHA256: " + meta.HTMLSHA256
}

// assetValue renders an asset href, keeping explicit null for missing links.
func assetValue(asset AssetRef) Value {
	if asset.Href == "" {
		return Null()
	}

	return Text(asset.Href)
}

// schemaRef builds one local component schema reference.
func schemaRef(name string) Value {
	return Mapping(Field("$ref", Text("#/components/schemas/"+name)))
}

// asString returns raw as string or empty text for other types.
func asString(raw any) string {
	text, _ := raw.(string)
	return text
}

// asMap returns raw as object map or nil for other types.
func asMap(raw any) map[string]any {
	object, _ := raw.(map[string]any)
	return object
}

// asSlice returns raw as value list or nil for other types.
func asSlice(raw any) []any {
	items, _ := raw.([]any)
	return items
}
