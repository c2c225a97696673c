// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

/*
Package pluginspec converts scraped zpPayment plugin documentation into an
OpenAPI 3.1 schema-container document and into CommonMark reference text.

The package works on an extraction snapshot: the JSON document produced by the
page scraper, holding the code sample, input parameter rows, per-mode return
parameter tables and error code rows. Conversion is a pure in-memory
transformation; no network or HTML parsing happens here.

Convert a snapshot into block-style YAML:

	snapshot, err := os.ReadFile("travelpay_demo.json")
	if err != nil {
		return err
	}

	doc, err := pluginspec.ParseExtract(snapshot)
	if err != nil {
		return err
	}

	spec := pluginspec.BuildOpenAPI(doc)
	text, err := pluginspec.EncodeYAML(spec)
	if err != nil {
		return err
	}

	fmt.Print(text)

Emit the same document as ordered JSON instead:

	data, err := pluginspec.EncodeJSON(spec)
	if err != nil {
		return err
	}

	os.Stdout.Write(data)

Check that the hand-rolled YAML output reparses into the same structure:

	if err := pluginspec.VerifyEncoding(text, spec); err != nil {
		return err
	}

Render markdown reference documentation:

	md, err := pluginspec.RenderMarkdown(doc, pluginspec.MarkdownOptions{
		Title: "TravelPay Demo Extract",
	})
	if err != nil {
		return err
	}

	fmt.Print(md)

Generate an example init options payload from the built schema:

	payload, err := pluginspec.GenerateExample(spec, pluginspec.ExampleModeRequired)
	if err != nil {
		return err
	}

	text, err = pluginspec.EncodeYAML(payload)
	if err != nil {
		return err
	}

	fmt.Print(text)
*/
package pluginspec
