// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"strconv"
	"strings"
)

// markdownView is the root view model passed to the markdown template.
type markdownView struct {
	Title       string
	SourceURL   string
	ExtractedAt string
	HTMLSHA256  string
	AssetLines  string
	Code        string
	Notes       []string
	InputList   string
	Results     []resultSectionView
	ErrorList   string
}

// resultSectionView is one labeled return parameter section.
type resultSectionView struct {
	Label string
	List  string
}

// buildMarkdownView prepares preformatted markdown fragments for the
// template. All escaping happens here; the template only places blocks.
func buildMarkdownView(doc ExtractedDoc, opt MarkdownOptions) markdownView {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultMarkdownTitle
	}

	view := markdownView{
		Title:       title,
		SourceURL:   mdInlineCode(doc.Metadata.URL),
		ExtractedAt: mdInlineCode(doc.Metadata.ExtractedAt),
		HTMLSHA256:  doc.Metadata.HTMLSHA256,
		AssetLines:  assetLines(doc.CodeSample),
		Code:        cleanCode(doc.CodeSample.Code),
		Notes:       doc.CodeSample.Notes,
		InputList:   inputBulletList(doc.InputRows),
		ErrorList:   keyValueBulletList(doc.ErrorRows, columnErrorCode, columnDescription),
	}

	if view.HTMLSHA256 != "" {
		view.HTMLSHA256 = mdInlineCode(view.HTMLSHA256)
	}

	view.Results = make([]resultSectionView, 0, len(doc.ResultTables))
	for i, table := range doc.ResultTables {
		label := strings.TrimSpace(table.Label)
		if label == "" {
			label = "Table " + strconv.Itoa(i)
		}

		view.Results = append(view.Results, resultSectionView{
			Label: label,
			List:  keyValueBulletList(table.Rows, columnParameter, columnValue),
		})
	}

	return view
}

// assetLines formats the asset reference bullets, skipping absent assets.
func assetLines(sample CodeSample) string {
	lines := make([]string, 0, 2)
	for _, asset := range []struct {
		name string
		ref  AssetRef
	}{
		{"Stylesheet", sample.Stylesheet},
		{"Javascript", sample.Javascript},
	} {
		if asset.ref.Href == "" && asset.ref.Display == "" {
			continue
		}

		lines = append(lines, "- "+asset.name+": "+mdInlineCode(asset.ref.Display)+" ("+asset.ref.Href+")")
	}

	return strings.Join(lines, "\n")
}

// inputBulletList renders input parameter rows as markdown bullets. Rows with
// a blank field name are skipped; multi-line remarks become nested bullets
// because wide cells are unreadable as table columns.
func inputBulletList(rows []Row) string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		field := inputFieldName(row)
		if field == "" {
			continue
		}

		label := "**" + mdEscapeBold(field) + "**" + inputBulletMeta(row)
		out = appendBulletLines(out, label, nonBlankLines(row[columnRemarks]))
	}

	return strings.Join(out, "\n")
}

// keyValueBulletList renders key/value rows as markdown bullets.
func keyValueBulletList(rows []Row, keyColumn, valueColumn string) string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(row[keyColumn])
		if key == "" {
			continue
		}

		label := "**" + mdEscapeBold(key) + "**"
		out = appendBulletLines(out, label, nonBlankLines(row[valueColumn]))
	}

	return strings.Join(out, "\n")
}

// appendBulletLines emits one bullet with inline or nested detail lines.
func appendBulletLines(out []string, label string, details []string) []string {
	switch len(details) {
	case 0:
		return append(out, "- "+label)
	case 1:
		return append(out, "- "+label+" — "+details[0])
	default:
		out = append(out, "- "+label)
		for _, line := range details {
			out = append(out, "  - "+line)
		}

		return out
	}
}

// inputFieldName reads the field name cell, accepting the legacy column name.
func inputFieldName(row Row) string {
	field := strings.TrimSpace(row[columnFieldName])
	if field == "" {
		field = strings.TrimSpace(row["Field"])
	}

	return field
}

// inputBulletMeta formats the "(type, conditional)" suffix for one row.
func inputBulletMeta(row Row) string {
	parts := make([]string, 0, 2)
	for _, column := range []string{columnDataType, columnConditional} {
		if text := strings.Join(strings.Fields(row[column]), " "); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return " (" + strings.Join(parts, ", ") + ")"
}

// nonBlankLines splits cell text into trimmed non-blank lines.
func nonBlankLines(text string) []string {
	out := make([]string, 0, 4)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// mdEscapeBold escapes characters that break **bold** markdown inside keys.
func mdEscapeBold(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "*", `\*`)
	return strings.ReplaceAll(text, "_", `\_`)
}

// mdInlineCode wraps text in inline code, escaping embedded backticks.
func mdInlineCode(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "``"
	}

	return "`" + strings.ReplaceAll(text, "`", "\\`") + "`"
}
