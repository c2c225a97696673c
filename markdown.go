// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// defaultMarkdownTitle heads the rendered document when none is given.
const defaultMarkdownTitle = "TravelPay Demo Extract"

// builtinTemplatePath is the embedded markdown template file.
const builtinTemplatePath = "templates/plugin.md.gotmpl"

// templateFS stores the built-in markdown template embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// MarkdownOptions controls markdown rendering.
type MarkdownOptions struct {
	// Title overrides the document heading.
	Title string
	// TemplateText replaces the built-in template when non-empty.
	TemplateText string
}

// RenderMarkdown renders one extraction snapshot as a human-readable markdown
// document. Output is normalized: no blank line runs outside code fences and
// exactly one trailing newline.
func RenderMarkdown(doc ExtractedDoc, opt MarkdownOptions) (string, error) {
	parsed, err := resolveMarkdownTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := parsed.Execute(&out, buildMarkdownView(doc, opt)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinMarkdownTemplate returns the embedded markdown template text.
func BuiltinMarkdownTemplate() (string, error) {
	data, err := templateFS.ReadFile(builtinTemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrReadBuiltinTemplate, builtinTemplatePath, err)
	}

	return string(data), nil
}

// resolveMarkdownTemplate parses either the custom or the built-in template.
func resolveMarkdownTemplate(opt MarkdownOptions) (*template.Template, error) {
	templateText := strings.TrimSpace(opt.TemplateText)
	name := "custom"
	if templateText == "" {
		builtin, err := BuiltinMarkdownTemplate()
		if err != nil {
			return nil, err
		}

		templateText = builtin
		name = "builtin"
	}

	parsed, err := template.New(name).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseMarkdownTemplate, name, err)
	}

	return parsed, nil
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks
// and trims trailing whitespace per line.
func normalizeMarkdownOutput(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)
			blankCount = 0
			continue
		}

		if !inFence && trimmed == "" {
			if blankCount == 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
