// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package pluginspec

import (
	"regexp"
	"strings"
)

// Formatting artifacts observed on the source page. The fixes preserve
// meaningful newlines inside cells.
var (
	// pipeParenPattern collapses "( newline | newline )" into "(|)".
	pipeParenPattern = regexp.MustCompile(`\(\s*\n\s*\|\s*\n\s*\)`)
	// danglingColonPattern joins "token \n : value" into "token: value".
	danglingColonPattern = regexp.MustCompile(`\n\s*:\s*`)
	// doubledColonPattern joins "token: : value" into "token: value".
	doubledColonPattern = regexp.MustCompile(`:\s*:\s*`)
	// trailingSpacePattern strips spaces before a line break.
	trailingSpacePattern = regexp.MustCompile(`[ \t]+\n`)
	// leadingSpacePattern strips spaces after a line break.
	leadingSpacePattern = regexp.MustCompile(`\n[ \t]+`)
	// squashSpacePattern collapses space runs inside a line.
	squashSpacePattern = regexp.MustCompile(`[ \t]{2,}`)
	// blankRunPattern collapses three and more blank lines into one.
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

// normalizeCellText fixes scrape artifacts in one table cell while keeping
// meaningful line breaks.
func normalizeCellText(text string) string {
	text = normalizeLineEndings(text)

	text = pipeParenPattern.ReplaceAllString(text, "(|)")
	text = danglingColonPattern.ReplaceAllString(text, ": ")
	text = doubledColonPattern.ReplaceAllString(text, ": ")

	lines := make([]string, 0, 8)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "*" || trimmed == "•" {
			continue
		}

		lines = append(lines, line)
	}

	text = strings.Join(lines, "\n")
	text = trailingSpacePattern.ReplaceAllString(text, "\n")
	text = leadingSpacePattern.ReplaceAllString(text, "\n")
	text = squashSpacePattern.ReplaceAllString(text, " ")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// cleanCode preserves indentation, normalizes newlines, strips outer blank
// lines and trims trailing spaces per line.
func cleanCode(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

// cleanProse flattens text to one line of prose.
func cleanProse(text string) string {
	return strings.Join(strings.Fields(normalizeCellText(text)), " ")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// curatedFingerprintRemarks returns the v5-only fingerprint guidance. The raw
// page mixes v3/v4/v5 advice in one remark block; only the SHA3-512 flow is
// current.
func curatedFingerprintRemarks() string {
	lines := []string{
		"Fingerprint (v5) is a SHA3-512 hash of the following pipe-delimited string:",
		"`apiKey|userName|password|mode|paymentAmount|merchantUniquePaymentId|timestamp`",
		"Credentials provided by Zenith Payments are case sensitive.",
		"Field notes:",
		"`apiKey`: refer apiKey parameter",
		"`userName`: provided by Zenith Payments",
		"`password`: provided by Zenith Payments",
		"`mode`: refer mode parameter",
		"`paymentAmount`: amount in cents without symbol (e.g. $150.53 => 15053). Pass 0 when mode is 2.",
		"`merchantUniquePaymentId`: refer merchantUniquePaymentId parameter",
		"`timestamp`: current datetime in UTC ISO 8601 format (yyyy-MM-ddTHH:mm:ss).",
	}

	return strings.Join(lines, "\n")
}

// curateExtract applies targeted curation to a decoded snapshot.
func curateExtract(doc ExtractedDoc) ExtractedDoc {
	for _, row := range doc.InputRows {
		field := strings.ToLower(strings.TrimSpace(row[columnFieldName]))
		if field == "fingerprint" {
			row[columnRemarks] = curatedFingerprintRemarks()
		}
	}

	return doc
}
