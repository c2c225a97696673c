// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConvertWritesYAMLToStdout(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() == 0 {
		t.Fatal("stdout is empty")
	}

	assertContains(t, stdout.String(), "openapi: 3.1.0")
	assertContains(t, stdout.String(), "ZpPaymentInitOptions:")
	assertContains(t, stdout.String(), "x-javascript-plugin:")
}

func TestRunConvertWritesJSONWithFormatFlag(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--format", "json", snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), `"openapi": "3.1.0"`)
	assertContains(t, stdout.String(), `"ZpPaymentErrorCode"`)
	assertNotContains(t, stdout.String(), "openapi: 3.1.0")
}

func TestRunConvertAutoFormatFollowsOutputExtension(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	outPath := filepath.Join(t.TempDir(), "plugin.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", snapshotPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}

	assertContains(t, string(content), `"openapi": "3.1.0"`)
}

func TestRunConvertFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(snapshotFixtureJSON)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "openapi: 3.1.0")
}

func TestRunMarkdownWritesReportToStdout(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"markdown", snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# TravelPay Demo Extract")
	assertContains(t, stdout.String(), "## Input Parameters")
	assertContains(t, stdout.String(), "**mode**")
}

func TestRunMarkdownCustomTitleAndOutputFile(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	outPath := filepath.Join(t.TempDir(), "plugin.md")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"markdown", "--title", "Payment Plugin", snapshotPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}

	assertContains(t, string(content), "# Payment Plugin")
}

func TestRunMarkdownWithTemplateFile(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	customTemplatePath := filepath.Join(t.TempDir(), "custom.gotmpl")
	if err := os.WriteFile(customTemplatePath, []byte("# custom\nsource {{ .SourceURL }}\n"), 0o600); err != nil {
		t.Fatalf("write custom template: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"markdown", "--template-file", customTemplatePath, snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# custom")
	assertContains(t, stdout.String(), "source `https://demo.travelpay.com.au/OnlinePlugin/Documentation`")
}

func TestRunExampleRequiredMode(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "--mode", "required", snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "apiKey: '<string>'")
	assertContains(t, stdout.String(), "mode: 0")
	assertNotContains(t, stdout.String(), "customerName")
}

func TestRunExampleJSONFormat(t *testing.T) {
	t.Parallel()

	snapshotPath := writeSnapshotFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "--format", "json", snapshotPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), `"mode": 0`)
	assertContains(t, stdout.String(), `"timestamp": "2025-12-13T09:56:03"`)
}

func TestRunTemplateStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# {{ .Title }}")
	assertContains(t, stdout.String(), "## Error Codes")
}

func TestRunReturnsErrorForMissingInputFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "read snapshot input:")
}

func TestRunReturnsErrorForMalformedSnapshot(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("{ not json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, stdin, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "parse snapshot:")
}

func TestRunReturnsErrorForMissingCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunReturnsErrorForUnknownFormat(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--format", "xml"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "Invalid value")
}

const snapshotFixtureJSON = `{
  "metadata": {
    "url": "https://demo.travelpay.com.au/OnlinePlugin/Documentation",
    "extracted_at": "2025-12-13T09:56:03Z",
    "html_sha256": "ab12cd34"
  },
  "sections": {
    "code_sample": {
      "code": "var payment = $.zpPayment({ apiKey: 'key' });\npayment.init();",
      "assets": {
        "stylesheet": { "href": "/Content/plugin.css", "display": "plugin.css" },
        "javascript": { "href": "/Scripts/zpPayment.js", "display": "zpPayment.js" }
      },
      "notes": ["Include jQuery before the plugin script."]
    },
    "input_parameters": {
      "rows": [
        { "Field Name": "apiKey", "Data Type": "String", "Conditional": "Required", "Remarks": "Provided by Zenith Payments." },
        { "Field Name": "mode", "Data Type": "Int", "Conditional": "Required", "Remarks": "0 - Payment\n1 - Tokenisation\n2 - Preauth" },
        { "Field Name": "customerName", "Data Type": "String", "Conditional": "Optional", "Remarks": "Required if mode is set to 0 or 2." },
        { "Field Name": "timestamp", "Data Type": "String", "Conditional": "Required", "Remarks": "UTC ISO 8601." }
      ]
    },
    "return_parameters": {
      "tables": [
        {
          "label": "Values returned for mode 0 and 2",
          "rows": [
            { "Parameter": "result", "Value": "0 => Approved\n1 => Declined" }
          ]
        },
        {
          "label": "Values returned for mode 1",
          "rows": [
            { "Parameter": "token", "Value": "Tokenised card reference." }
          ]
        }
      ]
    },
    "error_codes": {
      "rows": [
        { "Error Code": "TP*", "Description": "Gateway rejection family." },
        { "Error Code": "100", "Description": "Invalid api key." }
      ]
    }
  }
}`

func writeSnapshotFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "extract.json")
	if err := os.WriteFile(path, []byte(snapshotFixtureJSON), 0o600); err != nil {
		t.Fatalf("write snapshot fixture: %v", err)
	}

	return path
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
