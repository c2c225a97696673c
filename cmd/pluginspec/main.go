// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginspec

// pluginspec converts zpPayment documentation extracts into OpenAPI 3.1
// schema documents and markdown reports.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/pluginspec"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/pluginspec"
	_buildTime string
)

// cliOptions describes pluginspec CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Convert  convertCommand  `command:"convert" description:"Convert extraction snapshot to OpenAPI 3.1 YAML or JSON"`
	Markdown markdownCommand `command:"markdown" description:"Render extraction snapshot as markdown report"`
	Example  exampleCommand  `command:"example" description:"Generate example plugin init options payload"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
}

// convertCommand converts one extraction snapshot into an OpenAPI document.
type convertCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input extraction snapshot JSON path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output document path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format   string `short:"f" long:"format" description:"Output document format" choice:"auto" choice:"yaml" choice:"json" default:"auto"`
	NoVerify bool   `short:"n" long:"no-verify" description:"Skip YAML round-trip self-verification"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(command.Args.Input, command.Args.Output, command.Format, command.NoVerify)
}

// markdownCommand renders one extraction snapshot as markdown.
type markdownCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input extraction snapshot JSON path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Title        string `short:"T" long:"title" description:"Markdown document title" default:"TravelPay Demo Extract"`
	TemplatePath string `short:"t" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
}

// Execute runs markdown subcommand.
func (command *markdownCommand) Execute(_ []string) error {
	return command.runner.runMarkdown(command.Args.Input, command.Args.Output, command.Title, command.TemplatePath)
}

// exampleCommand generates an example init options payload.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input extraction snapshot JSON path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output payload path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Mode   string `short:"m" long:"mode" description:"Property coverage" choice:"all" choice:"required" default:"all"`
	Format string `short:"f" long:"format" description:"Output payload format" choice:"auto" choice:"yaml" choice:"json" default:"auto"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Input, command.Args.Output, command.Mode, command.Format)
}

// templateCommand exports the built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "pluginspec"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runConvert executes the snapshot-to-OpenAPI flow.
func (runner *cliRunner) runConvert(inputPath, outputPath, format string, noVerify bool) error {
	data, err := runner.readSnapshotInput(inputPath)
	if err != nil {
		return fmt.Errorf("read snapshot input: %w", err)
	}

	doc, err := pluginspec.ParseExtract(data)
	if err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	root := pluginspec.BuildOpenAPI(doc)

	var rendered []byte
	switch resolveConvertFormat(format, outputPath) {
	case "json":
		rendered, err = pluginspec.EncodeJSON(root)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		encoded, err := pluginspec.EncodeYAML(root)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if !noVerify {
			if err := pluginspec.VerifyEncoding(encoded, root); err != nil {
				return fmt.Errorf("verify yaml output: %w", err)
			}
		}

		rendered = []byte(encoded)
	}

	return runner.writeOutput(rendered, outputPath, "document")
}

// runMarkdown executes the snapshot-to-markdown flow.
func (runner *cliRunner) runMarkdown(inputPath, outputPath, title, templatePath string) error {
	data, err := runner.readSnapshotInput(inputPath)
	if err != nil {
		return fmt.Errorf("read snapshot input: %w", err)
	}

	doc, err := pluginspec.ParseExtract(data)
	if err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	renderOptions := pluginspec.MarkdownOptions{Title: title}
	if templatePath != "" {
		customTemplate, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", templatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := pluginspec.RenderMarkdown(doc, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput([]byte(rendered), outputPath, "markdown")
}

// runExample executes the snapshot-to-example-payload flow.
func (runner *cliRunner) runExample(inputPath, outputPath, mode, format string) error {
	data, err := runner.readSnapshotInput(inputPath)
	if err != nil {
		return fmt.Errorf("read snapshot input: %w", err)
	}

	doc, err := pluginspec.ParseExtract(data)
	if err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	example, err := pluginspec.GenerateExample(pluginspec.BuildOpenAPI(doc), pluginspec.ExampleMode(mode))
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	var rendered []byte
	if resolveConvertFormat(format, outputPath) == "json" {
		rendered, err = pluginspec.EncodeJSON(example)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	} else {
		encoded, err := pluginspec.EncodeYAML(example)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		rendered = []byte(encoded)
	}

	return runner.writeOutput(rendered, outputPath, "example payload")
}

// runTemplate writes the built-in template to stdout or file.
func (runner *cliRunner) runTemplate(outputPath string) error {
	tpl, err := pluginspec.BuiltinMarkdownTemplate()
	if err != nil {
		return fmt.Errorf("load built-in template: %w", err)
	}

	return runner.writeOutput([]byte(tpl), outputPath, "template")
}

// resolveConvertFormat picks the output format; auto follows the output file
// extension and defaults to YAML.
func resolveConvertFormat(format, outputPath string) string {
	if format != "" && format != "auto" {
		return format
	}

	if strings.EqualFold(filepath.Ext(strings.TrimSpace(outputPath)), ".json") {
		return "json"
	}

	return "yaml"
}

// readSnapshotInput reads snapshot JSON from file path or stdin.
func (runner *cliRunner) readSnapshotInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read snapshot file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read snapshot from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read snapshot from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes rendered bytes to stdout or the selected file.
func (runner *cliRunner) writeOutput(data []byte, outputPath, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Convert.runner = runner
	options.Markdown.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert an extraction snapshot into an OpenAPI 3.1 schema document.
Reads snapshot JSON from file argument or stdin; writes YAML or JSON to file argument or stdout.
With --format auto the output format follows the output file extension and defaults to YAML.

Examples:
> $ %s convert extract.json > plugin.yaml
> $ %s convert --format json extract.json plugin.json
> $ cat extract.json | %s convert --no-verify
`, programName, programName, programName)),
		"markdown": strings.TrimSpace(fmt.Sprintf(`
Render an extraction snapshot as a human-readable markdown report.

Examples:
> $ %s markdown extract.json > plugin.md
> $ %s markdown -T "Payment Plugin" -t custom.gotmpl extract.json docs/plugin.md
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate an example init options payload for the documented plugin call.
Values come from schema examples, enums and consts; other fields get type placeholders.

Examples:
> $ %s example extract.json
> $ %s example --mode required --format json extract.json options.json
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > plugin.gotmpl
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
