// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

// fendoc generates HTML documentation from fen source trees.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/fenlang/fendoc"
	"github.com/fenlang/fendoc/checker"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/fenlang/fendoc"
	_buildTime string
)

// cliOptions describes fendoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate HTML documentation for a fen source tree"`
	Template templateCommand `command:"template" description:"Print the built-in module page template"`
}

// generateCommand runs the documentation pipeline over one source tree.
type generateCommand struct {
	runner *cliRunner

	ConfigPath string `short:"c" long:"config" description:"Path to fendoc.yaml configuration file"`
	LogLevel   string `long:"log-level" description:"Log level: debug, info, warn or error (default: info)"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Input source tree root (optional when set in config file)"`
		Output string `positional-arg-name:"output" description:"Output documentation root (optional when set in config file)"`
	} `positional-args:"yes"`
}

// Execute runs the generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.ConfigPath, command.LogLevel, command.Args.Input, command.Args.Output)
}

// templateCommand exports the built-in module page template.
type templateCommand struct {
	runner *cliRunner

	Args struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
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

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "fendoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
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

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// runGenerate loads settings, configures logging and runs the full pipeline.
func (runner *cliRunner) runGenerate(configPath, logLevel, input, output string) error {
	var config fileConfig
	if strings.TrimSpace(configPath) != "" {
		loaded, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}

		config = loaded
	}

	settings, err := resolveRunSettings(config, input, output, logLevel)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{
		Level: settings.LogLevel,
	})))

	if err := fendoc.GenerateForPath(checker.New(), settings.Input, settings.Output); err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	slog.Info("Documentation generated",
		slog.String("input", settings.Input),
		slog.String("output", settings.Output))

	return nil
}

// runTemplate writes the built-in module template to stdout or file.
func (runner *cliRunner) runTemplate(outputPath string) error {
	text, err := fendoc.ModuleTemplate()
	if err != nil {
		return fmt.Errorf("load module template: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one HTML page per .fen file found under the input root, mirroring
the tree layout under the output root. Roots may come from positional
arguments or from a fendoc.yaml configuration file; arguments win.

Examples:
> $ %s generate std doc/std
> $ %s generate -c fendoc.yaml --log-level debug
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print the embedded module page template text.
Use it as a starting point for a fork that ships its own template.

Examples:
> $ %s template > module.html.gotmpl
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

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
