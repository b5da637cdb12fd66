package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lowher/lowher"
	"github.com/lowher/lowher/filter"
)

// FilterFlags contains the flags for a filter run
type FilterFlags struct {
	LowercaseAll         bool
	PreserveSentenceCase bool
	Output               string
	Format               string
	Stats                bool
	Test                 bool
	MCP                  bool
	Version              bool
}

// SetupFilterFlags creates and configures the FlagSet for the lowher CLI.
// Returns the FlagSet and a FilterFlags struct with bound flag variables.
func SetupFilterFlags() (*flag.FlagSet, *FilterFlags) {
	fs := flag.NewFlagSet("lowher", flag.ContinueOnError)
	flags := &FilterFlags{}

	fs.BoolVar(&flags.LowercaseAll, "a", false, "lowercase capitalized words too (all-uppercase acronyms are still kept)")
	fs.BoolVar(&flags.LowercaseAll, "lowercase-all", false, "lowercase capitalized words too (all-uppercase acronyms are still kept)")
	fs.BoolVar(&flags.PreserveSentenceCase, "s", false, "keep the first letter of each sentence uppercase")
	fs.BoolVar(&flags.PreserveSentenceCase, "preserve-sentence-case", false, "keep the first letter of each sentence uppercase")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Stats, "stats", false, "print processing statistics to stderr")
	fs.BoolVar(&flags.Test, "test", false, "print a built-in demonstration and exit")
	fs.BoolVar(&flags.MCP, "mcp", false, "serve the filter as an MCP server over stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version information and exit")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lowher [flags] [<file|url|->]\n\n")
		Writef(output, "Lowercase prose while keeping acronyms, code spans, and capitalized words intact.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nInput:\n")
		Writef(output, "  - Pass a file path or an http(s) URL\n")
		Writef(output, "  - Use '-' or no argument to read from stdin\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  lowher notes.md\n")
		Writef(output, "  lowher -a notes.md\n")
		Writef(output, "  lowher -s -o fixed.md notes.md\n")
		Writef(output, "  cat notes.md | lowher\n")
		Writef(output, "  lowher --format json notes.md\n")
		Writef(output, "  lowher https://example.com/notes.md\n")
	}

	return fs, flags
}

// HandleFilter executes a filter run from CLI arguments
func HandleFilter(args []string) error {
	fs, flags := SetupFilterFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Modes that bypass input processing
	switch {
	case flags.Version:
		Writef(os.Stdout, "lowher v%s\n", lowher.Version())
		return nil
	case flags.MCP:
		return HandleMCP()
	case flags.Test:
		return HandleSelfTest(os.Stdout)
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("expected at most one file path, URL, or '-' for stdin, got %d arguments", fs.NArg())
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputPath := StdinFilePath
	if fs.NArg() == 1 {
		inputPath = fs.Arg(0)
	}

	opts := []filter.Option{
		filter.WithPreserveCapitalized(!flags.LowercaseAll),
		filter.WithPreserveSentenceCase(flags.PreserveSentenceCase),
	}
	if inputPath == StdinFilePath {
		opts = append(opts,
			filter.WithReader(os.Stdin),
			filter.WithSourceName(FormatSourcePath(inputPath)),
		)
	} else {
		opts = append(opts, filter.WithFilePath(inputPath))
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, inputPath); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(filepath.Clean(flags.Output)); err != nil {
			return err
		}
	}

	result, err := filter.ProcessWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("processing input: %w", err)
	}

	rendered, err := RenderResult(result, flags.Format)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, rendered, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	} else {
		if _, err := os.Stdout.Write(rendered); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if flags.Stats {
		PrintStats(os.Stderr, result)
	}

	return nil
}

// filterReport is the structured report emitted for the json and yaml formats
type filterReport struct {
	Source        string `json:"source"         yaml:"source"`
	Output        string `json:"output"         yaml:"output"`
	SourceBytes   int    `json:"source_bytes"   yaml:"source_bytes"`
	OutputBytes   int    `json:"output_bytes"   yaml:"output_bytes"`
	CodeSpans     int    `json:"code_spans"     yaml:"code_spans"`
	FencedSpans   int    `json:"fenced_spans"   yaml:"fenced_spans"`
	InlineSpans   int    `json:"inline_spans"   yaml:"inline_spans"`
	Changed       bool   `json:"changed"        yaml:"changed"`
	LoadTime      string `json:"load_time"      yaml:"load_time"`
	TransformTime string `json:"transform_time" yaml:"transform_time"`
}

// RenderResult renders a filter result in the requested output format.
// Text format is the filtered text with a trailing newline; json and yaml
// produce a structured report.
func RenderResult(result *filter.Result, format string) ([]byte, error) {
	if format == FormatText {
		out := result.Output
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return []byte(out), nil
	}

	report := filterReport{
		Source:        result.SourcePath,
		Output:        result.Output,
		SourceBytes:   result.Stats.SourceBytes,
		OutputBytes:   result.Stats.OutputBytes,
		CodeSpans:     result.Stats.CodeSpans,
		FencedSpans:   result.Stats.FencedSpans,
		InlineSpans:   result.Stats.InlineSpans,
		Changed:       result.Stats.Changed,
		LoadTime:      result.LoadTime.String(),
		TransformTime: result.TransformTime.String(),
	}

	rendered, err := MarshalReport(report, format)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(string(rendered), "\n") {
		rendered = append(rendered, '\n')
	}
	return rendered, nil
}

// PrintStats writes processing statistics for a filter run.
func PrintStats(w io.Writer, result *filter.Result) {
	Writef(w, "lowher version: %s\n", lowher.Version())
	Writef(w, "Source: %s\n", result.SourcePath)
	Writef(w, "Source Size: %s\n", filter.FormatBytes(int64(result.Stats.SourceBytes)))
	Writef(w, "Output Size: %s\n", filter.FormatBytes(int64(result.Stats.OutputBytes)))
	Writef(w, "Code Spans: %d (%d fenced, %d inline)\n",
		result.Stats.CodeSpans, result.Stats.FencedSpans, result.Stats.InlineSpans)
	Writef(w, "Changed: %t\n", result.Stats.Changed)
	Writef(w, "Load Time: %v\n", result.LoadTime)
	Writef(w, "Transform Time: %v\n", result.TransformTime)
}
