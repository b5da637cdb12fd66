package filter

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"unicode/utf8"

	"github.com/lowher/lowher"

	"github.com/lowher/lowher/internal/options"
)

// Option is a function that configures a filter run
type Option func(*processConfig) error

// processConfig holds configuration for one ProcessWithOptions run
type processConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	text     *string

	// Configuration options
	preserveCapitalized  bool
	preserveSentenceCase bool
	logger               Logger
	userAgent            string
	httpClient           *http.Client

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ProcessWithOptions runs the filter using functional options, combining
// input source selection and configuration in a single call.
//
// Example:
//
//	result, err := filter.ProcessWithOptions(
//	    filter.WithFilePath("notes.md"),
//	    filter.WithPreserveSentenceCase(true),
//	)
func ProcessWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("filter: invalid options: %w", err)
	}

	f := &Filter{
		PreserveCapitalized:  cfg.preserveCapitalized,
		PreserveSentenceCase: cfg.preserveSentenceCase,
		Logger:               cfg.logger,
	}

	var data []byte
	var sourcePath string
	loadStart := time.Now()
	switch {
	case cfg.filePath != nil:
		sourcePath = *cfg.filePath
		if isURL(sourcePath) {
			data, err = cfg.fetchURL(sourcePath)
		} else {
			data, err = os.ReadFile(sourcePath)
			if err != nil {
				err = fmt.Errorf("filter: failed to read file: %w", err)
			}
		}
	case cfg.reader != nil:
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			err = fmt.Errorf("filter: failed to read input: %w", err)
		}
	case cfg.bytes != nil:
		data = cfg.bytes
	case cfg.text != nil:
		data = []byte(*cfg.text)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("filter: no input source specified")
	}
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("filter: input is not valid UTF-8")
	}

	result := f.Process(string(data))
	result.SourcePath = sourcePath
	result.LoadTime = loadTime
	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*processConfig, error) {
	cfg := &processConfig{
		// Defaults match New
		preserveCapitalized: true,
		userAgent:           lowher.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"filter: must specify an input source (use WithFilePath, WithReader, WithBytes, or WithString)",
		"filter: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.text != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *processConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *processConfig) error {
		if r == nil {
			return fmt.Errorf("filter: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *processConfig) error {
		if data == nil {
			return fmt.Errorf("filter: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithString specifies a string as the input source
func WithString(text string) Option {
	return func(cfg *processConfig) error {
		cfg.text = &text
		return nil
	}
}

// WithPreserveCapitalized enables or disables keeping words whose first
// character is uppercase.
// Default: true
func WithPreserveCapitalized(enabled bool) Option {
	return func(cfg *processConfig) error {
		cfg.preserveCapitalized = enabled
		return nil
	}
}

// WithPreserveSentenceCase enables or disables keeping the first word of
// each sentence.
// Default: false
func WithPreserveSentenceCase(enabled bool) Option {
	return func(cfg *processConfig) error {
		cfg.preserveSentenceCase = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during the run.
// By default, no logging is performed (nil logger).
//
// Use NewSlogAdapter to wrap a *slog.Logger:
//
//	result, err := filter.ProcessWithOptions(
//	    filter.WithFilePath("notes.md"),
//	    filter.WithLogger(filter.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *processConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithUserAgent sets the User-Agent string for URL fetches
// Default: "lowher/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *processConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URLs.
// When set, the client is used as-is for all HTTP requests; configure TLS
// and proxy settings on the client's transport.
//
// If the client is nil, this option has no effect (default client is used).
//
// Example with custom timeout:
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	result, err := filter.ProcessWithOptions(
//	    filter.WithFilePath("https://example.com/notes.md"),
//	    filter.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *processConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithSourceName specifies a display name for the source, overriding the
// Result's SourcePath. This is useful when the input comes from a reader,
// bytes, or string and diagnostics should show something meaningful.
//
// Example:
//
//	result, err := filter.ProcessWithOptions(
//	    filter.WithReader(os.Stdin),
//	    filter.WithSourceName("<stdin>"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *processConfig) error {
		if name == "" {
			return fmt.Errorf("filter: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
