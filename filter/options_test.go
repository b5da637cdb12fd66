package filter

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessWithOptions_FilePath tests the functional options API with file path
func TestProcessWithOptions_FilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("Hello World."), 0o644))

	result, err := ProcessWithOptions(
		WithFilePath(path),
	)
	require.NoError(t, err)
	assert.Equal(t, "hello World.", result.Output)
	assert.Equal(t, path, result.SourcePath)
}

// TestProcessWithOptions_Reader tests the functional options API with io.Reader
func TestProcessWithOptions_Reader(t *testing.T) {
	result, err := ProcessWithOptions(
		WithReader(strings.NewReader("Keep `Code` Safe.")),
	)
	require.NoError(t, err)
	assert.Equal(t, "keep `Code` Safe.", result.Output)
	assert.Empty(t, result.SourcePath)
}

// TestProcessWithOptions_Bytes tests the functional options API with byte slice
func TestProcessWithOptions_Bytes(t *testing.T) {
	result, err := ProcessWithOptions(
		WithBytes([]byte("NASA Is Busy.")),
	)
	require.NoError(t, err)
	assert.Equal(t, "nASA Is Busy.", result.Output)
}

// TestProcessWithOptions_String tests the functional options API with a string
func TestProcessWithOptions_String(t *testing.T) {
	result, err := ProcessWithOptions(
		WithString("Tell Me More!"),
	)
	require.NoError(t, err)
	assert.Equal(t, "tell Me More!", result.Output)
}

// TestProcessWithOptions_URL tests fetching input over HTTP
func TestProcessWithOptions_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Remote Text Here."))
	}))
	defer server.Close()

	result, err := ProcessWithOptions(
		WithFilePath(server.URL),
	)
	require.NoError(t, err)
	assert.Equal(t, "remote Text Here.", result.Output)
	assert.Equal(t, server.URL, result.SourcePath)
}

// TestProcessWithOptions_UserAgent tests that user agent option is applied
func TestProcessWithOptions_UserAgent(t *testing.T) {
	receivedUA := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Some Body."))
	}))
	defer server.Close()

	customUA := "custom-user-agent/1.0"
	_, err := ProcessWithOptions(
		WithFilePath(server.URL),
		WithUserAgent(customUA),
	)
	require.NoError(t, err)
	assert.Equal(t, customUA, receivedUA)
}

// TestProcessWithOptions_DefaultUserAgent tests the default User-Agent header
func TestProcessWithOptions_DefaultUserAgent(t *testing.T) {
	receivedUA := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Some Body."))
	}))
	defer server.Close()

	_, err := ProcessWithOptions(
		WithFilePath(server.URL),
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receivedUA, "lowher/"), "expected lowher/ prefix, got %q", receivedUA)
}

// TestProcessWithOptions_HTTPError tests non-200 responses
func TestProcessWithOptions_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := ProcessWithOptions(
		WithFilePath(server.URL),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

// TestProcessWithOptions_MissingFile tests error for a nonexistent file
func TestProcessWithOptions_MissingFile(t *testing.T) {
	_, err := ProcessWithOptions(
		WithFilePath(filepath.Join(t.TempDir(), "does-not-exist.md")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

// TestProcessWithOptions_InvalidUTF8 tests rejection of invalid UTF-8 input
func TestProcessWithOptions_InvalidUTF8(t *testing.T) {
	_, err := ProcessWithOptions(
		WithBytes([]byte{0xff, 0xfe, 0xfd}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

// TestProcessWithOptions_Flags tests that casing options are applied
func TestProcessWithOptions_Flags(t *testing.T) {
	input := "Mark Said Hello."

	t.Run("lowercase all", func(t *testing.T) {
		result, err := ProcessWithOptions(
			WithString(input),
			WithPreserveCapitalized(false),
		)
		require.NoError(t, err)
		assert.Equal(t, "mark said hello.", result.Output)
	})

	t.Run("preserve sentence case", func(t *testing.T) {
		result, err := ProcessWithOptions(
			WithString(input),
			WithPreserveSentenceCase(true),
		)
		require.NoError(t, err)
		assert.Equal(t, "Mark Said Hello.", result.Output)
		assert.False(t, result.Stats.Changed)
	})
}

// TestProcessWithOptions_NoInputSource tests error when no input source is specified
func TestProcessWithOptions_NoInputSource(t *testing.T) {
	_, err := ProcessWithOptions(
		WithPreserveCapitalized(false),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
}

// TestProcessWithOptions_MultipleInputSources tests error when multiple input sources are specified
func TestProcessWithOptions_MultipleInputSources(t *testing.T) {
	_, err := ProcessWithOptions(
		WithString("One Source."),
		WithBytes([]byte("Another Source.")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify exactly one input source")
}

// TestProcessWithOptions_NilReader tests error when nil reader is provided
func TestProcessWithOptions_NilReader(t *testing.T) {
	_, err := ProcessWithOptions(
		WithReader(nil),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader cannot be nil")
}

// TestProcessWithOptions_NilBytes tests error when nil bytes are provided
func TestProcessWithOptions_NilBytes(t *testing.T) {
	_, err := ProcessWithOptions(
		WithBytes(nil),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytes cannot be nil")
}

// TestProcessWithOptions_SourceName tests the source name override
func TestProcessWithOptions_SourceName(t *testing.T) {
	result, err := ProcessWithOptions(
		WithString("From Stdin."),
		WithSourceName("<stdin>"),
	)
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", result.SourcePath)
}

// TestProcessWithOptions_EmptySourceName tests error for an empty source name
func TestProcessWithOptions_EmptySourceName(t *testing.T) {
	_, err := ProcessWithOptions(
		WithString("Text."),
		WithSourceName(""),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source name cannot be empty")
}

func TestApplyOptions_Defaults(t *testing.T) {
	cfg, err := applyOptions(WithString("Text."))

	require.NoError(t, err)
	assert.True(t, cfg.preserveCapitalized, "default preserveCapitalized should be true")
	assert.False(t, cfg.preserveSentenceCase, "default preserveSentenceCase should be false")
	assert.NotEmpty(t, cfg.userAgent, "default userAgent should be set")
}

// TestApplyOptions_OverrideDefaults tests that options override defaults
func TestApplyOptions_OverrideDefaults(t *testing.T) {
	cfg, err := applyOptions(
		WithString("Text."),
		WithPreserveCapitalized(false),
		WithPreserveSentenceCase(true),
		WithUserAgent("custom/1.0"),
	)

	require.NoError(t, err)
	assert.False(t, cfg.preserveCapitalized)
	assert.True(t, cfg.preserveSentenceCase)
	assert.Equal(t, "custom/1.0", cfg.userAgent)
}

// TestWithLogger tests the logger option
func TestWithLogger(t *testing.T) {
	t.Run("nil logger", func(t *testing.T) {
		cfg := &processConfig{}
		opt := WithLogger(nil)
		err := opt(cfg)

		require.NoError(t, err)
		assert.Nil(t, cfg.logger)
	})

	t.Run("with NopLogger", func(t *testing.T) {
		cfg := &processConfig{}
		opt := WithLogger(NopLogger{})
		err := opt(cfg)

		require.NoError(t, err)
		assert.NotNil(t, cfg.logger)
	})

	t.Run("with SlogAdapter", func(t *testing.T) {
		cfg := &processConfig{}
		logger := NewSlogAdapter(nil)
		opt := WithLogger(logger)
		err := opt(cfg)

		require.NoError(t, err)
		assert.Equal(t, logger, cfg.logger)
	})
}

// TestWithHTTPClient tests the HTTP client option
func TestWithHTTPClient(t *testing.T) {
	t.Run("custom client is used", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Via Custom Client."))
		}))
		defer server.Close()

		result, err := ProcessWithOptions(
			WithFilePath(server.URL),
			WithHTTPClient(server.Client()),
		)
		require.NoError(t, err)
		assert.Equal(t, "via Custom Client.", result.Output)
	})

	t.Run("nil client keeps default", func(t *testing.T) {
		cfg := &processConfig{}
		err := WithHTTPClient(nil)(cfg)
		require.NoError(t, err)
		assert.Nil(t, cfg.httpClient)
	})
}

// TestFilterLog tests the log() helper method
func TestFilterLog(t *testing.T) {
	t.Run("returns NopLogger when Logger is nil", func(t *testing.T) {
		f := &Filter{}
		logger := f.log()
		_, ok := logger.(NopLogger)
		assert.True(t, ok, "expected NopLogger when Logger is nil")
	})

	t.Run("returns configured logger", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		f := &Filter{Logger: adapter}
		logger := f.log()
		assert.Equal(t, adapter, logger)
	})
}
