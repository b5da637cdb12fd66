package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInput_ResolveContent(t *testing.T) {
	input := textInput{Content: "Hello NASA World."}
	text, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Hello NASA World.", text)
}

func TestTextInput_ResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("Read `The Manual` First."), 0o600))

	input := textInput{File: path}
	text, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Read `The Manual` First.", text)
}

func TestTextInput_ResolveNoneProvided(t *testing.T) {
	input := textInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of content or file must be provided")
}

func TestTextInput_ResolveMultipleProvided(t *testing.T) {
	input := textInput{Content: "foo", File: "bar.md"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of content or file must be provided")
}

func TestTextInput_ResolveFileNotFound(t *testing.T) {
	input := textInput{File: "/nonexistent/path.md"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestTextInput_ResolveFileInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o600))

	input := textInput{File: path}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestTextInput_ResolveFileTooLarge(t *testing.T) {
	origCfg := cfg
	cfg = &serverConfig{MaxInputBytes: 8, SpanLimit: 200, FileInput: true}
	t.Cleanup(func() { cfg = origCfg })

	path := filepath.Join(t.TempDir(), "big.md")
	require.NoError(t, os.WriteFile(path, []byte("This Text Is Longer Than Eight Bytes."), 0o600))

	input := textInput{File: path}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}

func TestTextInput_ResolveContentTooLarge(t *testing.T) {
	origCfg := cfg
	cfg = &serverConfig{MaxInputBytes: 8, SpanLimit: 200, FileInput: true}
	t.Cleanup(func() { cfg = origCfg })

	input := textInput{Content: "This Text Is Longer Than Eight Bytes."}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inline content size")
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}

func TestTextInput_ResolveFileInputDisabled(t *testing.T) {
	origCfg := cfg
	cfg = &serverConfig{MaxInputBytes: 10 * 1024 * 1024, SpanLimit: 200, FileInput: false}
	t.Cleanup(func() { cfg = origCfg })

	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("Some Text."), 0o600))

	input := textInput{File: path}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file input is disabled")

	// Inline content still works with file input disabled.
	text, err := textInput{Content: "Some Text."}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Some Text.", text)
}
