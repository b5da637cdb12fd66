package mcpserver

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// textInput represents the two ways text can be provided to a tool.
// Exactly one of Content or File must be set.
type textInput struct {
	Content string `json:"content,omitempty" jsonschema:"Inline text to process"`
	File    string `json:"file,omitempty"    jsonschema:"Path to a text file on disk"`
}

// resolve loads the text from whichever input was provided, enforcing the
// configured size cap and UTF-8 validity.
func (t textInput) resolve() (string, error) {
	count := 0
	if t.Content != "" {
		count++
	}
	if t.File != "" {
		count++
	}
	if count != 1 {
		return "", fmt.Errorf("exactly one of content or file must be provided (got %d)", count)
	}

	if t.File != "" {
		if !cfg.FileInput {
			return "", fmt.Errorf("file input is disabled; provide inline content or set LOWHER_MCP_FILE_INPUT=true")
		}
		info, err := os.Stat(t.File)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		if info.Size() > cfg.MaxInputBytes {
			return "", fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set LOWHER_MCP_MAX_INPUT_BYTES to increase",
				info.Size(), cfg.MaxInputBytes)
		}
		data, err := os.ReadFile(t.File)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("file content is not valid UTF-8")
		}
		return string(data), nil
	}

	if int64(len(t.Content)) > cfg.MaxInputBytes {
		return "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set LOWHER_MCP_MAX_INPUT_BYTES to increase",
			len(t.Content), cfg.MaxInputBytes)
	}
	return t.Content, nil
}
