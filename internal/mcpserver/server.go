// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the lowher text filter as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/lowher/lowher"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `lowher MCP server — lowercases prose while keeping acronyms, code spans, and capitalized words intact.

Configuration: All defaults are configurable via LOWHER_MCP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- LOWHER_MCP_MAX_INPUT_BYTES (default: 10485760) — cap on inline content and file input sizes
- LOWHER_MCP_SPAN_LIMIT (default: 200) — maximum spans returned by the code_spans tool
- LOWHER_MCP_FILE_INPUT (default: true) — allow file inputs; disable on shared hosts to accept inline content only`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "lowher", Version: lowher.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lower",
		Description: "Lowercase prose while keeping all-uppercase acronyms and backtick code spans (inline and fenced) intact. Capitalized words are kept by default; set lowercase_all=true to lowercase them too. Set preserve_sentence_case=true to keep the first letter of each sentence. Provide text inline via content or as a file path. Input size cap is configurable via LOWHER_MCP_MAX_INPUT_BYTES.",
	}, handleLower)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "code_spans",
		Description: "Extract backtick code spans from text without transforming it. Returns each span's index, byte offsets, fenced flag, and verbatim text. Output is capped at LOWHER_MCP_SPAN_LIMIT spans (default 200) with a truncated marker when more exist.",
	}, handleCodeSpans)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
