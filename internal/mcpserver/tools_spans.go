package mcpserver

import (
	"context"

	"github.com/lowher/lowher/codespan"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type codeSpansInput struct {
	Text textInput `json:"text" jsonschema:"The text to scan for code spans"`
}

type spanItem struct {
	Index  int    `json:"index"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Fenced bool   `json:"fenced"`
	Text   string `json:"text"`
}

type codeSpansOutput struct {
	SpanCount int        `json:"span_count"`
	Returned  int        `json:"returned"`
	Truncated bool       `json:"truncated,omitempty"`
	Spans     []spanItem `json:"spans,omitempty"`
}

func handleCodeSpans(_ context.Context, _ *mcp.CallToolRequest, input codeSpansInput) (*mcp.CallToolResult, codeSpansOutput, error) {
	text, err := input.Text.resolve()
	if err != nil {
		return errResult(err), codeSpansOutput{}, nil
	}

	_, spans := codespan.Extract(text)

	output := codeSpansOutput{SpanCount: len(spans)}
	returned := spans
	if len(returned) > cfg.SpanLimit {
		returned = returned[:cfg.SpanLimit]
		output.Truncated = true
	}

	output.Spans = makeSlice[spanItem](len(returned))
	for _, s := range returned {
		output.Spans = append(output.Spans, spanItem{
			Index:  s.Index,
			Start:  s.Start,
			End:    s.End,
			Fenced: s.Fenced(),
			Text:   s.Text,
		})
	}
	output.Returned = len(output.Spans)

	return nil, output, nil
}
