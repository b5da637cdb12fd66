package mcpserver

import (
	"context"

	"github.com/lowher/lowher/filter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type lowerInput struct {
	Text                 textInput `json:"text"                             jsonschema:"The text to filter"`
	LowercaseAll         bool      `json:"lowercase_all,omitempty"          jsonschema:"Lowercase capitalized words too (all-uppercase acronyms are still kept)"`
	PreserveSentenceCase bool      `json:"preserve_sentence_case,omitempty" jsonschema:"Keep the first letter of each sentence uppercase"`
}

type lowerOutput struct {
	Output        string `json:"output"`
	SourceBytes   int    `json:"source_bytes"`
	OutputBytes   int    `json:"output_bytes"`
	CodeSpans     int    `json:"code_spans"`
	FencedSpans   int    `json:"fenced_spans"`
	InlineSpans   int    `json:"inline_spans"`
	Changed       bool   `json:"changed"`
	TransformTime string `json:"transform_time"`
}

func handleLower(_ context.Context, _ *mcp.CallToolRequest, input lowerInput) (*mcp.CallToolResult, lowerOutput, error) {
	text, err := input.Text.resolve()
	if err != nil {
		return errResult(err), lowerOutput{}, nil
	}

	f := &filter.Filter{
		PreserveCapitalized:  !input.LowercaseAll,
		PreserveSentenceCase: input.PreserveSentenceCase,
	}
	result := f.Process(text)

	output := lowerOutput{
		Output:        result.Output,
		SourceBytes:   result.Stats.SourceBytes,
		OutputBytes:   result.Stats.OutputBytes,
		CodeSpans:     result.Stats.CodeSpans,
		FencedSpans:   result.Stats.FencedSpans,
		InlineSpans:   result.Stats.InlineSpans,
		Changed:       result.Stats.Changed,
		TransformTime: result.TransformTime.String(),
	}

	return nil, output, nil
}
