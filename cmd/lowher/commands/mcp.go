package commands

import (
	"context"
	"fmt"

	"github.com/lowher/lowher/internal/mcpserver"
)

// HandleMCP runs the MCP stdio server until the client disconnects.
func HandleMCP() error {
	if err := mcpserver.Run(context.Background()); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
