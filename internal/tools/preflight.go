package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// PreflightTool handles the linear_preflight MCP tool.
type PreflightTool struct {
	workspace WorkspaceService
}

// NewPreflightTool creates a PreflightTool backed by the given service.
func NewPreflightTool(workspace WorkspaceService) *PreflightTool {
	return &PreflightTool{workspace: workspace}
}

// Definition returns the MCP tool definition for registration.
func (t *PreflightTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_preflight",
		mcp.WithDescription(
			"Validate the Linear credential and return session context: the "+
				"authenticated user, the organization, the accessible teams, "+
				"and the remaining API request quota. Call this once before "+
				"other Linear tools.",
		),
	)
}

// Handle processes the linear_preflight tool call.
func (t *PreflightTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.workspace.Preflight(ctx)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(result), nil
}
