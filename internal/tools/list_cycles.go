package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListCyclesTool handles the linear_list_cycles MCP tool.
type ListCyclesTool struct {
	cycles CycleService
}

// NewListCyclesTool creates a ListCyclesTool backed by the given service.
func NewListCyclesTool(cycles CycleService) *ListCyclesTool {
	return &ListCyclesTool{cycles: cycles}
}

// Definition returns the MCP tool definition for registration.
func (t *ListCyclesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_cycles",
		mcp.WithDescription(
			"List Linear cycles (sprints), optionally filtered by team and "+
				"active status.",
		),
		mcp.WithString("team",
			mcp.Description("Team key, e.g. 'ENG'"),
		),
		mcp.WithBoolean("active",
			mcp.Description("Only return currently active cycles"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of cycles to return (default 10)"),
		),
	)
}

// Handle processes the linear_list_cycles tool call.
func (t *ListCyclesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.cycles.ListCycles(ctx,
		req.GetString("team", ""),
		req.GetBool("active", false),
		req.GetInt("limit", 0),
	)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
