package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListProjectsTool handles the linear_list_projects MCP tool.
type ListProjectsTool struct {
	projects ProjectService
}

// NewListProjectsTool creates a ListProjectsTool backed by the given service.
func NewListProjectsTool(projects ProjectService) *ListProjectsTool {
	return &ListProjectsTool{projects: projects}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_projects",
		mcp.WithDescription(
			"List Linear projects by lifecycle status. 'active' (the default) "+
				"covers planned and started projects.",
		),
		mcp.WithString("status",
			mcp.Enum("active", "completed", "all"),
			mcp.Description("Lifecycle status filter (default 'active')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of projects to return (default 20)"),
		),
	)
}

// Handle processes the linear_list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.projects.ListProjects(ctx, req.GetString("status", ""), req.GetInt("limit", 0))
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
