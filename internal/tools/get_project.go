package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetProjectTool handles the linear_get_project MCP tool.
type GetProjectTool struct {
	projects ProjectService
}

// NewGetProjectTool creates a GetProjectTool backed by the given service.
func NewGetProjectTool(projects ProjectService) *GetProjectTool {
	return &GetProjectTool{projects: projects}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_get_project",
		mcp.WithDescription(
			"Get the detailed view of a Linear project: milestones, recent "+
				"updates, and an issue-state breakdown. The project is resolved "+
				"by partial name match; the first match wins.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name or a fragment of it"),
		),
	)
}

// Handle processes the linear_get_project tool call.
func (t *GetProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	detail, err := t.projects.GetProject(ctx, name)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(detail), nil
}
