package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProjectMetricsTool handles the linear_project_metrics MCP tool.
type ProjectMetricsTool struct {
	projects ProjectService
}

// NewProjectMetricsTool creates a ProjectMetricsTool backed by the given service.
func NewProjectMetricsTool(projects ProjectService) *ProjectMetricsTool {
	return &ProjectMetricsTool{projects: projects}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectMetricsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_project_metrics",
		mcp.WithDescription(
			"Get a project's progress time series plus a derived trend "+
				"('improving', 'declining', 'stable') and weekly velocity. "+
				"The project is resolved by partial name match.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name or a fragment of it"),
		),
	)
}

// Handle processes the linear_project_metrics tool call.
func (t *ProjectMetricsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	metrics, err := t.projects.GetProjectMetrics(ctx, name)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(metrics), nil
}
