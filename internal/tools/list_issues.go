package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// ListIssuesTool handles the linear_list_issues MCP tool.
type ListIssuesTool struct {
	issues IssueService
}

// NewListIssuesTool creates a ListIssuesTool backed by the given service.
func NewListIssuesTool(issues IssueService) *ListIssuesTool {
	return &ListIssuesTool{issues: issues}
}

// Definition returns the MCP tool definition for registration.
func (t *ListIssuesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_issues",
		mcp.WithDescription(
			"List Linear issues with optional filters. All filters combine with AND. "+
				"Use assignee='me' for the authenticated user's issues. "+
				"A project filter that matches nothing is silently dropped.",
		),
		mcp.WithString("assignee",
			mcp.Description("'me' or a partial name match (case-insensitive)"),
		),
		mcp.WithString("team",
			mcp.Description("Team key, e.g. 'ENG' (case-insensitive exact match)"),
		),
		mcp.WithString("state",
			mcp.Description("'active' (not completed/canceled), 'backlog', 'completed', or a partial state name"),
		),
		mcp.WithString("priority",
			mcp.Enum("none", "urgent", "high", "medium", "normal", "low"),
			mcp.Description("Priority level to filter by"),
		),
		mcp.WithString("project",
			mcp.Description("Partial project name match"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of issues to return (default 25)"),
		),
	)
}

// Handle processes the linear_list_issues tool call.
func (t *ListIssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := linear.IssueFilters{
		Assignee: req.GetString("assignee", ""),
		Team:     req.GetString("team", ""),
		State:    req.GetString("state", ""),
		Priority: req.GetString("priority", ""),
		Project:  req.GetString("project", ""),
		Limit:    req.GetInt("limit", 0),
	}

	list, err := t.issues.ListIssues(ctx, filters)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
