package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// CreateIssueTool handles the linear_create_issue MCP tool.
type CreateIssueTool struct {
	issues IssueService
}

// NewCreateIssueTool creates a CreateIssueTool backed by the given service.
func NewCreateIssueTool(issues IssueService) *CreateIssueTool {
	return &CreateIssueTool{issues: issues}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_create_issue",
		mcp.WithDescription(
			"Create a new Linear issue in a team. Returns the new issue's "+
				"identifier and URL. Use linear_list_teams to discover team keys.",
		),
		mcp.WithString("team",
			mcp.Required(),
			mcp.Description("Team key, e.g. 'ENG'"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Issue title"),
		),
		mcp.WithString("description",
			mcp.Description("Issue description (markdown)"),
		),
		mcp.WithString("priority",
			mcp.Enum("none", "urgent", "high", "medium", "normal", "low"),
			mcp.Description("Priority level"),
		),
		mcp.WithString("assignee",
			mcp.Description("'me' to self-assign; other values are not resolved"),
		),
		mcp.WithString("project",
			mcp.Description("Partial project name match; silently dropped when unresolved"),
		),
		mcp.WithNumber("estimate",
			mcp.Description("Point estimate"),
		),
	)
}

// Handle processes the linear_create_issue tool call.
func (t *CreateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload := linear.CreateIssuePayload{
		Team:        req.GetString("team", ""),
		Title:       req.GetString("title", ""),
		Description: req.GetString("description", ""),
		Priority:    req.GetString("priority", ""),
		Assignee:    req.GetString("assignee", ""),
		Project:     req.GetString("project", ""),
		Estimate:    req.GetFloat("estimate", 0),
	}
	if payload.Team == "" {
		return mcp.NewToolResultError("'team' is required"), nil
	}
	if payload.Title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	ref, err := t.issues.CreateIssue(ctx, payload)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(ref), nil
}
