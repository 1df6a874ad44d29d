package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// UpdateIssueTool handles the linear_update_issue MCP tool.
type UpdateIssueTool struct {
	issues IssueService
}

// NewUpdateIssueTool creates an UpdateIssueTool backed by the given service.
func NewUpdateIssueTool(issues IssueService) *UpdateIssueTool {
	return &UpdateIssueTool{issues: issues}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_update_issue",
		mcp.WithDescription(
			"Apply a partial update to a Linear issue. Only the provided fields "+
				"change. State names are matched against the issue's own team's "+
				"workflow states; use linear_team_states to discover them.",
		),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("Issue code ('ENG-123'), bare number ('123'), or Linear URL"),
		),
		mcp.WithString("team",
			mcp.Description("Team key used to qualify a bare issue number"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("description",
			mcp.Description("New description (markdown)"),
		),
		mcp.WithString("priority",
			mcp.Enum("none", "urgent", "high", "medium", "normal", "low"),
			mcp.Description("New priority level"),
		),
		mcp.WithString("state",
			mcp.Description("Workflow state name, matched case-insensitively within the issue's team"),
		),
		mcp.WithString("assignee",
			mcp.Description("'me' to self-assign, 'none' to clear the assignee"),
		),
	)
}

// Handle processes the linear_update_issue tool call.
func (t *UpdateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := linear.ParseIdentifier(req.GetString("issue", ""), req.GetString("team", ""))
	if err != nil {
		return errResult(err), nil
	}

	payload := linear.UpdateIssuePayload{
		Title:       req.GetString("title", ""),
		Description: req.GetString("description", ""),
		Priority:    req.GetString("priority", ""),
		State:       req.GetString("state", ""),
		Assignee:    req.GetString("assignee", ""),
	}

	ref, err := t.issues.UpdateIssue(ctx, code, payload)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(ref), nil
}
