package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// GetIssueTool handles the linear_get_issue MCP tool.
type GetIssueTool struct {
	issues IssueService
}

// NewGetIssueTool creates a GetIssueTool backed by the given service.
func NewGetIssueTool(issues IssueService) *GetIssueTool {
	return &GetIssueTool{issues: issues}
}

// Definition returns the MCP tool definition for registration.
func (t *GetIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_get_issue",
		mcp.WithDescription(
			"Get the detailed view of a single Linear issue: relations, labels, "+
				"estimate, and the five most recent comments. "+
				"Accepts an issue code like 'ENG-123', a bare number (with team), "+
				"or a Linear issue URL.",
		),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("Issue code ('ENG-123'), bare number ('123'), or Linear URL"),
		),
		mcp.WithString("team",
			mcp.Description("Team key used to qualify a bare issue number"),
		),
	)
}

// Handle processes the linear_get_issue tool call.
func (t *GetIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := linear.ParseIdentifier(req.GetString("issue", ""), req.GetString("team", ""))
	if err != nil {
		return errResult(err), nil
	}

	detail, err := t.issues.GetIssue(ctx, code)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(detail), nil
}
