package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// ListCommentsTool handles the linear_list_comments MCP tool.
type ListCommentsTool struct {
	comments CommentService
}

// NewListCommentsTool creates a ListCommentsTool backed by the given service.
func NewListCommentsTool(comments CommentService) *ListCommentsTool {
	return &ListCommentsTool{comments: comments}
}

// Definition returns the MCP tool definition for registration.
func (t *ListCommentsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_comments",
		mcp.WithDescription(
			"List the comments on a Linear issue with resolved author names, "+
				"newest first.",
		),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("Issue code ('ENG-123'), bare number ('123'), or Linear URL"),
		),
		mcp.WithString("team",
			mcp.Description("Team key used to qualify a bare issue number"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of comments to return (default 20)"),
		),
	)
}

// Handle processes the linear_list_comments tool call.
func (t *ListCommentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := linear.ParseIdentifier(req.GetString("issue", ""), req.GetString("team", ""))
	if err != nil {
		return errResult(err), nil
	}

	list, err := t.comments.ListComments(ctx, code, req.GetInt("limit", 0))
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
