package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// AddCommentTool handles the linear_add_comment MCP tool.
type AddCommentTool struct {
	comments CommentService
}

// NewAddCommentTool creates an AddCommentTool backed by the given service.
func NewAddCommentTool(comments CommentService) *AddCommentTool {
	return &AddCommentTool{comments: comments}
}

// Definition returns the MCP tool definition for registration.
func (t *AddCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_add_comment",
		mcp.WithDescription("Post a comment on a Linear issue. Markdown is supported."),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("Issue code ('ENG-123'), bare number ('123'), or Linear URL"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Comment body (markdown)"),
		),
		mcp.WithString("team",
			mcp.Description("Team key used to qualify a bare issue number"),
		),
	)
}

// Handle processes the linear_add_comment tool call.
func (t *AddCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := req.GetString("body", "")
	if body == "" {
		return mcp.NewToolResultError("'body' is required"), nil
	}

	code, err := linear.ParseIdentifier(req.GetString("issue", ""), req.GetString("team", ""))
	if err != nil {
		return errResult(err), nil
	}

	ref, err := t.comments.AddComment(ctx, code, body)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(ref), nil
}
