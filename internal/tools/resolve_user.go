package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResolveUserTool handles the linear_resolve_user MCP tool.
type ResolveUserTool struct {
	users UserService
}

// NewResolveUserTool creates a ResolveUserTool backed by the given service.
func NewResolveUserTool(users UserService) *ResolveUserTool {
	return &ResolveUserTool{users: users}
}

// Definition returns the MCP tool definition for registration.
func (t *ResolveUserTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_resolve_user",
		mcp.WithDescription(
			"Resolve a person reference ('sarah', 'sarah@acme.com') to a "+
				"workspace user by partial match on name, display name, or "+
				"email. Ambiguous matches return the best hit plus up to three "+
				"alternatives; a miss returns found=false, not an error.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Name, display name, or email fragment"),
		),
	)
}

// Handle processes the linear_resolve_user tool call.
func (t *ResolveUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	match, err := t.users.ResolveUser(ctx, query)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(match), nil
}
