package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListUsersTool handles the linear_list_users MCP tool.
type ListUsersTool struct {
	users UserService
}

// NewListUsersTool creates a ListUsersTool backed by the given service.
func NewListUsersTool(users UserService) *ListUsersTool {
	return &ListUsersTool{users: users}
}

// Definition returns the MCP tool definition for registration.
func (t *ListUsersTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_users",
		mcp.WithDescription("List all users in the Linear workspace."),
	)
}

// Handle processes the linear_list_users tool call.
func (t *ListUsersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.users.ListUsers(ctx)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
