package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListTeamsTool handles the linear_list_teams MCP tool.
type ListTeamsTool struct {
	teams TeamService
}

// NewListTeamsTool creates a ListTeamsTool backed by the given service.
func NewListTeamsTool(teams TeamService) *ListTeamsTool {
	return &ListTeamsTool{teams: teams}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTeamsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_list_teams",
		mcp.WithDescription(
			"List all accessible Linear teams with their keys, issue counts, "+
				"and active-cycle summaries. Team keys are needed by most other "+
				"tools.",
		),
	)
}

// Handle processes the linear_list_teams tool call.
func (t *ListTeamsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.teams.ListTeams(ctx)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(list), nil
}
