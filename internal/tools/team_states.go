package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// TeamStatesTool handles the linear_team_states MCP tool.
type TeamStatesTool struct {
	teams TeamService
}

// NewTeamStatesTool creates a TeamStatesTool backed by the given service.
func NewTeamStatesTool(teams TeamService) *TeamStatesTool {
	return &TeamStatesTool{teams: teams}
}

// Definition returns the MCP tool definition for registration.
func (t *TeamStatesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_team_states",
		mcp.WithDescription(
			"List a team's workflow states in board order. Use this to "+
				"discover valid state names before linear_update_issue.",
		),
		mcp.WithString("team",
			mcp.Required(),
			mcp.Description("Team key, e.g. 'ENG'"),
		),
	)
}

// Handle processes the linear_team_states tool call.
func (t *TeamStatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	team := req.GetString("team", "")
	if team == "" {
		return mcp.NewToolResultError("'team' is required"), nil
	}

	states, err := t.teams.GetTeamStates(ctx, team)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(states), nil
}
