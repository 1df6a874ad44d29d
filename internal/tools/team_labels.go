package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// TeamLabelsTool handles the linear_team_labels MCP tool.
type TeamLabelsTool struct {
	teams TeamService
}

// NewTeamLabelsTool creates a TeamLabelsTool backed by the given service.
func NewTeamLabelsTool(teams TeamService) *TeamLabelsTool {
	return &TeamLabelsTool{teams: teams}
}

// Definition returns the MCP tool definition for registration.
func (t *TeamLabelsTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_team_labels",
		mcp.WithDescription("List a team's issue labels with colors and descriptions."),
		mcp.WithString("team",
			mcp.Required(),
			mcp.Description("Team key, e.g. 'ENG'"),
		),
	)
}

// Handle processes the linear_team_labels tool call.
func (t *TeamLabelsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	team := req.GetString("team", "")
	if team == "" {
		return mcp.NewToolResultError("'team' is required"), nil
	}

	labels, err := t.teams.GetTeamLabels(ctx, team)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(labels), nil
}
