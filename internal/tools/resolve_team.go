package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rmarth/linear-mcp/internal/linear"
)

// ResolveTeamTool handles the linear_resolve_team MCP tool.
type ResolveTeamTool struct {
	teams TeamService
}

// NewResolveTeamTool creates a ResolveTeamTool backed by the given service.
func NewResolveTeamTool(teams TeamService) *ResolveTeamTool {
	return &ResolveTeamTool{teams: teams}
}

// Definition returns the MCP tool definition for registration.
func (t *ResolveTeamTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_resolve_team",
		mcp.WithDescription(
			"Resolve a team reference to a concrete team. Tries an exact key "+
				"match first ('eng' finds ENG), then a partial name match "+
				"('platform' finds 'Platform Infrastructure'). A miss returns "+
				"found=false, not an error.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Team key or name fragment"),
		),
	)
}

// teamMatch is the shaped result of a team resolution.
type teamMatch struct {
	Found bool         `json:"found"`
	Team  *linear.Team `json:"team,omitempty"`
}

// Handle processes the linear_resolve_team tool call.
func (t *ResolveTeamTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	team, err := t.teams.ResolveTeam(ctx, query)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(teamMatch{Found: team != nil, Team: team}), nil
}
