// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the concrete Linear client's
// tool handlers and injects them into the registered tools. No business
// logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/rmarth/linear-mcp/internal/linear"
	"github.com/rmarth/linear-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with every Linear tool
// registered. The client is injected by the caller, which owns
// credential loading; the server never reads the environment itself.
func New(client *linear.Client) *server.MCPServer {
	s := server.NewMCPServer(
		"linear-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Issues ---

	listIssues := tools.NewListIssuesTool(client)
	s.AddTool(listIssues.Definition(), listIssues.Handle)

	getIssue := tools.NewGetIssueTool(client)
	s.AddTool(getIssue.Definition(), getIssue.Handle)

	createIssue := tools.NewCreateIssueTool(client)
	s.AddTool(createIssue.Definition(), createIssue.Handle)

	updateIssue := tools.NewUpdateIssueTool(client)
	s.AddTool(updateIssue.Definition(), updateIssue.Handle)

	// --- Projects ---

	listProjects := tools.NewListProjectsTool(client)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	getProject := tools.NewGetProjectTool(client)
	s.AddTool(getProject.Definition(), getProject.Handle)

	projectMetrics := tools.NewProjectMetricsTool(client)
	s.AddTool(projectMetrics.Definition(), projectMetrics.Handle)

	// --- Cycles ---

	listCycles := tools.NewListCyclesTool(client)
	s.AddTool(listCycles.Definition(), listCycles.Handle)

	cycleMetrics := tools.NewCycleMetricsTool(client)
	s.AddTool(cycleMetrics.Definition(), cycleMetrics.Handle)

	// --- Teams ---

	listTeams := tools.NewListTeamsTool(client)
	s.AddTool(listTeams.Definition(), listTeams.Handle)

	teamStates := tools.NewTeamStatesTool(client)
	s.AddTool(teamStates.Definition(), teamStates.Handle)

	teamLabels := tools.NewTeamLabelsTool(client)
	s.AddTool(teamLabels.Definition(), teamLabels.Handle)

	resolveTeam := tools.NewResolveTeamTool(client)
	s.AddTool(resolveTeam.Definition(), resolveTeam.Handle)

	// --- Users ---

	listUsers := tools.NewListUsersTool(client)
	s.AddTool(listUsers.Definition(), listUsers.Handle)

	resolveUser := tools.NewResolveUserTool(client)
	s.AddTool(resolveUser.Definition(), resolveUser.Handle)

	// --- Search ---

	searchIssues := tools.NewSearchIssuesTool(client)
	s.AddTool(searchIssues.Definition(), searchIssues.Handle)

	filterSuggest := tools.NewFilterSuggestTool(client)
	s.AddTool(filterSuggest.Definition(), filterSuggest.Handle)

	// --- Comments ---

	listComments := tools.NewListCommentsTool(client)
	s.AddTool(listComments.Definition(), listComments.Handle)

	addComment := tools.NewAddCommentTool(client)
	s.AddTool(addComment.Definition(), addComment.Handle)

	// --- Workspace ---

	preflight := tools.NewPreflightTool(client)
	s.AddTool(preflight.Definition(), preflight.Handle)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use the Linear tools effectively.
func serverInstructions() string {
	return `You have access to the user's Linear workspace through these tools.

## GETTING STARTED

Call linear_preflight once at the start of a session. It validates the
credential and tells you who you are acting as, which teams exist, and
how much API quota remains.

## REFERRING TO THINGS

- Issues: use codes like 'ENG-123', bare numbers with a team, or Linear URLs.
- Teams: use keys like 'ENG'. linear_list_teams shows them all;
  linear_resolve_team maps a name fragment to a team.
- People: linear_resolve_user maps names or emails to workspace users.
  Check 'found' before relying on the result.
- Projects: referenced by partial name match everywhere.

## CHOOSING A TOOL

- Structured filtering (by assignee, team, state, priority, project):
  linear_list_issues.
- Free-form text queries: linear_search_issues.
- Turning a natural-language request into a reusable filter:
  linear_filter_suggest.
- Progress questions ("how is the sprint going?"): linear_cycle_metrics
  or linear_project_metrics — both return derived trend and burndown
  summaries you can quote directly.

## BEFORE CHANGING STATE

linear_update_issue matches state names against the issue's team's own
workflow. When a state change fails to apply, call linear_team_states
and retry with one of the listed names.`
}
