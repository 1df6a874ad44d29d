package tools

import (
	"context"

	"github.com/rmarth/linear-mcp/internal/linear"
)

// Service interfaces consumed by the tools. *linear.Client satisfies
// all of them; tests substitute fakes.

type IssueService interface {
	ListIssues(ctx context.Context, f linear.IssueFilters) (*linear.IssueList, error)
	GetIssue(ctx context.Context, identifier string) (*linear.IssueDetail, error)
	CreateIssue(ctx context.Context, payload linear.CreateIssuePayload) (*linear.IssueRef, error)
	UpdateIssue(ctx context.Context, identifier string, payload linear.UpdateIssuePayload) (*linear.IssueRef, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, status string, limit int) (*linear.ProjectList, error)
	GetProject(ctx context.Context, name string) (*linear.ProjectDetail, error)
	GetProjectMetrics(ctx context.Context, name string) (*linear.ProjectMetrics, error)
}

type CycleService interface {
	ListCycles(ctx context.Context, team string, activeOnly bool, limit int) (*linear.CycleList, error)
	GetCycleMetrics(ctx context.Context, team string) (*linear.CycleMetrics, error)
}

type TeamService interface {
	ListTeams(ctx context.Context) (*linear.TeamList, error)
	GetTeamStates(ctx context.Context, teamKey string) (*linear.TeamStates, error)
	GetTeamLabels(ctx context.Context, teamKey string) (*linear.TeamLabels, error)
	ResolveTeam(ctx context.Context, nameOrKey string) (*linear.Team, error)
}

type UserService interface {
	ListUsers(ctx context.Context) (*linear.UserList, error)
	ResolveUser(ctx context.Context, query string) (*linear.UserMatch, error)
}

type SearchService interface {
	SearchIssues(ctx context.Context, query string, limit int) (*linear.SearchResults, error)
	FilterSuggest(ctx context.Context, query string) (*linear.FilterSuggestion, error)
}

type CommentService interface {
	ListComments(ctx context.Context, identifier string, limit int) (*linear.CommentList, error)
	AddComment(ctx context.Context, identifier, body string) (*linear.CommentRef, error)
}

type WorkspaceService interface {
	Preflight(ctx context.Context) (*linear.Preflight, error)
}
