package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchIssuesTool handles the linear_search_issues MCP tool.
type SearchIssuesTool struct {
	search SearchService
}

// NewSearchIssuesTool creates a SearchIssuesTool backed by the given service.
func NewSearchIssuesTool(search SearchService) *SearchIssuesTool {
	return &SearchIssuesTool{search: search}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchIssuesTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_search_issues",
		mcp.WithDescription(
			"Full-text search across Linear issues. Use this for free-form "+
				"queries; use linear_list_issues for structured filtering.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search terms"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 10)"),
		),
	)
}

// Handle processes the linear_search_issues tool call.
func (t *SearchIssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	results, err := t.search.SearchIssues(ctx, query, req.GetInt("limit", 0))
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(results), nil
}
