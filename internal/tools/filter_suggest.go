package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// FilterSuggestTool handles the linear_filter_suggest MCP tool.
type FilterSuggestTool struct {
	search SearchService
}

// NewFilterSuggestTool creates a FilterSuggestTool backed by the given service.
func NewFilterSuggestTool(search SearchService) *FilterSuggestTool {
	return &FilterSuggestTool{search: search}
}

// Definition returns the MCP tool definition for registration.
func (t *FilterSuggestTool) Definition() mcp.Tool {
	return mcp.NewTool("linear_filter_suggest",
		mcp.WithDescription(
			"Ask Linear to translate a natural-language query ('urgent bugs "+
				"assigned to me') into a structured issue filter. Returns the "+
				"suggested filter as-is for inspection or reuse.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural-language description of the issues wanted"),
		),
	)
}

// Handle processes the linear_filter_suggest tool call.
func (t *FilterSuggestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	suggestion, err := t.search.FilterSuggest(ctx, query)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(suggestion), nil
}
