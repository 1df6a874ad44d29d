package linear

import (
	"context"
	"encoding/json"
)

const searchIssuesQuery = `query($term: String!, $first: Int) {
  searchIssues(term: $term, first: $first) {
    nodes {
      identifier title description priorityLabel url
      state { name }
      assignee { name }
    }
  }
}`

// SearchIssues runs Linear's full-text search and returns a capped,
// shaped result set.
func (c *Client) SearchIssues(ctx context.Context, query string, limit int) (*SearchResults, error) {
	if limit <= 0 {
		limit = 10
	}

	var data struct {
		SearchIssues struct {
			Nodes []struct {
				Identifier    string     `json:"identifier"`
				Title         string     `json:"title"`
				Description   string     `json:"description"`
				PriorityLabel string     `json:"priorityLabel"`
				URL           string     `json:"url"`
				State         *nameField `json:"state"`
				Assignee      *nameField `json:"assignee"`
			} `json:"nodes"`
		} `json:"searchIssues"`
	}
	vars := map[string]any{"term": query, "first": limit}
	if err := c.do(ctx, "searchIssues", searchIssuesQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]SearchResult, 0, len(data.SearchIssues.Nodes))
	for _, n := range data.SearchIssues.Nodes {
		r := SearchResult{
			Identifier:  n.Identifier,
			Title:       n.Title,
			Description: truncate(n.Description, 150),
			Priority:    n.PriorityLabel,
			URL:         n.URL,
		}
		if n.State != nil {
			r.State = n.State.Name
		}
		if n.Assignee != nil {
			r.Assignee = n.Assignee.Name
		}
		out = append(out, r)
	}
	return &SearchResults{Query: query, Count: len(out), Issues: out}, nil
}

const filterSuggestQuery = `query($prompt: String!) {
  issueFilterSuggestion(prompt: $prompt) { filter }
}`

// FilterSuggest asks Linear to translate a natural-language query into
// an issue filter. The suggested filter structure is returned unmodified.
func (c *Client) FilterSuggest(ctx context.Context, query string) (*FilterSuggestion, error) {
	var data struct {
		IssueFilterSuggestion struct {
			Filter json.RawMessage `json:"filter"`
		} `json:"issueFilterSuggestion"`
	}
	vars := map[string]any{"prompt": query}
	if err := c.do(ctx, "filterSuggest", filterSuggestQuery, vars, &data); err != nil {
		return nil, err
	}
	return &FilterSuggestion{
		Query:           query,
		SuggestedFilter: data.IssueFilterSuggestion.Filter,
	}, nil
}
