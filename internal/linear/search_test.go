package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIssues(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "login crash", req.Variables["term"])
		assert.Equal(t, float64(10), req.Variables["first"])
		writeData(t, w, map[string]any{"searchIssues": map[string]any{"nodes": []any{
			map[string]any{
				"identifier":    "ENG-12",
				"title":         "Login crashes on empty password",
				"description":   strings.Repeat("d", 200),
				"priorityLabel": "Urgent",
				"url":           "https://linear.app/acme/issue/ENG-12",
				"state":         map[string]any{"name": "Todo"},
				"assignee":      map[string]any{"name": "Ada"},
			},
			map[string]any{
				"identifier": "ENG-13",
				"title":      "Related crash",
			},
		}}})
	})

	got, err := c.SearchIssues(context.Background(), "login crash", 0)
	require.NoError(t, err)
	assert.Equal(t, "login crash", got.Query)
	assert.Equal(t, 2, got.Count)

	first := got.Issues[0]
	assert.Len(t, first.Description, 150)
	assert.Equal(t, "Urgent", first.Priority)
	assert.Equal(t, "Todo", first.State)
	assert.Equal(t, "Ada", first.Assignee)

	assert.Empty(t, got.Issues[1].State)
	assert.Empty(t, got.Issues[1].Assignee)
}

func TestFilterSuggest_PassesFilterThrough(t *testing.T) {
	suggested := map[string]any{
		"assignee": map[string]any{"name": map[string]any{"eq": "Ada"}},
		"priority": map[string]any{"lte": float64(2)},
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "my urgent bugs", req.Variables["prompt"])
		writeData(t, w, map[string]any{"issueFilterSuggestion": map[string]any{"filter": suggested}})
	})

	got, err := c.FilterSuggest(context.Background(), "my urgent bugs")
	require.NoError(t, err)
	assert.Equal(t, "my urgent bugs", got.Query)

	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(got.SuggestedFilter, &roundTripped))
	assert.Equal(t, suggested, roundTripped)
}
