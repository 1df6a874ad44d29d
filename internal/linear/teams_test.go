package linear

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamNodesData(nodes ...any) map[string]any {
	return map[string]any{"teams": map[string]any{"nodes": nodes}}
}

func TestListTeams_ShapesNodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, teamNodesData(
			map[string]any{
				"id": "t-1", "key": "ENG", "name": "Engineering",
				"description": strings.Repeat("d", 150),
				"issueCount":  42,
				"activeCycle": map[string]any{"name": "Sprint 9", "number": 9, "progress": 0.456},
			},
			map[string]any{"id": "t-2", "key": "OPS", "name": "Operations"},
		))
	})

	list, err := c.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)

	eng := list.Teams[0]
	assert.Equal(t, "ENG", eng.Key)
	assert.Len(t, eng.Description, 100)
	require.NotNil(t, eng.ActiveCycle)
	assert.Equal(t, 9, eng.ActiveCycle.Number)
	assert.Equal(t, 46, eng.ActiveCycle.Progress)

	assert.Nil(t, list.Teams[1].ActiveCycle)
}

func TestGetTeamStates_SortedByPosition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		filter := req.Variables["filter"].(map[string]any)
		assert.Equal(t, map[string]any{"eq": "ENG"}, filter["key"])
		writeData(t, w, teamNodesData(map[string]any{
			"key": "ENG",
			"states": map[string]any{"nodes": []any{
				map[string]any{"id": "s-2", "name": "Done", "type": "completed", "position": 3.0},
				map[string]any{"id": "s-1", "name": "Todo", "type": "unstarted", "position": 1.0},
				map[string]any{"id": "s-3", "name": "In Progress", "type": "started", "position": 2.0},
			}},
		}))
	})

	got, err := c.GetTeamStates(context.Background(), "eng")
	require.NoError(t, err)
	assert.Equal(t, "ENG", got.Team)
	names := make([]string, 0, len(got.States))
	for _, s := range got.States {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Todo", "In Progress", "Done"}, names)
}

func TestGetTeamStates_UnknownTeamListsAvailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if req.Variables["filter"] != nil {
			writeData(t, w, teamNodesData())
			return
		}
		// Fallback listTeams call, used to name the available keys.
		writeData(t, w, teamNodesData(
			map[string]any{"id": "t-1", "key": "ENG", "name": "Engineering"},
			map[string]any{"id": "t-2", "key": "OPS", "name": "Operations"},
		))
	})

	_, err := c.GetTeamStates(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team 'NOPE' not found")
	assert.Contains(t, err.Error(), "ENG, OPS")
}

func TestGetTeamLabels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, teamNodesData(map[string]any{
			"key": "ENG",
			"labels": map[string]any{"nodes": []any{
				map[string]any{"id": "l-1", "name": "bug", "color": "#ff0000", "description": strings.Repeat("d", 150)},
			}},
		}))
	})

	got, err := c.GetTeamLabels(context.Background(), "ENG")
	require.NoError(t, err)
	require.Len(t, got.Labels, 1)
	assert.Equal(t, "bug", got.Labels[0].Name)
	assert.Len(t, got.Labels[0].Description, 100)
}

func TestGetTeamLabels_UnknownTeam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, teamNodesData())
	})

	_, err := c.GetTeamLabels(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team 'NOPE' not found")
}

func TestResolveTeam(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, teamNodesData(
			map[string]any{"id": "t-1", "key": "ENG", "name": "Engineering"},
			map[string]any{"id": "t-2", "key": "PROD", "name": "Product Engineering"},
		))
	}

	t.Run("exact key wins over partial name", func(t *testing.T) {
		c := newTestClient(t, handler)
		got, err := c.ResolveTeam(context.Background(), "eng")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ENG", got.Key)
	})

	t.Run("partial name fallback", func(t *testing.T) {
		c := newTestClient(t, handler)
		got, err := c.ResolveTeam(context.Background(), "product")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "PROD", got.Key)
	})

	t.Run("no match is a nil value, not an error", func(t *testing.T) {
		c := newTestClient(t, handler)
		got, err := c.ResolveTeam(context.Background(), "marketing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
