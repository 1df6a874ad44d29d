package linear

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersData(nodes ...any) map[string]any {
	return map[string]any{"users": map[string]any{"nodes": nodes}}
}

func TestListUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, usersData(
			map[string]any{"id": "u-1", "name": "Ada Lovelace", "displayName": "ada", "email": "ada@acme.dev", "active": true, "admin": true},
			map[string]any{"id": "u-2", "name": "Grace Hopper", "displayName": "grace", "email": "grace@acme.dev", "active": true},
		))
	})

	list, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, "Ada Lovelace", list.Users[0].Name)
	assert.True(t, list.Users[0].Admin)
}

func TestResolveUser_MatchesAnyField(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, usersData(
			map[string]any{"id": "u-1", "name": "Ada Lovelace", "displayName": "adal", "email": "ada@acme.dev"},
			map[string]any{"id": "u-2", "name": "Grace Hopper", "displayName": "grace", "email": "ghopper@acme.dev"},
		))
	}

	for _, query := range []string{"lovelace", "ADAL", "ada@acme"} {
		t.Run(query, func(t *testing.T) {
			c := newTestClient(t, handler)
			got, err := c.ResolveUser(context.Background(), query)
			require.NoError(t, err)
			assert.True(t, got.Found)
			require.NotNil(t, got.User)
			assert.Equal(t, "u-1", got.User.ID)
		})
	}
}

func TestResolveUser_NoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, usersData(
			map[string]any{"id": "u-1", "name": "Ada Lovelace"},
		))
	})

	got, err := c.ResolveUser(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Nil(t, got.User)
	// Alternatives stay an empty slice, never nil, so it serializes as [].
	require.NotNil(t, got.Alternatives)
	assert.Empty(t, got.Alternatives)
}

func TestResolveUser_CapsAlternatives(t *testing.T) {
	nodes := make([]any, 0, 5)
	for i := 1; i <= 5; i++ {
		nodes = append(nodes, map[string]any{
			"id":   fmt.Sprintf("u-%d", i),
			"name": fmt.Sprintf("Smith %d", i),
		})
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, usersData(nodes...))
	})

	got, err := c.ResolveUser(context.Background(), "smith")
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, "u-1", got.User.ID)
	require.Len(t, got.Alternatives, 3)
	assert.Equal(t, "u-2", got.Alternatives[0].ID)
	assert.Equal(t, "u-4", got.Alternatives[2].ID)
}
