package linear

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflight(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, map[string]any{
			"viewer":       map[string]any{"id": "u-1", "name": "Ada", "email": "ada@acme.dev"},
			"organization": map[string]any{"id": "org-1", "name": "Acme", "urlKey": "acme"},
			"teams": map[string]any{"nodes": []any{
				map[string]any{"id": "t-1", "key": "ENG", "name": "Engineering"},
			}},
			"rateLimitStatus": map[string]any{"limits": []any{
				map[string]any{"remainingAmount": 1337},
			}},
		})
	})

	got, err := c.Preflight(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "Ada", got.User.Name)
	assert.Equal(t, "acme", got.Organization.URLKey)
	require.Len(t, got.Teams, 1)
	assert.Equal(t, "ENG", got.Teams[0].Key)
	assert.Equal(t, 1337, got.RateLimit.RequestsRemaining)
}

func TestPreflight_NoRateLimitInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, map[string]any{
			"viewer":          map[string]any{"id": "u-1"},
			"organization":    map[string]any{"id": "org-1"},
			"teams":           map[string]any{"nodes": []any{}},
			"rateLimitStatus": map[string]any{"limits": []any{}},
		})
	})

	got, err := c.Preflight(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.RateLimit.RequestsRemaining)
}

func TestPreflight_AuthFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := c.Preflight(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CategoryAuth, apiErr.Category)
}
