package linear

import "context"

const preflightQuery = `query {
  viewer { id name email }
  organization { id name urlKey }
  teams { nodes { id key name } }
  rateLimitStatus { limits { remainingAmount } }
}`

// Preflight validates the credential and returns everything an automated
// caller needs to start a session: its own identity, the workspace, the
// accessible teams, and the remaining request quota. Intended as a one-
// time capability probe before any other operation.
func (c *Client) Preflight(ctx context.Context) (*Preflight, error) {
	var data struct {
		Viewer       PreflightUser `json:"viewer"`
		Organization Organization  `json:"organization"`
		Teams        struct {
			Nodes []TeamRef `json:"nodes"`
		} `json:"teams"`
		RateLimitStatus struct {
			Limits []struct {
				RemainingAmount int `json:"remainingAmount"`
			} `json:"limits"`
		} `json:"rateLimitStatus"`
	}
	if err := c.do(ctx, "preflight", preflightQuery, nil, &data); err != nil {
		return nil, err
	}

	remaining := 0
	if len(data.RateLimitStatus.Limits) > 0 {
		remaining = data.RateLimitStatus.Limits[0].RemainingAmount
	}
	return &Preflight{
		Success:      true,
		User:         data.Viewer,
		Organization: data.Organization,
		Teams:        data.Teams.Nodes,
		RateLimit:    RateLimit{RequestsRemaining: remaining},
	}, nil
}
