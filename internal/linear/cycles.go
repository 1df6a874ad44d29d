package linear

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type cycleNode struct {
	ID                         string     `json:"id"`
	Name                       string     `json:"name"`
	Number                     int        `json:"number"`
	IsActive                   bool       `json:"isActive"`
	Progress                   float64    `json:"progress"`
	StartsAt                   string     `json:"startsAt"`
	EndsAt                     string     `json:"endsAt"`
	Team                       *teamField `json:"team"`
	CompletedIssueCountHistory []float64  `json:"completedIssueCountHistory"`
	CompletedScopeHistory      []float64  `json:"completedScopeHistory"`
	InProgressScopeHistory     []float64  `json:"inProgressScopeHistory"`
	ScopeHistory               []float64  `json:"scopeHistory"`
}

func (n cycleNode) teamKey() string {
	if n.Team == nil {
		return ""
	}
	return n.Team.Key
}

const listCyclesQuery = `query($filter: CycleFilter, $first: Int) {
  cycles(filter: $filter, first: $first) {
    nodes {
      id name number isActive progress startsAt endsAt
      team { key }
    }
  }
}`

// ListCycles returns cycles filtered by team key and/or active flag.
func (c *Client) ListCycles(ctx context.Context, team string, activeOnly bool, limit int) (*CycleList, error) {
	filter := map[string]any{}
	if team != "" {
		filter["team"] = map[string]any{"key": map[string]any{"eq": strings.ToUpper(team)}}
	}
	if activeOnly {
		filter["isActive"] = map[string]any{"eq": true}
	}
	if limit <= 0 {
		limit = 10
	}

	var data struct {
		Cycles struct {
			Nodes []cycleNode `json:"nodes"`
		} `json:"cycles"`
	}
	vars := map[string]any{"filter": filter, "first": limit}
	if err := c.do(ctx, "listCycles", listCyclesQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]Cycle, 0, len(data.Cycles.Nodes))
	for _, n := range data.Cycles.Nodes {
		out = append(out, Cycle{
			ID:       n.ID,
			Name:     n.Name,
			Number:   n.Number,
			Team:     n.teamKey(),
			IsActive: n.IsActive,
			Progress: roundProgress(n.Progress),
			StartsAt: n.StartsAt,
			EndsAt:   n.EndsAt,
		})
	}
	return &CycleList{Count: len(out), Cycles: out}, nil
}

const cycleMetricsFields = `
      id name number isActive progress startsAt endsAt
      team { key }
      completedIssueCountHistory completedScopeHistory inProgressScopeHistory scopeHistory`

const activeCycleMetricsQuery = `query {
  cycles(filter: { isActive: { eq: true } }, first: 1) {
    nodes {` + cycleMetricsFields + `
    }
  }
}`

const teamCycleMetricsQuery = `query($filter: TeamFilter) {
  teams(filter: $filter) {
    nodes {
      key
      activeCycle {` + cycleMetricsFields + `
      }
    }
  }
}`

// GetCycleMetrics returns metrics for the active cycle — the named
// team's if a team key is given, otherwise the first active cycle
// workspace-wide. It fails when no active cycle exists.
func (c *Client) GetCycleMetrics(ctx context.Context, team string) (*CycleMetrics, error) {
	var cycle *cycleNode

	if team != "" {
		var data struct {
			Teams struct {
				Nodes []struct {
					Key         string     `json:"key"`
					ActiveCycle *cycleNode `json:"activeCycle"`
				} `json:"nodes"`
			} `json:"teams"`
		}
		vars := map[string]any{
			"filter": map[string]any{"key": map[string]any{"eq": strings.ToUpper(team)}},
		}
		if err := c.do(ctx, "teamCycleMetrics", teamCycleMetricsQuery, vars, &data); err != nil {
			return nil, err
		}
		if len(data.Teams.Nodes) == 0 {
			return nil, fmt.Errorf("team '%s' not found", team)
		}
		if data.Teams.Nodes[0].ActiveCycle == nil {
			return nil, fmt.Errorf("no active cycle for team '%s'", team)
		}
		cycle = data.Teams.Nodes[0].ActiveCycle
		if cycle.Team == nil {
			cycle.Team = &teamField{Key: data.Teams.Nodes[0].Key}
		}
	} else {
		var data struct {
			Cycles struct {
				Nodes []cycleNode `json:"nodes"`
			} `json:"cycles"`
		}
		if err := c.do(ctx, "activeCycleMetrics", activeCycleMetricsQuery, nil, &data); err != nil {
			return nil, err
		}
		if len(data.Cycles.Nodes) == 0 {
			return nil, fmt.Errorf("no active cycles found")
		}
		cycle = &data.Cycles.Nodes[0]
	}

	return &CycleMetrics{
		Name:                       cycle.Name,
		Number:                     cycle.Number,
		Team:                       cycle.teamKey(),
		IsActive:                   cycle.IsActive,
		Progress:                   roundProgress(cycle.Progress),
		StartsAt:                   cycle.StartsAt,
		EndsAt:                     cycle.EndsAt,
		CompletedIssueCountHistory: cycle.CompletedIssueCountHistory,
		CompletedScopeHistory:      cycle.CompletedScopeHistory,
		InProgressScopeHistory:     cycle.InProgressScopeHistory,
		ScopeHistory:               cycle.ScopeHistory,
		BurndownStatus: AnalyzeBurndown(
			cycle.ScopeHistory,
			cycle.CompletedScopeHistory,
			parseTime(cycle.StartsAt),
			parseTime(cycle.EndsAt),
		),
	}, nil
}

// parseTime parses an ISO 8601 timestamp, returning the zero time for
// empty or malformed input so burndown falls back to its dateless path.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
