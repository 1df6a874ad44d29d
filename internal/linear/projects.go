package linear

import (
	"context"
	"fmt"
)

type projectNode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Progress    float64    `json:"progress"`
	Health      string     `json:"health"`
	StartDate   string     `json:"startDate"`
	TargetDate  string     `json:"targetDate"`
	URL         string     `json:"url"`
	Lead        *nameField `json:"lead"`
	Teams       struct {
		Nodes []struct {
			Key string `json:"key"`
		} `json:"nodes"`
	} `json:"teams"`
}

func (n projectNode) toProject(descriptionCap int) Project {
	out := Project{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		State:       n.State,
		Progress:    roundProgress(n.Progress),
		Health:      n.Health,
		StartDate:   n.StartDate,
		TargetDate:  n.TargetDate,
		Teams:       make([]string, 0, len(n.Teams.Nodes)),
		URL:         n.URL,
	}
	if descriptionCap > 0 {
		out.Description = truncate(n.Description, descriptionCap)
	}
	if n.Lead != nil {
		out.Lead = n.Lead.Name
	}
	for _, t := range n.Teams.Nodes {
		out.Teams = append(out.Teams, t.Key)
	}
	return out
}

const listProjectsQuery = `query($filter: ProjectFilter, $first: Int) {
  projects(filter: $filter, first: $first) {
    nodes {
      id name description state progress health startDate targetDate url
      lead { name }
      teams { nodes { key } }
    }
  }
}`

// ListProjects returns projects filtered by lifecycle status: "active"
// (the default) means planned or started, "completed" means exactly
// completed, "all" applies no filter.
func (c *Client) ListProjects(ctx context.Context, status string, limit int) (*ProjectList, error) {
	filter := map[string]any{}
	switch status {
	case "", "active":
		filter["state"] = map[string]any{"in": []string{"planned", "started"}}
	case "completed":
		filter["state"] = map[string]any{"eq": "completed"}
	}

	if limit <= 0 {
		limit = 20
	}

	var data struct {
		Projects struct {
			Nodes []projectNode `json:"nodes"`
		} `json:"projects"`
	}
	vars := map[string]any{"filter": filter, "first": limit}
	if err := c.do(ctx, "listProjects", listProjectsQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]Project, 0, len(data.Projects.Nodes))
	for _, n := range data.Projects.Nodes {
		out = append(out, n.toProject(200))
	}
	return &ProjectList{Count: len(out), Projects: out}, nil
}

const getProjectQuery = `query($filter: ProjectFilter) {
  projects(filter: $filter, first: 1) {
    nodes {
      id name description state progress health startDate targetDate url
      lead { name }
      teams { nodes { key } }
      projectMilestones { nodes { name targetDate description } }
      projectUpdates(first: 3) { nodes { body health createdAt } }
      issues(first: 50) { nodes { state { name } } }
    }
  }
}`

// GetProject resolves a project by partial case-insensitive name match —
// first match wins — and returns its detailed view. The issue-state
// breakdown covers only the first 50 fetched issues, not the whole
// project.
func (c *Client) GetProject(ctx context.Context, name string) (*ProjectDetail, error) {
	var data struct {
		Projects struct {
			Nodes []struct {
				projectNode
				ProjectMilestones struct {
					Nodes []Milestone `json:"nodes"`
				} `json:"projectMilestones"`
				ProjectUpdates struct {
					Nodes []ProjectUpdate `json:"nodes"`
				} `json:"projectUpdates"`
				Issues struct {
					Nodes []struct {
						State *nameField `json:"state"`
					} `json:"nodes"`
				} `json:"issues"`
			} `json:"nodes"`
		} `json:"projects"`
	}
	vars := map[string]any{
		"filter": map[string]any{"name": map[string]any{"containsIgnoreCase": name}},
	}
	if err := c.do(ctx, "getProject", getProjectQuery, vars, &data); err != nil {
		return nil, err
	}
	if len(data.Projects.Nodes) == 0 {
		return nil, fmt.Errorf("project matching '%s' not found", name)
	}

	n := data.Projects.Nodes[0]
	detail := &ProjectDetail{
		Project:             n.toProject(0),
		Milestones:          make([]Milestone, 0, len(n.ProjectMilestones.Nodes)),
		RecentUpdates:       make([]ProjectUpdate, 0, len(n.ProjectUpdates.Nodes)),
		IssueStateBreakdown: map[string]int{},
	}
	for _, m := range n.ProjectMilestones.Nodes {
		m.Description = truncate(m.Description, 100)
		detail.Milestones = append(detail.Milestones, m)
	}
	for _, u := range n.ProjectUpdates.Nodes {
		u.Body = truncate(u.Body, 300)
		detail.RecentUpdates = append(detail.RecentUpdates, u)
	}
	for _, issue := range n.Issues.Nodes {
		stateName := "Unknown"
		if issue.State != nil {
			stateName = issue.State.Name
		}
		detail.IssueStateBreakdown[stateName]++
	}
	return detail, nil
}

const projectMetricsQuery = `query($filter: ProjectFilter) {
  projects(filter: $filter, first: 1) {
    nodes {
      name state health progress
      completedIssueCountHistory completedScopeHistory inProgressScopeHistory scopeHistory
    }
  }
}`

// GetProjectMetrics returns a project's time series with trend and
// velocity derived from its completed-scope history. The project is
// resolved by partial name match like GetProject.
func (c *Client) GetProjectMetrics(ctx context.Context, name string) (*ProjectMetrics, error) {
	var data struct {
		Projects struct {
			Nodes []struct {
				Name                       string    `json:"name"`
				State                      string    `json:"state"`
				Health                     string    `json:"health"`
				Progress                   float64   `json:"progress"`
				CompletedIssueCountHistory []float64 `json:"completedIssueCountHistory"`
				CompletedScopeHistory      []float64 `json:"completedScopeHistory"`
				InProgressScopeHistory     []float64 `json:"inProgressScopeHistory"`
				ScopeHistory               []float64 `json:"scopeHistory"`
			} `json:"nodes"`
		} `json:"projects"`
	}
	vars := map[string]any{
		"filter": map[string]any{"name": map[string]any{"containsIgnoreCase": name}},
	}
	if err := c.do(ctx, "projectMetrics", projectMetricsQuery, vars, &data); err != nil {
		return nil, err
	}
	if len(data.Projects.Nodes) == 0 {
		return nil, fmt.Errorf("project matching '%s' not found", name)
	}

	n := data.Projects.Nodes[0]
	return &ProjectMetrics{
		Name:                       n.Name,
		State:                      n.State,
		Health:                     n.Health,
		Progress:                   roundProgress(n.Progress),
		CompletedIssueCountHistory: n.CompletedIssueCountHistory,
		CompletedScopeHistory:      n.CompletedScopeHistory,
		InProgressScopeHistory:     n.InProgressScopeHistory,
		ScopeHistory:               n.ScopeHistory,
		Trend:                      AnalyzeTrend(n.CompletedScopeHistory),
		Velocity:                   CalculateVelocity(n.CompletedScopeHistory),
	}, nil
}
