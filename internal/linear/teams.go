package linear

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type activeCycleNode struct {
	Name     string  `json:"name"`
	Number   int     `json:"number"`
	Progress float64 `json:"progress"`
}

type teamNode struct {
	ID          string           `json:"id"`
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IssueCount  int              `json:"issueCount"`
	ActiveCycle *activeCycleNode `json:"activeCycle"`
}

func (n teamNode) toTeam() Team {
	out := Team{
		ID:          n.ID,
		Key:         n.Key,
		Name:        n.Name,
		Description: truncate(n.Description, 100),
		IssueCount:  n.IssueCount,
	}
	if n.ActiveCycle != nil {
		out.ActiveCycle = &ActiveCycle{
			Name:     n.ActiveCycle.Name,
			Number:   n.ActiveCycle.Number,
			Progress: roundProgress(n.ActiveCycle.Progress),
		}
	}
	return out
}

const listTeamsQuery = `query {
  teams {
    nodes {
      id key name description issueCount
      activeCycle { name number progress }
    }
  }
}`

// ListTeams returns all accessible teams with their active-cycle summary.
func (c *Client) ListTeams(ctx context.Context) (*TeamList, error) {
	nodes, err := c.fetchTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Team, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.toTeam())
	}
	return &TeamList{Count: len(out), Teams: out}, nil
}

func (c *Client) fetchTeams(ctx context.Context) ([]teamNode, error) {
	var data struct {
		Teams struct {
			Nodes []teamNode `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.do(ctx, "listTeams", listTeamsQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.Teams.Nodes, nil
}

const lookupTeamQuery = `query($filter: TeamFilter) {
  teams(filter: $filter) { nodes { id key } }
}`

// lookupTeamID resolves a team key (case-insensitive) to its id.
// Returns "" when no team has that key.
func (c *Client) lookupTeamID(ctx context.Context, key string) (string, error) {
	var data struct {
		Teams struct {
			Nodes []teamField `json:"nodes"`
		} `json:"teams"`
	}
	vars := map[string]any{
		"filter": map[string]any{"key": map[string]any{"eq": strings.ToUpper(key)}},
	}
	if err := c.do(ctx, "lookupTeam", lookupTeamQuery, vars, &data); err != nil {
		return "", err
	}
	if len(data.Teams.Nodes) == 0 {
		return "", nil
	}
	return data.Teams.Nodes[0].ID, nil
}

const teamStatesQuery = `query($filter: TeamFilter) {
  teams(filter: $filter) {
    nodes {
      key
      states { nodes { id name type color position } }
    }
  }
}`

// GetTeamStates returns a team's workflow states sorted ascending by
// position. Use it to discover valid state names before updating issues.
// An unknown key fails with the list of available keys in the message.
func (c *Client) GetTeamStates(ctx context.Context, teamKey string) (*TeamStates, error) {
	var data struct {
		Teams struct {
			Nodes []struct {
				Key    string `json:"key"`
				States struct {
					Nodes []WorkflowState `json:"nodes"`
				} `json:"states"`
			} `json:"nodes"`
		} `json:"teams"`
	}
	vars := map[string]any{
		"filter": map[string]any{"key": map[string]any{"eq": strings.ToUpper(teamKey)}},
	}
	if err := c.do(ctx, "teamStates", teamStatesQuery, vars, &data); err != nil {
		return nil, err
	}

	if len(data.Teams.Nodes) == 0 {
		all, err := c.fetchTeams(ctx)
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(all))
		for _, t := range all {
			keys = append(keys, t.Key)
		}
		return nil, fmt.Errorf("team '%s' not found: available teams: %s", teamKey, strings.Join(keys, ", "))
	}

	team := data.Teams.Nodes[0]
	states := team.States.Nodes
	sort.Slice(states, func(i, j int) bool { return states[i].Position < states[j].Position })

	return &TeamStates{Team: team.Key, States: states}, nil
}

const teamLabelsQuery = `query($filter: TeamFilter) {
  teams(filter: $filter) {
    nodes {
      key
      labels { nodes { id name color description } }
    }
  }
}`

// GetTeamLabels returns a team's labels.
func (c *Client) GetTeamLabels(ctx context.Context, teamKey string) (*TeamLabels, error) {
	var data struct {
		Teams struct {
			Nodes []struct {
				Key    string `json:"key"`
				Labels struct {
					Nodes []Label `json:"nodes"`
				} `json:"labels"`
			} `json:"nodes"`
		} `json:"teams"`
	}
	vars := map[string]any{
		"filter": map[string]any{"key": map[string]any{"eq": strings.ToUpper(teamKey)}},
	}
	if err := c.do(ctx, "teamLabels", teamLabelsQuery, vars, &data); err != nil {
		return nil, err
	}
	if len(data.Teams.Nodes) == 0 {
		return nil, fmt.Errorf("team '%s' not found", teamKey)
	}

	team := data.Teams.Nodes[0]
	labels := make([]Label, 0, len(team.Labels.Nodes))
	for _, l := range team.Labels.Nodes {
		l.Description = truncate(l.Description, 100)
		labels = append(labels, l)
	}
	return &TeamLabels{Team: team.Key, Labels: labels}, nil
}

// ResolveTeam finds a team by exact key match, falling back to a partial
// case-insensitive name match. It returns (nil, nil) when neither
// matches — an unresolvable team is a value here, not a failure.
func (c *Client) ResolveTeam(ctx context.Context, nameOrKey string) (*Team, error) {
	nodes, err := c.fetchTeams(ctx)
	if err != nil {
		return nil, err
	}

	for _, n := range nodes {
		if strings.EqualFold(n.Key, nameOrKey) {
			t := n.toTeam()
			return &t, nil
		}
	}

	query := strings.ToLower(nameOrKey)
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Name), query) {
			t := n.toTeam()
			return &t, nil
		}
	}
	return nil, nil
}
