package linear

import (
	"context"
	"fmt"
	"strings"
)

// Wire types for issue nodes. Relations arrive nested in the same query,
// so shaping a page needs no follow-up requests.

type nameField struct {
	Name string `json:"name"`
}

type stateField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type teamField struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

type pageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

type issueNode struct {
	ID            string      `json:"id"`
	Identifier    string      `json:"identifier"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Priority      int         `json:"priority"`
	PriorityLabel string      `json:"priorityLabel"`
	URL           string      `json:"url"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
	State         *stateField `json:"state"`
	Assignee      *nameField  `json:"assignee"`
	Project       *nameField  `json:"project"`
	Team          *teamField  `json:"team"`
}

func (n issueNode) toIssue() Issue {
	out := Issue{
		ID:            n.ID,
		Identifier:    n.Identifier,
		Title:         n.Title,
		Description:   n.Description,
		Priority:      n.Priority,
		PriorityLabel: n.PriorityLabel,
		State:         "Unknown",
		URL:           n.URL,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
	if n.State != nil {
		out.State = n.State.Name
		out.StateType = n.State.Type
	}
	if n.Assignee != nil {
		out.Assignee = n.Assignee.Name
	}
	if n.Project != nil {
		out.Project = n.Project.Name
	}
	if n.Team != nil {
		out.Team = n.Team.Key
	}
	return out
}

// IssueFilters are the optional constraints for ListIssues. Zero values
// mean "no constraint".
type IssueFilters struct {
	// Assignee is "me" for the authenticated user, or a case-insensitive
	// partial name match.
	Assignee string
	// Team is an exact team key match, case-insensitive.
	Team string
	// State is one of "active", "backlog", "completed", or a partial
	// state-name match.
	State string
	// Priority is a named priority level.
	Priority string
	// Project is a partial project-name match. If nothing matches, the
	// constraint is silently omitted.
	Project string
	// Limit caps the page size (default 25).
	Limit int
}

const listIssuesQuery = `query($filter: IssueFilter, $first: Int) {
  issues(filter: $filter, first: $first) {
    nodes {
      id identifier title description priority priorityLabel url createdAt updatedAt
      state { name type }
      assignee { name }
      project { name }
      team { key }
    }
    pageInfo { hasNextPage }
  }
}`

// ListIssues returns a capped page of issues matching the filters.
func (c *Client) ListIssues(ctx context.Context, f IssueFilters) (*IssueList, error) {
	filter := map[string]any{}

	switch {
	case f.Assignee == "me":
		me, err := c.viewer(ctx)
		if err != nil {
			return nil, err
		}
		filter["assignee"] = map[string]any{"id": map[string]any{"eq": me.ID}}
	case f.Assignee != "":
		filter["assignee"] = map[string]any{"name": map[string]any{"containsIgnoreCase": f.Assignee}}
	}

	if f.Team != "" {
		filter["team"] = map[string]any{"key": map[string]any{"eq": strings.ToUpper(f.Team)}}
	}

	switch f.State {
	case "":
	case "active":
		filter["state"] = map[string]any{"type": map[string]any{"nin": []string{"completed", "canceled"}}}
	case "backlog":
		filter["state"] = map[string]any{"type": map[string]any{"eq": "backlog"}}
	case "completed":
		filter["state"] = map[string]any{"type": map[string]any{"eq": "completed"}}
	default:
		filter["state"] = map[string]any{"name": map[string]any{"containsIgnoreCase": f.State}}
	}

	if f.Priority != "" {
		filter["priority"] = map[string]any{"eq": PriorityToNumber(f.Priority)}
	}

	if f.Project != "" {
		// No match means no constraint, not an error.
		if id, err := c.resolveProjectID(ctx, f.Project); err != nil {
			return nil, err
		} else if id != "" {
			filter["project"] = map[string]any{"id": map[string]any{"eq": id}}
		}
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 25
	}

	var data struct {
		Issues struct {
			Nodes    []issueNode `json:"nodes"`
			PageInfo pageInfo    `json:"pageInfo"`
		} `json:"issues"`
	}
	vars := map[string]any{"filter": filter, "first": limit}
	if err := c.do(ctx, "listIssues", listIssuesQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]Issue, 0, len(data.Issues.Nodes))
	for _, n := range data.Issues.Nodes {
		out = append(out, n.toIssue())
	}
	return &IssueList{
		Count:   len(out),
		HasMore: data.Issues.PageInfo.HasNextPage,
		Issues:  out,
	}, nil
}

const resolveProjectQuery = `query($filter: ProjectFilter) {
  projects(filter: $filter, first: 1) { nodes { id } }
}`

// resolveProjectID finds a project by case-insensitive partial name match
// and returns its id, or "" when nothing matches.
func (c *Client) resolveProjectID(ctx context.Context, name string) (string, error) {
	var data struct {
		Projects struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"projects"`
	}
	vars := map[string]any{
		"filter": map[string]any{"name": map[string]any{"containsIgnoreCase": name}},
	}
	if err := c.do(ctx, "resolveProject", resolveProjectQuery, vars, &data); err != nil {
		return "", err
	}
	if len(data.Projects.Nodes) == 0 {
		return "", nil
	}
	return data.Projects.Nodes[0].ID, nil
}

const resolveIssueQuery = `query($term: String!) {
  searchIssues(term: $term, first: 10) { nodes { id identifier } }
}`

// resolveIssueByCode finds an issue's id by its human-facing code
// (e.g. ENG-123). The API has no direct lookup-by-code endpoint, so this
// searches for the code and requires an exact identifier match among the
// first 10 hits. Known limitation: an issue ranked beyond those hits is
// reported as not found even though it exists.
func (c *Client) resolveIssueByCode(ctx context.Context, identifier string) (string, error) {
	code := strings.ToUpper(identifier)

	var data struct {
		SearchIssues struct {
			Nodes []struct {
				ID         string `json:"id"`
				Identifier string `json:"identifier"`
			} `json:"nodes"`
		} `json:"searchIssues"`
	}
	vars := map[string]any{"term": code}
	if err := c.do(ctx, "resolveIssue", resolveIssueQuery, vars, &data); err != nil {
		return "", err
	}

	for _, n := range data.SearchIssues.Nodes {
		if n.Identifier == code {
			return n.ID, nil
		}
	}
	return "", fmt.Errorf("issue '%s' not found", identifier)
}

const getIssueQuery = `query($id: String!) {
  issue(id: $id) {
    id identifier title description priority priorityLabel estimate url
    createdAt updatedAt completedAt
    state { name type }
    assignee { name }
    creator { name }
    project { name }
    team { key }
    cycle { name number }
    labels { nodes { name } }
    comments(first: 5) { nodes { body createdAt } }
  }
}`

// GetIssue fetches the detailed view of a single issue by identifier.
func (c *Client) GetIssue(ctx context.Context, identifier string) (*IssueDetail, error) {
	id, err := c.resolveIssueByCode(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var data struct {
		Issue struct {
			issueNode
			Estimate    *float64   `json:"estimate"`
			CompletedAt string     `json:"completedAt"`
			Creator     *nameField `json:"creator"`
			Cycle       *struct {
				Name   string `json:"name"`
				Number int    `json:"number"`
			} `json:"cycle"`
			Labels struct {
				Nodes []nameField `json:"nodes"`
			} `json:"labels"`
			Comments struct {
				Nodes []struct {
					Body      string `json:"body"`
					CreatedAt string `json:"createdAt"`
				} `json:"nodes"`
			} `json:"comments"`
		} `json:"issue"`
	}
	if err := c.do(ctx, "getIssue", getIssueQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}

	n := data.Issue
	detail := &IssueDetail{
		Issue:       n.toIssue(),
		Estimate:    n.Estimate,
		Labels:      make([]string, 0, len(n.Labels.Nodes)),
		CompletedAt: n.CompletedAt,
	}
	if n.Creator != nil {
		detail.Creator = n.Creator.Name
	}
	if n.Cycle != nil {
		detail.Cycle = &CycleRef{Name: n.Cycle.Name, Number: n.Cycle.Number}
	}
	for _, l := range n.Labels.Nodes {
		detail.Labels = append(detail.Labels, l.Name)
	}
	detail.RecentComments = make([]CommentSnippet, 0, len(n.Comments.Nodes))
	for _, cm := range n.Comments.Nodes {
		detail.RecentComments = append(detail.RecentComments, CommentSnippet{
			Body:      truncate(cm.Body, 200),
			CreatedAt: cm.CreatedAt,
		})
	}
	return detail, nil
}

// CreateIssuePayload describes a new issue. Team and Title are required;
// everything else is optional.
type CreateIssuePayload struct {
	Team        string
	Title       string
	Description string
	Priority    string
	// Assignee currently only supports "me".
	Assignee string
	// Project is a partial name match, silently omitted when unresolved.
	Project  string
	Estimate float64
}

const createIssueMutation = `mutation($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue { id identifier title url }
  }
}`

// CreateIssue creates an issue in the team identified by payload.Team.
func (c *Client) CreateIssue(ctx context.Context, payload CreateIssuePayload) (*IssueRef, error) {
	teamID, err := c.lookupTeamID(ctx, payload.Team)
	if err != nil {
		return nil, err
	}
	if teamID == "" {
		return nil, fmt.Errorf("team '%s' not found: use a team key like 'ENG' or 'PROD'", payload.Team)
	}

	input := map[string]any{
		"teamId": teamID,
		"title":  payload.Title,
	}
	if payload.Description != "" {
		input["description"] = payload.Description
	}
	if payload.Priority != "" {
		input["priority"] = PriorityToNumber(payload.Priority)
	}
	if payload.Assignee == "me" {
		me, err := c.viewer(ctx)
		if err != nil {
			return nil, err
		}
		input["assigneeId"] = me.ID
	}
	if payload.Estimate != 0 {
		input["estimate"] = payload.Estimate
	}
	if payload.Project != "" {
		if id, err := c.resolveProjectID(ctx, payload.Project); err != nil {
			return nil, err
		} else if id != "" {
			input["projectId"] = id
		}
	}

	var data struct {
		IssueCreate struct {
			Success bool      `json:"success"`
			Issue   *IssueRef `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := c.do(ctx, "createIssue", createIssueMutation, map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}
	if !data.IssueCreate.Success {
		return nil, fmt.Errorf("failed to create issue")
	}
	if data.IssueCreate.Issue == nil {
		return nil, fmt.Errorf("issue created but could not be fetched")
	}
	return data.IssueCreate.Issue, nil
}

// UpdateIssuePayload describes a partial update. Only non-empty fields
// make it into the mutation input.
type UpdateIssuePayload struct {
	Title       string
	Description string
	Priority    string
	// State is resolved by case-insensitive exact name match within the
	// issue's own team; an unmatched name is silently omitted.
	State string
	// Assignee supports "me" and "none" (clear). Any other value is
	// accepted but not resolved to a user id; see DESIGN.md.
	Assignee string
}

const issueTeamQuery = `query($id: String!) {
  issue(id: $id) { id identifier team { id } }
}`

const teamStatesByIDQuery = `query($id: String!) {
  team(id: $id) { states { nodes { id name } } }
}`

const updateIssueMutation = `mutation($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue { id identifier title url }
  }
}`

// UpdateIssue applies a partial update to the issue with the given
// identifier. An update payload that resolves to no changes fails with
// "no updates specified".
func (c *Client) UpdateIssue(ctx context.Context, identifier string, payload UpdateIssuePayload) (*IssueRef, error) {
	id, err := c.resolveIssueByCode(ctx, identifier)
	if err != nil {
		return nil, err
	}

	input := map[string]any{}
	if payload.Title != "" {
		input["title"] = payload.Title
	}
	if payload.Description != "" {
		input["description"] = payload.Description
	}
	if payload.Priority != "" {
		input["priority"] = PriorityToNumber(payload.Priority)
	}

	if payload.State != "" {
		var issueData struct {
			Issue struct {
				Team *teamField `json:"team"`
			} `json:"issue"`
		}
		if err := c.do(ctx, "issueTeam", issueTeamQuery, map[string]any{"id": id}, &issueData); err != nil {
			return nil, err
		}
		if issueData.Issue.Team != nil {
			var stateData struct {
				Team struct {
					States struct {
						Nodes []stateField `json:"nodes"`
					} `json:"states"`
				} `json:"team"`
			}
			vars := map[string]any{"id": issueData.Issue.Team.ID}
			if err := c.do(ctx, "teamStates", teamStatesByIDQuery, vars, &stateData); err != nil {
				return nil, err
			}
			for _, s := range stateData.Team.States.Nodes {
				if strings.EqualFold(s.Name, payload.State) {
					input["stateId"] = s.ID
					break
				}
			}
		}
	}

	switch payload.Assignee {
	case "me":
		me, err := c.viewer(ctx)
		if err != nil {
			return nil, err
		}
		input["assigneeId"] = me.ID
	case "none":
		input["assigneeId"] = nil
	}

	if len(input) == 0 {
		return nil, fmt.Errorf("no updates specified")
	}

	var data struct {
		IssueUpdate struct {
			Success bool      `json:"success"`
			Issue   *IssueRef `json:"issue"`
		} `json:"issueUpdate"`
	}
	vars := map[string]any{"id": id, "input": input}
	if err := c.do(ctx, "updateIssue", updateIssueMutation, vars, &data); err != nil {
		return nil, err
	}
	if !data.IssueUpdate.Success || data.IssueUpdate.Issue == nil {
		return nil, fmt.Errorf("failed to update issue '%s'", identifier)
	}
	return data.IssueUpdate.Issue, nil
}
