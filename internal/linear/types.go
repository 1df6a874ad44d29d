// Package linear wraps the Linear GraphQL API behind flat, serialization-
// friendly records. Every operation is a method on Client: it builds a
// filter from caller options, issues one or more queries, and shapes the
// response into output structs that hold only plain values — no live
// handles to the remote service.
package linear

import "encoding/json"

// Issue is the summary view returned by list and search operations.
type Issue struct {
	ID            string `json:"id"`
	Identifier    string `json:"identifier"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Priority      int    `json:"priority"`
	PriorityLabel string `json:"priorityLabel"`
	State         string `json:"state"`
	StateType     string `json:"stateType,omitempty"`
	Assignee      string `json:"assignee,omitempty"`
	Project       string `json:"project,omitempty"`
	Team          string `json:"team,omitempty"`
	URL           string `json:"url"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// IssueDetail extends the summary view with the fields only fetched for
// a single issue.
type IssueDetail struct {
	Issue
	Estimate       *float64         `json:"estimate"`
	Labels         []string         `json:"labels"`
	Cycle          *CycleRef        `json:"cycle"`
	Creator        string           `json:"creator,omitempty"`
	CompletedAt    string           `json:"completedAt,omitempty"`
	RecentComments []CommentSnippet `json:"recentComments"`
}

// CycleRef is the minimal cycle reference attached to an issue.
type CycleRef struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// CommentSnippet is a truncated comment in an issue's detail view.
type CommentSnippet struct {
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// IssueList is a capped page of issues plus a has-more flag.
type IssueList struct {
	Count   int     `json:"count"`
	HasMore bool    `json:"hasMore"`
	Issues  []Issue `json:"issues"`
}

// IssueRef identifies an issue after a create or update mutation.
type IssueRef struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// Project is the summary view of a Linear project.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	State       string   `json:"state"`
	Progress    int      `json:"progress"`
	Health      string   `json:"health,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	TargetDate  string   `json:"targetDate,omitempty"`
	Teams       []string `json:"teams"`
	Lead        string   `json:"lead,omitempty"`
	URL         string   `json:"url"`
}

// ProjectList is the result of a project listing.
type ProjectList struct {
	Count    int       `json:"count"`
	Projects []Project `json:"projects"`
}

// ProjectDetail extends the summary view with milestones, recent updates
// and a count-by-state breakdown of the first fetched page of issues.
type ProjectDetail struct {
	Project
	Milestones          []Milestone     `json:"milestones"`
	RecentUpdates       []ProjectUpdate `json:"recentUpdates"`
	IssueStateBreakdown map[string]int  `json:"issueStateBreakdown"`
}

// Milestone is a project milestone.
type Milestone struct {
	Name        string `json:"name"`
	TargetDate  string `json:"targetDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectUpdate is a truncated project status update.
type ProjectUpdate struct {
	Body      string `json:"body"`
	Health    string `json:"health,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ProjectMetrics carries a project's time series plus derived trend and
// velocity figures.
type ProjectMetrics struct {
	Name                       string    `json:"name"`
	State                      string    `json:"state"`
	Health                     string    `json:"health,omitempty"`
	Progress                   int       `json:"progress"`
	CompletedIssueCountHistory []float64 `json:"completedIssueCountHistory"`
	CompletedScopeHistory      []float64 `json:"completedScopeHistory"`
	InProgressScopeHistory     []float64 `json:"inProgressScopeHistory"`
	ScopeHistory               []float64 `json:"scopeHistory"`
	Trend                      string    `json:"trend"`
	Velocity                   *int      `json:"velocity"`
}

// Cycle is the summary view of a sprint.
type Cycle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Team     string `json:"team,omitempty"`
	IsActive bool   `json:"isActive"`
	Progress int    `json:"progress"`
	StartsAt string `json:"startsAt,omitempty"`
	EndsAt   string `json:"endsAt,omitempty"`
}

// CycleList is the result of a cycle listing.
type CycleList struct {
	Count  int     `json:"count"`
	Cycles []Cycle `json:"cycles"`
}

// CycleMetrics carries a cycle's day-indexed time series plus a burndown
// classification.
type CycleMetrics struct {
	Name                       string    `json:"name"`
	Number                     int       `json:"number"`
	Team                       string    `json:"team,omitempty"`
	IsActive                   bool      `json:"isActive"`
	Progress                   int       `json:"progress"`
	StartsAt                   string    `json:"startsAt,omitempty"`
	EndsAt                     string    `json:"endsAt,omitempty"`
	CompletedIssueCountHistory []float64 `json:"completedIssueCountHistory"`
	CompletedScopeHistory      []float64 `json:"completedScopeHistory"`
	InProgressScopeHistory     []float64 `json:"inProgressScopeHistory"`
	ScopeHistory               []float64 `json:"scopeHistory"`
	BurndownStatus             string    `json:"burndownStatus"`
}

// Team is a Linear team with its active cycle summary.
type Team struct {
	ID          string       `json:"id"`
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IssueCount  int          `json:"issueCount"`
	ActiveCycle *ActiveCycle `json:"activeCycle"`
}

// ActiveCycle summarizes a team's currently running cycle.
type ActiveCycle struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Progress int    `json:"progress"`
}

// TeamList is the result of a team listing.
type TeamList struct {
	Count int    `json:"count"`
	Teams []Team `json:"teams"`
}

// WorkflowState is a named, typed status an issue can occupy.
type WorkflowState struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// TeamStates lists a team's workflow states sorted by position.
type TeamStates struct {
	Team   string          `json:"team"`
	States []WorkflowState `json:"states"`
}

// Label is an issue label.
type Label struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// TeamLabels lists a team's labels.
type TeamLabels struct {
	Team   string  `json:"team"`
	Labels []Label `json:"labels"`
}

// User is a workspace member.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
	Admin       bool   `json:"admin"`
}

// UserList is the result of a user listing.
type UserList struct {
	Count int    `json:"count"`
	Users []User `json:"users"`
}

// UserMatch is the result of resolving a user by partial name or email.
// A query matching nobody yields Found=false, not an error.
type UserMatch struct {
	Found        bool   `json:"found"`
	User         *User  `json:"user"`
	Alternatives []User `json:"alternatives"`
}

// Comment is a full comment on an issue.
type Comment struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	User      string `json:"user,omitempty"`
	URL       string `json:"url"`
}

// CommentList is a capped page of an issue's comments.
type CommentList struct {
	Issue    string    `json:"issue"`
	Count    int       `json:"count"`
	Comments []Comment `json:"comments"`
}

// CommentRef identifies a newly created comment.
type CommentRef struct {
	ID    string `json:"id"`
	Issue string `json:"issue"`
	URL   string `json:"url"`
}

// SearchResult is one full-text search hit.
type SearchResult struct {
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	State       string `json:"state,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	URL         string `json:"url"`
}

// SearchResults is a capped set of search hits for a query.
type SearchResults struct {
	Query  string         `json:"query"`
	Count  int            `json:"count"`
	Issues []SearchResult `json:"issues"`
}

// FilterSuggestion carries Linear's suggested filter for a natural-
// language query, passed through unmodified.
type FilterSuggestion struct {
	Query           string          `json:"query"`
	SuggestedFilter json.RawMessage `json:"suggestedFilter"`
}

// Preflight is the one-time session-start capability probe.
type Preflight struct {
	Success      bool          `json:"success"`
	User         PreflightUser `json:"user"`
	Organization Organization  `json:"organization"`
	Teams        []TeamRef     `json:"teams"`
	RateLimit    RateLimit     `json:"rateLimit"`
}

// PreflightUser is the authenticated caller's identity.
type PreflightUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Organization is the workspace identity.
type Organization struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URLKey string `json:"urlKey"`
}

// TeamRef is the minimal team identity returned by preflight.
type TeamRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// RateLimit reports the remaining request quota.
type RateLimit struct {
	RequestsRemaining int `json:"requestsRemaining"`
}
