package linear

import (
	"context"
	"strings"
)

const listUsersQuery = `query {
  users { nodes { id name displayName email active admin } }
}`

// ListUsers returns all users in the workspace, unfiltered.
func (c *Client) ListUsers(ctx context.Context) (*UserList, error) {
	users, err := c.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &UserList{Count: len(users), Users: users}, nil
}

func (c *Client) fetchUsers(ctx context.Context) ([]User, error) {
	var data struct {
		Users struct {
			Nodes []User `json:"nodes"`
		} `json:"users"`
	}
	if err := c.do(ctx, "listUsers", listUsersQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.Users.Nodes, nil
}

// ResolveUser matches a query against every user's name, display name,
// and email (case-insensitive partial match on any field). Zero matches
// yields a structured not-found result, not an error. With multiple
// matches the first is primary and up to 3 more come back as
// alternatives.
func (c *Client) ResolveUser(ctx context.Context, query string) (*UserMatch, error) {
	users, err := c.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			matches = append(matches, u)
		}
	}

	if len(matches) == 0 {
		return &UserMatch{Found: false, User: nil, Alternatives: []User{}}, nil
	}

	alternatives := matches[1:min(len(matches), 4)]
	return &UserMatch{
		Found:        true,
		User:         &matches[0],
		Alternatives: append([]User{}, alternatives...),
	}, nil
}
