package linear

import (
	"context"
	"fmt"
)

const listCommentsQuery = `query($id: String!, $first: Int) {
  issue(id: $id) {
    identifier
    comments(first: $first) {
      nodes {
        id body createdAt updatedAt url
        user { name }
      }
    }
  }
}`

// ListComments returns a capped page of comments on the issue with the
// given identifier (any ParseIdentifier-accepted form), newest first as
// Linear returns them, with resolved author names.
func (c *Client) ListComments(ctx context.Context, identifier string, limit int) (*CommentList, error) {
	code, err := ParseIdentifier(identifier, "")
	if err != nil {
		return nil, err
	}
	id, err := c.resolveIssueByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	var data struct {
		Issue struct {
			Identifier string `json:"identifier"`
			Comments   struct {
				Nodes []struct {
					ID        string     `json:"id"`
					Body      string     `json:"body"`
					CreatedAt string     `json:"createdAt"`
					UpdatedAt string     `json:"updatedAt"`
					URL       string     `json:"url"`
					User      *nameField `json:"user"`
				} `json:"nodes"`
			} `json:"comments"`
		} `json:"issue"`
	}
	vars := map[string]any{"id": id, "first": limit}
	if err := c.do(ctx, "listComments", listCommentsQuery, vars, &data); err != nil {
		return nil, err
	}

	out := make([]Comment, 0, len(data.Issue.Comments.Nodes))
	for _, n := range data.Issue.Comments.Nodes {
		cm := Comment{
			ID:        n.ID,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
			URL:       n.URL,
		}
		if n.User != nil {
			cm.User = n.User.Name
		}
		out = append(out, cm)
	}
	return &CommentList{
		Issue:    data.Issue.Identifier,
		Count:    len(out),
		Comments: out,
	}, nil
}

const addCommentMutation = `mutation($input: CommentCreateInput!) {
  commentCreate(input: $input) {
    success
    comment { id url }
  }
}`

// AddComment posts a comment on the issue with the given identifier.
func (c *Client) AddComment(ctx context.Context, identifier, body string) (*CommentRef, error) {
	code, err := ParseIdentifier(identifier, "")
	if err != nil {
		return nil, err
	}
	id, err := c.resolveIssueByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var data struct {
		CommentCreate struct {
			Success bool `json:"success"`
			Comment *struct {
				ID  string `json:"id"`
				URL string `json:"url"`
			} `json:"comment"`
		} `json:"commentCreate"`
	}
	vars := map[string]any{
		"input": map[string]any{"issueId": id, "body": body},
	}
	if err := c.do(ctx, "addComment", addCommentMutation, vars, &data); err != nil {
		return nil, err
	}
	if !data.CommentCreate.Success {
		return nil, fmt.Errorf("failed to create comment")
	}
	if data.CommentCreate.Comment == nil {
		return nil, fmt.Errorf("comment created but could not be fetched")
	}
	return &CommentRef{
		ID:    data.CommentCreate.Comment.ID,
		Issue: code,
		URL:   data.CommentCreate.Comment.URL,
	}, nil
}
