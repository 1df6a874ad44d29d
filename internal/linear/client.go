package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultEndpoint = "https://api.linear.app/graphql"

// Client talks to the Linear GraphQL API. It is safe for concurrent use
// and is meant to be constructed once by the composition root and passed
// to everything that needs it.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint. Used by tests to point
// the client at a local stub server.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Linear API client authenticated with the given
// personal API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("linear: API key is required")
	}
	c := &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// do executes a GraphQL request and decodes the data payload into out.
// Remote failures come back as *APIError with a category attached;
// everything else (transport, encoding) is returned as-is.
func (c *Client) do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling Linear (%s): %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", operation, err)
	}
	c.log.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("linear request")

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Category: classifyStatus(resp.StatusCode),
			Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
			Status:   resp.StatusCode,
		}
	}

	var gql graphQLResponse
	if err := json.Unmarshal(respBody, &gql); err != nil {
		return fmt.Errorf("parsing %s response: %w", operation, err)
	}

	if len(gql.Errors) > 0 {
		msgs := make([]string, len(gql.Errors))
		category := CategoryAPI
		for i, e := range gql.Errors {
			msgs[i] = e.Message
			if cat := classifyCode(e.Extensions.Code); cat != CategoryAPI {
				category = cat
			}
		}
		return &APIError{
			Category: category,
			Message:  strings.Join(msgs, "; "),
			Status:   resp.StatusCode,
		}
	}

	if out == nil || gql.Data == nil {
		return nil
	}
	if err := json.Unmarshal(gql.Data, out); err != nil {
		return fmt.Errorf("decoding %s data: %w", operation, err)
	}
	return nil
}

const viewerQuery = `query { viewer { id name email } }`

// viewer returns the authenticated user.
func (c *Client) viewer(ctx context.Context) (*PreflightUser, error) {
	var data struct {
		Viewer PreflightUser `json:"viewer"`
	}
	if err := c.do(ctx, "viewer", viewerQuery, nil, &data); err != nil {
		return nil, err
	}
	return &data.Viewer, nil
}

// roundProgress converts Linear's 0..1 progress fraction to a rounded
// 0..100 integer.
func roundProgress(p float64) int {
	return int(p*100 + 0.5)
}

// truncate caps s at n bytes. Linear descriptions and comment bodies can
// be arbitrarily long; output records keep a bounded prefix.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
