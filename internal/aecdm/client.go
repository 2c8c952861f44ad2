// Package aecdm is the client for the Autodesk AEC Data Model GraphQL API.
// It is the backend's only data source: every view is rebuilt from live
// query results, nothing is stored locally.
package aecdm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"category-audit-backend/internal/errors"
)

// DefaultTimeout bounds a single GraphQL request.
const DefaultTimeout = 30 * time.Second

// Client talks to one AEC Data Model endpoint in one region.
type Client struct {
	endpoint string
	region   string
	tokens   TokenSource
	http     *http.Client
}

// New creates a client for the given endpoint and region.
func New(endpoint, region string, tokens TokenSource) *Client {
	return &Client{
		endpoint: endpoint,
		region:   region,
		tokens:   tokens,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
}

// WithTimeout returns a copy of the client using the given request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	out := *c
	out.http = &http.Client{Timeout: d}
	return &out
}

// WithRegion returns a copy of the client pinned to a different region.
func (c *Client) WithRegion(region string) *Client {
	out := *c
	out.region = region
	return &out
}

// Region returns the region the client sends with each request.
func (c *Client) Region() string {
	return c.region
}

// AccessToken returns the current bearer token. The viewer page embeds it so
// the browser can stream the model directly from APS.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	return c.tokens.Token(ctx)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Execute runs one GraphQL operation and unmarshals the response data into
// out. A non-200 response becomes an APIError, an errors array in the body a
// QueryError.
func (c *Client) Execute(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	if variables == nil {
		variables = map[string]any{}
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Region", c.region)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(0, c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapAPI(resp.StatusCode, c.endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(resp.StatusCode, c.endpoint, string(body))
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errors.WrapAPI(resp.StatusCode, c.endpoint, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return errors.NewQueryError(operation, messages)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.WrapAPI(resp.StatusCode, c.endpoint, err)
		}
	}
	return nil
}
