package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/go-resty/resty/v2"
)

// StatusError reports a non-success HTTP status from the chat backend.
type StatusError struct {
	Code   int
	Status string // full status line, e.g. "500 Internal Server Error"
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Status)
}

// Client talks to the chat backend over HTTP.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a new backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		http:    client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send posts the routed request and decodes the provider response. Both
// providers answer with the same assistantMessage/resumeData shape.
func (c *Client) Send(ctx context.Context, route Route) (*domain.BackendResponse, error) {
	var out domain.BackendResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(route.Body).
		SetResult(&out).
		Post(route.Path)
	if err != nil {
		return nil, fmt.Errorf("chat backend unreachable: %w", err)
	}
	if resp.IsError() {
		return nil, &StatusError{Code: resp.StatusCode(), Status: resp.Status()}
	}

	return &out, nil
}
