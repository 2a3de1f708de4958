// Package todoist is the REST client for the Todoist task backend.
package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/internal/observability"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

const defaultBaseURL = "https://api.todoist.com/rest/v2"

// Client implements ports.TaskService against the Todoist REST v2 API.
// Calls are single-shot: no internal retry, failures bubble up wrapped with
// domain.ErrBackendUnavailable.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	metrics *observability.Metrics
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API root (tests point it at httptest servers).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMetrics enables request counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client authenticated with the given API token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTasks returns the tasks matching the filter, in backend order.
func (c *Client) ListTasks(ctx context.Context, filter domain.TaskFilter) (tasks []domain.Task, err error) {
	defer func() { c.metrics.ObserveBackend("list_tasks", err) }()

	endpoint := c.baseURL + "/tasks?filter=" + url.QueryEscape(string(filter))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	if err = c.do(req, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task with the given content and optional due date.
func (c *Client) CreateTask(ctx context.Context, content string, due *time.Time) (task domain.Task, err error) {
	defer func() { c.metrics.ObserveBackend("create_task", err) }()

	payload := map[string]string{"content": content}
	if due != nil {
		payload["due_date"] = due.Format("2006-01-02")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Task{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return domain.Task{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	if err = c.do(req, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// do issues the request and decodes the JSON response into out.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}
