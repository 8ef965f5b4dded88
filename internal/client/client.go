// Package client is the HTTP client for the PARA REST API. It does no
// caching of its own; the cache package layers the optimistic mirror on top.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

// APIError carries the status code and server message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client talks to a PARA server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListItems fetches items matching the filter.
func (c *Client) ListItems(ctx context.Context, filter store.ItemFilter) ([]model.Item, error) {
	q := url.Values{}
	if filter.ProjectID != "" {
		q.Set("projectId", filter.ProjectID)
	}
	if filter.Area != "" {
		q.Set("area", filter.Area)
	}
	if filter.Inbox {
		q.Set("inbox", "true")
	}
	if filter.Today {
		q.Set("today", "true")
	}
	if filter.Overdue {
		q.Set("overdue", "true")
	}

	path := "/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var items []model.Item
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, id string) (model.Item, error) {
	var item model.Item
	err := c.do(ctx, http.MethodGet, "/items/"+id, nil, &item)
	return item, err
}

// CreateItem creates an item and returns the server-assigned record.
func (c *Client) CreateItem(ctx context.Context, draft model.ItemDraft) (model.Item, error) {
	var item model.Item
	err := c.do(ctx, http.MethodPost, "/items", draft, &item)
	return item, err
}

// UpdateItem applies a merge patch and returns the authoritative record.
func (c *Client) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (model.Item, error) {
	var item model.Item
	err := c.do(ctx, http.MethodPatch, "/items/"+id, patch, &item)
	return item, err
}

// DeleteItem archives an item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, nil, nil)
}

// ListProjects fetches projects, with their active task counts.
func (c *Client) ListProjects(ctx context.Context, opts store.ProjectListOptions) ([]model.Project, error) {
	q := url.Values{}
	if opts.IncludeArchived {
		q.Set("includeArchived", "true")
	}
	if opts.Area != "" {
		q.Set("area", opts.Area)
	}

	path := "/projects"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var projects []model.Project
	if err := c.do(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project and returns the server-assigned record.
func (c *Client) CreateProject(ctx context.Context, draft model.ProjectDraft) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodPost, "/projects", draft, &project)
	return project, err
}

// UpdateProject applies a merge patch to a project.
func (c *Client) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodPatch, "/projects/"+id, patch, &project)
	return project, err
}

// DeleteProject archives a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}

// do runs one request/response round trip. A non-2xx response becomes an
// *APIError carrying the server's error message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		respBody, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = string(respBody)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
