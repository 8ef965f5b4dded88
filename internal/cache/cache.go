// Package cache keeps an in-memory mirror of tasks and projects for the UI
// layer. Updates and deletes are optimistic: the local collection changes
// before the network round trip completes and is rolled back to its
// pre-mutation snapshot on failure. Creates are confirmed-only. Concurrent
// mutations against the same record are not serialized; the later-resolving
// response wins.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/client"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

// Cache mirrors server state for one client.
type Cache struct {
	api *client.Client

	mu       sync.Mutex
	tasks    []model.Item
	projects []model.Project
}

// New creates an empty cache over an API client. Call Load before reading.
func New(api *client.Client) *Cache {
	return &Cache{api: api}
}

// Load refreshes both collections in full from the server.
func (c *Cache) Load(ctx context.Context) error {
	tasks, err := c.api.ListItems(ctx, store.ItemFilter{})
	if err != nil {
		return err
	}
	projects, err := c.api.ListProjects(ctx, store.ProjectListOptions{})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = tasks
	c.projects = projects
	return nil
}

// Tasks returns a copy of the current task mirror.
func (c *Cache) Tasks() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Projects returns a copy of the current project mirror.
func (c *Cache) Projects() []model.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// FindTask looks up a task by id in the mirror.
func (c *Cache) FindTask(id string) (model.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Item{}, false
}

// CreateTask is not optimistic: nothing is shown until the server confirms,
// then the authoritative record is prepended.
func (c *Cache) CreateTask(ctx context.Context, draft model.ItemDraft) (model.Item, error) {
	created, err := c.api.CreateItem(ctx, draft)
	if err != nil {
		return model.Item{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append([]model.Item{created}, c.tasks...)
	return created, nil
}

// UpdateTask optimistically replaces the local record with the merged
// old-plus-patch version, then reconciles with the server's authoritative
// response. On failure the pre-mutation snapshot is restored in full.
func (c *Cache) UpdateTask(ctx context.Context, id string, patch model.ItemPatch) (model.Item, error) {
	c.mu.Lock()
	tx := begin(&c.tasks)
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			patch.Apply(&c.tasks[i])
			break
		}
	}
	c.mu.Unlock()

	updated, err := c.api.UpdateItem(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		tx.rollback()
		return model.Item{}, err
	}
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i] = updated
			break
		}
	}
	return updated, nil
}

// ToggleTask flips completion: a completed task is patched back to open, an
// open one is stamped with the current time. Routed through UpdateTask.
func (c *Cache) ToggleTask(ctx context.Context, id string) (model.Item, error) {
	task, ok := c.FindTask(id)
	if !ok {
		return model.Item{}, &client.APIError{Status: 404, Message: "unknown task " + id}
	}

	var patch model.ItemPatch
	if task.Completed() {
		patch.CompletedAt = model.Null[string]()
	} else {
		patch.CompletedAt = model.Some(time.Now().Format(time.RFC3339))
	}
	return c.UpdateTask(ctx, id, patch)
}

// DeleteTask optimistically removes the record; a failed round trip makes
// it reappear.
func (c *Cache) DeleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	tx := begin(&c.tasks)
	c.tasks = withoutItem(c.tasks, id)
	c.mu.Unlock()

	err := c.api.DeleteItem(ctx, id)
	if err != nil {
		c.mu.Lock()
		tx.rollback()
		c.mu.Unlock()
	}
	return err
}

// CreateProject mirrors CreateTask: confirmed-only, prepend on success.
func (c *Cache) CreateProject(ctx context.Context, draft model.ProjectDraft) (model.Project, error) {
	created, err := c.api.CreateProject(ctx, draft)
	if err != nil {
		return model.Project{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = append([]model.Project{created}, c.projects...)
	return created, nil
}

// UpdateProject mirrors UpdateTask for projects.
func (c *Cache) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	c.mu.Lock()
	tx := begin(&c.projects)
	for i := range c.projects {
		if c.projects[i].ID == id {
			patch.Apply(&c.projects[i])
			break
		}
	}
	c.mu.Unlock()

	updated, err := c.api.UpdateProject(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		tx.rollback()
		return model.Project{}, err
	}
	for i := range c.projects {
		if c.projects[i].ID == id {
			c.projects[i] = updated
			break
		}
	}
	return updated, nil
}

// DeleteProject optimistically removes the project from the mirror. Tasks
// keep their project_id; the server archives rather than deletes.
func (c *Cache) DeleteProject(ctx context.Context, id string) error {
	c.mu.Lock()
	tx := begin(&c.projects)
	c.projects = withoutProject(c.projects, id)
	c.mu.Unlock()

	err := c.api.DeleteProject(ctx, id)
	if err != nil {
		c.mu.Lock()
		tx.rollback()
		c.mu.Unlock()
	}
	return err
}

func withoutItem(items []model.Item, id string) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func withoutProject(projects []model.Project, id string) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
