package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/persimmonlabs/PARA-DAP/internal/client"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// fakeAPI is a scriptable stand-in for the server. Listings serve the seeded
// collections; mutations succeed with a canned response unless failing is
// set, in which case they return a 500.
type fakeAPI struct {
	tasks    []model.Item
	projects []model.Project
	failing  bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, f.tasks)
		case http.MethodPost:
			if f.failing {
				http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
				return
			}
			var draft model.ItemDraft
			json.NewDecoder(r.Body).Decode(&draft)
			writeJSON(w, model.Item{ID: "created-id", Title: draft.Title, CreatedAt: "2024-06-10T12:00:00Z"})
		}
	})

	mux.HandleFunc("/items/", func(w http.ResponseWriter, r *http.Request) {
		if f.failing {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/items/")
		switch r.Method {
		case http.MethodPatch:
			for _, task := range f.tasks {
				if task.ID == id {
					var patch model.ItemPatch
					json.NewDecoder(r.Body).Decode(&patch)
					patch.Apply(&task)
					writeJSON(w, task)
					return
				}
			}
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		case http.MethodDelete:
			writeJSON(w, map[string]bool{"success": true})
		}
	})

	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, f.projects)
		case http.MethodPost:
			if f.failing {
				http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
				return
			}
			var draft model.ProjectDraft
			json.NewDecoder(r.Body).Decode(&draft)
			writeJSON(w, model.Project{ID: "created-project", Name: draft.Name, CreatedAt: "2024-06-10T12:00:00Z"})
		}
	})

	mux.HandleFunc("/projects/", func(w http.ResponseWriter, r *http.Request) {
		if f.failing {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]bool{"success": true})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func setupTestCache(t *testing.T, api *fakeAPI) *Cache {
	t.Helper()
	ts := httptest.NewServer(api.handler())
	t.Cleanup(ts.Close)

	c := New(client.New(ts.URL))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return c
}

func seedTask(id, title string) model.Item {
	return model.Item{ID: id, Title: title, CreatedAt: "2024-06-10T09:00:00Z"}
}

func TestLoadPopulatesMirror(t *testing.T) {
	api := &fakeAPI{
		tasks:    []model.Item{seedTask("t1", "one"), seedTask("t2", "two")},
		projects: []model.Project{{ID: "p1", Name: "proj"}},
	}
	c := setupTestCache(t, api)

	if got := c.Tasks(); len(got) != 2 {
		t.Errorf("Tasks() = %d items, want 2", len(got))
	}
	if got := c.Projects(); len(got) != 1 {
		t.Errorf("Projects() = %d projects, want 1", len(got))
	}
	if _, ok := c.FindTask("t2"); !ok {
		t.Error("FindTask(t2) = false")
	}
}

func TestCreateTaskConfirmedOnly(t *testing.T) {
	api := &fakeAPI{tasks: []model.Item{seedTask("t1", "existing")}}
	c := setupTestCache(t, api)

	t.Run("failure leaves mirror untouched", func(t *testing.T) {
		api.failing = true
		_, err := c.CreateTask(context.Background(), model.ItemDraft{Title: "doomed"})
		if err == nil {
			t.Fatal("CreateTask() succeeded against failing server")
		}
		if got := c.Tasks(); len(got) != 1 {
			t.Errorf("mirror = %d tasks after failed create, want 1", len(got))
		}
	})

	t.Run("success prepends authoritative record", func(t *testing.T) {
		api.failing = false
		created, err := c.CreateTask(context.Background(), model.ItemDraft{Title: "new task"})
		if err != nil {
			t.Fatalf("CreateTask() failed: %v", err)
		}
		if created.ID != "created-id" {
			t.Errorf("created.ID = %q, want server-assigned id", created.ID)
		}
		got := c.Tasks()
		if len(got) != 2 || got[0].ID != "created-id" {
			t.Errorf("mirror = %v, want new task prepended", got)
		}
	})
}

func TestUpdateTaskOptimisticRollback(t *testing.T) {
	api := &fakeAPI{tasks: []model.Item{seedTask("t1", "original")}}
	c := setupTestCache(t, api)

	api.failing = true
	_, err := c.UpdateTask(context.Background(), "t1", model.ItemPatch{Title: model.Some("renamed")})
	if err == nil {
		t.Fatal("UpdateTask() succeeded against failing server")
	}

	got, ok := c.FindTask("t1")
	if !ok {
		t.Fatal("task missing after rollback")
	}
	if got.Title != "original" {
		t.Errorf("title = %q after rollback, want original", got.Title)
	}
}

func TestUpdateTaskReconciles(t *testing.T) {
	api := &fakeAPI{tasks: []model.Item{seedTask("t1", "original")}}
	c := setupTestCache(t, api)

	updated, err := c.UpdateTask(context.Background(), "t1", model.ItemPatch{Title: model.Some("renamed")})
	if err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("updated.Title = %q", updated.Title)
	}

	got, _ := c.FindTask("t1")
	if got.Title != "renamed" {
		t.Errorf("mirror title = %q, want server record", got.Title)
	}
}

func TestToggleTask(t *testing.T) {
	api := &fakeAPI{tasks: []model.Item{seedTask("t1", "open task")}}
	c := setupTestCache(t, api)

	done, err := c.ToggleTask(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ToggleTask() failed: %v", err)
	}
	if !done.Completed() {
		t.Fatal("task not completed after toggle")
	}

	reopened, err := c.ToggleTask(context.Background(), "t1")
	if err != nil {
		t.Fatalf("second ToggleTask() failed: %v", err)
	}
	if reopened.Completed() {
		t.Fatal("task still completed after second toggle")
	}
}

func TestToggleTaskUnknownID(t *testing.T) {
	c := setupTestCache(t, &fakeAPI{})
	if _, err := c.ToggleTask(context.Background(), "ghost"); err == nil {
		t.Fatal("ToggleTask(ghost) succeeded")
	}
}

func TestDeleteTaskOptimisticRollback(t *testing.T) {
	api := &fakeAPI{tasks: []model.Item{seedTask("t1", "one"), seedTask("t2", "two")}}
	c := setupTestCache(t, api)

	t.Run("failure restores the task", func(t *testing.T) {
		api.failing = true
		if err := c.DeleteTask(context.Background(), "t1"); err == nil {
			t.Fatal("DeleteTask() succeeded against failing server")
		}
		if got := c.Tasks(); len(got) != 2 {
			t.Errorf("mirror = %d tasks after rollback, want 2", len(got))
		}
	})

	t.Run("success removes the task", func(t *testing.T) {
		api.failing = false
		if err := c.DeleteTask(context.Background(), "t1"); err != nil {
			t.Fatalf("DeleteTask() failed: %v", err)
		}
		got := c.Tasks()
		if len(got) != 1 || got[0].ID != "t2" {
			t.Errorf("mirror = %v, want only t2", got)
		}
	})
}

func TestProjectMutations(t *testing.T) {
	api := &fakeAPI{projects: []model.Project{{ID: "p1", Name: "keep"}, {ID: "p2", Name: "drop"}}}
	c := setupTestCache(t, api)

	created, err := c.CreateProject(context.Background(), model.ProjectDraft{Name: "fresh"})
	if err != nil {
		t.Fatalf("CreateProject() failed: %v", err)
	}
	if got := c.Projects(); len(got) != 3 || got[0].ID != created.ID {
		t.Errorf("projects = %v, want new project prepended", got)
	}

	if err := c.DeleteProject(context.Background(), "p2"); err != nil {
		t.Fatalf("DeleteProject() failed: %v", err)
	}
	for _, p := range c.Projects() {
		if p.ID == "p2" {
			t.Error("deleted project still in mirror")
		}
	}

	api.failing = true
	if err := c.DeleteProject(context.Background(), "p1"); err == nil {
		t.Fatal("DeleteProject() succeeded against failing server")
	}
	if got := c.Projects(); len(got) != 2 {
		t.Errorf("projects = %d after rollback, want 2", len(got))
	}
}
