package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/persimmonlabs/PARA-DAP/internal/config"
	"github.com/persimmonlabs/PARA-DAP/internal/db"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

// openStore opens the local database and wraps it in a store. The caller
// closes the returned handle.
func openStore() (*db.DB, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	var database *db.DB
	if cfg.DBPath != "" {
		database, err = db.Open(cfg.DBPath)
	} else {
		database, err = db.OpenDefault()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return database, store.New(database), nil
}

// resolveItem finds an item by full id or unique id prefix. Completed
// items are resolvable too, so 'para done --undo' can reopen by prefix;
// archived ones are not.
func resolveItem(ctx context.Context, st *store.Store, idOrPrefix string) (model.Item, error) {
	item, err := st.GetItem(ctx, idOrPrefix)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.Item{}, err
	}

	items, err := st.ListItems(ctx, store.ItemFilter{IncludeCompleted: true})
	if err != nil {
		return model.Item{}, err
	}

	var match *model.Item
	for i := range items {
		if strings.HasPrefix(items[i].ID, idOrPrefix) {
			if match != nil {
				return model.Item{}, fmt.Errorf("ambiguous id prefix %q", idOrPrefix)
			}
			match = &items[i]
		}
	}
	if match == nil {
		return model.Item{}, fmt.Errorf("task not found: %s", idOrPrefix)
	}
	return *match, nil
}

// resolveProject finds a project by id, unique id prefix, or exact name.
func resolveProject(ctx context.Context, st *store.Store, ref string) (model.Project, error) {
	project, err := st.GetProject(ctx, ref)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.Project{}, err
	}

	projects, err := st.ListProjects(ctx, store.ProjectListOptions{})
	if err != nil {
		return model.Project{}, err
	}

	var match *model.Project
	for i := range projects {
		if projects[i].Name == ref || strings.HasPrefix(projects[i].ID, ref) {
			if match != nil {
				return model.Project{}, fmt.Errorf("ambiguous project %q", ref)
			}
			match = &projects[i]
		}
	}
	if match == nil {
		return model.Project{}, fmt.Errorf("project not found: %s", ref)
	}
	return *match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
