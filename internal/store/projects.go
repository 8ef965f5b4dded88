package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// ProjectListOptions narrows project listings. Archived projects are
// excluded unless explicitly requested.
type ProjectListOptions struct {
	IncludeArchived bool
	Area            string
}

// ListProjects returns projects most recently created first, each annotated
// with its active task count (items referencing it that are neither
// completed nor archived).
func (s *Store) ListProjects(ctx context.Context, opts ProjectListOptions) ([]model.Project, error) {
	query := `
		SELECT p.id, p.name, p.emoji, p.area, p.archived_at, p.created_at, COUNT(i.id)
		FROM projects p
		LEFT JOIN items i ON i.project_id = p.id
			AND i.completed_at IS NULL AND i.archived_at IS NULL
		WHERE 1=1`
	var args []any

	if !opts.IncludeArchived {
		query += " AND p.archived_at IS NULL"
	}
	if opts.Area != "" {
		query += " AND p.area = ?"
		args = append(args, opts.Area)
	}

	query += " GROUP BY p.id ORDER BY p.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		var emoji, area, archivedAt sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &emoji, &area, &archivedAt, &p.CreatedAt, &p.ActiveTaskCount); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Emoji = fromNull(emoji)
		p.Area = areaFromNull(area)
		p.ArchivedAt = fromNull(archivedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject fetches a single project by id, archived or not.
func (s *Store) GetProject(ctx context.Context, id string) (model.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, emoji, area, archived_at, created_at FROM projects WHERE id = ?", id)

	var p model.Project
	var emoji, area, archivedAt sql.NullString
	err := row.Scan(&p.ID, &p.Name, &emoji, &area, &archivedAt, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrNotFound
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	p.Emoji = fromNull(emoji)
	p.Area = areaFromNull(area)
	p.ArchivedAt = fromNull(archivedAt)
	return p, nil
}

// CreateProject validates the draft and inserts the row with a server
// assigned id and created_at.
func (s *Store) CreateProject(ctx context.Context, draft model.ProjectDraft) (model.Project, error) {
	if draft.Name == "" {
		return model.Project{}, invalidf("name", "required non-empty text")
	}
	if draft.Area != nil && !draft.Area.Valid() {
		return model.Project{}, invalidf("area", "must be one of %v", model.Areas())
	}

	id := uuid.New().String()
	createdAt := s.timestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, emoji, area, archived_at, created_at)
		VALUES (?, ?, ?, ?, NULL, ?)`,
		id, draft.Name, toNull(draft.Emoji), areaToNull(draft.Area), createdAt,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return s.GetProject(ctx, id)
}

// UpdateProject applies a partial merge to a project.
func (s *Store) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	if patch.Name.Set && (!patch.Name.Valid || patch.Name.Value == "") {
		return model.Project{}, invalidf("name", "required non-empty text")
	}
	if patch.Area.Set && patch.Area.Valid && !patch.Area.Value.Valid() {
		return model.Project{}, invalidf("area", "must be one of %v", model.Areas())
	}
	if patch.Empty() {
		return s.GetProject(ctx, id)
	}

	var set []string
	var args []any
	add := func(col string, present, valid bool, value any) {
		if !present {
			return
		}
		set = append(set, col+" = ?")
		if valid {
			args = append(args, value)
		} else {
			args = append(args, nil)
		}
	}
	add("name", patch.Name.Set, patch.Name.Valid, patch.Name.Value)
	add("emoji", patch.Emoji.Set, patch.Emoji.Valid, patch.Emoji.Value)
	add("area", patch.Area.Set, patch.Area.Valid, string(patch.Area.Value))
	add("archived_at", patch.ArchivedAt.Set, patch.ArchivedAt.Valid, patch.ArchivedAt.Value)

	args = append(args, id)
	res, err := s.db.ExecContext(ctx, "UPDATE projects SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Project{}, ErrNotFound
	}

	return s.GetProject(ctx, id)
}

// ArchiveProject soft-deletes a project. Items keep their project_id; the
// reference is only cleared if a row is ever physically removed, which
// normal flow never does.
func (s *Store) ArchiveProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE projects SET archived_at = COALESCE(archived_at, ?) WHERE id = ?",
		s.timestamp(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to archive project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
