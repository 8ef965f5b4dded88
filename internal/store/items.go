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

// ItemFilter selects items for listing. All specified predicates must hold
// (logical AND). A projectId or area naming nothing yields an empty result,
// not an error.
type ItemFilter struct {
	ProjectID string
	Area      string
	Inbox     bool // neither project nor area assigned
	Today     bool // due today (local calendar day)
	Overdue   bool // due strictly before today

	// IncludeCompleted keeps completed items in the listing. Archived
	// items stay excluded. Not exposed on the REST surface; id-prefix
	// resolution needs it to reach tasks being reopened.
	IncludeCompleted bool
}

const itemColumns = "id, title, notes, project_id, area, due_date, completed_at, archived_at, created_at"

// ListItems returns non-archived items matching the filter, most recently
// created first. Completed items are excluded unless the filter keeps them.
func (s *Store) ListItems(ctx context.Context, filter ItemFilter) ([]model.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE archived_at IS NULL"
	var args []any

	if !filter.IncludeCompleted {
		query += " AND completed_at IS NULL"
	}

	if filter.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, filter.ProjectID)
	}
	if filter.Area != "" {
		query += " AND area = ?"
		args = append(args, filter.Area)
	}
	if filter.Inbox {
		query += " AND project_id IS NULL AND area IS NULL"
	}
	if filter.Today {
		query += " AND due_date = ?"
		args = append(args, s.today())
	}
	if filter.Overdue {
		query += " AND due_date < ?"
		args = append(args, s.today())
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem fetches a single item by id, archived or not.
func (s *Store) GetItem(ctx context.Context, id string) (model.Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, ErrNotFound
	}
	return item, err
}

// CreateItem validates the draft, assigns id and created_at, and inserts the
// row. Absent optional fields become NULL.
func (s *Store) CreateItem(ctx context.Context, draft model.ItemDraft) (model.Item, error) {
	if draft.Title == "" {
		return model.Item{}, invalidf("title", "required non-empty text")
	}
	if draft.Area != nil && !draft.Area.Valid() {
		return model.Item{}, invalidf("area", "must be one of %v", model.Areas())
	}
	if draft.DueDate != nil && !model.ValidDate(*draft.DueDate) {
		return model.Item{}, invalidf("due_date", "must be a YYYY-MM-DD date")
	}

	id := uuid.New().String()
	createdAt := s.timestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, title, notes, project_id, area, due_date, completed_at, archived_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, draft.Title, toNull(draft.Notes), toNull(draft.ProjectID), areaToNull(draft.Area),
		toNull(draft.DueDate), toNull(draft.CompletedAt), toNull(draft.ArchivedAt), createdAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY") {
			return model.Item{}, invalidf("project_id", "no such project")
		}
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return s.GetItem(ctx, id)
}

// UpdateItem applies a partial merge: only fields the patch sets are
// written, explicit nulls clear the column. Returns the post-update record.
func (s *Store) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (model.Item, error) {
	if err := validateItemPatch(patch); err != nil {
		return model.Item{}, err
	}
	if patch.Empty() {
		return s.GetItem(ctx, id)
	}

	var set []string
	var args []any
	addClause := func(col string, o model.Optional[string]) {
		if !o.Set {
			return
		}
		set = append(set, col+" = ?")
		if o.Valid {
			args = append(args, o.Value)
		} else {
			args = append(args, nil)
		}
	}

	addClause("title", patch.Title)
	addClause("notes", patch.Notes)
	addClause("project_id", patch.ProjectID)
	if patch.Area.Set {
		set = append(set, "area = ?")
		if patch.Area.Valid {
			args = append(args, string(patch.Area.Value))
		} else {
			args = append(args, nil)
		}
	}
	addClause("due_date", patch.DueDate)
	addClause("completed_at", patch.CompletedAt)
	addClause("archived_at", patch.ArchivedAt)

	args = append(args, id)
	res, err := s.db.ExecContext(ctx, "UPDATE items SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY") {
			return model.Item{}, invalidf("project_id", "no such project")
		}
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, ErrNotFound
	}

	return s.GetItem(ctx, id)
}

// ArchiveItem soft-deletes an item. Re-archiving is a no-op: the original
// archive timestamp is kept.
func (s *Store) ArchiveItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET archived_at = COALESCE(archived_at, ?) WHERE id = ?",
		s.timestamp(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to archive item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func validateItemPatch(patch model.ItemPatch) error {
	if patch.Title.Set && (!patch.Title.Valid || patch.Title.Value == "") {
		return invalidf("title", "required non-empty text")
	}
	if patch.Area.Set && patch.Area.Valid && !patch.Area.Value.Valid() {
		return invalidf("area", "must be one of %v", model.Areas())
	}
	if patch.DueDate.Set && patch.DueDate.Valid && !model.ValidDate(patch.DueDate.Value) {
		return invalidf("due_date", "must be a YYYY-MM-DD date")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	var notes, projectID, area, dueDate, completedAt, archivedAt sql.NullString

	err := row.Scan(&item.ID, &item.Title, &notes, &projectID, &area,
		&dueDate, &completedAt, &archivedAt, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, err
		}
		return model.Item{}, fmt.Errorf("failed to scan item: %w", err)
	}

	item.Notes = fromNull(notes)
	item.ProjectID = fromNull(projectID)
	item.Area = areaFromNull(area)
	item.DueDate = fromNull(dueDate)
	item.CompletedAt = fromNull(completedAt)
	item.ArchivedAt = fromNull(archivedAt)
	return item, nil
}
