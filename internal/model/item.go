package model

import "time"

// DateFormat is the calendar-day layout used for due dates. Due dates carry
// no time component; two of them compare correctly as plain strings.
const DateFormat = "2006-01-02"

// ValidDate reports whether s is a bare YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Item represents a single task. Timestamps are RFC 3339 strings; optional
// fields are nil when absent so JSON round-trips absence faithfully.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Notes       *string `json:"notes,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	Area        *Area   `json:"area,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	ArchivedAt  *string `json:"archived_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// Completed reports whether the item has been marked done.
func (i *Item) Completed() bool {
	return i.CompletedAt != nil
}

// Archived reports whether the item has been soft-deleted.
func (i *Item) Archived() bool {
	return i.ArchivedAt != nil
}

// ItemDraft holds the caller-supplied fields for creating an item. The id
// and created_at are assigned by the store.
type ItemDraft struct {
	Title       string  `json:"title"`
	Notes       *string `json:"notes,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	Area        *Area   `json:"area,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	ArchivedAt  *string `json:"archived_at,omitempty"`
}
