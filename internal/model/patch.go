package model

import "encoding/json"

// ItemPatch is a typed partial update for an item. It enumerates exactly the
// mutable columns; anything else in a payload is rejected at decode time.
// Semantics are a true merge: only fields present in the payload are written,
// and an explicit null clears the column.
type ItemPatch struct {
	Title       Optional[string] `json:"title"`
	Notes       Optional[string] `json:"notes"`
	ProjectID   Optional[string] `json:"project_id"`
	Area        Optional[Area]   `json:"area"`
	DueDate     Optional[string] `json:"due_date"`
	CompletedAt Optional[string] `json:"completed_at"`
	ArchivedAt  Optional[string] `json:"archived_at"`
}

// Empty reports whether the patch touches no fields.
func (p ItemPatch) Empty() bool {
	return !p.Title.Set && !p.Notes.Set && !p.ProjectID.Set && !p.Area.Set &&
		!p.DueDate.Set && !p.CompletedAt.Set && !p.ArchivedAt.Set
}

// Apply merges the patch into an item in place. Used for the optimistic
// local guess before the server's authoritative record arrives.
func (p ItemPatch) Apply(it *Item) {
	if p.Title.Set && p.Title.Valid {
		it.Title = p.Title.Value
	}
	if p.Notes.Set {
		it.Notes = p.Notes.Ptr()
	}
	if p.ProjectID.Set {
		it.ProjectID = p.ProjectID.Ptr()
	}
	if p.Area.Set {
		it.Area = p.Area.Ptr()
	}
	if p.DueDate.Set {
		it.DueDate = p.DueDate.Ptr()
	}
	if p.CompletedAt.Set {
		it.CompletedAt = p.CompletedAt.Ptr()
	}
	if p.ArchivedAt.Set {
		it.ArchivedAt = p.ArchivedAt.Ptr()
	}
}

// MarshalJSON emits only the fields the patch actually sets, so a PATCH body
// never clears columns the caller did not mention.
func (p ItemPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 7)
	put(body, "title", p.Title)
	put(body, "notes", p.Notes)
	put(body, "project_id", p.ProjectID)
	put(body, "area", p.Area)
	put(body, "due_date", p.DueDate)
	put(body, "completed_at", p.CompletedAt)
	put(body, "archived_at", p.ArchivedAt)
	return json.Marshal(body)
}

// ProjectPatch is the project counterpart of ItemPatch.
type ProjectPatch struct {
	Name       Optional[string] `json:"name"`
	Emoji      Optional[string] `json:"emoji"`
	Area       Optional[Area]   `json:"area"`
	ArchivedAt Optional[string] `json:"archived_at"`
}

// Empty reports whether the patch touches no fields.
func (p ProjectPatch) Empty() bool {
	return !p.Name.Set && !p.Emoji.Set && !p.Area.Set && !p.ArchivedAt.Set
}

// Apply merges the patch into a project in place.
func (p ProjectPatch) Apply(pr *Project) {
	if p.Name.Set && p.Name.Valid {
		pr.Name = p.Name.Value
	}
	if p.Emoji.Set {
		pr.Emoji = p.Emoji.Ptr()
	}
	if p.Area.Set {
		pr.Area = p.Area.Ptr()
	}
	if p.ArchivedAt.Set {
		pr.ArchivedAt = p.ArchivedAt.Ptr()
	}
}

// MarshalJSON emits only the fields the patch actually sets.
func (p ProjectPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 4)
	put(body, "name", p.Name)
	put(body, "emoji", p.Emoji)
	put(body, "area", p.Area)
	put(body, "archived_at", p.ArchivedAt)
	return json.Marshal(body)
}

func put[T any](body map[string]any, key string, o Optional[T]) {
	if !o.Set {
		return
	}
	if !o.Valid {
		body[key] = nil
		return
	}
	body[key] = o.Value
}
