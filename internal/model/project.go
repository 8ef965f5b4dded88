package model

// Project groups items under one life area.
type Project struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Emoji      *string `json:"emoji,omitempty"`
	Area       *Area   `json:"area,omitempty"`
	ArchivedAt *string `json:"archived_at,omitempty"`
	CreatedAt  string  `json:"created_at"`

	// ActiveTaskCount is derived on listing: items referencing this project
	// that are neither completed nor archived.
	ActiveTaskCount int `json:"activeTaskCount"`
}

// Archived reports whether the project has been soft-deleted.
func (p *Project) Archived() bool {
	return p.ArchivedAt != nil
}

// ProjectDraft holds the caller-supplied fields for creating a project.
type ProjectDraft struct {
	Name  string  `json:"name"`
	Emoji *string `json:"emoji,omitempty"`
	Area  *Area   `json:"area,omitempty"`
}
