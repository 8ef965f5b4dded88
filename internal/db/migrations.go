package db

import "fmt"

// migrate runs all database migrations
func (db *DB) migrate() error {
	migrations := []string{
		migrationCreateProjects,
		migrationCreateItems,
		migrationCreateIndexes,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateProjects = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    emoji TEXT,
    area TEXT CHECK (area IN ('tennis', 'rose', 'professional', 'personal')),
    archived_at TEXT,
    created_at TEXT NOT NULL
);
`

const migrationCreateItems = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    notes TEXT,
    project_id TEXT REFERENCES projects(id) ON DELETE SET NULL,
    area TEXT CHECK (area IN ('tennis', 'rose', 'professional', 'personal')),
    due_date TEXT,
    completed_at TEXT,
    archived_at TEXT,
    created_at TEXT NOT NULL
);
`

const migrationCreateIndexes = `
CREATE INDEX IF NOT EXISTS idx_items_due_date ON items(due_date);
CREATE INDEX IF NOT EXISTS idx_items_project ON items(project_id);
CREATE INDEX IF NOT EXISTS idx_items_completed ON items(completed_at);
`
