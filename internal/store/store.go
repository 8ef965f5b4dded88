// Package store implements the query/filter engine and mutation façade over
// the sqlite database. All reads exclude soft-deleted rows unless asked
// otherwise; all deletes are archive-timestamp writes, never row removal.
package store

import (
	"database/sql"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/db"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// Store runs queries and mutations against an explicitly opened database
// handle. The caller owns the handle's lifecycle.
type Store struct {
	db *db.DB

	// now is the store clock; tests pin it to exercise calendar-day
	// boundaries deterministically.
	now func() time.Time
}

// New creates a Store over an open database.
func New(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// WithClock replaces the store clock. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// today returns the current local calendar day as YYYY-MM-DD.
func (s *Store) today() string {
	return s.now().Format(model.DateFormat)
}

// timestamp returns the current instant as an RFC 3339 string.
func (s *Store) timestamp() string {
	return s.now().Format(time.RFC3339)
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func areaFromNull(ns sql.NullString) *model.Area {
	if !ns.Valid {
		return nil
	}
	a := model.Area(ns.String)
	return &a
}

// toNull converts a pointer field to a bind parameter, mapping nil to NULL.
func toNull(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func areaToNull(a *model.Area) any {
	if a == nil {
		return nil
	}
	return string(*a)
}
