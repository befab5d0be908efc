// Package subtopic resolves curricular context records used to enrich
// exercise generation prompts. Absence of a record is a valid outcome,
// never an error: prompts simply carry less context.
package subtopic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Record holds curricular metadata for one subtopic.
type Record struct {
	ID        string
	Name      string
	Notes     string
	TopicName string
	TopicYear string
	TopicCode string
}

// Resolver looks up subtopic records.
type Resolver interface {
	// GetByID returns the record with the given ID, or (nil, nil) when
	// no such record exists.
	GetByID(ctx context.Context, id string) (*Record, error)

	// FindByName returns the best record whose name approximately matches
	// the given name (case-insensitive substring), or (nil, nil) when
	// nothing matches.
	FindByName(ctx context.Context, name string) (*Record, error)
}

// Repo is a Resolver backed by the SQLite subtopics table.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a Repo over the given database.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const recordColumns = "id, name, notes, topic_name, topic_year, topic_code"

func (r *Repo) GetByID(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM subtopics WHERE id = ?", id)
	return scanRecord(row)
}

func (r *Repo) FindByName(ctx context.Context, name string) (*Record, error) {
	// Exact match wins over substring match; shortest name breaks ties so
	// "Derivadas" prefers the plain subtopic over longer variants.
	row := r.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+` FROM subtopics
		 WHERE name = ? COLLATE NOCASE OR name LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY (name = ? COLLATE NOCASE) DESC, LENGTH(name) ASC
		 LIMIT 1`,
		name, name, name)
	return scanRecord(row)
}

func scanRecord(row *sql.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.Name, &rec.Notes, &rec.TopicName, &rec.TopicYear, &rec.TopicCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan subtopic: %w", err)
	}
	return &rec, nil
}
