// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/pick"
)

// SQLite implements pick.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SavePick stores a new pick and sets its ID.
func (s *SQLite) SavePick(ctx context.Context, p *pick.Pick) error {
	if p.End.Before(p.Start) {
		return pick.ErrInvertedPick
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO picks (start_date, end_date, note, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		p.Start.String(),
		p.End.String(),
		p.Note,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pick: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	p.ID = id

	return nil
}

// GetPick retrieves a pick by ID, or nil if not found.
func (s *SQLite) GetPick(ctx context.Context, id int64) (*pick.Pick, error) {
	query := `
		SELECT id, start_date, end_date, note, created_at
		FROM picks
		WHERE id = ?
	`

	p, err := scanPick(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying pick: %w", err)
	}
	return p, nil
}

// ListPicks returns saved picks, newest first. A limit of 0 means no
// limit.
func (s *SQLite) ListPicks(ctx context.Context, limit int) ([]*pick.Pick, error) {
	query := `
		SELECT id, start_date, end_date, note, created_at
		FROM picks
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}
	defer rows.Close()

	var picks []*pick.Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pick: %w", err)
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating picks: %w", err)
	}

	return picks, nil
}

// DeletePick removes a pick by ID.
func (s *SQLite) DeletePick(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM picks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pick: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("pick %d not found", id)
	}
	return nil
}

// ClearPicks removes every saved pick and returns the count.
func (s *SQLite) ClearPicks(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM picks`)
	if err != nil {
		return 0, fmt.Errorf("clearing picks: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared picks: %w", err)
	}
	return rows, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for scanPick.
type scanner interface {
	Scan(dest ...any) error
}

func scanPick(row scanner) (*pick.Pick, error) {
	var (
		p         pick.Pick
		startDate string
		endDate   string
		createdAt string
	)

	if err := row.Scan(&p.ID, &startDate, &endDate, &p.Note, &createdAt); err != nil {
		return nil, err
	}

	var err error
	p.Start, err = calendar.Parse(startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	p.End, err = calendar.Parse(endDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &p, nil
}
