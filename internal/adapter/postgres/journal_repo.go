package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"questlog/internal/domain"
)

// JournalRepo implements journal persistence on DB. Every query filters by
// user_id, so records owned by another user scan as no rows.
type JournalRepo struct {
	db *DB
}

// NewJournalRepo wraps a DB as a JournalRepository.
func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

const journalColumns = "id, user_id, folder_id, title, body, archetype, created_at, updated_at"

// Create inserts a new journal.
func (r *JournalRepo) Create(ctx context.Context, j *domain.Journal) (*domain.Journal, error) {
	now := time.Now().UTC()
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO journals (user_id, folder_id, title, body, archetype, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING `+journalColumns,
		j.UserID, j.FolderID, j.Title, j.Body, j.Archetype, now)
	return scanJournalRow(row)
}

// GetByID returns one of the user's journals, nil if absent or foreign.
func (r *JournalRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+journalColumns+" FROM journals WHERE id = $1 AND user_id = $2", id, userID)
	return scanJournalRow(row)
}

// ListByUser returns the user's journals, newest first.
func (r *JournalRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Journal, error) {
	return r.list(ctx,
		"SELECT "+journalColumns+" FROM journals WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

// ListByFolder returns the user's journals filed in the given folder.
func (r *JournalRepo) ListByFolder(ctx context.Context, userID, folderID int64) ([]domain.Journal, error) {
	return r.list(ctx,
		"SELECT "+journalColumns+" FROM journals WHERE user_id = $1 AND folder_id = $2 ORDER BY created_at DESC",
		userID, folderID)
}

// ListUnassigned returns the user's journals with no folder.
func (r *JournalRepo) ListUnassigned(ctx context.Context, userID int64) ([]domain.Journal, error) {
	return r.list(ctx,
		"SELECT "+journalColumns+" FROM journals WHERE user_id = $1 AND folder_id IS NULL ORDER BY created_at DESC",
		userID)
}

// Update replaces the journal's mutable fields, keyed by owner and id.
func (r *JournalRepo) Update(ctx context.Context, j *domain.Journal) error {
	_, err := r.db.sql.ExecContext(ctx,
		`UPDATE journals SET folder_id = $3, title = $4, body = $5, archetype = $6, updated_at = $7
		 WHERE id = $1 AND user_id = $2`,
		j.ID, j.UserID, j.FolderID, j.Title, j.Body, j.Archetype, time.Now().UTC())
	return err
}

// Delete removes one of the user's journals.
func (r *JournalRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM journals WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

// CountByUser counts the user's journals.
func (r *JournalRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM journals WHERE user_id = $1", userID).Scan(&count)
	return count, err
}

// CreationTimes returns the creation timestamps of the user's journals.
func (r *JournalRepo) CreationTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT created_at FROM journals WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *JournalRepo) list(ctx context.Context, query string, args ...any) ([]domain.Journal, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Journal, 0)
	for rows.Next() {
		var j domain.Journal
		if err := rows.Scan(&j.ID, &j.UserID, &j.FolderID, &j.Title, &j.Body, &j.Archetype,
			&j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func scanJournalRow(row *sql.Row) (*domain.Journal, error) {
	var j domain.Journal
	err := row.Scan(&j.ID, &j.UserID, &j.FolderID, &j.Title, &j.Body, &j.Archetype,
		&j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}
