package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"questlog/internal/domain"
)

// FolderRepo implements folder persistence on DB.
type FolderRepo struct {
	db *DB
}

// NewFolderRepo wraps a DB as a FolderRepository.
func NewFolderRepo(db *DB) *FolderRepo {
	return &FolderRepo{db: db}
}

// Create inserts a new folder.
func (r *FolderRepo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO folders (user_id, name, created_at) VALUES ($1, $2, $3)
		 RETURNING id, user_id, name, created_at`,
		f.UserID, f.Name, time.Now().UTC())
	return scanFolderRow(row)
}

// GetByID returns one of the user's folders, nil if absent or foreign.
func (r *FolderRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Folder, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT id, user_id, name, created_at FROM folders WHERE id = $1 AND user_id = $2", id, userID)
	return scanFolderRow(row)
}

// ListByUser returns the user's folders in creation order.
func (r *FolderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, user_id, name, created_at FROM folders WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Folder, 0)
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update replaces the folder's name, keyed by owner and id.
func (r *FolderRepo) Update(ctx context.Context, f *domain.Folder) error {
	_, err := r.db.sql.ExecContext(ctx,
		"UPDATE folders SET name = $3 WHERE id = $1 AND user_id = $2", f.ID, f.UserID, f.Name)
	return err
}

// Delete removes one of the user's folders. The schema's ON DELETE SET NULL
// clears the folder reference on journals filed in it.
func (r *FolderRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM folders WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func scanFolderRow(row *sql.Row) (*domain.Folder, error) {
	var f domain.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
