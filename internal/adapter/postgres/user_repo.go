package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"questlog/internal/domain"
)

// UserRepo implements user persistence on DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = "id, username, password_hash, first_name, last_name, nickname, email, archetype, created_at, updated_at"

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Nickname, &u.Email, &u.Archetype, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername retrieves a user by username, nil if absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

// GetByID retrieves a user by ID, nil if absent.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	return scanUser(r.db.sql.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, first_name, last_name, nickname, email, archetype, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING `+userColumns,
		u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Nickname, u.Email, u.Archetype, now))
}

// Update replaces the user's mutable fields.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	_, err := r.db.sql.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, first_name = $3, last_name = $4, nickname = $5,
		 email = $6, archetype = $7, updated_at = $8 WHERE id = $1`,
		u.ID, u.PasswordHash, u.FirstName, u.LastName, u.Nickname, u.Email, u.Archetype, time.Now().UTC())
	return err
}

// Delete removes the user. The schema's ON DELETE clauses cascade journals,
// folders, quests, and sessions in the same statement.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}

// Count returns the total number of users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
