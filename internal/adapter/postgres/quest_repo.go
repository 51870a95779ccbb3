package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"questlog/internal/domain"
)

// QuestRepo implements quest persistence on DB.
type QuestRepo struct {
	db *DB
}

// NewQuestRepo wraps a DB as a QuestRepository.
func NewQuestRepo(db *DB) *QuestRepo {
	return &QuestRepo{db: db}
}

const questColumns = "id, user_id, title, description, status, progress, goal, completed, created_at, updated_at"

// Create inserts a new quest.
func (r *QuestRepo) Create(ctx context.Context, q *domain.Quest) (*domain.Quest, error) {
	now := time.Now().UTC()
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO quests (user_id, title, description, status, progress, goal, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING `+questColumns,
		q.UserID, q.Title, q.Description, q.Status, q.Progress, q.Goal, q.Completed, now)
	return scanQuestRow(row)
}

// GetByID returns one of the user's quests, nil if absent or foreign.
func (r *QuestRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Quest, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+questColumns+" FROM quests WHERE id = $1 AND user_id = $2", id, userID)
	return scanQuestRow(row)
}

// ListByUser returns the user's quests in creation order.
func (r *QuestRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Quest, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+questColumns+" FROM quests WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Quest, 0)
	for rows.Next() {
		var q domain.Quest
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.Status,
			&q.Progress, &q.Goal, &q.Completed, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Update replaces the quest's mutable fields, keyed by owner and id.
func (r *QuestRepo) Update(ctx context.Context, q *domain.Quest) error {
	_, err := r.db.sql.ExecContext(ctx,
		`UPDATE quests SET title = $3, description = $4, status = $5, progress = $6, goal = $7,
		 completed = $8, updated_at = $9 WHERE id = $1 AND user_id = $2`,
		q.ID, q.UserID, q.Title, q.Description, q.Status, q.Progress, q.Goal, q.Completed, time.Now().UTC())
	return err
}

// Delete removes one of the user's quests.
func (r *QuestRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM quests WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

// CountCompleted counts the user's quests with completed set.
func (r *QuestRepo) CountCompleted(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM quests WHERE user_id = $1 AND completed", userID).Scan(&count)
	return count, err
}

func scanQuestRow(row *sql.Row) (*domain.Quest, error) {
	var q domain.Quest
	err := row.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.Status,
		&q.Progress, &q.Goal, &q.Completed, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
