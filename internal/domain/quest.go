package domain

import (
	"context"
	"time"
)

// Quest is a personal goal with free-text status and numeric progress toward
// a numeric goal. Completed is an explicit flag, not derived from progress.
type Quest struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Goal        int       `json:"goal"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// QuestRepository is the port for quest persistence, scoped by owner.
type QuestRepository interface {
	Create(ctx context.Context, q *Quest) (*Quest, error)
	GetByID(ctx context.Context, userID, id int64) (*Quest, error)
	ListByUser(ctx context.Context, userID int64) ([]Quest, error)
	Update(ctx context.Context, q *Quest) error
	Delete(ctx context.Context, userID, id int64) error
	CountCompleted(ctx context.Context, userID int64) (int, error)
}
