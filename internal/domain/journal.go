package domain

import (
	"context"
	"time"
)

// Journal is a single timestamped entry. FolderID is nil for entries that
// have not been filed into a folder. Ownership (UserID) is fixed at creation.
type Journal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	FolderID  *int64    `json:"folderId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Archetype string    `json:"archetype"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JournalRepository is the port for journal persistence. Every read and write
// is scoped by userID; a journal owned by another user behaves as missing.
type JournalRepository interface {
	Create(ctx context.Context, j *Journal) (*Journal, error)
	GetByID(ctx context.Context, userID, id int64) (*Journal, error)
	ListByUser(ctx context.Context, userID int64) ([]Journal, error)
	ListByFolder(ctx context.Context, userID, folderID int64) ([]Journal, error)
	ListUnassigned(ctx context.Context, userID int64) ([]Journal, error)
	Update(ctx context.Context, j *Journal) error
	Delete(ctx context.Context, userID, id int64) error
	CountByUser(ctx context.Context, userID int64) (int, error)
	CreationTimes(ctx context.Context, userID int64) ([]time.Time, error)
}
