package domain

import (
	"context"
	"time"
)

// Folder is a named container for journals, owned by exactly one user.
// Journals is populated by the folder service when serving reads; deleting a
// folder clears its journals' folder reference, it never deletes them.
type Folder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Journals  []Journal `json:"journals,omitempty"`
}

// FolderRepository is the port for folder persistence, scoped by owner.
type FolderRepository interface {
	Create(ctx context.Context, f *Folder) (*Folder, error)
	GetByID(ctx context.Context, userID, id int64) (*Folder, error)
	ListByUser(ctx context.Context, userID int64) ([]Folder, error)
	Update(ctx context.Context, f *Folder) error
	Delete(ctx context.Context, userID, id int64) error
}
