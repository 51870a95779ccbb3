// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents an account in the system. PasswordHash never leaves the
// domain/app layers; handlers serialize users through app.Profile instead.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Nickname     string
	Email        string
	Archetype    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines the port for user persistence operations.
// Delete removes the user and every record the user owns (journals, folders,
// quests, sessions) as a single atomic cascade.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
