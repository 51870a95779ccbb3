package app

import (
	"context"
	"strings"

	"questlog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserService encapsulates profile use cases. Profiles are the only user
// serialization the transport layer sees; the password hash never appears in
// one.
type UserService struct {
	users domain.UserRepository
	stats *StatsService
}

// NewUserService creates a UserService backed by the given repository and
// statistics service.
func NewUserService(users domain.UserRepository, stats *StatsService) *UserService {
	return &UserService{users: users, stats: stats}
}

// Profile is a user's public view, augmented with derived statistics.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Archetype string `json:"archetype"`
	UserStats
}

// Profile builds the public view of the given user.
func (s *UserService) Profile(ctx context.Context, user *domain.User) (*Profile, error) {
	stats, err := s.stats.ForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Archetype: user.Archetype,
		UserStats: stats,
	}, nil
}

// ProfileUpdate carries the optional profile fields; nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Nickname  *string `json:"nickname"`
	Email     *string `json:"email"`
	Archetype *string `json:"archetype"`
	Password  *string `json:"password"`
}

// UpdateProfile applies the provided fields to the user and returns the
// refreshed public view.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, in ProfileUpdate) (*Profile, error) {
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Nickname != nil {
		user.Nickname = *in.Nickname
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Archetype != nil {
		user.Archetype = *in.Archetype
	}
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, validationError("password can't be blank")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.Profile(ctx, user)
}

// DeleteAccount removes the user and everything the user owns. The repository
// performs the cascade atomically.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}
