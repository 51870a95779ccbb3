// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"questlog/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was
	// incorrect. Callers must not reveal which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the session's user no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 24 * time.Hour

// AuthService handles authentication and session management.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: DefaultSessionTTL,
	}
}

// WithSessionTTL overrides the session lifetime.
func (s *AuthService) WithSessionTTL(ttl time.Duration) *AuthService {
	if ttl > 0 {
		s.sessionTTL = ttl
	}
	return s
}

// Login authenticates a user and creates a session, returning its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.startSession(ctx, user.ID)
}

// SignupInput carries the fields accepted when creating an account.
type SignupInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Archetype string `json:"archetype"`
}

// Signup creates a new account and immediately logs it in, returning the user
// and a session token.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	var fields []string
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		fields = append(fields, "username can't be blank")
	}
	if in.Password == "" {
		fields = append(fields, "password can't be blank")
	}
	if len(fields) > 0 {
		return nil, "", validationError(fields...)
	}

	if existing, err := s.users.GetByUsername(ctx, in.Username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", validationError("username has already been taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Nickname:     in.Nickname,
		Email:        in.Email,
		Archetype:    in.Archetype,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates a session. Deleting an unknown or already-ended session
// is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to its user. A missing session, an
// expired session, and a session whose user has been deleted all read as "not
// authenticated"; the latter two also tear the session down.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrUserNotFound
	}

	return user, nil
}

// LoginSSO creates a session for a user already authenticated by an external
// identity provider, provisioning the account on first login. SSO accounts
// get no usable password; password login for them always fails.
func (s *AuthService) LoginSSO(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, &domain.User{Username: username, Email: username})
		if err != nil {
			// Lost a provisioning race; the row exists now.
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil || user == nil {
				return "", err
			}
		}
	}
	return s.startSession(ctx, user.ID)
}

func (s *AuthService) startSession(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(s.sessionTTL)
	if err := s.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}
