package app

import (
	"context"
	"strings"

	"questlog/internal/domain"
)

// JournalService encapsulates journal use cases. Every operation is scoped to
// the calling user; journals owned by someone else read as missing.
type JournalService struct {
	journals domain.JournalRepository
	folders  domain.FolderRepository
}

// NewJournalService creates a JournalService backed by the given repositories.
func NewJournalService(journals domain.JournalRepository, folders domain.FolderRepository) *JournalService {
	return &JournalService{journals: journals, folders: folders}
}

// List returns all of the user's journals.
func (s *JournalService) List(ctx context.Context, userID int64) ([]domain.Journal, error) {
	return s.journals.ListByUser(ctx, userID)
}

// Unassigned returns the user's journals that are not filed in any folder.
func (s *JournalService) Unassigned(ctx context.Context, userID int64) ([]domain.Journal, error) {
	return s.journals.ListUnassigned(ctx, userID)
}

// Get returns one journal by id.
func (s *JournalService) Get(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	j, err := s.journals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrNotFound
	}
	return j, nil
}

// JournalInput carries the fields accepted when creating a journal.
type JournalInput struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Archetype string `json:"archetype"`
	FolderID  *int64 `json:"folderId"`
}

// Create validates and stores a new journal owned by the user.
func (s *JournalService) Create(ctx context.Context, userID int64, in JournalInput) (*domain.Journal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationError("title can't be blank")
	}
	if in.FolderID != nil {
		if err := s.checkFolder(ctx, userID, *in.FolderID); err != nil {
			return nil, err
		}
	}
	return s.journals.Create(ctx, &domain.Journal{
		UserID:    userID,
		FolderID:  in.FolderID,
		Title:     in.Title,
		Body:      in.Body,
		Archetype: in.Archetype,
	})
}

// JournalUpdate carries the optional journal fields; nil pointers leave the
// stored value untouched. A FolderID of 0 clears the folder assignment.
type JournalUpdate struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Archetype *string `json:"archetype"`
	FolderID  *int64  `json:"folderId"`
}

// Update applies the provided fields to one of the user's journals.
func (s *JournalService) Update(ctx context.Context, userID, id int64, in JournalUpdate) (*domain.Journal, error) {
	j, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, validationError("title can't be blank")
		}
		j.Title = *in.Title
	}
	if in.Body != nil {
		j.Body = *in.Body
	}
	if in.Archetype != nil {
		j.Archetype = *in.Archetype
	}
	if in.FolderID != nil {
		if *in.FolderID == 0 {
			j.FolderID = nil
		} else {
			if err := s.checkFolder(ctx, userID, *in.FolderID); err != nil {
				return nil, err
			}
			folderID := *in.FolderID
			j.FolderID = &folderID
		}
	}

	if err := s.journals.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Delete removes one of the user's journals.
func (s *JournalService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.journals.Delete(ctx, userID, id)
}

// checkFolder confirms the folder exists and belongs to the user, so a
// journal can never point at another user's folder.
func (s *JournalService) checkFolder(ctx context.Context, userID, folderID int64) error {
	f, err := s.folders.GetByID(ctx, userID, folderID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	return nil
}
