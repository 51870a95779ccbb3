package app

import (
	"context"
	"strings"

	"questlog/internal/domain"
)

// FolderService encapsulates folder use cases, scoped to the calling user.
type FolderService struct {
	folders  domain.FolderRepository
	journals domain.JournalRepository
}

// NewFolderService creates a FolderService backed by the given repositories.
func NewFolderService(folders domain.FolderRepository, journals domain.JournalRepository) *FolderService {
	return &FolderService{folders: folders, journals: journals}
}

// List returns the user's folders, each with its journals attached.
func (s *FolderService) List(ctx context.Context, userID int64) ([]domain.Folder, error) {
	folders, err := s.folders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range folders {
		journals, err := s.journals.ListByFolder(ctx, userID, folders[i].ID)
		if err != nil {
			return nil, err
		}
		folders[i].Journals = journals
	}
	return folders, nil
}

// Get returns one folder with its journals attached.
func (s *FolderService) Get(ctx context.Context, userID, id int64) (*domain.Folder, error) {
	f, err := s.folders.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	journals, err := s.journals.ListByFolder(ctx, userID, f.ID)
	if err != nil {
		return nil, err
	}
	f.Journals = journals
	return f, nil
}

// Create validates and stores a new folder owned by the user.
func (s *FolderService) Create(ctx context.Context, userID int64, name string) (*domain.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("name can't be blank")
	}
	return s.folders.Create(ctx, &domain.Folder{UserID: userID, Name: name})
}

// Rename changes a folder's name.
func (s *FolderService) Rename(ctx context.Context, userID, id int64, name string) (*domain.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("name can't be blank")
	}
	f, err := s.folders.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	f.Name = name
	if err := s.folders.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a folder. The store clears the folder reference on any
// journals filed in it; the journals themselves survive.
func (s *FolderService) Delete(ctx context.Context, userID, id int64) error {
	f, err := s.folders.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	return s.folders.Delete(ctx, userID, id)
}
