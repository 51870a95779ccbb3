package app

import (
	"context"
	"strings"

	"questlog/internal/domain"
)

// QuestService encapsulates quest use cases, scoped to the calling user.
type QuestService struct {
	quests domain.QuestRepository
}

// NewQuestService creates a QuestService backed by the given repository.
func NewQuestService(quests domain.QuestRepository) *QuestService {
	return &QuestService{quests: quests}
}

// List returns all of the user's quests.
func (s *QuestService) List(ctx context.Context, userID int64) ([]domain.Quest, error) {
	return s.quests.ListByUser(ctx, userID)
}

// QuestInput carries the fields accepted when creating a quest.
type QuestInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Goal        int    `json:"goal"`
}

// Create validates and stores a new quest owned by the user.
func (s *QuestService) Create(ctx context.Context, userID int64, in QuestInput) (*domain.Quest, error) {
	var fields []string
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, "title can't be blank")
	}
	if in.Progress < 0 {
		fields = append(fields, "progress must be greater than or equal to 0")
	}
	if in.Goal < 0 {
		fields = append(fields, "goal must be greater than or equal to 0")
	}
	if len(fields) > 0 {
		return nil, validationError(fields...)
	}

	status := in.Status
	if status == "" {
		status = "Not Started"
	}
	return s.quests.Create(ctx, &domain.Quest{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Progress:    in.Progress,
		Goal:        in.Goal,
	})
}

// QuestUpdate carries the optional quest fields; nil pointers leave the
// stored value untouched.
type QuestUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
	Goal        *int    `json:"goal"`
	Completed   *bool   `json:"completed"`
}

// Update applies the provided fields to one of the user's quests.
func (s *QuestService) Update(ctx context.Context, userID, id int64, in QuestUpdate) (*domain.Quest, error) {
	q, err := s.quests.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, validationError("title can't be blank")
		}
		q.Title = *in.Title
	}
	if in.Description != nil {
		q.Description = *in.Description
	}
	if in.Status != nil {
		q.Status = *in.Status
	}
	if in.Progress != nil {
		if *in.Progress < 0 {
			return nil, validationError("progress must be greater than or equal to 0")
		}
		q.Progress = *in.Progress
	}
	if in.Goal != nil {
		if *in.Goal < 0 {
			return nil, validationError("goal must be greater than or equal to 0")
		}
		q.Goal = *in.Goal
	}
	if in.Completed != nil {
		q.Completed = *in.Completed
	}

	if err := s.quests.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes one of the user's quests.
func (s *QuestService) Delete(ctx context.Context, userID, id int64) error {
	q, err := s.quests.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrNotFound
	}
	return s.quests.Delete(ctx, userID, id)
}
