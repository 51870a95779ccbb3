package app

import (
	"context"

	"questlog/internal/domain"
)

// StatsService derives read-only summary metrics for a user from their
// current journal and quest collections. Nothing here is cached or stored;
// every call recomputes from the repositories and empty collections are valid
// input, not errors.
type StatsService struct {
	journals domain.JournalRepository
	quests   domain.QuestRepository
}

// NewStatsService creates a StatsService backed by the given repositories.
func NewStatsService(journals domain.JournalRepository, quests domain.QuestRepository) *StatsService {
	return &StatsService{journals: journals, quests: quests}
}

// UserStats is the derived-view contract attached to a user's public profile.
type UserStats struct {
	TotalJournals   int `json:"totalJournals"`
	LongestStreak   int `json:"longestStreak"`
	QuestsCompleted int `json:"questsCompleted"`
}

// TotalJournals counts the journals owned by the user.
func (s *StatsService) TotalJournals(ctx context.Context, userID int64) (int, error) {
	return s.journals.CountByUser(ctx, userID)
}

// LongestStreak returns the user's longest run of consecutive journaling days.
func (s *StatsService) LongestStreak(ctx context.Context, userID int64) (int, error) {
	stamps, err := s.journals.CreationTimes(ctx, userID)
	if err != nil {
		return 0, err
	}
	return domain.LongestStreak(stamps), nil
}

// QuestsCompleted counts the user's quests with the completed flag set.
func (s *StatsService) QuestsCompleted(ctx context.Context, userID int64) (int, error) {
	return s.quests.CountCompleted(ctx, userID)
}

// ForUser computes all three metrics.
func (s *StatsService) ForUser(ctx context.Context, userID int64) (UserStats, error) {
	total, err := s.TotalJournals(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	streak, err := s.LongestStreak(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	completed, err := s.QuestsCompleted(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	return UserStats{TotalJournals: total, LongestStreak: streak, QuestsCompleted: completed}, nil
}
