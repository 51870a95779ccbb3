package app_test

import (
	"context"
	"testing"
	"time"

	"questlog/internal/adapter/memory"
	"questlog/internal/app"
	"questlog/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestStatsService_ForUser_Empty(t *testing.T) {
	db := memory.New()
	svc := app.NewStatsService(db.NewJournalRepo(), db.NewQuestRepo())

	stats, err := svc.ForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalJournals != 0 || stats.LongestStreak != 0 || stats.QuestsCompleted != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

func TestStatsService_ForUser(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	journals := db.NewJournalRepo()
	quests := db.NewQuestRepo()

	// Three consecutive days, a gap, then one more: longest streak is 3.
	for _, ts := range []time.Time{
		day(2026, time.March, 1),
		day(2026, time.March, 2),
		day(2026, time.March, 3),
		day(2026, time.March, 7),
	} {
		if _, err := journals.Create(ctx, &domain.Journal{
			UserID:    1,
			Title:     "entry",
			CreatedAt: ts,
		}); err != nil {
			t.Fatal(err)
		}
	}

	// Another user's journals must not count.
	if _, err := journals.Create(ctx, &domain.Journal{
		UserID:    2,
		Title:     "other",
		CreatedAt: day(2026, time.March, 4),
	}); err != nil {
		t.Fatal(err)
	}

	for _, q := range []domain.Quest{
		{UserID: 1, Title: "a", Completed: true},
		{UserID: 1, Title: "b", Completed: false},
		{UserID: 1, Title: "c", Completed: true},
		{UserID: 2, Title: "d", Completed: true},
	} {
		q := q
		if _, err := quests.Create(ctx, &q); err != nil {
			t.Fatal(err)
		}
	}

	svc := app.NewStatsService(journals, quests)
	stats, err := svc.ForUser(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalJournals != 4 {
		t.Errorf("expected 4 journals, got %d", stats.TotalJournals)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("expected streak 3, got %d", stats.LongestStreak)
	}
	if stats.QuestsCompleted != 2 {
		t.Errorf("expected 2 completed quests, got %d", stats.QuestsCompleted)
	}
}
