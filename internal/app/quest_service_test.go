package app_test

import (
	"context"
	"errors"
	"testing"

	"questlog/internal/adapter/memory"
	"questlog/internal/app"
)

func newQuestService(db *memory.DB) *app.QuestService {
	return app.NewQuestService(db.NewQuestRepo())
}

func TestQuestService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := newQuestService(memory.New())

	q, err := svc.Create(ctx, 1, app.QuestInput{Title: "Meditate daily", Goal: 30})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if q.Status != "Not Started" {
		t.Errorf("expected default status, got %q", q.Status)
	}
	if q.Completed {
		t.Error("new quest should not be completed")
	}
}

func TestQuestService_Create_Invalid(t *testing.T) {
	svc := newQuestService(memory.New())
	_, err := svc.Create(context.Background(), 1, app.QuestInput{
		Title:    " ",
		Progress: -1,
		Goal:     -5,
	})

	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("expected 3 field errors, got %v", verr.Fields)
	}
}

func TestQuestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newQuestService(memory.New())

	q, err := svc.Create(ctx, 1, app.QuestInput{Title: "Run", Goal: 10})
	if err != nil {
		t.Fatal(err)
	}

	progress := 10
	completed := true
	status := "Completed"
	got, err := svc.Update(ctx, 1, q.ID, app.QuestUpdate{
		Progress:  &progress,
		Completed: &completed,
		Status:    &status,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Progress != 10 || !got.Completed || got.Status != "Completed" {
		t.Errorf("unexpected quest after update: %+v", got)
	}
	if got.Title != "Run" {
		t.Errorf("title should be untouched, got %q", got.Title)
	}
}

func TestQuestService_Update_Foreign(t *testing.T) {
	ctx := context.Background()
	svc := newQuestService(memory.New())

	q, err := svc.Create(ctx, 1, app.QuestInput{Title: "Mine"})
	if err != nil {
		t.Fatal(err)
	}

	title := "Theirs now"
	if _, err := svc.Update(ctx, 2, q.ID, app.QuestUpdate{Title: &title}); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("expected ErrNotFound for another user's quest, got %v", err)
	}
}

func TestQuestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newQuestService(memory.New())

	q, err := svc.Create(ctx, 1, app.QuestInput{Title: "Done soon"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, 1, q.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("expected no quests left, got %d", len(list))
	}
	if err := svc.Delete(ctx, 1, q.ID); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
