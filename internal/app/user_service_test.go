package app_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"questlog/internal/adapter/memory"
	"questlog/internal/app"

	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Profile_OmitsPasswordHash(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	auth := app.NewAuthService(db.NewUserRepo(), db.NewSessionRepo())
	stats := app.NewStatsService(db.NewJournalRepo(), db.NewQuestRepo())
	svc := app.NewUserService(db.NewUserRepo(), stats)

	user, _, err := auth.Signup(ctx, app.SignupInput{
		Username:  "hero",
		Password:  "secret123",
		Archetype: "Sage",
	})
	if err != nil {
		t.Fatal(err)
	}

	profile, err := svc.Profile(ctx, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Username != "hero" || profile.Archetype != "Sage" {
		t.Errorf("unexpected profile %+v", profile)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), user.PasswordHash) {
		t.Errorf("profile serialization must not expose credentials: %s", raw)
	}
}

func TestUserService_UpdateProfile_Password(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	users := db.NewUserRepo()
	auth := app.NewAuthService(users, db.NewSessionRepo())
	stats := app.NewStatsService(db.NewJournalRepo(), db.NewQuestRepo())
	svc := app.NewUserService(users, stats)

	user, _, err := auth.Signup(ctx, app.SignupInput{Username: "hero", Password: "oldpass"})
	if err != nil {
		t.Fatal(err)
	}

	newpass := "newpass456"
	nickname := "Wanderer"
	if _, err := svc.UpdateProfile(ctx, user, app.ProfileUpdate{
		Password: &newpass,
		Nickname: &nickname,
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Nickname != "Wanderer" {
		t.Errorf("expected nickname updated, got %q", stored.Nickname)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newpass)); err != nil {
		t.Error("new password should verify against the stored hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("oldpass")); err == nil {
		t.Error("old password should no longer verify")
	}
}

func TestUserService_DeleteAccount_Cascades(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	users := db.NewUserRepo()
	auth := app.NewAuthService(users, db.NewSessionRepo())
	stats := app.NewStatsService(db.NewJournalRepo(), db.NewQuestRepo())
	svc := app.NewUserService(users, stats)
	journals := newJournalService(db)
	folders := newFolderService(db)
	quests := newQuestService(db)

	user, token, err := auth.Signup(ctx, app.SignupInput{Username: "doomed", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := journals.Create(ctx, user.ID, app.JournalInput{Title: "entry"}); err != nil {
		t.Fatal(err)
	}
	if _, err := folders.Create(ctx, user.ID, "folder"); err != nil {
		t.Fatal(err)
	}
	if _, err := quests.Create(ctx, user.ID, app.QuestInput{Title: "quest"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteAccount(ctx, user.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got, err := users.GetByID(ctx, user.ID); err != nil || got != nil {
		t.Errorf("expected user gone, got %v, %v", got, err)
	}
	if list, _ := journals.List(ctx, user.ID); len(list) != 0 {
		t.Errorf("expected journals cascaded, got %d", len(list))
	}
	if list, _ := folders.List(ctx, user.ID); len(list) != 0 {
		t.Errorf("expected folders cascaded, got %d", len(list))
	}
	if list, _ := quests.List(ctx, user.ID); len(list) != 0 {
		t.Errorf("expected quests cascaded, got %d", len(list))
	}
	if _, err := auth.ValidateSession(ctx, token); err == nil {
		t.Error("expected the user's session to be invalid after account deletion")
	}
}
