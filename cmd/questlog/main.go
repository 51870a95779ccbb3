package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	adapthttp "questlog/internal/adapter/http"
	"questlog/internal/adapter/postgres"
	"questlog/internal/app"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	userRepo := postgres.NewUserRepo(db)
	journalRepo := postgres.NewJournalRepo(db)
	folderRepo := postgres.NewFolderRepo(db)
	questRepo := postgres.NewQuestRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)

	authSvc := app.NewAuthService(userRepo, sessionRepo)
	if ttl, err := time.ParseDuration(env("SESSION_TTL", "")); err == nil {
		authSvc.WithSessionTTL(ttl)
	}
	statsSvc := app.NewStatsService(journalRepo, questRepo)
	userSvc := app.NewUserService(userRepo, statsSvc)
	journalSvc := app.NewJournalService(journalRepo, folderRepo)
	folderSvc := app.NewFolderService(folderRepo, journalRepo)
	questSvc := app.NewQuestService(questRepo)

	oidcCfg, err := adapthttp.NewOIDCConfig(context.Background(),
		os.Getenv("OIDC_ISSUER"),
		os.Getenv("OIDC_CLIENT_ID"),
		os.Getenv("OIDC_CLIENT_SECRET"),
		os.Getenv("OIDC_REDIRECT_URL"),
	)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(authSvc, userSvc, journalSvc, folderSvc, questSvc, oidcCfg, webDir).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
