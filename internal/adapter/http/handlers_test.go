package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"questlog/internal/adapter/memory"
	"questlog/internal/app"
)

func newTestHandler() http.Handler {
	db := memory.New()
	users := db.NewUserRepo()
	journals := db.NewJournalRepo()
	folders := db.NewFolderRepo()
	quests := db.NewQuestRepo()
	sessions := db.NewSessionRepo()

	auth := app.NewAuthService(users, sessions)
	stats := app.NewStatsService(journals, quests)
	userSvc := app.NewUserService(users, stats)
	journalSvc := app.NewJournalService(journals, folders)
	folderSvc := app.NewFolderService(folders, journals)
	questSvc := app.NewQuestService(quests)

	return New(auth, userSvc, journalSvc, folderSvc, questSvc, nil, "").Handler()
}

func doJSON(t *testing.T, h http.Handler, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// signup creates a user through the API and returns the session cookie.
func signup(t *testing.T, h http.Handler, username string) *http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":"testpass123"}`, username)
	w := doJSON(t, h, http.MethodPost, "/api/signup", body, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", w.Code, w.Body)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("signup: no session cookie set")
	return nil
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestConfig_SSODisabled(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/api/config", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var cfg struct {
		SSOEnabled bool `json:"sso_enabled"`
	}
	if err := json.NewDecoder(w.Body).Decode(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.SSOEnabled {
		t.Error("sso should be disabled without an issuer")
	}
}

func TestSignup_ReturnsProfileAndCookie(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodPost, "/api/signup",
		`{"username":"hero","password":"pw123","archetype":"Seeker"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}

	var profile struct {
		Username      string `json:"username"`
		Archetype     string `json:"archetype"`
		TotalJournals int    `json:"totalJournals"`
	}
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatal(err)
	}
	if profile.Username != "hero" || profile.Archetype != "Seeker" {
		t.Errorf("unexpected profile %+v", profile)
	}
	if profile.TotalJournals != 0 {
		t.Errorf("fresh account should have zero journals, got %d", profile.TotalJournals)
	}
}

func TestSignup_Validation(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodPost, "/api/signup", `{"username":"","password":""}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp struct {
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", resp.Errors)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler()
	signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/login",
		`{"username":"hero","password":"wrong"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username or password not found") {
		t.Errorf("unexpected body %s", w.Body)
	}
}

func TestLogin_Success(t *testing.T) {
	h := newTestHandler()
	signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/login",
		`{"username":"hero","password":"testpass123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			found = true
			if !c.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("expected a session cookie")
	}
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	h := newTestHandler()

	for _, tc := range []struct {
		method, target string
	}{
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/journals"},
		{http.MethodPost, "/api/journals"},
		{http.MethodGet, "/api/folders"},
		{http.MethodGet, "/api/quests"},
		{http.MethodDelete, "/api/profile"},
	} {
		w := doJSON(t, h, tc.method, tc.target, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.target, w.Code)
		}
	}

	// A rejected create must leave nothing behind.
	cookie := signup(t, h, "checker")
	w := doJSON(t, h, http.MethodGet, "/api/journals", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty journal list, got %s", body)
	}
}

func TestJournalCRUD(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/journals",
		`{"title":"The call","body":"It begins.","archetype":"Hero"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body)
	}
	var created struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/journals/%d", created.ID), "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPatch, fmt.Sprintf("/api/journals/%d", created.ID),
		`{"title":"The refusal"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body)
	}
	var updated struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Title != "The refusal" || updated.Body != "It begins." {
		t.Errorf("unexpected journal after update: %+v", updated)
	}

	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/journals/%d", created.ID), "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/journals/%d", created.ID), "", cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestJournals_OwnerScoped(t *testing.T) {
	h := newTestHandler()
	alice := signup(t, h, "alice")
	bob := signup(t, h, "bob")

	w := doJSON(t, h, http.MethodPost, "/api/journals", `{"title":"private"}`, alice)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	if w := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/journals/%d", created.ID), "", bob); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for another user's journal, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/api/journals", "", bob); strings.Contains(w.Body.String(), "private") {
		t.Error("another user's list must not include the journal")
	}
}

func TestFolderFlow(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/folders", `{"name":"Dreams"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}
	var folder struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&folder); err != nil {
		t.Fatal(err)
	}

	body := fmt.Sprintf(`{"title":"filed","folderId":%d}`, folder.ID)
	if w := doJSON(t, h, http.MethodPost, "/api/journals", body, cookie); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/folders/%d", folder.ID), "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "filed") {
		t.Errorf("folder should include its journals: %s", w.Body)
	}

	// Deleting the folder keeps the journal, now unassigned.
	if w := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/folders/%d", folder.ID), "", cookie); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = doJSON(t, h, http.MethodGet, "/api/journals/unassigned", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "filed") {
		t.Errorf("journal should survive folder deletion: %s", w.Body)
	}
}

func TestQuestFlow(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/quests",
		`{"title":"Meditate","goal":30}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}
	var quest struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(w.Body).Decode(&quest); err != nil {
		t.Fatal(err)
	}
	if quest.Status != "Not Started" {
		t.Errorf("expected default status, got %q", quest.Status)
	}

	w = doJSON(t, h, http.MethodPatch, fmt.Sprintf("/api/quests/%d", quest.ID),
		`{"progress":30,"completed":true}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	// The completed quest shows up in the profile stats.
	w = doJSON(t, h, http.MethodGet, "/api/me", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var profile struct {
		QuestsCompleted int `json:"questsCompleted"`
	}
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatal(err)
	}
	if profile.QuestsCompleted != 1 {
		t.Errorf("expected 1 completed quest, got %d", profile.QuestsCompleted)
	}
}

func TestLogout(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPost, "/api/logout", "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	if w := doJSON(t, h, http.MethodGet, "/api/me", "", cookie); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}

	// A second logout with the dead cookie is still fine.
	if w := doJSON(t, h, http.MethodPost, "/api/logout", "", cookie); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}

func TestProfileDelete(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "doomed")

	if w := doJSON(t, h, http.MethodPost, "/api/journals", `{"title":"gone soon"}`, cookie); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w := doJSON(t, h, http.MethodDelete, "/api/profile", "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body)
	}

	if w := doJSON(t, h, http.MethodGet, "/api/me", "", cookie); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after account deletion, got %d", w.Code)
	}

	// The username is free again.
	if w := doJSON(t, h, http.MethodPost, "/api/login",
		`{"username":"doomed","password":"testpass123"}`, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a deleted account, got %d", w.Code)
	}
}

func TestArchetypes_Public(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/api/archetypes", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 12 {
		t.Errorf("expected 12 archetypes, got %d", len(list))
	}
}

func TestUpdateProfile(t *testing.T) {
	h := newTestHandler()
	cookie := signup(t, h, "hero")

	w := doJSON(t, h, http.MethodPatch, "/api/profile",
		`{"nickname":"Wanderer","archetype":"Sage"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var profile struct {
		Nickname  string `json:"nickname"`
		Archetype string `json:"archetype"`
	}
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatal(err)
	}
	if profile.Nickname != "Wanderer" || profile.Archetype != "Sage" {
		t.Errorf("unexpected profile %+v", profile)
	}
}
