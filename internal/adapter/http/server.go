package adapthttp

import (
	"net/http"

	"questlog/internal/app"

	"github.com/gorilla/mux"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	users    *app.UserService
	journals *app.JournalService
	folders  *app.FolderService
	quests   *app.QuestService
	oidc     *OIDCConfig
	webDir   string
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, users *app.UserService, journals *app.JournalService,
	folders *app.FolderService, quests *app.QuestService, oidc *OIDCConfig, webDir string) *Server {
	if oidc == nil {
		oidc = &OIDCConfig{}
	}
	return &Server{
		auth:     auth,
		users:    users,
		journals: journals,
		folders:  folders,
		quests:   quests,
		oidc:     oidc,
		webDir:   webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public endpoints: everything else behind /api requires a session.
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)
	api.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	api.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/archetypes", s.handleArchetypes).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)

	protected.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)
	protected.HandleFunc("/profile", s.handleProfileUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/profile", s.handleProfileDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/journals", s.handleJournalList).Methods(http.MethodGet)
	protected.HandleFunc("/journals", s.handleJournalCreate).Methods(http.MethodPost)
	protected.HandleFunc("/journals/unassigned", s.handleJournalUnassigned).Methods(http.MethodGet)
	protected.HandleFunc("/journals/{id:[0-9]+}", s.handleJournalGet).Methods(http.MethodGet)
	protected.HandleFunc("/journals/{id:[0-9]+}", s.handleJournalUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/journals/{id:[0-9]+}", s.handleJournalDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/folders", s.handleFolderList).Methods(http.MethodGet)
	protected.HandleFunc("/folders", s.handleFolderCreate).Methods(http.MethodPost)
	protected.HandleFunc("/folders/{id:[0-9]+}", s.handleFolderGet).Methods(http.MethodGet)
	protected.HandleFunc("/folders/{id:[0-9]+}", s.handleFolderUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/folders/{id:[0-9]+}", s.handleFolderDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/quests", s.handleQuestList).Methods(http.MethodGet)
	protected.HandleFunc("/quests", s.handleQuestCreate).Methods(http.MethodPost)
	protected.HandleFunc("/quests/{id:[0-9]+}", s.handleQuestUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/quests/{id:[0-9]+}", s.handleQuestDelete).Methods(http.MethodDelete)

	r.PathPrefix("/").Handler(spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(r))
}
