package adapthttp

import (
	"net/http"

	"questlog/internal/app"
	"questlog/internal/domain"
)

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var req app.ProfileUpdate
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	profile, err := s.users.UpdateProfile(r.Context(), currentUser(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleProfileDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.users.DeleteAccount(r.Context(), currentUser(r).ID); err != nil {
		writeServiceError(w, err)
		return
	}
	setSessionCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

// handleArchetypes serves the public educational catalog.
func (s *Server) handleArchetypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Archetypes())
}
