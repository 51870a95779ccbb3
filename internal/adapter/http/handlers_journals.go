package adapthttp

import (
	"net/http"

	"questlog/internal/app"
)

func (s *Server) handleJournalList(w http.ResponseWriter, r *http.Request) {
	journals, err := s.journals.List(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journals)
}

func (s *Server) handleJournalUnassigned(w http.ResponseWriter, r *http.Request) {
	journals, err := s.journals.Unassigned(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journals)
}

func (s *Server) handleJournalGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	journal, err := s.journals.Get(r.Context(), currentUser(r).ID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journal)
}

func (s *Server) handleJournalCreate(w http.ResponseWriter, r *http.Request) {
	var req app.JournalInput
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	journal, err := s.journals.Create(r.Context(), currentUser(r).ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, journal)
}

func (s *Server) handleJournalUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req app.JournalUpdate
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	journal, err := s.journals.Update(r.Context(), currentUser(r).ID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journal)
}

func (s *Server) handleJournalDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.journals.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
