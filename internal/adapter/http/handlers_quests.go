package adapthttp

import (
	"net/http"

	"questlog/internal/app"
)

func (s *Server) handleQuestList(w http.ResponseWriter, r *http.Request) {
	quests, err := s.quests.List(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quests)
}

func (s *Server) handleQuestCreate(w http.ResponseWriter, r *http.Request) {
	var req app.QuestInput
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	quest, err := s.quests.Create(r.Context(), currentUser(r).ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quest)
}

func (s *Server) handleQuestUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req app.QuestUpdate
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}
	quest, err := s.quests.Update(r.Context(), currentUser(r).ID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quest)
}

func (s *Server) handleQuestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.quests.Delete(r.Context(), currentUser(r).ID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
